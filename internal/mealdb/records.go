package mealdb

import (
	"fmt"
	"strconv"
	"strings"

	"mealdeck/internal/domain"
)

// TheMealDB spreads ingredients over numbered columns
const maxIngredients = 20

type mealsResponse struct {
	Meals []mealRecord `json:"meals"`
}

type areasResponse struct {
	Meals []struct {
		Area *string `json:"strArea"`
	} `json:"meals"`
}

// mealRecord keeps the raw columns; unknown keys and null values are tolerated
type mealRecord map[string]any

func (r mealRecord) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r mealRecord) toMeal() (domain.Meal, error) {
	m := domain.Meal{
		ID:           r.str("idMeal"),
		Name:         r.str("strMeal"),
		Category:     r.str("strCategory"),
		Area:         r.str("strArea"),
		Thumbnail:    r.str("strMealThumb"),
		Instructions: r.str("strInstructions"),
		YouTube:      r.str("strYoutube"),
		Source:       r.str("strSource"),
	}
	if m.ID == "" {
		return domain.Meal{}, fmt.Errorf("record without idMeal")
	}
	if m.Name == "" {
		return domain.Meal{}, fmt.Errorf("meal %s has no strMeal", m.ID)
	}

	if tags := r.str("strTags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				m.Tags = append(m.Tags, tag)
			}
		}
	}

	for i := 1; i <= maxIngredients; i++ {
		name := r.str("strIngredient" + strconv.Itoa(i))
		if name == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, domain.Ingredient{
			Name:    name,
			Measure: r.str("strMeasure" + strconv.Itoa(i)),
		})
	}

	return m, nil
}

func (r mealsResponse) toMeals() ([]domain.Meal, error) {
	meals := make([]domain.Meal, 0, len(r.Meals))
	for _, rec := range r.Meals {
		if rec == nil {
			return nil, fmt.Errorf("null meal record")
		}
		m, err := rec.toMeal()
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, nil
}
