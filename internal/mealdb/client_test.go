package mealdb_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdeck/internal/domain"
	"mealdeck/internal/mealdb"
	"mealdeck/internal/mealdb/mealdbtest"
)

func TestSearchByLetterDecodesRecords(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()

	rec := mealdbtest.Record("52772", "Teriyaki Chicken Casserole", "Japanese")
	rec["strTags"] = "Meat, Casserole"
	srv.SetLetter("t", rec)

	c := mealdb.NewHTTPClient(srv.URL)
	meals, err := c.SearchByLetter(context.Background(), "t")
	require.NoError(t, err)
	require.Len(t, meals, 1)

	m := meals[0]
	assert.Equal(t, "52772", m.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", m.Name)
	assert.Equal(t, "Japanese", m.Area)
	assert.Equal(t, []string{"Meat", "Casserole"}, m.Tags)
	assert.Equal(t, []domain.Ingredient{{Name: "Salt", Measure: "1 pinch"}}, m.Ingredients)
	assert.Zero(t, m.Rating)
}

func TestSearchByLetterNullMealsIsEmpty(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()

	meals, err := mealdb.NewHTTPClient(srv.URL).SearchByLetter(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestListAreasKeepsDuplicates(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()
	srv.SetAreas("Indian", "Indian", "Italian")

	areas, err := mealdb.NewHTTPClient(srv.URL).ListAreas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Indian", "Indian", "Italian"}, areas)
}

func TestLookupMeal(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()
	srv.SetLetter("a", mealdbtest.Record("1", "Apam balik", "Malaysian"))

	c := mealdb.NewHTTPClient(srv.URL + "/")

	m, err := c.LookupMeal(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Apam balik", m.Name)

	_, err = c.LookupMeal(context.Background(), "404")
	assert.ErrorIs(t, err, mealdb.ErrEmptyResult)
}

func TestErrorClassification(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()
	srv.Fail("f=c", http.StatusInternalServerError)
	srv.Raw("f=d", `{"meals": [`)
	srv.Raw("f=e", `{"meals": [{"strMeal": "No id"}]}`)
	srv.Raw("a=list", `{"meals": [{"other": "x"}]}`)

	c := mealdb.NewHTTPClient(srv.URL)
	ctx := context.Background()

	_, err := c.SearchByLetter(ctx, "c")
	require.Error(t, err)
	assert.True(t, mealdb.IsNetwork(err))
	var ne *mealdb.NetworkError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, http.StatusInternalServerError, ne.Status)

	_, err = c.SearchByLetter(ctx, "d")
	assert.True(t, mealdb.IsMalformed(err))

	_, err = c.SearchByLetter(ctx, "e")
	assert.True(t, mealdb.IsMalformed(err))

	_, err = c.ListAreas(ctx)
	assert.True(t, mealdb.IsMalformed(err))
}

func TestUnreachableServerIsNetworkError(t *testing.T) {
	srv := mealdbtest.NewServer()
	url := srv.URL
	srv.Close()

	_, err := mealdb.NewHTTPClient(url, mealdb.WithTimeout(time.Second)).ListAreas(context.Background())
	require.Error(t, err)
	assert.True(t, mealdb.IsNetwork(err))
	assert.False(t, mealdb.IsMalformed(err))
}

func TestCancelledContextIsNetworkError(t *testing.T) {
	srv := mealdbtest.NewServer()
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mealdb.NewHTTPClient(srv.URL).SearchByLetter(ctx, "a")
	require.Error(t, err)
	assert.True(t, mealdb.IsNetwork(err))
	assert.ErrorIs(t, err, context.Canceled)
}
