// Package mealdb is a small client for the read-only TheMealDB JSON API.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"mealdeck/internal/domain"
)

// Client is the subset of the API the catalog store consumes
type Client interface {
	SearchByLetter(ctx context.Context, letter string) ([]domain.Meal, error)
	ListAreas(ctx context.Context) ([]string, error)
	LookupMeal(ctx context.Context, id string) (domain.Meal, error)
}

// HTTPClient talks to TheMealDB over HTTP
type HTTPClient struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request; zero leaves requests unbounded
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http = &http.Client{Transport: c.http.Transport, Timeout: d}
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient creates a client for the API rooted at base
func NewHTTPClient(base string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("mealdb")
	return c
}

// SearchByLetter returns every meal whose name starts with letter.
// A letter without meals yields an empty slice and no error.
func (c *HTTPClient) SearchByLetter(ctx context.Context, letter string) ([]domain.Meal, error) {
	var resp mealsResponse
	if err := c.getJSON(ctx, "search.php", url.Values{"f": {letter}}, &resp); err != nil {
		return nil, err
	}
	meals, err := resp.toMeals()
	if err != nil {
		return nil, &MalformedResponseError{Endpoint: "search.php", Err: err}
	}
	c.logger.Debug("searched letter", zap.String("letter", letter), zap.Int("meals", len(meals)))
	return meals, nil
}

// ListAreas returns the raw area names in the order the API sends them
func (c *HTTPClient) ListAreas(ctx context.Context) ([]string, error) {
	var resp areasResponse
	if err := c.getJSON(ctx, "list.php", url.Values{"a": {"list"}}, &resp); err != nil {
		return nil, err
	}
	areas := make([]string, 0, len(resp.Meals))
	for i, m := range resp.Meals {
		if m.Area == nil {
			return nil, &MalformedResponseError{Endpoint: "list.php", Err: fmt.Errorf("entry %d has no strArea", i)}
		}
		areas = append(areas, *m.Area)
	}
	return areas, nil
}

// LookupMeal returns the full record for one meal id
func (c *HTTPClient) LookupMeal(ctx context.Context, id string) (domain.Meal, error) {
	var resp mealsResponse
	if err := c.getJSON(ctx, "lookup.php", url.Values{"i": {id}}, &resp); err != nil {
		return domain.Meal{}, err
	}
	meals, err := resp.toMeals()
	if err != nil {
		return domain.Meal{}, &MalformedResponseError{Endpoint: "lookup.php", Err: err}
	}
	if len(meals) == 0 {
		return domain.Meal{}, fmt.Errorf("lookup %s: %w", id, ErrEmptyResult)
	}
	return meals[0], nil
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.base + "/" + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &NetworkError{Endpoint: endpoint, Status: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Endpoint: endpoint, Err: err}
	}
	return nil
}
