// Package mealdbtest serves a canned TheMealDB API for tests.
package mealdbtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Record builds a raw meal record the way the API encodes it
func Record(id, name, area string) map[string]any {
	return map[string]any{
		"idMeal":          id,
		"strMeal":         name,
		"strArea":         area,
		"strCategory":     "Misc",
		"strInstructions": "Cook " + name + ".",
		"strMealThumb":    "https://example.test/" + id + ".jpg",
		"strTags":         nil,
		"strIngredient1":  "Salt",
		"strMeasure1":     "1 pinch",
		"strIngredient2":  "",
		"strMeasure2":     " ",
	}
}

// Server is a fake API with per-letter fixtures and injectable failures
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	letters  map[string][]map[string]any
	areas    []string
	failures map[string]int // request key -> status code
	raw      map[string]string
	gate     <-chan struct{}
	requests []string
}

// NewServer starts a fake API. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		letters:  make(map[string][]map[string]any),
		failures: make(map[string]int),
		raw:      make(map[string]string),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// SetLetter registers the records returned for a first-letter search
func (s *Server) SetLetter(letter string, records ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.letters[letter] = records
}

// SetAreas registers the area list
func (s *Server) SetAreas(areas ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.areas = areas
}

// Fail makes requests matching key answer with status.
// Keys look like "f=c", "a=list" or "i=52772".
func (s *Server) Fail(key string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[key] = status
}

// Raw makes requests matching key answer 200 with body
func (s *Server) Raw(key, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[key] = body
}

// Block holds every later request until release is closed or the client gives up
func (s *Server) Block(release <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = release
}

// Requests returns the request keys in arrival order
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var key string
	switch {
	case strings.HasSuffix(r.URL.Path, "/search.php"):
		key = "f=" + q.Get("f")
	case strings.HasSuffix(r.URL.Path, "/list.php"):
		key = "a=" + q.Get("a")
	case strings.HasSuffix(r.URL.Path, "/lookup.php"):
		key = "i=" + q.Get("i")
	default:
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, key)
	status, failing := s.failures[key]
	body, isRaw := s.raw[key]
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if failing {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if isRaw {
		_, _ = w.Write([]byte(body))
		return
	}

	var meals any
	switch {
	case strings.HasPrefix(key, "f="):
		meals = s.search(q.Get("f"))
	case strings.HasPrefix(key, "a="):
		meals = s.areaRecords()
	default:
		meals = s.lookup(q.Get("i"))
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"meals": meals})
}

func (s *Server) search(letter string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recs := s.letters[letter]; len(recs) > 0 {
		return recs
	}
	return nil
}

func (s *Server) areaRecords() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]any, 0, len(s.areas))
	for _, a := range s.areas {
		out = append(out, map[string]any{"strArea": a})
	}
	return out
}

func (s *Server) lookup(id string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, recs := range s.letters {
		for _, rec := range recs {
			if rec["idMeal"] == id {
				return []map[string]any{rec}
			}
		}
	}
	return nil
}
