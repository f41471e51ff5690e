package catalog

import (
	"math/rand/v2"
	"sync"
)

// RatingSource assigns the placeholder 1-5 rating attached at fetch time
type RatingSource interface {
	Rate() int
}

// RandomRatings draws a uniform rating in [1, 5]
type RandomRatings struct{}

func (RandomRatings) Rate() int { return rand.IntN(5) + 1 }

// FixedRating always returns the same rating
type FixedRating int

func (f FixedRating) Rate() int { return int(f) }

// SequenceRatings replays values in order and wraps around
type SequenceRatings struct {
	mu     sync.Mutex
	values []int
	next   int
}

// Sequence returns a RatingSource replaying values
func Sequence(values ...int) *SequenceRatings {
	return &SequenceRatings{values: values}
}

func (s *SequenceRatings) Rate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 1
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
