package mealdb

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned by a lookup that found no meal
var ErrEmptyResult = errors.New("mealdb: empty result")

// NetworkError is a failed, timed out or non-2xx request
type NetworkError struct {
	Endpoint string
	Status   int // 0 when no response was received
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("mealdb %s: unexpected status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("mealdb %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError is a response body with an unexpected shape
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("mealdb %s: malformed response: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a NetworkError
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsMalformed reports whether err is a MalformedResponseError
func IsMalformed(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
