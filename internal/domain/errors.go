package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFoodNotFound is returned when no source yields a candidate for a
	// food name. Expected and frequent; callers may queue the name for
	// later discovery.
	ErrFoodNotFound = errors.New("food not found in any nutrition source")

	// ErrSourceUnavailable marks a network/timeout failure of a single
	// source. The resolver swallows it and advances the fallback chain;
	// it never surfaces past the resolver.
	ErrSourceUnavailable = errors.New("nutrition source unavailable")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// ValidationError reports a missing or out-of-range profile field for
// target calculation. Fatal to that call, never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
