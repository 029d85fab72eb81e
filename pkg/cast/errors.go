package cast

import "errors"

// Package-specific errors
var (
	// ErrInvalidCast is returned when a raw string cannot be converted to the target type
	ErrInvalidCast = errors.New("cannot cast value to target type")

	// ErrInvalidChoice is returned when a cast value is not among the allowed choices
	ErrInvalidChoice = errors.New("value not in list of valid choices")
)
