package config

import "errors"

// Package-specific errors
var (
	// ErrUndefinedValue is returned when a key is absent from the environment and the repository and no default was supplied
	ErrUndefinedValue = errors.New("undefined configuration value")

	// ErrParsingConfig is returned when the merged environment cannot be parsed into the bound struct
	ErrParsingConfig = errors.New("failed to parse configuration values into struct")

	// ErrNilPointer is returned when a nil pointer is provided to Bind
	ErrNilPointer = errors.New("nil pointer provided to config binder")
)
