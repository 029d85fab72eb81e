package repository

import "errors"

// Package-specific errors
var (
	// ErrFileNotFound is returned when an explicitly given settings file does not exist
	ErrFileNotFound = errors.New("settings file not found")

	// ErrInvalidFile is returned when a settings file exists but cannot be parsed
	ErrInvalidFile = errors.New("settings file cannot be parsed")

	// ErrUnknownEncoding is returned when the configured text encoding name is not recognized
	ErrUnknownEncoding = errors.New("unknown text encoding")

	// ErrInterpolation is returned when an INI value references an undefined key or uses malformed syntax
	ErrInterpolation = errors.New("value interpolation failed")
)
