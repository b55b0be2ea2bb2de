package willow

import "errors"

// Common errors used throughout the willow package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrNoInputFiles indicates no source files matched the input patterns.
	ErrNoInputFiles = errors.New("no input files found")
)
