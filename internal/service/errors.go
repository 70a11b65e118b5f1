package service

import "errors"

var (
	// ErrNotFound covers both absence and ownership mismatch, so callers
	// cannot probe which identifiers exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed or missing required input, including an
	// unresolved identity where one is required.
	ErrValidation = errors.New("validation failed")
)
