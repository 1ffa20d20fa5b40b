package unwind

import "errors"

var (
	// ErrNotUpdatable indicates a SetLocation call on a map constructed
	// with updating disabled.
	ErrNotUpdatable = errors.New("unwind: map does not record locations")

	// ErrSpaceMismatch indicates a Verify call between maps built over
	// different register spaces.
	ErrSpaceMismatch = errors.New("unwind: register spaces differ")
)
