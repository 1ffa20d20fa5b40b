package chunk

import "errors"

var (
	// ErrBadSize indicates a chunk allocation with a non-positive word count.
	ErrBadSize = errors.New("chunk: invalid stack size")

	// ErrReleased indicates a handle whose chunk has been released.
	ErrReleased = errors.New("chunk: handle released")

	// ErrNotRegistered indicates a handle unknown to the table.
	ErrNotRegistered = errors.New("chunk: handle not registered in table")

	// ErrOutOfRange indicates a frame coordinate outside the stack area.
	ErrOutOfRange = errors.New("chunk: offset out of range")
)
