//go:build unix

// Package stackmem allocates page-aligned backing memory for stack
// segments. On unix it uses anonymous mappings so segment storage stays
// off the Go heap; elsewhere it falls back to ordinary slices.
package stackmem

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Alloc returns a zeroed block of at least n bytes, rounded up to the page
// size, along with a release function. The block is an anonymous private
// mapping; release unmaps it.
func Alloc(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("stackmem: invalid allocation size %d", n)
	}
	page := os.Getpagesize()
	size := (n + page - 1) / page * page

	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("stackmem: mmap %d bytes: %w", size, err)
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-release as no-op for callers.
			return nil
		}
		return err
	}
	return data[:n], release, nil
}
