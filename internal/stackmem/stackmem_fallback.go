//go:build !unix

package stackmem

import "fmt"

// Alloc returns a zeroed block of n bytes from the Go heap. Used on
// platforms without anonymous mmap support; release is a no-op.
func Alloc(n int) ([]byte, func() error, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("stackmem: invalid allocation size %d", n)
	}
	return make([]byte, n), func() error { return nil }, nil
}
