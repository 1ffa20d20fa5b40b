//go:build unix

package stackmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlloc tests mapping, zeroing, and release.
func TestAlloc(t *testing.T) {
	data, release, err := Alloc(1000)
	require.NoError(t, err)
	require.Len(t, data, 1000)

	for i, b := range data {
		require.Zero(t, b, "byte %d of a fresh mapping should be zero", i)
	}

	// The block is writable.
	data[0] = 0xFF
	data[999] = 0xEE
	assert.Equal(t, byte(0xFF), data[0])

	require.NoError(t, release())
	assert.NoError(t, release(), "double release is a no-op")
}

// TestAlloc_PageMultiple tests an exact page-sized request.
func TestAlloc_PageMultiple(t *testing.T) {
	data, release, err := Alloc(4096)
	require.NoError(t, err)
	defer func() { _ = release() }()

	assert.Len(t, data, 4096)
}

// TestAlloc_InvalidSize tests parameter validation.
func TestAlloc_InvalidSize(t *testing.T) {
	_, _, err := Alloc(0)
	assert.Error(t, err)
	_, _, err = Alloc(-1)
	assert.Error(t, err)
}
