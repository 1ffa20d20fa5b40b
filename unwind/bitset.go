package unwind

import "math/bits"

const (
	// bitsPerWord is the number of validity bits packed into one word.
	bitsPerWord = 64
)

// ValidSet is a packed bit-per-register vector recording which registers
// have an authoritative recorded location. It replaces a per-register
// bool (or a map) with one bit, keeping the map's hot lookups inside a
// couple of cache lines.
type ValidSet struct {
	words []uint64
}

// NewValidSet creates a cleared set sized for n registers.
func NewValidSet(n int) ValidSet {
	return ValidSet{words: make([]uint64, (n+bitsPerWord-1)/bitsPerWord)}
}

// Set marks register i as having a recorded location.
//
//go:inline
func (s ValidSet) Set(i int) {
	s.words[i/bitsPerWord] |= 1 << (i % bitsPerWord)
}

// IsSet reports whether register i has a recorded location.
//
//go:inline
func (s ValidSet) IsSet(i int) bool {
	return s.words[i/bitsPerWord]&(1<<(i%bitsPerWord)) != 0
}

// Clear resets every bit; all registers fall back to platform derivation.
func (s ValidSet) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Count returns the number of recorded registers.
func (s ValidSet) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// clone returns an independent copy with identical contents.
func (s ValidSet) clone() ValidSet {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return ValidSet{words: words}
}
