package chunk

import (
	"github.com/joshuapare/unwindkit/internal/segfmt"
)

// Chunk is one relocatable stack segment: a fixed header followed by the
// stack word area. Zero-copy: all accessors read directly from c.data.
//
// Frame coordinates exposed by a Chunk are byte offsets from the start of
// the stack word area. They survive a relocation unchanged; only the
// backing block moves.
type Chunk struct {
	data    []byte // header + stack words
	release func() error
}

// newChunk wraps an allocated backing block. The stack size field must
// already describe the word area.
func newChunk(data []byte, release func() error) *Chunk {
	return &Chunk{data: data, release: release}
}

// StackSize returns the size of the stack word area in words.
func (c *Chunk) StackSize() int {
	return int(segfmt.ReadU32(c.data, segfmt.StackSizeOffset))
}

// SP returns the stack pointer as a word index into the stack area.
func (c *Chunk) SP() int { return int(segfmt.ReadU32(c.data, segfmt.SPOffset)) }

// SetSP sets the stack pointer word index.
func (c *Chunk) SetSP(sp int) { segfmt.PutU32(c.data, segfmt.SPOffset, uint32(sp)) }

// PC returns the program counter at which the top frame resumes.
func (c *Chunk) PC() uint64 { return segfmt.ReadU64(c.data, segfmt.PCOffset) }

// SetPC sets the resume program counter.
func (c *Chunk) SetPC(pc uint64) { segfmt.PutU64(c.data, segfmt.PCOffset, pc) }

// Argsize returns the outgoing-argument area size in words.
func (c *Chunk) Argsize() int { return int(segfmt.ReadU32(c.data, segfmt.ArgsizeOffset)) }

// SetArgsize sets the outgoing-argument area size in words.
func (c *Chunk) SetArgsize(n int) { segfmt.PutU32(c.data, segfmt.ArgsizeOffset, uint32(n)) }

// MaxThawSize returns the maximum stack space a thawed chunk would occupy,
// in words, not including the top frame's metadata.
func (c *Chunk) MaxThawSize() int { return int(segfmt.ReadU32(c.data, segfmt.MaxThawSizeOffset)) }

// SetMaxThawSize sets the maximum thaw size in words.
func (c *Chunk) SetMaxThawSize(n int) { segfmt.PutU32(c.data, segfmt.MaxThawSizeOffset, uint32(n)) }

// Parent returns the handle ID of the parent segment, or 0 if none.
func (c *Chunk) Parent() uint64 { return segfmt.ReadU64(c.data, segfmt.ParentOffset) }

// SetParent sets the parent handle ID.
func (c *Chunk) SetParent(id uint64) { segfmt.PutU64(c.data, segfmt.ParentOffset, id) }

// Flags returns the raw chunk flag byte.
func (c *Chunk) Flags() uint8 { return c.data[segfmt.FlagsOffset] }

// IsFlag reports whether the given flag bit is set.
func (c *Chunk) IsFlag(flag uint8) bool { return c.data[segfmt.FlagsOffset]&flag != 0 }

// SetFlag sets or clears one flag bit.
func (c *Chunk) SetFlag(flag uint8, value bool) {
	if value {
		c.data[segfmt.FlagsOffset] |= flag
	} else {
		c.data[segfmt.FlagsOffset] &^= flag
	}
}

// ClearFlags resets all chunk flags.
func (c *Chunk) ClearFlags() { c.data[segfmt.FlagsOffset] = 0 }

// HasMixedFrames reports whether the chunk holds interpreted frames.
func (c *Chunk) HasMixedFrames() bool { return c.IsFlag(segfmt.FlagHasInterpretedFrames) }

// IsGCMode reports whether the collector has taken ownership of the chunk.
func (c *Chunk) IsGCMode() bool { return c.IsFlag(segfmt.FlagGCMode) }

// HasBitmap reports whether the chunk carries an oop bitmap.
func (c *Chunk) HasBitmap() bool { return c.IsFlag(segfmt.FlagHasBitmap) }

// ---- Geometry ----
//
// All offsets are byte offsets from the start of the stack word area.

// StartOffset returns the offset of the first stack word. Always 0; kept
// for symmetry with EndOffset.
func (c *Chunk) StartOffset() int { return 0 }

// EndOffset returns the offset one past the last stack word.
func (c *Chunk) EndOffset() int { return c.StackSize() * segfmt.WordSize }

// BottomOffset returns the offset of the bottom-most frame's start:
// the end of the area minus the outgoing-argument words.
func (c *Chunk) BottomOffset() int { return c.EndOffset() - c.Argsize()*segfmt.WordSize }

// SPOffset returns the stack pointer as a byte offset.
func (c *Chunk) SPOffset() int { return c.SP() * segfmt.WordSize }

// IsEmpty reports whether the chunk holds no frames.
func (c *Chunk) IsEmpty() bool { return c.SP() >= c.StackSize() }

// Contains reports whether off lies inside the stack area.
func (c *Chunk) Contains(off int) bool { return off >= 0 && off < c.EndOffset() }

// UsableIn reports whether off lies in the live (below-sp) part of the
// stack area.
func (c *Chunk) UsableIn(off int) bool { return off >= c.SPOffset() && off < c.EndOffset() }

// ---- Word access ----
//
// These are the relative-to-concrete translation consumers apply to
// register-map results while a walk is inside a chunk.

// WordAt returns the stack word at the given byte offset.
func (c *Chunk) WordAt(off int) uint64 {
	return segfmt.ReadU64(c.data, segfmt.HeaderSize+off)
}

// SetWordAt stores a stack word at the given byte offset.
func (c *Chunk) SetWordAt(off int, w uint64) {
	segfmt.PutU64(c.data, segfmt.HeaderSize+off, w)
}

// ToOffset converts a word index into a byte offset.
func (c *Chunk) ToOffset(word int) int { return word * segfmt.WordSize }

// FromOffset converts a byte offset into a word index.
func (c *Chunk) FromOffset(off int) int { return off / segfmt.WordSize }

// CopyFromStack copies words (e.g. a frozen frame run) into the stack area
// starting at the given byte offset.
func (c *Chunk) CopyFromStack(words []uint64, off int) error {
	if off < 0 || off+len(words)*segfmt.WordSize > c.EndOffset() {
		return ErrOutOfRange
	}
	for i, w := range words {
		c.SetWordAt(off+i*segfmt.WordSize, w)
	}
	return nil
}

// CopyToStack copies n words out of the stack area starting at the given
// byte offset (e.g. when thawing frames back onto a platform stack).
func (c *Chunk) CopyToStack(off, n int) ([]uint64, error) {
	if off < 0 || n < 0 || off+n*segfmt.WordSize > c.EndOffset() {
		return nil, ErrOutOfRange
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = c.WordAt(off + i*segfmt.WordSize)
	}
	return words, nil
}
