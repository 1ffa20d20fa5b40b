// Package segfmt defines the binary layout of a stack segment (chunk):
// the fixed header that precedes the stack word area, plus the
// little-endian codecs used to read and write it.
//
// All header fields live at fixed offsets from the start of the backing
// block. Frame coordinates handed out to consumers are byte offsets from
// the start of the stack word area, not from the header.
package segfmt

const (
	// WordSize is the size of one stack word in bytes.
	WordSize = 8

	// ParentOffset is the offset of the parent handle ID (uint64, 0 = none).
	ParentOffset = 0

	// StackSizeOffset is the offset of the stack size field (uint32, in words).
	StackSizeOffset = 8

	// SPOffset is the offset of the stack pointer field (uint32, word index).
	SPOffset = 12

	// ArgsizeOffset is the offset of the outgoing-argument size field (uint32, in words).
	ArgsizeOffset = 16

	// FlagsOffset is the offset of the chunk flags byte.
	FlagsOffset = 20

	// MaxThawSizeOffset is the offset of the max thaw size field (uint32, in words).
	MaxThawSizeOffset = 24

	// PCOffset is the offset of the resume program counter (uint64).
	PCOffset = 32

	// HeaderSize is the total size of the chunk header. The stack word
	// area begins immediately after, so it stays 8-byte aligned.
	HeaderSize = 40
)

// Chunk flag bits stored at FlagsOffset.
const (
	// FlagHasInterpretedFrames marks a chunk holding at least one interpreted frame.
	FlagHasInterpretedFrames = 1

	// FlagGCMode marks a chunk the collector has taken ownership of.
	// Once set, it and FlagHasInterpretedFrames must not change.
	FlagGCMode = 1 << 2

	// FlagHasBitmap marks a chunk with an oop bitmap. Valid only with FlagGCMode.
	FlagHasBitmap = 1 << 3
)
