// Package chunk implements relocatable heap-resident stack segments for
// decoupled (virtual-thread-style) execution contexts.
//
// # Overview
//
// A Chunk stores a contiguous run of frames in a single fixed-layout byte
// block: a small header (stack pointer, resume pc, argument size, flags)
// followed by the stack word area. Because the collector may move a chunk
// at any time, frame coordinates inside a chunk are byte offsets from the
// stack base, never machine addresses. A register map attached to a chunk
// hands out those relative coordinates; consumers translate them through
// WordAt/SetWordAt.
//
// # Handles
//
// Walkers never hold a *Chunk directly across a suspension point. They
// hold a Handle registered in a HandleTable, which acts as the root set
// the collector updates when it relocates a segment. The only externally
// visible effect of a relocation is the handle's generation counter
// advancing; a walker that cached derived coordinates compares generations
// before trusting them again.
//
// # Layout
//
//	[header - 40 bytes] [stack words ...]
//
// Word 0 of the stack area is the oldest (bottom) word; the stack grows
// toward lower word indices, so an empty chunk has sp == stack size.
//
// # Thread Safety
//
// Chunks and handle tables carry no internal synchronization. One walker
// owns a chunk's traversal at a time; relocation is assumed to happen at
// points where the walker is suspended.
package chunk
