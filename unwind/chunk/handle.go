package chunk

import (
	"github.com/joshuapare/unwindkit/internal/debuglog"
	"github.com/joshuapare/unwindkit/internal/segfmt"
	"github.com/joshuapare/unwindkit/internal/stackmem"
)

// Handle is a root-registered reference to a Chunk. The collector
// retargets a handle when it relocates the segment; the walker observes
// that only through the generation counter, never as silent mutation of
// coordinates it already computed.
type Handle struct {
	table  *HandleTable
	target *Chunk
	id     uint64
	gen    uint64
}

// ID returns the table-assigned identity of the handle. Stable across
// relocations; used as the parent reference in chunk headers.
func (h *Handle) ID() uint64 { return h.id }

// Chunk returns the current target segment, or nil after Release.
func (h *Handle) Chunk() *Chunk { return h.target }

// Generation returns the relocation generation. It advances every time
// the table moves the segment; callers re-validate cached derived
// coordinates whenever it changed since they were computed.
func (h *Handle) Generation() uint64 { return h.gen }

// HandleTable is the root set for chunk handles. It owns the backing
// memory of every registered segment.
type HandleTable struct {
	handles map[uint64]*Handle
	nextID  uint64
}

// NewHandleTable creates an empty root table.
func NewHandleTable() *HandleTable {
	return &HandleTable{handles: make(map[uint64]*Handle), nextID: 1}
}

// Len returns the number of live handles.
func (t *HandleTable) Len() int { return len(t.handles) }

// New allocates a segment with the given stack size in words and returns
// a registered handle to it.
func (t *HandleTable) New(words int) (*Handle, error) {
	if words <= 0 {
		return nil, ErrBadSize
	}
	c, err := t.alloc(words)
	if err != nil {
		return nil, err
	}
	// An empty chunk has sp == stack size.
	c.SetSP(words)

	h := &Handle{table: t, target: c, id: t.nextID}
	t.nextID++
	t.handles[h.id] = h
	return h, nil
}

// Relocate moves a handle's segment to a fresh backing block, as the
// collector does when compacting heap-resident stacks. Contents and
// coordinates are preserved; the handle's generation advances.
func (t *HandleTable) Relocate(h *Handle) error {
	if h.target == nil {
		return ErrReleased
	}
	if t.handles[h.id] != h {
		return ErrNotRegistered
	}

	old := h.target
	dst, err := t.alloc(old.StackSize())
	if err != nil {
		return err
	}
	copy(dst.data, old.data)

	h.target = dst
	h.gen++
	if err := old.free(); err != nil {
		return err
	}

	debuglog.Logger().Debug("relocated stack chunk", "handle", h.id, "gen", h.gen)
	return nil
}

// Release unregisters a handle and frees its backing memory. The handle's
// Chunk becomes nil; any map still holding it must not probe it again.
func (t *HandleTable) Release(h *Handle) error {
	if h.target == nil {
		return ErrReleased
	}
	if t.handles[h.id] != h {
		return ErrNotRegistered
	}
	delete(t.handles, h.id)
	c := h.target
	h.target = nil
	return c.free()
}

func (t *HandleTable) alloc(words int) (*Chunk, error) {
	data, release, err := stackmem.Alloc(segfmt.HeaderSize + words*segfmt.WordSize)
	if err != nil {
		return nil, err
	}
	c := newChunk(data, release)
	segfmt.PutU32(c.data, segfmt.StackSizeOffset, uint32(words))
	return c, nil
}

func (c *Chunk) free() error {
	if c.release == nil {
		return nil
	}
	rel := c.release
	c.release = nil
	c.data = nil
	return rel()
}
