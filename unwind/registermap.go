package unwind

import (
	"github.com/joshuapare/unwindkit/unwind/chunk"
)

// Map is the register-location side table for one stack walk. It records,
// per register, the stack slot where the register's value was discovered
// during unwinding; registers never spilled resolve through the platform
// Resolver instead. See the package documentation for the walk protocol.
//
// A Map is a pure index: it owns none of the memory its locations point
// into, so abandoning one mid-walk is always safe.
type Map struct {
	space Space
	res   Resolver

	loc   []Address // one slot per register, meaningful iff the valid bit is set
	valid ValidSet

	includeArgumentOops bool
	thread              Thread

	chunk      *chunk.Handle
	chunkIndex int

	updateMap     bool
	processFrames bool
	walkCont      bool

	dbg debugState
}

// NewForThread creates a map for walking a live thread's stack.
//
// update controls whether frame transitions record register locations at
// all; walks that need only static frame properties (type, pc) disable it
// and skip the bookkeeping. processFrames controls whether stack
// watermark barrier processing applies during the walk. walkCont controls
// whether the walk descends into a mounted continuation's stack segment.
func NewForThread(space Space, res Resolver, t Thread, update, processFrames, walkCont bool) *Map {
	m := &Map{
		space:               space,
		res:                 res,
		loc:                 make([]Address, space.RegCount()),
		valid:               NewValidSet(space.RegCount()),
		includeArgumentOops: true,
		thread:              t,
		chunkIndex:          -1,
		updateMap:           update,
		processFrames:       processFrames,
		walkCont:            walkCont,
	}
	return m
}

// NewForContinuation creates a map for walking a suspended continuation's
// stack segment directly, with no live thread driving the walk. The
// segment handle is attached immediately, so the map starts out in
// relative-addressing mode.
func NewForContinuation(space Space, res Resolver, h *chunk.Handle, update bool) *Map {
	m := &Map{
		space:               space,
		res:                 res,
		loc:                 make([]Address, space.RegCount()),
		valid:               NewValidSet(space.RegCount()),
		includeArgumentOops: true,
		chunkIndex:          -1,
		updateMap:           update,
		processFrames:       false,
		walkCont:            true,
	}
	m.SetStackChunk(h)
	return m
}

// Clone branches the walk: the copy starts from the same recorded state
// (locations, validity, chunk linkage, flags) but mutates independently.
// Used to explore an alternate sender path without disturbing the
// original map.
func (m *Map) Clone() *Map {
	c := *m
	c.loc = make([]Address, len(m.loc))
	copy(c.loc, m.loc)
	c.valid = m.valid.clone()
	return &c
}

// Location returns where reg's value currently lives. If a frame
// transition recorded a location it is returned as-is; otherwise the
// platform resolver derives one from fp. reg out of range is a
// programming error and panics.
//
//go:inline
func (m *Map) Location(reg RegID, fp Address) Address {
	if m.valid.IsSet(int(reg)) {
		return m.loc[reg]
	}
	return m.res.Location(reg, fp)
}

// SlotLocation returns the location of one lane of a composite register.
// Lanes above 0 always defer to platform derivation: composite slots are
// never recorded individually, so the base register's validity bit says
// nothing about them. Lane 0 behaves exactly as Location.
func (m *Map) SlotLocation(reg RegID, slot int, fp Address) Address {
	if slot > 0 {
		return m.res.SlotLocation(reg, slot, fp)
	}
	return m.Location(reg, fp)
}

// TrustedLocation returns the raw table entry with no validity check.
// Hot-path escape hatch for callers that have already established
// validity; on an unset register it returns whatever the table holds.
//
//go:inline
func (m *Map) TrustedLocation(reg RegID) Address {
	return m.loc[reg]
}

// SetLocation records reg's discovered location. On a map constructed
// with updating disabled the write is rejected: ErrNotUpdatable in
// release builds, a panic under the unwinddebug tag.
func (m *Map) SetLocation(reg RegID, addr Address) error {
	if !m.updateMap {
		m.debugFailNotUpdatable()
		return ErrNotUpdatable
	}
	m.loc[reg] = addr
	m.valid.Set(int(reg))
	return nil
}

// Clear forgets every recorded location, so subsequent lookups fall back
// to platform derivation. Called when the walk reaches a frame type that
// does not preserve caller register state (an entry frame), and before
// reusing the map for an independent walk.
func (m *Map) Clear() {
	m.includeArgumentOops = true
	if m.updateMap {
		m.valid.Clear()
	}
	m.debugResetFrame()
}

// IncludeArgumentOops reports whether frame transitions must also report
// outgoing call arguments that are live object references, for calls
// whose callee frame is not materialized yet (e.g. mid dynamic-dispatch
// resolution). Pure metadata for the frame walker; the map only carries
// it.
func (m *Map) IncludeArgumentOops() bool { return m.includeArgumentOops }

// SetIncludeArgumentOops sets the argument-oop reporting flag.
func (m *Map) SetIncludeArgumentOops(v bool) { m.includeArgumentOops = v }

// Thread returns the thread the walked stack belongs to, or nil for a
// continuation-bound map.
func (m *Map) Thread() Thread { return m.thread }

// UpdateMap reports whether frame transitions record locations into this map.
func (m *Map) UpdateMap() bool { return m.updateMap }

// ProcessFrames reports whether stack watermark barrier processing
// applies during the walk.
func (m *Map) ProcessFrames() bool { return m.processFrames }

// WalkCont reports whether the walk descends into continuation stack
// segments.
func (m *Map) WalkCont() bool { return m.walkCont }

// SetWalkCont sets the continuation-walking flag.
func (m *Map) SetWalkCont(v bool) { m.walkCont = v }

// InCont reports whether the walk is currently inside a heap-resident
// stack segment. While true, every Address this map hands out is a byte
// offset relative to that segment's stack base, not a machine address.
func (m *Map) InCont() bool { return m.chunk != nil }

// StackChunk returns the attached segment handle, or nil.
func (m *Map) StackChunk() *chunk.Handle { return m.chunk }

// SetStackChunk attaches a segment handle (nil detaches when the walk
// leaves the segment) and advances the chunk index. Callers compare
// StackChunkIndex across probes to notice that the attached segment
// identity changed and previously derived coordinates need recomputing.
func (m *Map) SetStackChunk(h *chunk.Handle) {
	m.debugCheckWalkCont(h)
	m.chunk = h
	m.chunkIndex++
}

// StackChunkIndex returns the attachment counter. -1 until the first
// SetStackChunk; strictly increasing afterwards.
func (m *Map) StackChunkIndex() int { return m.chunkIndex }

// SetStackChunkIndex overrides the attachment counter. Used by walkers
// that save and restore a map's position across a sub-walk.
func (m *Map) SetStackChunkIndex(i int) { m.chunkIndex = i }
