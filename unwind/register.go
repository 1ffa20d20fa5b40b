package unwind

// Address is a resolved register location. While a walk is on a plain
// thread stack it is a machine address; while it is inside an attached
// stack chunk it is a byte offset from that chunk's stack base (see
// Map.InCont). The two modes deliberately share one type, as the walker
// threads the same value through either way; InCont is the discriminator.
type Address = uintptr

// RegID is an opaque register ordinal in [0, Space.RegCount()). The map
// never interprets it beyond indexing; identity comes from the platform's
// register space.
type RegID int

// Space describes a platform's fixed register enumeration.
type Space interface {
	// RegCount returns the number of registers in the space.
	RegCount() int

	// SlotCount returns the number of addressable lanes of a register.
	// Scalar registers report 1; composite (vector) registers report the
	// number of word-sized sub-slots.
	SlotCount(reg RegID) int

	// RegName returns the platform name of a register, for diagnostics.
	RegName(reg RegID) string
}

// Resolver derives a register's location from the current frame pointer
// when the map has no recorded entry. It is the per-architecture frame
// layout formula: callee-save slots at fixed offsets below the frame
// pointer.
type Resolver interface {
	// Location returns the derived location of a scalar register.
	Location(reg RegID, fp Address) Address

	// SlotLocation returns the derived location of one lane of a
	// composite register. Lane 0 coincides with Location.
	SlotLocation(reg RegID, slot int, fp Address) Address
}

// Thread is the walk's thread binding. The map holds it as a non-owning
// back-reference for policy queries only and never manages its lifetime.
type Thread interface {
	// RequiresFrameProcessing reports whether stack watermark barrier
	// processing applies to this thread's frames.
	RequiresFrameProcessing() bool
}
