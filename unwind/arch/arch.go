// Package arch provides concrete register spaces and frame-pointer
// fallback resolvers for the architectures the runtime unwinds on.
//
// A Space is the fixed register enumeration a register map is sized for.
// A FrameResolver is the platform formula the map falls back to for
// registers it has no recorded location for: callee-save slots at fixed
// offsets below the frame pointer, one word per scalar register and one
// word per lane of a composite register.
package arch

import (
	"github.com/joshuapare/unwindkit/unwind"
)

// wordBytes is the size of one save slot in bytes.
const wordBytes = 8

// RegDef describes one register of a space.
type RegDef struct {
	// Name is the platform name, e.g. "rbp" or "x29".
	Name string

	// Slots is the number of word-sized lanes. 1 for scalar registers.
	Slots int
}

// Space is a fixed register enumeration for one architecture. It
// implements unwind.Space.
type Space struct {
	name string
	regs []RegDef
}

// NewSpace builds a space from an ordered register table. The table's
// order defines the register ordinals.
func NewSpace(name string, regs []RegDef) *Space {
	return &Space{name: name, regs: regs}
}

// Name returns the architecture name.
func (s *Space) Name() string { return s.name }

// RegCount returns the number of registers in the space.
func (s *Space) RegCount() int { return len(s.regs) }

// SlotCount returns the number of word lanes of a register.
func (s *Space) SlotCount(reg unwind.RegID) int { return s.regs[reg].Slots }

// RegName returns the platform name of a register.
func (s *Space) RegName(reg unwind.RegID) string { return s.regs[reg].Name }

// FrameResolver derives register locations from the current frame
// pointer. Register ordinal order matches save-area order: each
// register's lanes occupy consecutive slots below the frame pointer,
// starting base bytes down. It implements unwind.Resolver.
type FrameResolver struct {
	// slotOffset[i] is the byte distance from fp down to register i's
	// lane-0 save slot. Precomputed so lookups are one subtraction.
	slotOffset []uintptr
}

// NewFrameResolver builds the resolver for a space. base is the byte
// offset from the frame pointer down to the first save slot.
func NewFrameResolver(s *Space, base int) *FrameResolver {
	offsets := make([]uintptr, len(s.regs))
	off := uintptr(base)
	for i, r := range s.regs {
		offsets[i] = off
		off += uintptr(r.Slots) * wordBytes
	}
	return &FrameResolver{slotOffset: offsets}
}

// Location returns the derived save-slot address of a scalar register.
//
//go:inline
func (r *FrameResolver) Location(reg unwind.RegID, fp unwind.Address) unwind.Address {
	return fp - r.slotOffset[reg]
}

// SlotLocation returns the derived save-slot address of one lane of a
// composite register. Lane 0 coincides with Location.
func (r *FrameResolver) SlotLocation(reg unwind.RegID, slot int, fp unwind.Address) unwind.Address {
	return fp - r.slotOffset[reg] - uintptr(slot)*wordBytes
}
