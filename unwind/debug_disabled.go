//go:build !unwinddebug

package unwind

import "github.com/joshuapare/unwindkit/unwind/chunk"

// debugEnabled reports whether the assertion layer is compiled in.
const debugEnabled = false

// debugState is empty in release builds; the assertion layer costs nothing.
type debugState struct{}

// BeginFrameUpdate is the release no-op of the double-update guard armed
// by the unwinddebug build tag.
func (m *Map) BeginFrameUpdate(id Address) {}

func (m *Map) debugResetFrame() {}

func (m *Map) debugFailNotUpdatable() {}

func (m *Map) debugCheckWalkCont(h *chunk.Handle) {}

// SetAsync is instrumentation; a no-op in release builds.
func (m *Map) SetAsync(v bool) {}

// SetSkipMissing is instrumentation; a no-op in release builds.
func (m *Map) SetSkipMissing(v bool) {}

// Async always reports false in release builds.
func (m *Map) Async() bool { return false }

// ShouldSkipMissing always reports false in release builds.
func (m *Map) ShouldSkipMissing() bool { return false }

// FindRegisterSpilledHere is diagnostics; in release builds it reports
// not found.
func (m *Map) FindRegisterSpilledHere(addr Address) (RegID, bool) { return 0, false }
