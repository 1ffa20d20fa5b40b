//go:build unwinddebug

package unwind

import (
	"fmt"

	"github.com/joshuapare/unwindkit/unwind/chunk"
)

// debugEnabled reports whether the assertion layer is compiled in.
const debugEnabled = true

// debugState is the assertion layer's bookkeeping. Present only under the
// unwinddebug tag; the release build carries an empty struct instead.
type debugState struct {
	updateFor   Address
	haveUpdate  bool
	async       bool
	skipMissing bool
}

// BeginFrameUpdate marks the start of a frame transition identified by id
// (conventionally the frame's unextended stack pointer). Updating the
// same frame twice through the same map without an intervening Clear is a
// protocol violation and panics.
func (m *Map) BeginFrameUpdate(id Address) {
	if m.dbg.haveUpdate && m.dbg.updateFor == id {
		panic(fmt.Sprintf("unwind: map updated twice for frame %#x without a clear", id))
	}
	m.dbg.updateFor = id
	m.dbg.haveUpdate = true
}

func (m *Map) debugResetFrame() { m.dbg.haveUpdate = false }

func (m *Map) debugFailNotUpdatable() {
	panic("unwind: SetLocation on a map that does not record locations")
}

func (m *Map) debugCheckWalkCont(h *chunk.Handle) {
	if h != nil && !m.walkCont {
		panic("unwind: attaching a stack chunk to a map not walking continuations")
	}
}

// SetAsync marks the walk as running asynchronously, at an arbitrary
// point in the target's execution.
func (m *Map) SetAsync(v bool) { m.dbg.async = v }

// SetSkipMissing tells diagnostics to ignore registers with no recorded
// or derivable location instead of asserting on them.
func (m *Map) SetSkipMissing(v bool) { m.dbg.skipMissing = v }

// Async reports the async instrumentation flag.
func (m *Map) Async() bool { return m.dbg.async }

// ShouldSkipMissing reports the skip-missing instrumentation flag.
func (m *Map) ShouldSkipMissing() bool { return m.dbg.skipMissing }

// FindRegisterSpilledHere reverse-searches the table for a register whose
// recorded location equals addr. Diagnostics only.
func (m *Map) FindRegisterSpilledHere(addr Address) (RegID, bool) {
	for i := range m.loc {
		if m.valid.IsSet(i) && m.loc[i] == addr {
			return RegID(i), true
		}
	}
	return 0, false
}
