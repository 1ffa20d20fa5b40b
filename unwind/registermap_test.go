package unwind

import (
	"fmt"
	"testing"

	"github.com/joshuapare/unwindkit/unwind/chunk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSpace is a synthetic register space: n scalar registers, with the
// last one composite (two lanes) so slot dispatch can be exercised.
type testSpace struct{ n int }

func (s testSpace) RegCount() int { return s.n }

func (s testSpace) SlotCount(reg RegID) int {
	if int(reg) == s.n-1 {
		return 2
	}
	return 1
}

func (s testSpace) RegName(reg RegID) string { return fmt.Sprintf("r%d", reg) }

// offsetResolver is a deterministic platform fallback: each register's
// slot sits at a fixed offset from fp, lanes 1KiB apart so they are
// unmistakable in assertions.
type offsetResolver struct{}

func (offsetResolver) Location(reg RegID, fp Address) Address {
	return fp + Address(reg)*8
}

func (offsetResolver) SlotLocation(reg RegID, slot int, fp Address) Address {
	return fp + Address(reg)*8 + Address(slot)*1024
}

// stubThread is a minimal walk policy binding.
type stubThread struct{ watermark bool }

func (t *stubThread) RequiresFrameProcessing() bool { return t.watermark }

func newTestMap(n int, update bool) *Map {
	return NewForThread(testSpace{n: n}, offsetResolver{}, &stubThread{}, update, true, false)
}

// TestMap_FallbackBeforeSet tests that unrecorded registers resolve
// through the platform formula, never a stale table entry.
func TestMap_FallbackBeforeSet(t *testing.T) {
	m := newTestMap(8, true)

	const fp = Address(0x7000)
	for reg := RegID(0); reg < 8; reg++ {
		assert.Equal(t, fp+Address(reg)*8, m.Location(reg, fp),
			"reg %d should fall back to platform derivation", reg)
	}
}

// TestMap_SetThenLookup tests that a recorded location wins over the
// fallback, independent of the frame pointer passed at lookup.
func TestMap_SetThenLookup(t *testing.T) {
	m := newTestMap(8, true)

	require.NoError(t, m.SetLocation(3, 0xCAFE))

	assert.Equal(t, Address(0xCAFE), m.Location(3, 0x1000))
	assert.Equal(t, Address(0xCAFE), m.Location(3, 0x9999), "recorded location must not depend on fp")
	assert.Equal(t, Address(0xCAFE), m.TrustedLocation(3))

	// Neighbors stay on the fallback path.
	assert.Equal(t, Address(0x1000+2*8), m.Location(2, 0x1000))
}

// TestMap_ClearRestoresFallback tests the entry-frame boundary behavior.
func TestMap_ClearRestoresFallback(t *testing.T) {
	m := newTestMap(8, true)

	require.NoError(t, m.SetLocation(2, 0x1000))
	require.NoError(t, m.SetLocation(5, 0x2000))

	m.Clear()

	const fp = Address(0x4000)
	assert.Equal(t, fp+2*8, m.Location(2, fp), "cleared register should fall back")
	assert.Equal(t, fp+5*8, m.Location(5, fp), "cleared register should fall back")
}

// TestMap_SetLocationRejectedWhenNotUpdatable tests the read-only
// contract: the write must not land, and lookups keep the fallback value.
func TestMap_SetLocationRejectedWhenNotUpdatable(t *testing.T) {
	m := newTestMap(8, false)

	const fp = Address(0x5000)
	if debugEnabled {
		require.Panics(t, func() { _ = m.SetLocation(1, 0xBEEF) })
	} else {
		require.ErrorIs(t, m.SetLocation(1, 0xBEEF), ErrNotUpdatable)
	}

	assert.Equal(t, fp+1*8, m.Location(1, fp), "rejected write must leave the fallback in place")
}

// TestMap_ScenarioFourRegisters replays the canonical four-register walk:
// record one register, check it and an unrecorded peer, then clear.
func TestMap_ScenarioFourRegisters(t *testing.T) {
	m := newTestMap(4, true)

	require.NoError(t, m.SetLocation(2, 0x1000))

	assert.Equal(t, Address(0x1000), m.Location(2, 0x100))
	assert.Equal(t, Address(0x1000), m.Location(2, 0xF00), "any fp")

	const fp = Address(0x200)
	assert.Equal(t, fp+0*8, m.Location(0, fp))

	m.Clear()
	assert.Equal(t, fp+2*8, m.Location(2, fp), "after clear, reg 2 falls back too")
}

// TestMap_SlotLocationBypassesValidity tests that composite lanes above 0
// always use platform derivation, even when the base register is recorded.
func TestMap_SlotLocationBypassesValidity(t *testing.T) {
	m := newTestMap(8, true)
	base := RegID(7) // the composite register of testSpace

	require.NoError(t, m.SetLocation(base, 0xAAAA))

	const fp = Address(0x3000)
	assert.Equal(t, Address(0xAAAA), m.SlotLocation(base, 0, fp), "lane 0 behaves as Location")
	assert.Equal(t, fp+Address(base)*8+1024, m.SlotLocation(base, 1, fp),
		"lane 1 must come from the platform multi-slot formula, not the table")
}

// TestMap_CloneIndependent tests walk branching: the clone starts from
// the same state and then diverges without affecting the original.
func TestMap_CloneIndependent(t *testing.T) {
	m := newTestMap(8, true)
	require.NoError(t, m.SetLocation(4, 0x1111))

	b := m.Clone()
	assert.Equal(t, Address(0x1111), b.TrustedLocation(4))

	require.NoError(t, b.SetLocation(4, 0x2222))
	require.NoError(t, b.SetLocation(6, 0x3333))

	assert.Equal(t, Address(0x1111), m.TrustedLocation(4), "original keeps its recording")
	assert.False(t, m.valid.IsSet(6), "original must not see the branch's new recording")

	b.Clear()
	assert.True(t, m.valid.IsSet(4), "clearing the branch must not clear the original")
}

// TestMap_VerifyAgreement tests cross-validation of two independent walks.
func TestMap_VerifyAgreement(t *testing.T) {
	a := newTestMap(8, true)
	b := newTestMap(8, true)

	for _, m := range []*Map{a, b} {
		require.NoError(t, m.SetLocation(1, 0x10))
		require.NoError(t, m.SetLocation(5, 0x50))
	}

	require.NoError(t, a.Verify(b))
	require.NoError(t, b.Verify(a))

	// Diverge one register.
	require.NoError(t, b.SetLocation(5, 0x51))
	err := a.Verify(b)
	require.Error(t, err)

	var mm *MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, RegID(5), mm.Reg)
	assert.Equal(t, "r5", mm.Name)
}

// TestMap_VerifySpaceMismatch tests that differently sized maps are
// rejected up front.
func TestMap_VerifySpaceMismatch(t *testing.T) {
	a := newTestMap(8, true)
	b := newTestMap(4, true)

	require.ErrorIs(t, a.Verify(b), ErrSpaceMismatch)
}

// TestMap_IncludeArgumentOops tests the flag's default and its reset on Clear.
func TestMap_IncludeArgumentOops(t *testing.T) {
	m := newTestMap(4, true)

	assert.True(t, m.IncludeArgumentOops(), "fresh map includes argument oops")

	m.SetIncludeArgumentOops(false)
	assert.False(t, m.IncludeArgumentOops())

	m.Clear()
	assert.True(t, m.IncludeArgumentOops(), "Clear re-arms argument oop reporting")
}

// TestMap_Configuration tests the construction-mode accessors.
func TestMap_Configuration(t *testing.T) {
	th := &stubThread{watermark: true}
	m := NewForThread(testSpace{n: 4}, offsetResolver{}, th, false, true, true)

	assert.False(t, m.UpdateMap())
	assert.True(t, m.ProcessFrames())
	assert.True(t, m.WalkCont())
	assert.Same(t, th, m.Thread().(*stubThread))
	assert.True(t, m.Thread().RequiresFrameProcessing())

	m.SetWalkCont(false)
	assert.False(t, m.WalkCont())
}

// TestMap_ChunkLinkage tests attach/detach and the strictly increasing
// chunk index.
func TestMap_ChunkLinkage(t *testing.T) {
	table := chunk.NewHandleTable()
	h1, err := table.New(32)
	require.NoError(t, err)
	h2, err := table.New(32)
	require.NoError(t, err)

	m := NewForThread(testSpace{n: 4}, offsetResolver{}, &stubThread{}, true, true, true)

	require.False(t, m.InCont(), "fresh thread-bound map has no chunk")
	require.Equal(t, -1, m.StackChunkIndex())

	m.SetStackChunk(h1)
	assert.True(t, m.InCont())
	assert.Same(t, h1, m.StackChunk())
	assert.Equal(t, 0, m.StackChunkIndex())

	m.SetStackChunk(h2)
	assert.Equal(t, 1, m.StackChunkIndex(), "index strictly increases per attach")

	m.SetStackChunk(nil)
	assert.False(t, m.InCont(), "nil detaches when the walk leaves the segment")
	assert.Equal(t, 2, m.StackChunkIndex())

	m.SetStackChunkIndex(7)
	assert.Equal(t, 7, m.StackChunkIndex())
}

// TestMap_NewForContinuation tests the suspended-continuation entry point.
func TestMap_NewForContinuation(t *testing.T) {
	table := chunk.NewHandleTable()
	h, err := table.New(64)
	require.NoError(t, err)

	m := NewForContinuation(testSpace{n: 4}, offsetResolver{}, h, true)

	assert.True(t, m.InCont())
	assert.Equal(t, 0, m.StackChunkIndex())
	assert.True(t, m.WalkCont())
	assert.False(t, m.ProcessFrames())
	assert.Nil(t, m.Thread(), "no live thread drives a continuation walk")
}

// TestMap_DebugInstrumentation tests that the async/skip-missing flags
// and the spilled-register search behave per build flavor.
func TestMap_DebugInstrumentation(t *testing.T) {
	m := newTestMap(8, true)

	m.SetAsync(true)
	m.SetSkipMissing(true)
	require.NoError(t, m.SetLocation(2, 0xD00D))

	if debugEnabled {
		assert.True(t, m.Async())
		assert.True(t, m.ShouldSkipMissing())

		reg, ok := m.FindRegisterSpilledHere(0xD00D)
		require.True(t, ok)
		assert.Equal(t, RegID(2), reg)

		_, ok = m.FindRegisterSpilledHere(0xBAD)
		assert.False(t, ok)
	} else {
		assert.False(t, m.Async(), "instrumentation compiles out in release builds")
		assert.False(t, m.ShouldSkipMissing())

		_, ok := m.FindRegisterSpilledHere(0xD00D)
		assert.False(t, ok)
	}
}

// TestMap_BeginFrameUpdate tests the single-writer guard for one frame.
func TestMap_BeginFrameUpdate(t *testing.T) {
	m := newTestMap(8, true)

	m.BeginFrameUpdate(0xF0)
	if debugEnabled {
		require.Panics(t, func() { m.BeginFrameUpdate(0xF0) },
			"re-entering the same frame transition must trip the guard")

		// A different frame is fine, and Clear re-arms the same one.
		m.BeginFrameUpdate(0xF8)
		m.Clear()
		require.NotPanics(t, func() { m.BeginFrameUpdate(0xF8) })
	} else {
		require.NotPanics(t, func() { m.BeginFrameUpdate(0xF0) })
	}
}
