package arch

import (
	"testing"

	"github.com/joshuapare/unwindkit/unwind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAMD64_Space tests the x86-64 enumeration.
func TestAMD64_Space(t *testing.T) {
	s := AMD64()

	require.Equal(t, 32, s.RegCount(), "16 GPRs + 16 XMM")
	assert.Equal(t, "amd64", s.Name())

	assert.Equal(t, "rax", s.RegName(RAX))
	assert.Equal(t, "rbp", s.RegName(RBP))
	assert.Equal(t, "r15", s.RegName(R15))
	assert.Equal(t, "xmm0", s.RegName(XMM0))
	assert.Equal(t, "xmm15", s.RegName(XMM0+15))

	assert.Equal(t, 1, s.SlotCount(RBX))
	assert.Equal(t, 2, s.SlotCount(XMM0+3), "XMM registers expose two word lanes")
}

// TestARM64_Space tests the AArch64 enumeration.
func TestARM64_Space(t *testing.T) {
	s := ARM64()

	require.Equal(t, 64, s.RegCount(), "31 X regs + sp + 32 V regs")
	assert.Equal(t, "arm64", s.Name())

	assert.Equal(t, "x0", s.RegName(X0))
	assert.Equal(t, "fp", s.RegName(FP))
	assert.Equal(t, "lr", s.RegName(LR))
	assert.Equal(t, "sp", s.RegName(SP))
	assert.Equal(t, "v31", s.RegName(V0+31))

	assert.Equal(t, 1, s.SlotCount(SP))
	assert.Equal(t, 2, s.SlotCount(V0))
}

// TestFrameResolver_ScalarFormula tests the fp-relative save-slot layout.
func TestFrameResolver_ScalarFormula(t *testing.T) {
	res := AMD64FrameResolver()
	const fp = unwind.Address(0x10000)

	// Save area starts one word below fp; scalars occupy one slot each.
	assert.Equal(t, fp-8, res.Location(RAX, fp))
	assert.Equal(t, fp-16, res.Location(RCX, fp))
	assert.Equal(t, fp-8-8*8, res.Location(R8, fp))
}

// TestFrameResolver_CompositeLanes tests composite registers' consecutive
// lane slots and that neighbors do not overlap them.
func TestFrameResolver_CompositeLanes(t *testing.T) {
	res := AMD64FrameResolver()
	const fp = unwind.Address(0x10000)

	// xmm0 starts after the 16 scalar slots.
	xmm0 := res.Location(XMM0, fp)
	assert.Equal(t, fp-8-16*8, xmm0)
	assert.Equal(t, xmm0, res.SlotLocation(XMM0, 0, fp), "lane 0 coincides with Location")
	assert.Equal(t, xmm0-8, res.SlotLocation(XMM0, 1, fp))

	// xmm1 begins past both of xmm0's lanes.
	assert.Equal(t, xmm0-16, res.Location(XMM0+1, fp))
}

// TestFrameResolver_ARM64Base tests the AArch64 save-area base under the
// saved fp/lr pair.
func TestFrameResolver_ARM64Base(t *testing.T) {
	res := ARM64FrameResolver()
	const fp = unwind.Address(0x20000)

	assert.Equal(t, fp-16, res.Location(X0, fp))
	assert.Equal(t, fp-16-19*8, res.Location(X19, fp))
}
