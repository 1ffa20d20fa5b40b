package arch

import (
	"fmt"

	"github.com/joshuapare/unwindkit/unwind"
)

// AArch64 register ordinals: x0-x30, the stack pointer, then the V
// registers with two word lanes each.
const (
	X0 unwind.RegID = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	FP // x29
	LR // x30
	SP

	// V0 is the first vector register; V0+n is vN.
	V0
)

const (
	arm64XCount = 31
	arm64VCount = 32
	arm64VSlots = 2
)

// ARM64 returns the AArch64 register space: x0-x30, sp, then 32 V
// registers addressed as two word lanes each.
func ARM64() *Space {
	regs := make([]RegDef, 0, arm64XCount+1+arm64VCount)
	for i := 0; i < arm64XCount; i++ {
		name := fmt.Sprintf("x%d", i)
		switch i {
		case 29:
			name = "fp"
		case 30:
			name = "lr"
		}
		regs = append(regs, RegDef{Name: name, Slots: 1})
	}
	regs = append(regs, RegDef{Name: "sp", Slots: 1})
	for i := 0; i < arm64VCount; i++ {
		regs = append(regs, RegDef{Name: fmt.Sprintf("v%d", i), Slots: arm64VSlots})
	}
	return NewSpace("arm64", regs)
}

// ARM64FrameResolver returns the fallback resolver for the AArch64 frame
// layout: the save area begins two words below the frame pointer, under
// the saved fp/lr pair.
func ARM64FrameResolver() *FrameResolver {
	return NewFrameResolver(ARM64(), 2*wordBytes)
}
