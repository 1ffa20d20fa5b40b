package arch

import (
	"fmt"

	"github.com/joshuapare/unwindkit/unwind"
)

// x86-64 register ordinals. General-purpose registers first, in encoding
// order, then the XMM registers with two word lanes each.
const (
	RAX unwind.RegID = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15

	// XMM0 is the first vector register; XMM0+n is xmmN.
	XMM0
)

// amd64GPRNames lists the general-purpose registers in encoding order.
var amd64GPRNames = []string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

const (
	amd64XMMCount = 16
	amd64XMMSlots = 2
)

// AMD64 returns the x86-64 register space: 16 general-purpose registers
// followed by 16 XMM registers addressed as two word lanes each.
func AMD64() *Space {
	regs := make([]RegDef, 0, len(amd64GPRNames)+amd64XMMCount)
	for _, name := range amd64GPRNames {
		regs = append(regs, RegDef{Name: name, Slots: 1})
	}
	for i := 0; i < amd64XMMCount; i++ {
		regs = append(regs, RegDef{Name: fmt.Sprintf("xmm%d", i), Slots: amd64XMMSlots})
	}
	return NewSpace("amd64", regs)
}

// AMD64FrameResolver returns the fallback resolver for the x86-64 frame
// layout: the save area begins one word below the frame pointer.
func AMD64FrameResolver() *FrameResolver {
	return NewFrameResolver(AMD64(), wordBytes)
}
