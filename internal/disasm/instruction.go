package disasm

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Instruction wraps a CHIP-8 instruction definition and classifies its
// effect on the control flow.
type Instruction struct {
	ins *chip8.Instruction
}

// Name returns the instruction name.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.ins == chip8.CallInst
}

// IsJump returns true if the instruction is a jump instruction.
func (i Instruction) IsJump() bool {
	return i.ins == chip8.JpInst
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.ins == chip8.RetInst
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// IsDataReference returns true if the instruction loads an address into
// the I register.
func (i Instruction) IsDataReference(word uint16) bool {
	return i.ins == chip8.LdInst && word&0xF000 == 0xA000
}
