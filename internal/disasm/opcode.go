package disasm

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode is a decoded CHIP-8 opcode.
type Opcode struct {
	op   chip8.Opcode
	word uint16
}

// Lookup decodes the opcode word. It returns false for words that do not
// decode to any instruction.
func Lookup(word uint16) (Opcode, bool) {
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if op.Info.Mask&word == op.Info.Value {
			return Opcode{op: op, word: word}, true
		}
	}
	return Opcode{}, false
}

// Word returns the opcode word.
func (o Opcode) Word() uint16 {
	return o.word
}

// Instruction returns the instruction associated with this opcode.
func (o Opcode) Instruction() Instruction {
	return Instruction{ins: o.op.Instruction}
}

// ReadsMemory returns true if this instruction reads from memory.
func (o Opcode) ReadsMemory() bool {
	if o.op.Instruction == nil {
		return false
	}
	return chip8.MemoryReadInstructions.Contains(o.op.Instruction.Name)
}

// WritesMemory returns true if this instruction writes to memory.
func (o Opcode) WritesMemory() bool {
	if o.op.Instruction == nil {
		return false
	}
	return chip8.MemoryWriteInstructions.Contains(o.op.Instruction.Name)
}

// Target returns the 12-bit address operand of jumps, calls and I register
// loads.
func (o Opcode) Target() (uint16, bool) {
	switch o.word & 0xF000 {
	case 0x1000, 0x2000, 0xA000, 0xB000:
		return o.word & 0x0FFF, true
	default:
		return 0, false
	}
}
