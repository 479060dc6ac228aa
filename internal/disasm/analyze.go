package disasm

import (
	"github.com/retroenv/retrogolib/set"
)

// ProgramStart is the memory address that the first program byte is
// loaded to.
const ProgramStart = 0x200

const opcodeSize = 2

// Analysis is the result of following the control flow of a program.
type Analysis struct {
	program []byte

	code  set.Set[uint16] // addresses of decoded instructions
	calls set.Set[uint16] // call destinations
	jumps set.Set[uint16] // jump destinations
	data  set.Set[uint16] // addresses loaded into the I register
}

// Analyze follows all reachable instructions of the program, starting at
// the program start. Bytes that are not reached are treated as data.
func Analyze(program []byte) *Analysis {
	a := &Analysis{
		program: program,
		code:    set.New[uint16](),
		calls:   set.New[uint16](),
		jumps:   set.New[uint16](),
		data:    set.New[uint16](),
	}

	queued := set.New[uint16]()
	toParse := []uint16{ProgramStart}
	queued.Add(ProgramStart)

	add := func(address uint16) {
		if !a.inProgram(address, opcodeSize) {
			return
		}
		if queued.Contains(address) {
			return
		}
		queued.Add(address)
		toParse = append(toParse, address)
	}

	for len(toParse) > 0 {
		address := toParse[0]
		toParse = toParse[1:]

		if !a.inProgram(address, opcodeSize) || a.overlapsCode(address) {
			continue
		}

		op, ok := Lookup(a.word(address))
		if !ok {
			continue // unknown opcodes start data
		}
		a.code.Add(address)

		next := address + opcodeSize
		instruction := op.Instruction()
		target, hasTarget := op.Target()

		switch {
		case instruction.IsJump():
			// jumps relative to V0 can not be followed statically
			if op.Word()&0xF000 == 0x1000 && a.inProgram(target, opcodeSize) {
				a.jumps.Add(target)
				add(target)
			}

		case instruction.IsCall():
			if hasTarget && a.inProgram(target, opcodeSize) {
				a.calls.Add(target)
				add(target)
			}
			add(next)

		case instruction.IsSkip():
			add(next)
			add(next + opcodeSize)

		case instruction.IsDataReference(op.Word()):
			if a.inProgram(target, 1) {
				a.data.Add(target)
			}
			add(next)

		case !instruction.IsReturn():
			add(next)
		}
	}

	a.calls = a.labelTargets(a.calls)
	a.jumps = a.labelTargets(a.jumps)
	a.data = a.labelTargets(a.data)
	return a
}

// IsCode returns whether an instruction was decoded at the address.
func (a *Analysis) IsCode(address uint16) bool {
	return a.code.Contains(address)
}

// Label returns the generated label name for the address, or an empty
// string if the address is not referenced.
func (a *Analysis) Label(address uint16) string {
	if address == ProgramStart {
		return "Start"
	}
	if a.calls.Contains(address) {
		return labelName(funcNaming, address)
	}
	if a.jumps.Contains(address) {
		return labelName(labelNaming, address)
	}
	if a.data.Contains(address) && !a.IsCode(address) {
		return labelName(dataNaming, address)
	}
	return ""
}

// CodeSize returns the number of program bytes that were decoded as
// instructions.
func (a *Analysis) CodeSize() int {
	return len(a.code) * opcodeSize
}

func (a *Analysis) word(address uint16) uint16 {
	offset := int(address) - ProgramStart
	return uint16(a.program[offset])<<8 | uint16(a.program[offset+1])
}

func (a *Analysis) inProgram(address uint16, size int) bool {
	offset := int(address) - ProgramStart
	return offset >= 0 && offset+size <= len(a.program)
}

// labelTargets returns the targets that a label can be placed at. A target
// that points into the second byte of a decoded instruction keeps its plain
// address as operand.
func (a *Analysis) labelTargets(targets set.Set[uint16]) set.Set[uint16] {
	result := set.New[uint16]()
	for address := range targets {
		if !a.IsCode(address - 1) {
			result.Add(address)
		}
	}
	return result
}

// overlapsCode returns whether an instruction was already decoded at the
// address or at one of the neighbouring bytes that it would overlap with.
func (a *Analysis) overlapsCode(address uint16) bool {
	return a.IsCode(address) || a.IsCode(address-1) || a.IsCode(address+1)
}
