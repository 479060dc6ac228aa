package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrROMTooLarge is returned when a program image does not fit into the
	// program region of the memory.
	ErrROMTooLarge = errors.New("rom too large")

	// ErrStackOverflow is returned when a call is executed with a full stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrUnknownOpcode is returned for opcodes that do not decode to any
	// instruction. It is not fatal.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrHalted is returned by Step after a fatal error stopped the machine.
	ErrHalted = errors.New("machine halted")
)

// OpcodeError describes an error that occurred while executing an instruction.
type OpcodeError struct {
	PC     uint16 // address the opcode was fetched from
	Opcode Opcode
	Err    error
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s: opcode $%04X at $%03X", e.Err, uint16(e.Opcode), e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

// IsFatal returns whether the error returned by Step ends the program run.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrUnknownOpcode)
}
