package vm

import (
	"fmt"
	"math/rand/v2"
)

// Registers contains the register file of the machine.
type Registers struct {
	V  [RegisterCount]byte // general purpose registers V0-VF
	I  uint16              // address register, always within 12 bits
	PC uint16              // program counter
}

// Machine is an emulated CHIP-8 virtual machine.
type Machine struct {
	memory  Memory
	regs    Registers
	stack   Stack
	timers  Timers
	display Framebuffer

	keypad Keypad
	random func() byte

	program []byte // loaded program image, restored by Reset
	opcode  Opcode // last fetched opcode
	cycles  uint64 // number of executed instructions

	drawFlag bool // framebuffer changed since the flag was reset
	waiting  bool // Fx0A is waiting for a key press
	halted   bool // a fatal error occurred
}

// Option configures a Machine.
type Option func(*Machine)

// WithKeypad attaches the host keypad to the machine.
func WithKeypad(keypad Keypad) Option {
	return func(m *Machine) {
		m.keypad = keypad
	}
}

// WithRandom sets the source of the random bytes used by the Cxkk instruction.
func WithRandom(random func() byte) Option {
	return func(m *Machine) {
		m.random = random
	}
}

// WithSeed makes the random bytes used by the Cxkk instruction reproducible.
func WithSeed(seed uint64) Option {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	return WithRandom(func() byte {
		return byte(rng.UintN(256))
	})
}

// New returns a new machine with the font loaded and all registers, the
// stack and the timers zeroed.
func New(options ...Option) *Machine {
	m := &Machine{
		keypad: releasedKeypad{},
		random: func() byte {
			return byte(rand.UintN(256))
		},
	}
	for _, option := range options {
		option(m)
	}
	m.Reset()
	return m
}

// LoadROM copies the program image into memory starting at ProgramStart and
// resets the machine. The memory is left untouched if the image does not fit.
func (m *Machine) LoadROM(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes", ErrROMTooLarge, len(program), MaxProgramSize)
	}

	m.program = make([]byte, len(program))
	copy(m.program, program)
	m.Reset()
	return nil
}

// Reset restores the power-on state while keeping the loaded program.
func (m *Machine) Reset() {
	m.memory = Memory{}
	m.memory.load(FontBase, font[:])
	m.memory.load(ProgramStart, m.program)

	m.regs = Registers{PC: ProgramStart}
	m.stack = Stack{}
	m.timers = Timers{}
	m.display.Clear()

	m.opcode = 0
	m.cycles = 0
	m.drawFlag = true
	m.waiting = false
	m.halted = false
}

// TickTimers decrements the delay and sound timers by one if they are not
// zero yet. It is the only operation that decrements the timers.
func (m *Machine) TickTimers() {
	m.timers.tick()
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() Registers {
	return m.regs
}

// Timers returns the current timer values.
func (m *Machine) Timers() Timers {
	return m.timers
}

// SoundActive returns whether the host should emit a tone.
func (m *Machine) SoundActive() bool {
	return m.timers.Sound > 0
}

// CallStack returns the return addresses on the call stack, the oldest first.
func (m *Machine) CallStack() []uint16 {
	return m.stack.Entries()
}

// Framebuffer returns a copy of the framebuffer reflecting all clears and
// draws of the executed instructions.
func (m *Machine) Framebuffer() Framebuffer {
	return m.display
}

// DrawFlag returns whether the framebuffer changed since the last call to
// ResetDrawFlag.
func (m *Machine) DrawFlag() bool {
	return m.drawFlag
}

// ResetDrawFlag marks the framebuffer as presented.
func (m *Machine) ResetDrawFlag() {
	m.drawFlag = false
}

// ReadMemory returns the memory byte at the given address.
func (m *Machine) ReadMemory(address uint16) byte {
	return m.memory.Read(address)
}

// PeekOpcode returns the opcode that the next Step will execute.
func (m *Machine) PeekOpcode() Opcode {
	return m.memory.ReadOpcode(m.regs.PC)
}

// Opcode returns the most recently fetched opcode.
func (m *Machine) Opcode() Opcode {
	return m.opcode
}

// Cycles returns the number of executed instructions since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

// Waiting returns whether the machine is suspended in Fx0A waiting for a key press.
func (m *Machine) Waiting() bool {
	return m.waiting
}

// Halted returns whether a fatal error stopped the machine.
func (m *Machine) Halted() bool {
	return m.halted
}
