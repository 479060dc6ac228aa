package vm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

// newTestMachine returns a machine with the opcodes loaded as program and a
// random source that always returns 0xFF.
func newTestMachine(t *testing.T, opcodes ...uint16) *Machine {
	t.Helper()

	m := New(WithRandom(func() byte { return 0xFF }))
	assert.NoError(t, m.LoadROM(encode(opcodes...)))
	return m
}

func encode(opcodes ...uint16) []byte {
	program := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		program = append(program, byte(op>>8), byte(op))
	}
	return program
}

// steps executes n instructions and fails the test on any error.
func steps(t *testing.T, m *Machine, n int) {
	t.Helper()

	for range n {
		assert.NoError(t, m.Step())
	}
}

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, uint16(ProgramStart), m.regs.PC)
	assert.Equal(t, uint16(0), m.regs.I)
	assert.Equal(t, 0, m.stack.Depth())
	assert.Equal(t, Timers{}, m.timers)
	assert.Equal(t, 0, m.display.Lit())

	if diff := cmp.Diff(font[:], m.memory[FontBase:FontBase+len(font)]); diff != "" {
		t.Errorf("font: (-want, +got)\n%s", diff)
	}
}

func TestMachine_LoadROM(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"empty", 0, nil},
		{"small", 4, nil},
		{"maximum size", MaxProgramSize, nil},
		{"one byte too large", MaxProgramSize + 1, ErrROMTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i) | 1
			}

			err := m.LoadROM(program)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, byte(0), m.ReadMemory(ProgramStart))
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(program, m.memory[ProgramStart:ProgramStart+tt.size]); diff != "" {
				t.Errorf("program: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestMachine_Reset(t *testing.T) {
	m := newTestMachine(t,
		0x6A42, // LD VA, $42
		0xA300, // LD I, $300
		0x2206, // CALL $206
		0x00E0, // CLS
	)
	steps(t, m, 3)
	m.TickTimers()

	m.Reset()

	assert.Equal(t, Registers{PC: ProgramStart}, m.Registers())
	assert.Equal(t, 0, m.stack.Depth())
	assert.Equal(t, uint64(0), m.Cycles())
	assert.Equal(t, byte(0x6A), m.ReadMemory(ProgramStart))
	assert.False(t, m.Halted())
}

func TestMachine_TickTimers(t *testing.T) {
	const n = 10

	m := newTestMachine(t,
		0x600A, // LD V0, 10
		0xF015, // LD DT, V0
		0xF018, // LD ST, V0
	)
	steps(t, m, 3)
	assert.Equal(t, Timers{Delay: n, Sound: n}, m.Timers())
	assert.True(t, m.SoundActive())

	for range n {
		m.TickTimers()
	}
	assert.Equal(t, Timers{}, m.Timers())
	assert.False(t, m.SoundActive())

	m.TickTimers()
	assert.Equal(t, Timers{}, m.Timers())
}

func TestMachine_TimersNotDecrementedByStep(t *testing.T) {
	m := newTestMachine(t,
		0x6005, // LD V0, 5
		0xF015, // LD DT, V0
		0x1204, // JP $204
	)
	steps(t, m, 50)

	assert.Equal(t, byte(5), m.Timers().Delay)
}

func TestMachine_DrawFlag(t *testing.T) {
	m := newTestMachine(t,
		0x6001, // LD V0, 1
		0xD005, // DRW V0, V0, 5
	)
	assert.True(t, m.DrawFlag())
	m.ResetDrawFlag()

	steps(t, m, 1)
	assert.False(t, m.DrawFlag())

	steps(t, m, 1)
	assert.True(t, m.DrawFlag())
}

func TestWithSeed(t *testing.T) {
	program := encode(
		0xC0FF, // RND V0, $FF
		0xC1FF, // RND V1, $FF
		0xC2FF, // RND V2, $FF
	)

	run := func() Registers {
		m := New(WithSeed(42))
		assert.NoError(t, m.LoadROM(program))
		steps(t, m, 3)
		return m.Registers()
	}

	assert.Equal(t, run(), run())
}
