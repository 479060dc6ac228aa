package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func encode(words ...uint16) []byte {
	program := make([]byte, 0, len(words)*2)
	for _, w := range words {
		program = append(program, byte(w>>8), byte(w))
	}
	return program
}

func TestAnalyze(t *testing.T) {
	program := encode(
		0x220A, // $200 call $20A
		0xA20E, // $202 ld I, $20E
		0x3000, // $204 se V0, $00
		0x1208, // $206 jp $208
		0x1208, // $208 jp $208
		0x00E0, // $20A cls
		0x00EE, // $20C ret
		0xF090, // $20E sprite data
	)

	a := Analyze(program)

	for address := uint16(0x200); address <= 0x20C; address += 2 {
		assert.True(t, a.IsCode(address))
	}
	assert.False(t, a.IsCode(0x20E))
	assert.Equal(t, 14, a.CodeSize())

	assert.Equal(t, "Start", a.Label(0x200))
	assert.Equal(t, "_func_020a", a.Label(0x20A))
	assert.Equal(t, "_label_0208", a.Label(0x208))
	assert.Equal(t, "_data_020e", a.Label(0x20E))
	assert.Equal(t, "", a.Label(0x204))
}

func TestAnalyze_StopsAtUnknownOpcodes(t *testing.T) {
	program := encode(
		0x6001, // $200 ld V0, $01
		0xFFFF, // $202 data
		0x6002, // $204 unreachable
	)

	a := Analyze(program)
	assert.True(t, a.IsCode(0x200))
	assert.False(t, a.IsCode(0x202))
	assert.False(t, a.IsCode(0x204))
}

func TestAnalyze_IgnoresTargetsOutsideProgram(t *testing.T) {
	program := encode(
		0x2100, // $200 call $100
		0xB300, // $202 jp V0, $300
		0x6001, // $204 unreachable
	)

	a := Analyze(program)
	assert.True(t, a.IsCode(0x200))
	assert.True(t, a.IsCode(0x202))
	assert.False(t, a.IsCode(0x204))
	assert.Equal(t, "", a.Label(0x100))
}

func TestAnalyze_OddProgramSize(t *testing.T) {
	a := Analyze([]byte{0x00, 0xE0, 0x12})
	assert.True(t, a.IsCode(0x200))
	assert.False(t, a.IsCode(0x202))
}

func TestAnalyze_TargetInsideInstruction(t *testing.T) {
	program := encode(
		0x6000, // $200 ld V0, $00
		0x1203, // $202 jp $203
		0x00E0, // $204 unreachable
	)

	a := Analyze(program)
	assert.True(t, a.IsCode(0x202))
	assert.False(t, a.IsCode(0x203))
	assert.Equal(t, "", a.Label(0x203))
}
