package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_AddressMasking(t *testing.T) {
	var m Memory

	m.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), m[0x234])
	assert.Equal(t, byte(0xAB), m.Read(0x0234))
	assert.Equal(t, byte(0xAB), m.Read(0xF234))
}

func TestMemory_ReadOpcode(t *testing.T) {
	var m Memory
	m.Write(0x200, 0x12)
	m.Write(0x201, 0x34)
	m.Write(MaxAddress, 0xA0)
	m.Write(0x000, 0x0F)

	assert.Equal(t, Opcode(0x1234), m.ReadOpcode(0x200))
	assert.Equal(t, Opcode(0xA00F), m.ReadOpcode(MaxAddress))
}

func TestOpcode_Fields(t *testing.T) {
	op := Opcode(0xD12F)

	assert.Equal(t, byte(0xD), op.Class())
	assert.Equal(t, byte(0x1), op.X())
	assert.Equal(t, byte(0x2), op.Y())
	assert.Equal(t, byte(0xF), op.N())
	assert.Equal(t, byte(0x2F), op.KK())
	assert.Equal(t, uint16(0x12F), op.NNN())
}
