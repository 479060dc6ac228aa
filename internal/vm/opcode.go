package vm

// Opcode is a raw 16-bit instruction word.
type Opcode uint16

// Class returns the high nibble that selects the instruction class.
func (o Opcode) Class() byte {
	return byte(o >> 12)
}

// X returns the first register index.
func (o Opcode) X() byte {
	return byte(o>>8) & 0xF
}

// Y returns the second register index.
func (o Opcode) Y() byte {
	return byte(o>>4) & 0xF
}

// N returns the 4-bit immediate.
func (o Opcode) N() byte {
	return byte(o) & 0xF
}

// KK returns the 8-bit immediate.
func (o Opcode) KK() byte {
	return byte(o)
}

// NNN returns the 12-bit address immediate.
func (o Opcode) NNN() uint16 {
	return uint16(o) & MaxAddress
}
