package vm

// Memory is the flat addressable memory of the machine.
type Memory [MemorySize]byte

// Read returns the byte at the given address, masked to 12 bits.
func (m *Memory) Read(address uint16) byte {
	return m[address&MaxAddress]
}

// Write sets the byte at the given address, masked to 12 bits.
func (m *Memory) Write(address uint16, value byte) {
	m[address&MaxAddress] = value
}

// ReadOpcode combines the bytes at address and address+1 to a big-endian opcode.
func (m *Memory) ReadOpcode(address uint16) Opcode {
	return Opcode(uint16(m.Read(address))<<8 | uint16(m.Read(address+1)))
}

// load copies data to memory starting at address. The caller ensures that
// the data fits.
func (m *Memory) load(address uint16, data []byte) {
	copy(m[address:], data)
}
