package vm

// Step fetches, decodes and executes a single instruction.
// Errors are wrapped in an *OpcodeError that identifies the failing opcode
// and its address. After a fatal error the machine is halted and every
// further call returns ErrHalted.
func (m *Machine) Step() error {
	if m.halted {
		return ErrHalted
	}

	pc := m.regs.PC
	m.opcode = m.fetch()
	m.cycles++

	if err := m.execute(m.opcode); err != nil {
		if IsFatal(err) {
			m.halted = true
		}
		return &OpcodeError{PC: pc, Opcode: m.opcode, Err: err}
	}
	return nil
}

// fetch reads the opcode at the program counter and advances the program
// counter to the next instruction.
func (m *Machine) fetch() Opcode {
	opcode := m.memory.ReadOpcode(m.regs.PC)
	m.regs.PC = (m.regs.PC + InstructionSize) & MaxAddress
	return opcode
}

// execute dispatches the opcode to its instruction handler.
func (m *Machine) execute(op Opcode) error {
	x, y := op.X(), op.Y()
	kk, nnn := op.KK(), op.NNN()

	switch op.Class() {
	case 0x0:
		switch op {
		case 0x00E0: // CLS
			m.cls()
		case 0x00EE: // RET
			return m.ret()
		default:
			return ErrUnknownOpcode
		}

	case 0x1: // JP nnn
		m.jump(nnn)

	case 0x2: // CALL nnn
		return m.call(nnn)

	case 0x3: // SE Vx, kk
		m.skipIf(m.regs.V[x] == kk)

	case 0x4: // SNE Vx, kk
		m.skipIf(m.regs.V[x] != kk)

	case 0x5: // SE Vx, Vy
		if op.N() != 0 {
			return ErrUnknownOpcode
		}
		m.skipIf(m.regs.V[x] == m.regs.V[y])

	case 0x6: // LD Vx, kk
		m.regs.V[x] = kk

	case 0x7: // ADD Vx, kk
		m.regs.V[x] += kk

	case 0x8:
		return m.arithmetic(x, y, op.N())

	case 0x9: // SNE Vx, Vy
		if op.N() != 0 {
			return ErrUnknownOpcode
		}
		m.skipIf(m.regs.V[x] != m.regs.V[y])

	case 0xA: // LD I, nnn
		m.regs.I = nnn

	case 0xB: // JP V0, nnn
		m.jump(nnn + uint16(m.regs.V[0]))

	case 0xC: // RND Vx, kk
		m.regs.V[x] = m.random() & kk

	case 0xD: // DRW Vx, Vy, n
		m.drw(x, y, op.N())

	case 0xE:
		switch kk {
		case 0x9E: // SKP Vx
			m.skipIf(m.keyPressed(x))
		case 0xA1: // SKNP Vx
			m.skipIf(!m.keyPressed(x))
		default:
			return ErrUnknownOpcode
		}

	case 0xF:
		return m.misc(x, kk)
	}
	return nil
}

// arithmetic executes the register to register instructions of class 8.
// The flag is written after the result so that VF holds the flag when it
// is also the destination register.
func (m *Machine) arithmetic(x, y, n byte) error {
	vx, vy := m.regs.V[x], m.regs.V[y]

	switch n {
	case 0x0: // LD Vx, Vy
		m.regs.V[x] = vy
	case 0x1: // OR Vx, Vy
		m.regs.V[x] = vx | vy
	case 0x2: // AND Vx, Vy
		m.regs.V[x] = vx & vy
	case 0x3: // XOR Vx, Vy
		m.regs.V[x] = vx ^ vy
	case 0x4: // ADD Vx, Vy
		sum := uint16(vx) + uint16(vy)
		m.regs.V[x] = byte(sum)
		m.setFlag(sum > 0xFF)
	case 0x5: // SUB Vx, Vy
		m.regs.V[x] = vx - vy
		m.setFlag(vx > vy)
	case 0x6: // SHR Vx
		m.regs.V[x] = vx >> 1
		m.setFlag(vx&0x01 != 0)
	case 0x7: // SUBN Vx, Vy
		m.regs.V[x] = vy - vx
		m.setFlag(vy > vx)
	case 0xE: // SHL Vx
		m.regs.V[x] = vx << 1
		m.setFlag(vx&0x80 != 0)
	default:
		return ErrUnknownOpcode
	}
	return nil
}

// misc executes the timer, keypad, address register and memory
// instructions of class F.
func (m *Machine) misc(x, kk byte) error {
	switch kk {
	case 0x07: // LD Vx, DT
		m.regs.V[x] = m.timers.Delay
	case 0x0A: // LD Vx, K
		m.waitKey(x)
	case 0x15: // LD DT, Vx
		m.timers.Delay = m.regs.V[x]
	case 0x18: // LD ST, Vx
		m.timers.Sound = m.regs.V[x]
	case 0x1E: // ADD I, Vx
		m.regs.I = (m.regs.I + uint16(m.regs.V[x])) & MaxAddress
	case 0x29: // LD F, Vx
		m.regs.I = (FontBase + uint16(m.regs.V[x])*GlyphSize) & MaxAddress
	case 0x33: // LD B, Vx
		m.bcd(x)
	case 0x55: // LD [I], Vx
		for i := range uint16(x) + 1 {
			m.memory.Write(m.regs.I+i, m.regs.V[i])
		}
	case 0x65: // LD Vx, [I]
		for i := range uint16(x) + 1 {
			m.regs.V[i] = m.memory.Read(m.regs.I + i)
		}
	default:
		return ErrUnknownOpcode
	}
	return nil
}
