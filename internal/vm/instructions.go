package vm

// cls clears the framebuffer.
func (m *Machine) cls() {
	m.display.Clear()
	m.drawFlag = true
}

// ret returns from a subroutine.
func (m *Machine) ret() error {
	address, err := m.stack.Pop()
	if err != nil {
		return err
	}
	m.regs.PC = address
	return nil
}

// jump sets the program counter to the 12-bit address.
func (m *Machine) jump(address uint16) {
	m.regs.PC = address & MaxAddress
}

// call pushes the address of the next instruction and jumps to the subroutine.
func (m *Machine) call(address uint16) error {
	if err := m.stack.Push(m.regs.PC); err != nil {
		return err
	}
	m.jump(address)
	return nil
}

// skipIf skips the next instruction if the condition is true.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.regs.PC = (m.regs.PC + InstructionSize) & MaxAddress
	}
}

// keyPressed returns whether the key stored in vx is held.
func (m *Machine) keyPressed(x byte) bool {
	return m.keypad.IsPressed(m.regs.V[x] & 0xF)
}

// waitKey stores the next key press in vx. Without a key press the program
// counter is moved back to this instruction, so that it is executed again
// by the next step. Only presses made after the wait started are accepted.
func (m *Machine) waitKey(x byte) {
	if !m.waiting {
		m.keypad.ClearPresses()
	}

	key, ok := m.keypad.NextPress()
	if !ok {
		m.waiting = true
		m.regs.PC = (m.regs.PC - InstructionSize) & MaxAddress
		return
	}

	m.waiting = false
	m.regs.V[x] = key & 0xF
}

// drw draws the n byte sprite stored at I to the coordinates in vx and vy
// and sets VF on collision.
func (m *Machine) drw(x, y, n byte) {
	var sprite [15]byte
	for row := range n {
		sprite[row] = m.memory.Read(m.regs.I + uint16(row))
	}

	collision := m.display.DrawSprite(m.regs.V[x], m.regs.V[y], sprite[:n])
	m.setFlag(collision)
	m.drawFlag = true
}

// bcd stores the decimal digits of vx at I, I+1 and I+2.
func (m *Machine) bcd(x byte) {
	value := m.regs.V[x]
	m.memory.Write(m.regs.I, value/100)
	m.memory.Write(m.regs.I+1, value/10%10)
	m.memory.Write(m.regs.I+2, value%10)
}

func (m *Machine) setFlag(set bool) {
	if set {
		m.regs.V[flagRegister] = 1
	} else {
		m.regs.V[flagRegister] = 0
	}
}
