package vm

// Keypad gives the machine access to the 16 key hexadecimal keypad of the host.
type Keypad interface {
	// IsPressed returns whether the key 0x0-0xF is currently held.
	IsPressed(key byte) bool
	// NextPress returns the oldest key press that was not yet consumed.
	// It returns false if no key was pressed.
	NextPress() (byte, bool)
	// ClearPresses drops all key presses that were not yet consumed.
	ClearPresses()
}

// releasedKeypad is used when no keypad is attached, no key is ever pressed.
type releasedKeypad struct{}

func (releasedKeypad) IsPressed(byte) bool {
	return false
}

func (releasedKeypad) NextPress() (byte, bool) {
	return 0, false
}

func (releasedKeypad) ClearPresses() {}
