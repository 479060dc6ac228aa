package vm

// Stack is the call stack holding return addresses.
type Stack struct {
	slots [StackSize]uint16
	sp    int // number of used slots, 0 is empty
}

// Push stores the return address at the current stack pointer.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackSize {
		return ErrStackOverflow
	}
	s.slots[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.slots[s.sp], nil
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return s.sp
}

// Entries returns the return addresses on the stack, the oldest first.
func (s *Stack) Entries() []uint16 {
	entries := make([]uint16, s.sp)
	copy(entries, s.slots[:s.sp])
	return entries
}
