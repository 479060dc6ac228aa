package vm

// Timers holds the delay and sound timer values.
type Timers struct {
	Delay byte
	Sound byte
}

// tick decrements every nonzero timer by one.
func (t *Timers) tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}
