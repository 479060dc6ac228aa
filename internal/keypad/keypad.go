// Package keypad tracks the state of the 16 key hexadecimal keypad.
// Host front-ends report key changes, the machine reads the held keys and
// consumes queued key presses. All methods are safe for concurrent use.
package keypad

import (
	"sync"

	"github.com/retroenv/retrochip8/internal/vm"
)

// queueSize is the number of unconsumed key presses that are kept.
const queueSize = 16

var _ vm.Keypad = (*State)(nil)

// State is the keypad state shared between the host and the machine.
type State struct {
	mu      sync.Mutex
	held    [vm.KeyCount]bool
	presses []byte
}

// New returns a keypad with all keys released.
func New() *State {
	return &State{
		presses: make([]byte, 0, queueSize),
	}
}

// Press marks the key as held. A key that was released before is queued as
// a new key press. When the queue is full the oldest press is dropped.
func (s *State) Press(key byte) {
	key &= 0xF

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held[key] {
		return
	}
	s.held[key] = true

	if len(s.presses) == queueSize {
		s.presses = append(s.presses[:0], s.presses[1:]...)
	}
	s.presses = append(s.presses, key)
}

// Release marks the key as released.
func (s *State) Release(key byte) {
	s.mu.Lock()
	s.held[key&0xF] = false
	s.mu.Unlock()
}

// IsPressed returns whether the key is currently held.
func (s *State) IsPressed(key byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[key&0xF]
}

// NextPress returns the oldest unconsumed key press.
func (s *State) NextPress() (byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.presses) == 0 {
		return 0, false
	}
	key := s.presses[0]
	s.presses = append(s.presses[:0], s.presses[1:]...)
	return key, true
}

// ClearPresses drops all queued key presses, held keys stay held.
func (s *State) ClearPresses() {
	s.mu.Lock()
	s.presses = s.presses[:0]
	s.mu.Unlock()
}

// Reset releases all keys and drops all queued key presses.
func (s *State) Reset() {
	s.mu.Lock()
	s.held = [vm.KeyCount]bool{}
	s.presses = s.presses[:0]
	s.mu.Unlock()
}
