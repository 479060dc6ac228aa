package keypad

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestState_PressRelease(t *testing.T) {
	s := New()

	assert.False(t, s.IsPressed(0xA))
	s.Press(0xA)
	assert.True(t, s.IsPressed(0xA))
	assert.False(t, s.IsPressed(0xB))

	s.Release(0xA)
	assert.False(t, s.IsPressed(0xA))
}

func TestState_NextPress(t *testing.T) {
	s := New()

	_, ok := s.NextPress()
	assert.False(t, ok)

	s.Press(0x1)
	s.Press(0x1) // still held, not a new press
	s.Press(0xF)

	key, ok := s.NextPress()
	assert.True(t, ok)
	assert.Equal(t, byte(0x1), key)

	key, ok = s.NextPress()
	assert.True(t, ok)
	assert.Equal(t, byte(0xF), key)

	_, ok = s.NextPress()
	assert.False(t, ok)

	// released and pressed again
	s.Release(0x1)
	s.Press(0x1)
	key, ok = s.NextPress()
	assert.True(t, ok)
	assert.Equal(t, byte(0x1), key)
}

func TestState_QueueDropsOldest(t *testing.T) {
	s := New()

	for i := range queueSize + 2 {
		key := byte(i % 16)
		s.Release(key)
		s.Press(key)
	}

	key, ok := s.NextPress()
	assert.True(t, ok)
	assert.Equal(t, byte(2), key)
}

func TestState_Reset(t *testing.T) {
	s := New()
	s.Press(0x3)

	s.Reset()
	assert.False(t, s.IsPressed(0x3))
	_, ok := s.NextPress()
	assert.False(t, ok)
}

func TestState_ClearPresses(t *testing.T) {
	s := New()
	s.Press(0x5)
	s.Press(0x6)

	s.ClearPresses()
	_, ok := s.NextPress()
	assert.False(t, ok)
	assert.True(t, s.IsPressed(0x5))

	// a held key is not queued again until it was released
	s.Press(0x5)
	_, ok = s.NextPress()
	assert.False(t, ok)
}

func TestState_Concurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := range 4 {
		wg.Add(1)
		go func(key byte) {
			defer wg.Done()
			for range 100 {
				s.Press(key)
				s.IsPressed(key)
				s.Release(key)
			}
		}(byte(i))
	}
	wg.Wait()

	count := 0
	for {
		if _, ok := s.NextPress(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, queueSize, count)
}
