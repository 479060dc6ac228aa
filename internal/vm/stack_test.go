package vm

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStack_PushPop(t *testing.T) {
	var s Stack

	for i := range StackSize {
		assert.NoError(t, s.Push(uint16(0x200+i*2)))
	}
	assert.Equal(t, StackSize, s.Depth())
	assert.True(t, errors.Is(s.Push(0x300), ErrStackOverflow))
	assert.Equal(t, StackSize, s.Depth())

	for i := StackSize - 1; i >= 0; i-- {
		address, err := s.Pop()
		assert.NoError(t, err)
		assert.Equal(t, uint16(0x200+i*2), address)
	}

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 0, s.Depth())
}

func TestStack_ZeroReturnAddress(t *testing.T) {
	var s Stack

	assert.NoError(t, s.Push(0x000))
	assert.NoError(t, s.Push(0x000))
	assert.Equal(t, []uint16{0, 0}, s.Entries())

	address, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0), address)
	assert.Equal(t, 1, s.Depth())
}
