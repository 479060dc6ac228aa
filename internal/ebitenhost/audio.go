package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate    = 44100
	toneFrequency = 440
	toneAmplitude = 0x1000
)

// beeper plays a square wave tone while the sound timer is active.
type beeper struct {
	player *audio.Player
}

func newBeeper() (*beeper, error) {
	ctx := audio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(&squareWave{})
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	return &beeper{player: player}, nil
}

// SetTone starts or pauses the tone.
func (b *beeper) SetTone(on bool) {
	switch {
	case on && !b.player.IsPlaying():
		b.player.Play()
	case !on && b.player.IsPlaying():
		b.player.Pause()
	}
}

// squareWave is an endless stream of 16 bit stereo samples.
type squareWave struct {
	position int64 // sample index
}

func (s *squareWave) Read(p []byte) (int, error) {
	const period = sampleRate / toneFrequency
	n := len(p) / 4 * 4

	for i := 0; i < n; i += 4 {
		sample := int16(toneAmplitude)
		if s.position%period >= period/2 {
			sample = -sample
		}
		lo, hi := byte(sample), byte(uint16(sample)>>8)
		p[i], p[i+1] = lo, hi   // left
		p[i+2], p[i+3] = lo, hi // right
		s.position++
	}
	return n, nil
}
