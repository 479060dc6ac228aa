package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestRunnerConfig(t *testing.T) {
	tests := []struct {
		name     string
		opts     options.Program
		expected runner.Config
	}{
		{
			name: "window",
			opts: options.Program{Flags: options.Flags{IPS: 1000, Frames: 600}},
			expected: runner.Config{
				InstructionsPerSecond: 1000,
				Throttle:              true,
			},
		},
		{
			name: "headless",
			opts: options.Program{Flags: options.Flags{Headless: true, Frames: 60, Trace: true}},
			expected: runner.Config{
				InstructionsPerSecond: runner.DefaultInstructionsPerSecond,
				MaxFrames:             60,
				Trace:                 true,
			},
		},
		{
			name: "throttled headless",
			opts: options.Program{Flags: options.Flags{Headless: true, Throttle: true, IPS: 600}},
			expected: runner.Config{
				InstructionsPerSecond: 600,
				Throttle:              true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RunnerConfig(tt.opts))
		})
	}
}
