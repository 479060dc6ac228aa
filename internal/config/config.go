// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// RunnerConfig creates the runner configuration for the program options.
// Only headless runs stop after a number of frames.
func RunnerConfig(opts options.Program) runner.Config {
	cfg := runner.DefaultConfig()
	if opts.IPS > 0 {
		cfg.InstructionsPerSecond = opts.IPS
	}
	cfg.Trace = opts.Trace

	if opts.Mode() == options.ModeHeadless {
		cfg.MaxFrames = opts.Frames
		cfg.Throttle = opts.Throttle
	}
	return cfg
}
