// Package runner drives a CHIP-8 machine in frames of the 60 Hz timer clock.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// DefaultInstructionsPerSecond is the default clock speed of the machine.
const DefaultInstructionsPerSecond = 700

// FrameDuration is the time between two timer ticks.
const FrameDuration = time.Second / vm.TimerFrequency

// Display presents the framebuffer to the user.
type Display interface {
	// Render is called after every frame in which the framebuffer changed.
	Render(fb *vm.Framebuffer)
}

// Audio controls the tone of the host.
type Audio interface {
	// SetTone is called after every frame with whether the sound timer is active.
	SetTone(on bool)
}

// Config of the runner.
type Config struct {
	InstructionsPerSecond int
	MaxFrames             int  // stop after this many frames, 0 runs until cancelled
	Throttle              bool // pace frames at the 60 Hz timer rate
	Trace                 bool // log every executed instruction
}

// DefaultConfig returns the default runner configuration.
func DefaultConfig() Config {
	return Config{
		InstructionsPerSecond: DefaultInstructionsPerSecond,
		Throttle:              true,
	}
}

// Runner owns a machine and interleaves its instruction steps with the
// timer ticks.
type Runner struct {
	logger  *log.Logger
	machine *vm.Machine
	config  Config
	display Display
	audio   Audio

	stepsPerFrame int
	frames        int
	unknownCount  int
	unknownPCs    set.Set[uint16] // addresses of reported unknown opcodes
}

// New returns a runner for the machine. Display and audio are optional.
func New(logger *log.Logger, machine *vm.Machine, cfg Config, display Display, audio Audio) *Runner {
	if cfg.InstructionsPerSecond <= 0 {
		cfg.InstructionsPerSecond = DefaultInstructionsPerSecond
	}
	if display == nil {
		display = nopDisplay{}
	}
	if audio == nil {
		audio = nopAudio{}
	}

	return &Runner{
		logger:        logger,
		machine:       machine,
		config:        cfg,
		display:       display,
		audio:         audio,
		stepsPerFrame: max(cfg.InstructionsPerSecond/vm.TimerFrequency, 1),
		unknownPCs:    set.New[uint16](),
	}
}

// Frame executes the instructions of one timer period, ticks the timers and
// updates the display and audio. The step loop ends early while the machine
// waits for a key press. Only fatal errors are returned.
func (r *Runner) Frame() error {
	for range r.stepsPerFrame {
		if r.config.Trace {
			r.trace()
		}

		if err := r.machine.Step(); err != nil {
			if vm.IsFatal(err) {
				return err
			}
			r.reportUnknownOpcode(err)
		}

		if r.machine.Waiting() {
			break
		}
	}

	r.machine.TickTimers()

	if r.machine.DrawFlag() {
		fb := r.machine.Framebuffer()
		r.display.Render(&fb)
		r.machine.ResetDrawFlag()
	}
	r.audio.SetTone(r.machine.SoundActive())

	r.frames++
	return nil
}

// Run executes frames until the context is cancelled, a fatal error occurs
// or the configured number of frames was executed.
func (r *Runner) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if r.config.Throttle {
		ticker := time.NewTicker(FrameDuration)
		defer ticker.Stop()
		tick = ticker.C
	}

	for r.config.MaxFrames == 0 || r.frames < r.config.MaxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.Frame(); err != nil {
			return fmt.Errorf("executing program: %w", err)
		}

		if tick == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
	return nil
}

// Frames returns the number of executed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// UnknownOpcodes returns the number of executed unknown opcodes.
func (r *Runner) UnknownOpcodes() int {
	return r.unknownCount
}

// LogSummary logs the statistics of the run.
func (r *Runner) LogSummary() {
	r.logger.Info("Execution finished",
		log.Int("frames", r.frames),
		log.Int("instructions", int(r.machine.Cycles())),
		log.Int("unknown_opcodes", r.unknownCount),
	)
}

func (r *Runner) trace() {
	regs := r.machine.Registers()
	opcode := uint16(r.machine.PeekOpcode())

	r.logger.Debug("Executing instruction",
		log.Hex("pc", regs.PC),
		log.Hex("opcode", opcode),
		log.String("code", disasm.Format(opcode)),
		log.Hex("i", regs.I),
	)
}

// reportUnknownOpcode logs an unknown opcode once per address.
func (r *Runner) reportUnknownOpcode(err error) {
	r.unknownCount++

	var opErr *vm.OpcodeError
	if !errors.As(err, &opErr) {
		r.logger.Warn("Executing instruction failed", log.Err(err))
		return
	}

	if r.unknownPCs.Contains(opErr.PC) {
		return
	}
	r.unknownPCs.Add(opErr.PC)

	r.logger.Warn("Skipping unknown opcode",
		log.Hex("pc", opErr.PC),
		log.Hex("opcode", uint16(opErr.Opcode)),
	)
}

type nopDisplay struct{}

func (nopDisplay) Render(*vm.Framebuffer) {}

type nopAudio struct{}

func (nopAudio) SetTone(bool) {}
