// Package pipeline orchestrates loading a ROM and running or disassembling it.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// ErrNoFrontend is returned when a window run is requested without a
// window front-end.
var ErrNoFrontend = errors.New("no window front-end available")

// Frontend runs the machine in a window until the window is closed or the
// context is cancelled. The keypad state is attached to the machine and
// has to be updated by the front-end.
type Frontend func(ctx context.Context, logger *log.Logger, machine *vm.Machine, keys *keypad.State,
	cfg runner.Config, opts options.Program) error

// Pipeline orchestrates the complete emulation and disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	loader   *loader.Loader
	frontend Frontend
}

// New creates a new pipeline. The frontend is only required for window runs.
func New(logger *log.Logger, frontend Frontend) *Pipeline {
	return &Pipeline{
		logger:   logger,
		loader:   loader.New(),
		frontend: frontend,
	}
}

// Execute loads the ROM given by the options and processes it in the
// selected mode. The writer receives the listing in disassembly mode.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts disasm.Options, writer io.Writer) error {
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom %s: %w", opts.Input, err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, disasmOpts, writer)
}

// ExecuteWithROM processes a ROM that is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	disasmOpts disasm.Options, writer io.Writer) error {

	mode := opts.Mode()
	p.printInfo(opts, mode, rom)

	switch mode {
	case options.ModeDisasm:
		return p.disassemble(ctx, rom, disasmOpts, writer)
	case options.ModeHeadless:
		return p.runHeadless(ctx, rom, opts)
	default:
		return p.runWindow(ctx, rom, opts)
	}
}

// createMachine creates a machine with an attached keypad and loads the ROM.
func (p *Pipeline) createMachine(rom []byte, opts options.Program) (*vm.Machine, *keypad.State, error) {
	keys := keypad.New()
	machineOptions := []vm.Option{vm.WithKeypad(keys)}
	if opts.Seed != 0 {
		machineOptions = append(machineOptions, vm.WithSeed(opts.Seed))
	}

	machine := vm.New(machineOptions...)
	if err := machine.LoadROM(rom); err != nil {
		return nil, nil, fmt.Errorf("loading rom into memory: %w", err)
	}
	return machine, keys, nil
}

// disassemble writes the assembly listing of the ROM.
func (p *Pipeline) disassemble(ctx context.Context, rom []byte, disasmOpts disasm.Options, writer io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	analysis, err := disasm.Disassemble(writer, rom, disasmOpts)
	if err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	p.logger.Debug("Disassembled ROM",
		log.Int("size", len(rom)),
		log.Int("code_size", analysis.CodeSize()),
	)
	return nil
}

// runHeadless runs the ROM without a window and writes the final screen
// to the screenshot file if one is given.
func (p *Pipeline) runHeadless(ctx context.Context, rom []byte, opts options.Program) error {
	machine, _, err := p.createMachine(rom, opts)
	if err != nil {
		return err
	}

	r := runner.New(p.logger, machine, config.RunnerConfig(opts), nil, nil)
	runErr := r.Run(ctx)
	if !opts.Quiet {
		r.LogSummary()
	}

	if opts.Screenshot != "" {
		fb := machine.Framebuffer()
		if err := render.SaveBMP(opts.Screenshot, &fb, opts.Scale); err != nil {
			return errors.Join(runErr, fmt.Errorf("writing screenshot: %w", err))
		}
		p.logger.Info("Screenshot written", log.String("file", opts.Screenshot))
	}

	return runErr
}

// runWindow runs the ROM using the window front-end.
func (p *Pipeline) runWindow(ctx context.Context, rom []byte, opts options.Program) error {
	if p.frontend == nil {
		return ErrNoFrontend
	}

	machine, keys, err := p.createMachine(rom, opts)
	if err != nil {
		return err
	}

	if err := p.frontend(ctx, p.logger, machine, keys, config.RunnerConfig(opts), opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, mode options.Mode, rom []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.String("mode", string(mode)),
		log.Int("size", len(rom)),
	)
}
