// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Default values of the numeric flags.
const (
	DefaultHeadlessFrames = 600
	DefaultScale          = 10
)

// ParseFlags parses command line flags and returns program and listing options
func ParseFlags() (options.Program, disasm.Options, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readOutputFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, disasm.Options{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, disasm.Options{}, err
	}

	if len(args) > 0 && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, disasm.Options{}, &UsageError{flags: flags, msg: err.Error()}
	}

	return opts, createDisasmOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations rejects option values and combinations that
// can not be used together.
func validateOptionCombinations(opts options.Program) error {
	switch {
	case opts.Disasm && opts.Headless:
		return errors.New("options -disasm and -headless can not be used together")
	case opts.Batch != "" && opts.Headless:
		return errors.New("option -batch can only be used for disassembling")
	case opts.Mode() == options.ModeDisasm && opts.Screenshot != "":
		return errors.New("option -screenshot can not be used when disassembling")
	case opts.Frames < 0:
		return fmt.Errorf("invalid number of frames %d", opts.Frames)
	case opts.IPS <= 0:
		return fmt.Errorf("invalid number of instructions per second %d", opts.IPS)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid scale %d", opts.Scale)
	}
	return nil
}

// createDisasmOptions creates listing options based on program options
func createDisasmOptions(opts options.Program) disasm.Options {
	disasmOptions := disasm.NewOptions()

	// Apply inverse logic for hex comments and offsets
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	disasmOptions.ZeroBytes = opts.ZeroBytes
	return disasmOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file when disassembling, printed on console if no name given")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "name of the .bmp file to write the screen to after a headless run, or when F12 is pressed")
	flags.StringVar(&opts.Batch, "batch", "", "disassemble a batch of given path and file mask with automatic .asm file naming, for example *.ch8")
	flags.BoolVar(&opts.Disasm, "disasm", false, "write an assembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.Headless, "headless", false, "run the ROM without opening a window")
	flags.BoolVar(&opts.Throttle, "throttle", false, "pace a headless run at the 60 Hz timer rate")
	flags.IntVar(&opts.Frames, "frames", DefaultHeadlessFrames, "number of 60 Hz frames to run in headless mode, 0 runs until interrupted")
	flags.IntVar(&opts.IPS, "ips", runner.DefaultInstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "size of a CHIP-8 pixel on screen and in screenshots")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 uses a random seed")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readOutputFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM")
}
