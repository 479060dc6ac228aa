// Package options contains the program options.
package options

// Mode selects what the program does with the loaded ROM.
type Mode string

// Supported modes.
const (
	ModeWindow   Mode = "window"   // run the program in a window
	ModeHeadless Mode = "headless" // run the program without a window
	ModeDisasm   Mode = "disasm"   // write an assembly listing of the program
)

// Parameters contains file path options.
type Parameters struct {
	Input      string // ROM file to load
	Output     string // listing file in disasm mode
	Screenshot string // BMP file written after a headless run or by F12
	Batch      string // disassemble all files matching the pattern
}

// Flags contains behavior options.
type Flags struct {
	Disasm   bool
	Headless bool
	Debug    bool
	Quiet    bool
	Trace    bool

	Frames   int    // number of frames to run, 0 runs until cancelled
	IPS      int    // instructions per second
	Scale    int    // window and screenshot pixel scale
	Seed     uint64 // seed of the random number generator, 0 is random
	Throttle bool   // pace headless runs at the 60 Hz timer rate
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	NoHexComments bool
	NoOffsets     bool
	ZeroBytes     bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Mode returns the mode selected by the flags.
func (p Program) Mode() Mode {
	switch {
	case p.Disasm || p.Batch != "":
		return ModeDisasm
	case p.Headless:
		return ModeHeadless
	default:
		return ModeWindow
	}
}
