package vm

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// MaxAddress is the highest valid memory address, it doubles as the
	// mask that keeps all address calculations within 12 bits.
	MaxAddress = 0xFFF

	// ProgramStart is the address where the program image is loaded and
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontBase is the address of the first hexadecimal font glyph.
	FontBase = 0x000

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5
)

// Machine dimensions.
const (
	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	ScreenWidth  = 64
	ScreenHeight = 32

	// TimerFrequency is the rate in Hz at which the timers are decremented.
	TimerFrequency = 60

	// InstructionSize is the size of every opcode in bytes.
	InstructionSize = 2

	flagRegister = 0xF
)
