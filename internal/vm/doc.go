// Package vm implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// The machine owns all emulated state as one aggregate:
//   - 4KB of memory, addresses are always masked to 12 bits
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as the flag register
//   - the 12-bit address register I
//   - a program counter and a 16 entry call stack
//   - delay and sound timers
//   - a 64x32 monochrome framebuffer
//
// # Memory Layout
//
//	0x000-0x1FF: Reserved, hexadecimal font glyphs are stored at FontBase
//	0x200-0xFFF: Program image and data (ProgramStart)
//
// # Instruction Cycle
//
// Step fetches the big-endian 16-bit opcode at PC, advances PC by 2 and
// dispatches on the high nibble. Jump, call, return and skip handlers modify
// PC relative to the already advanced value.
//
// # Timers
//
// Instructions only read and write the timers. TickTimers is the only
// operation that decrements them and is meant to be driven by a 60 Hz clock.
//
// # Errors
//
// Stack overflow and underflow halt the machine. Unknown opcodes are
// reported through the returned error but execution can continue with the
// next Step call. Use IsFatal to tell the two apart.
//
// # Usage Example
//
//	m := vm.New(vm.WithKeypad(keys))
//	if err := m.LoadROM(program); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	for {
//		if err := m.Step(); vm.IsFatal(err) {
//			return err
//		}
//	}
//
// A Machine is not safe for concurrent use. The host has to serialize
// Step and TickTimers, for example by interleaving both on one goroutine.
package vm
