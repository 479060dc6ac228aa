package disasm

import (
	"fmt"
)

// addressFormatter returns the text of an address operand.
type addressFormatter func(address uint16) string

func hexAddress(address uint16) string {
	return fmt.Sprintf("$%03X", address)
}

// Format returns the assembly text of the opcode word. Words that do not
// decode to any instruction are returned as data word directive.
func Format(word uint16) string {
	return formatWord(word, hexAddress)
}

func formatWord(word uint16, address addressFormatter) string {
	op, ok := Lookup(word)
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := op.Instruction().Name()
	if params := formatParams(word, address); params != "" {
		return name + " " + params
	}
	return name
}

// formatParams formats the operands of an instruction based on its opcode
// encoding.
func formatParams(word uint16, address addressFormatter) string {
	x := extractRegisterX(word)
	y := extractRegisterY(word)
	kk := word & 0x00FF
	nnn := word & 0x0FFF

	switch word & 0xF000 {
	case 0x0000:
		if word == 0x00E0 || word == 0x00EE {
			return "" // CLS, RET
		}
		return address(nnn)
	case 0x1000, 0x2000:
		return address(nnn)
	case 0x3000, 0x4000, 0x6000, 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, kk)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8000:
		return formatArithmetic(word, x, y)
	case 0xA000:
		return "I, " + address(nnn)
	case 0xB000:
		return "V0, " + address(nnn)
	case 0xC000:
		return fmt.Sprintf("V%X, $%02X", x, kk)
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, word&0x000F)
	case 0xE000:
		return fmt.Sprintf("V%X", x)
	default:
		return formatMisc(x, kk)
	}
}

// formatArithmetic formats the register to register instructions, shifts
// only take a single register operand.
func formatArithmetic(word, x, y uint16) string {
	switch word & 0x000F {
	case 0x6, 0xE:
		return fmt.Sprintf("V%X", x)
	default:
		return fmt.Sprintf("V%X, V%X", x, y)
	}
}

// formatMisc formats the timer, keypad and memory instructions of class F.
func formatMisc(x, kk uint16) string {
	switch kk {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(word uint16) uint16 {
	return (word & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(word uint16) uint16 {
	return (word & 0x00F0) >> 4
}
