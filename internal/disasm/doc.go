// Package disasm provides a CHIP-8 disassembler.
//
// It decodes opcodes using the instruction tables of retrogolib, follows the
// control flow of a program to separate code from data and writes assembly
// listings with generated labels. The runner uses it to trace executed
// instructions.
package disasm
