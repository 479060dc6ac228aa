package disasm

import (
	"fmt"
	"io"
	"strings"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"

	dataBytesPerLine = 16
)

// Options controls the listing output.
type Options struct {
	HexComments    bool // output opcode bytes as hex values in comments
	OffsetComments bool // output addresses in comments
	ZeroBytes      bool // output trailing zero bytes of the program
}

// NewOptions returns the default listing options.
func NewOptions() Options {
	return Options{
		HexComments:    true,
		OffsetComments: true,
	}
}

func labelName(format string, address uint16) string {
	return fmt.Sprintf(format, address)
}

// Disassemble analyzes the program and writes an assembly listing of it.
func Disassemble(w io.Writer, program []byte, options Options) (*Analysis, error) {
	a := Analyze(program)
	lw := &listingWriter{
		writer:   w,
		analysis: a,
		options:  options,
	}
	if err := lw.write(); err != nil {
		return nil, err
	}
	return a, nil
}

type listingWriter struct {
	writer   io.Writer
	analysis *Analysis
	options  Options
}

func (w *listingWriter) write() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	program := w.analysis.program
	endIndex := w.endIndex()

	for i := 0; i < endIndex; {
		address := uint16(ProgramStart + i)

		if err := w.writeLabel(i, address); err != nil {
			return err
		}

		if w.analysis.IsCode(address) {
			if err := w.writeCode(address); err != nil {
				return err
			}
			i += opcodeSize
			continue
		}

		count := w.dataRunLength(i, endIndex)
		if err := w.writeData(address, program[i:i+count]); err != nil {
			return err
		}
		i += count
	}
	return nil
}

func (w *listingWriter) writeHeader() error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04X\n", ProgramStart); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Program size: %d bytes, code: %d bytes\n\n",
		len(w.analysis.program), w.analysis.CodeSize()); err != nil {
		return fmt.Errorf("writing program size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, ".org $%03X\n\n", ProgramStart); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}
	return nil
}

func (w *listingWriter) writeLabel(index int, address uint16) error {
	label := w.analysis.Label(address)
	if label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
		return fmt.Errorf("writing label %s: %w", label, err)
	}
	return nil
}

func (w *listingWriter) writeCode(address uint16) error {
	word := w.analysis.word(address)
	code := formatWord(word, w.operandAddress)

	var comments []string
	if w.options.OffsetComments {
		comments = append(comments, fmt.Sprintf("$%04X", address))
	}
	if w.options.HexComments {
		comments = append(comments, fmt.Sprintf("%02X %02X", byte(word>>8), byte(word)))
	}
	return w.writeLine(code, strings.Join(comments, "  "))
}

func (w *listingWriter) writeData(address uint16, data []byte) error {
	for len(data) > 0 {
		count := min(len(data), dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j, b := range data[:count] {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(fmt.Sprintf("$%02X", b))
		}

		var comment string
		if w.options.OffsetComments {
			comment = fmt.Sprintf("$%04X", address)
		}
		if err := w.writeLine(buf.String(), comment); err != nil {
			return err
		}

		data = data[count:]
		address += uint16(count)
	}
	return nil
}

func (w *listingWriter) writeLine(code, comment string) error {
	var err error
	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "  %s\n", code)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// operandAddress replaces addresses of referenced program locations by
// their label names.
func (w *listingWriter) operandAddress(address uint16) string {
	if label := w.analysis.Label(address); label != "" {
		return label
	}
	return hexAddress(address)
}

// dataRunLength returns the number of data bytes starting at the index up
// to the next instruction or label.
func (w *listingWriter) dataRunLength(start, endIndex int) int {
	i := start + 1
	for ; i < endIndex; i++ {
		address := uint16(ProgramStart + i)
		if w.analysis.IsCode(address) || w.analysis.Label(address) != "" {
			break
		}
	}
	return i - start
}

// endIndex returns the index after the last program byte to output.
// Trailing zero bytes are skipped unless they are code or referenced.
func (w *listingWriter) endIndex() int {
	program := w.analysis.program
	if w.options.ZeroBytes {
		return len(program)
	}

	for i := len(program) - 1; i >= 0; i-- {
		address := uint16(ProgramStart + i)
		if program[i] != 0 || w.analysis.Label(address) != "" {
			return i + 1
		}
		if w.analysis.IsCode(address) || w.analysis.IsCode(address-1) {
			return i + 1
		}
	}
	return 0
}
