// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the raw program image from the file. Images that do not fit
// into the program memory are rejected with vm.ErrROMTooLarge.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads the raw program image from the reader.
func (l *Loader) Read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, vm.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}
	if len(data) > vm.MaxProgramSize {
		return nil, fmt.Errorf("%w: more than %d bytes", vm.ErrROMTooLarge, vm.MaxProgramSize)
	}
	return data, nil
}
