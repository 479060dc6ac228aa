// Package fileprocessor handles file selection and output creation for a
// program run.
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete processing workflow of a single ROM file.
func ProcessFile(ctx context.Context, logger *log.Logger, frontend pipeline.Frontend,
	opts options.Program, disasmOptions disasm.Options) error {

	var writer io.Writer
	if opts.Mode() == options.ModeDisasm {
		w, err := createWriter(opts)
		if err != nil {
			return fmt.Errorf("creating writer: %w", err)
		}
		defer func() {
			if closer, ok := w.(io.Closer); ok && w != os.Stdout {
				_ = closer.Close()
			}
		}()
		writer = w
	}

	p := pipeline.New(logger, frontend)
	if err := p.Execute(ctx, opts, disasmOptions, writer); err != nil {
		return fmt.Errorf("processing file: %w", err)
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// OptionsForFile returns the options for processing a single input file.
// Every file of a batch run gets its own listing file named after it.
func OptionsForFile(opts options.Program, inputFile string) options.Program {
	opts.Input = inputFile
	if opts.Batch != "" {
		opts.Output = GenerateOutputFilename(inputFile)
	}
	return opts
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8 - CHIP-8 emulator and disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))
}
