package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, disasm.Options, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"prog"}, args...)

	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, disasmOpts, err := parseArgs(t, "pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", opts.Input)
	assert.Equal(t, options.ModeWindow, opts.Mode())
	assert.Equal(t, DefaultHeadlessFrames, opts.Frames)
	assert.Equal(t, DefaultScale, opts.Scale)
	assert.Equal(t, 700, opts.IPS)
	assert.Equal(t, disasm.NewOptions(), disasmOpts)
}

func TestParseFlags_Modes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Mode
	}{
		{"window", []string{"pong.ch8"}, options.ModeWindow},
		{"headless", []string{"-headless", "-frames", "10", "pong.ch8"}, options.ModeHeadless},
		{"disasm", []string{"-disasm", "pong.ch8"}, options.ModeDisasm},
		{"batch", []string{"-batch", "*.ch8"}, options.ModeDisasm},
		{"input flag", []string{"-i", "pong.ch8"}, options.ModeWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts.Mode())
		})
	}
}

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want disasm.Options
	}{
		{
			name: "default flags",
			args: []string{"-disasm", "test.ch8"},
			want: disasm.Options{HexComments: true, OffsetComments: true},
		},
		{
			name: "nohexcomments flag",
			args: []string{"-disasm", "-nohexcomments", "test.ch8"},
			want: disasm.Options{OffsetComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"-disasm", "-nooffsets", "test.ch8"},
			want: disasm.Options{HexComments: true},
		},
		{
			name: "all listing flags",
			args: []string{"-disasm", "-nohexcomments", "-nooffsets", "-z", "test.ch8"},
			want: disasm.Options{ZeroBytes: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing ROM", nil},
		{"argument after ROM", []string{"pong.ch8", "-debug"}},
		{"disasm and headless", []string{"-disasm", "-headless", "pong.ch8"}},
		{"screenshot when disassembling", []string{"-disasm", "-screenshot", "a.bmp", "pong.ch8"}},
		{"negative frames", []string{"-frames", "-1", "pong.ch8"}},
		{"zero scale", []string{"-scale", "0", "pong.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseArgs(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	valid := options.Program{Flags: options.Flags{IPS: 700, Scale: 1}}
	assert.NoError(t, validateOptionCombinations(valid))

	invalid := valid
	invalid.IPS = 0
	assert.Error(t, validateOptionCombinations(invalid))

	invalid = valid
	invalid.Batch = "*.ch8"
	invalid.Headless = true
	assert.Error(t, validateOptionCombinations(invalid))
}
