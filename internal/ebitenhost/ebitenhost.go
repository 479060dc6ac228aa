// Package ebitenhost runs a CHIP-8 machine in a window using ebiten.
package ebitenhost

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/render"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

var _ runner.Display = (*Game)(nil)

// Game implements the ebiten game loop for a machine. Every update
// executes one frame of the runner.
type Game struct {
	ctx     context.Context
	logger  *log.Logger
	machine *vm.Machine
	keys    *keypad.State
	runner  *runner.Runner

	maxFrames  int
	scale      int
	screenshot string // file written by F12

	fb     vm.Framebuffer
	pixels []byte
	screen *ebiten.Image
	dirty  bool
}

// Run opens a window and runs the machine until the window is closed, Esc
// is pressed or the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, machine *vm.Machine, keys *keypad.State,
	cfg runner.Config, opts options.Program) error {

	game := &Game{
		ctx:        ctx,
		logger:     logger,
		machine:    machine,
		keys:       keys,
		maxFrames:  cfg.MaxFrames,
		scale:      max(opts.Scale, 1),
		screenshot: screenshotName(opts),
	}

	var audio runner.Audio
	beep, err := newBeeper()
	if err != nil {
		logger.Warn("Audio disabled", log.Err(err))
	} else {
		audio = beep
	}
	game.runner = runner.New(logger, machine, cfg, game, audio)

	ebiten.SetWindowSize(vm.ScreenWidth*game.scale, vm.ScreenHeight*game.scale)
	ebiten.SetWindowTitle("retrochip8 - " + filepath.Base(opts.Input))
	ebiten.SetTPS(vm.TimerFrequency)

	err = ebiten.RunGame(game)
	if !opts.Quiet {
		game.runner.LogSummary()
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return ctx.Err()
}

// Update processes the input and executes one frame.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.saveScreenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.keys.Reset()
		g.machine.Reset()
		g.logger.Info("Machine reset")
	}
	g.updateKeys()

	if err := g.runner.Frame(); err != nil {
		return fmt.Errorf("executing program: %w", err)
	}

	if g.maxFrames > 0 && g.runner.Frames() >= g.maxFrames {
		return ebiten.Termination
	}
	return nil
}

// Render stores the framebuffer for the next draw.
func (g *Game) Render(fb *vm.Framebuffer) {
	g.fb = *fb
	g.pixels = render.RGBA(fb, g.pixels)
	g.dirty = true
}

// Draw draws the framebuffer scaled to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(vm.ScreenWidth, vm.ScreenHeight)
		g.pixels = render.RGBA(&g.fb, g.pixels)
		g.dirty = true
	}
	if g.dirty {
		g.screen.WritePixels(g.pixels)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.screen, op)
}

// Layout returns the scaled screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return vm.ScreenWidth * g.scale, vm.ScreenHeight * g.scale
}

func (g *Game) updateKeys() {
	for key, value := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(key):
			g.keys.Press(value)
		case inpututil.IsKeyJustReleased(key):
			g.keys.Release(value)
		}
	}
}

func (g *Game) saveScreenshot() {
	if err := render.SaveBMP(g.screenshot, &g.fb, g.scale); err != nil {
		g.logger.Error("Writing screenshot failed", log.Err(err))
		return
	}
	g.logger.Info("Screenshot written", log.String("file", g.screenshot))
}

// screenshotName returns the screenshot file name, defaulting to the ROM
// name with a .bmp extension.
func screenshotName(opts options.Program) string {
	if opts.Screenshot != "" {
		return opts.Screenshot
	}
	return strings.TrimSuffix(opts.Input, filepath.Ext(opts.Input)) + ".bmp"
}
