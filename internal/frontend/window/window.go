//go:build !headless

// Package window implements the desktop frontend based on ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// Scale is the window size multiplier of the 128x64 framebuffer.
const Scale = 10

const title = "retrochip8"

// keys are the ebiten keys matching the characters of frontend.Layout.
var keys = [len(frontend.Layout)]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

// Window is the ebiten game that drives the runner from its update loop.
type Window struct {
	logger  *log.Logger
	display *display.Display
	ctx     context.Context
	runner  *runner.Runner

	texture *ebiten.Image
	pixels  []byte

	clipboardOnce sync.Once
	clipboardOK   bool
}

// New returns a window frontend that shows the given display.
func New(logger *log.Logger, d *display.Display) (*Window, error) {
	return &Window{
		logger:  logger,
		display: d,
		pixels:  make([]byte, display.Width*display.Height*4),
	}, nil
}

// Run opens the window and executes frames until the runner finished, the
// window is closed or the context is canceled. It must be called from the
// main goroutine.
func (w *Window) Run(ctx context.Context, r *runner.Runner) error {
	w.ctx = ctx
	w.runner = r

	ebiten.SetWindowSize(display.Width*Scale, display.Height*Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(runner.FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Poll implements runner.Input.
func (w *Window) Poll(keypad *machine.Keypad) []runner.Event {
	for i, key := range keys {
		keypad.Set(frontend.KeyAt(i), ebiten.IsKeyPressed(key))
	}

	var events []runner.Event
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, runner.EventQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, runner.EventTogglePause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		w.copyScreen()
	}
	return events
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		w.runner.Stop()
		return ebiten.Termination
	}
	if w.runner.Frame() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.texture == nil {
		w.texture = ebiten.NewImage(display.Width, display.Height)
	}

	fillPixels(w.pixels, w.display)
	w.texture.WritePixels(w.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(Scale, Scale)
	screen.DrawImage(w.texture, op)

	if w.runner.Machine().State() == machine.Paused {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 8, 20, color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff})
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return display.Width * Scale, display.Height * Scale
}

// copyScreen puts the screen contents as text into the clipboard.
func (w *Window) copyScreen() {
	w.clipboardOnce.Do(func() {
		w.clipboardOK = clipboard.Init() == nil
	})
	if !w.clipboardOK {
		w.logger.Warn("Clipboard is not available")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(w.display.Text('#', '.')))
	w.logger.Info("Copied screen to clipboard")
}
