//go:build headless

// Package window implements the desktop frontend based on ebiten.
package window

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Window is not available in headless builds.
type Window struct{}

// New returns ErrUnavailable.
func New(*log.Logger, *display.Display) (*Window, error) {
	return nil, ErrUnavailable
}

// Run returns ErrUnavailable.
func (w *Window) Run(context.Context, *runner.Runner) error {
	return ErrUnavailable
}

// Poll implements runner.Input.
func (w *Window) Poll(*machine.Keypad) []runner.Event {
	return nil
}
