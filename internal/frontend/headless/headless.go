// Package headless implements a frontend without any presentation or input,
// the screen is printed as text once the run finished.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Frontend is the headless frontend.
type Frontend struct {
	out io.Writer
}

// New returns a headless frontend that prints to the given writer.
func New(out io.Writer) *Frontend {
	return &Frontend{out: out}
}

// Poll implements runner.Input, no keys are ever pressed.
func (f *Frontend) Poll(*machine.Keypad) []runner.Event {
	return nil
}

// Present implements runner.Presenter and does nothing.
func (f *Frontend) Present(*display.Display, machine.State) error {
	return nil
}

// PrintScreen writes the display contents as text.
func (f *Frontend) PrintScreen(d *display.Display) error {
	if _, err := fmt.Fprint(f.out, d.Text('#', '.')); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}
