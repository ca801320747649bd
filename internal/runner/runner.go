// Package runner drives a machine at a fixed frame rate and connects it to
// the input, audio and presentation frontends.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FrameRate is the number of frames per second, timers tick once per frame.
const FrameRate = 60

// Event is a control request of the user.
type Event int

// Control events.
const (
	EventQuit Event = iota + 1
	EventTogglePause
)

// Input updates the keypad and returns the control events that happened
// since the last call.
type Input interface {
	Poll(keypad *machine.Keypad) []Event
}

// Presenter shows the display contents.
type Presenter interface {
	Present(d *display.Display, state machine.State) error
}

// Beeper outputs the sound of the machine.
type Beeper interface {
	SetActive(active bool)
}

// Config contains the runner settings.
type Config struct {
	CyclesPerFrame int
	Frames         int // stop after this many frames, 0 for no limit
}

// Runner executes a machine frame by frame.
type Runner struct {
	logger  *log.Logger
	machine *machine.Machine
	input   Input
	beeper  Beeper
	config  Config

	frames          int
	warnings        int
	reportedOpcodes set.Set[uint16]
	reportedFaults  set.Set[uint16] // program counters of memory faults
}

// New creates a new runner. Input and beeper are optional.
func New(logger *log.Logger, m *machine.Machine, input Input, beeper Beeper, cfg Config) *Runner {
	if cfg.CyclesPerFrame <= 0 {
		cfg.CyclesPerFrame = 1
	}
	return &Runner{
		logger:          logger,
		machine:         m,
		input:           input,
		beeper:          beeper,
		config:          cfg,
		reportedOpcodes: set.New[uint16](),
		reportedFaults:  set.New[uint16](),
	}
}

// Machine returns the machine that is executed.
func (r *Runner) Machine() *machine.Machine {
	return r.machine
}

// Frames returns the number of frames that were executed.
func (r *Runner) Frames() int {
	return r.frames
}

// Frame processes input events, executes the instructions of one frame and
// ticks the timers. It returns true once the run is finished, either because
// the machine stopped or the frame limit was reached.
func (r *Runner) Frame() bool {
	r.handleInput()

	if r.machine.State() == machine.Running {
		for range r.config.CyclesPerFrame {
			if err := r.machine.Step(); err != nil {
				r.reportError(err)
			}
			if r.machine.State() != machine.Running {
				break
			}
		}
		r.machine.Tick()
		r.frames++
	}

	if r.beeper != nil {
		r.beeper.SetActive(r.machine.SoundActive())
	}
	return r.done()
}

// Run executes frames at the frame rate until the run is finished or the
// context is canceled. The presenter is called after every frame.
func (r *Runner) Run(ctx context.Context, presenter Presenter) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		done := r.Frame()
		if presenter != nil {
			if err := presenter.Present(r.machine.Display(), r.machine.State()); err != nil {
				return err
			}
		}
		if done {
			return nil
		}
	}
}

// Stop halts the machine and silences the beeper.
func (r *Runner) Stop() {
	r.machine.Stop()
	if r.beeper != nil {
		r.beeper.SetActive(false)
	}
}

func (r *Runner) done() bool {
	if r.machine.State() == machine.Stopped {
		return true
	}
	return r.config.Frames > 0 && r.frames >= r.config.Frames
}

func (r *Runner) handleInput() {
	if r.input == nil {
		return
	}

	for _, event := range r.input.Poll(r.machine.Keypad()) {
		switch event {
		case EventQuit:
			r.logger.Debug("Quit requested")
			r.machine.Stop()
		case EventTogglePause:
			r.machine.TogglePause()
			r.logger.Info("Run state changed", log.Stringer("state", r.machine.State()))
		}
	}
}

// reportError logs instruction errors. Unknown opcodes are only reported
// once per opcode and memory faults once per program counter, a fetch fault
// repeats on every step since the program counter does not advance.
func (r *Runner) reportError(err error) {
	snapshot := r.machine.Snapshot()

	var unknown *machine.UnknownOpcodeError
	var fault *memory.MemoryFaultError
	switch {
	case errors.As(err, &unknown):
		if r.reportedOpcodes.Contains(unknown.Opcode) {
			return
		}
		r.reportedOpcodes.Add(unknown.Opcode)

	case errors.As(err, &fault):
		if r.reportedFaults.Contains(snapshot.PC) {
			return
		}
		r.reportedFaults.Add(snapshot.PC)
	}

	r.warnings++
	r.logger.Warn("Instruction failed",
		log.Hex("pc", snapshot.PC),
		log.Err(err))
}
