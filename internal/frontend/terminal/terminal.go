// Package terminal implements a text mode frontend using half block
// characters, two pixel rows share one character cell.
package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/runner"
)

// keyHold is how long a key counts as pressed after its last key event.
// Terminals only report key presses and repeats, never releases.
const keyHold = 150 * time.Millisecond

const (
	upperHalfBlock = '▀'
	eventBuffer    = 64
)

var styleOff = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)

// Terminal is the tcell based frontend.
type Terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	pressed map[uint8]time.Time
	now     func() time.Time

	closeOnce sync.Once
}

// New initializes the terminal screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return newWithScreen(screen)
}

func newWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
		pressed: map[uint8]time.Time{},
		now:     time.Now,
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents forwards screen events to the runner goroutine until the screen
// is finalized. PollEvent returns nil once that happened.
func (t *Terminal) pollEvents() {
	defer close(t.events)

	for {
		event := t.screen.PollEvent()
		if event == nil {
			return
		}
		select {
		case t.events <- event:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal. It is safe to call multiple times.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Poll implements runner.Input.
func (t *Terminal) Poll(keypad *machine.Keypad) []runner.Event {
	var events []runner.Event
	now := t.now()

	for done := false; !done; {
		select {
		case event, ok := <-t.events:
			if !ok {
				return append(events, runner.EventQuit)
			}
			if e, ok := t.handleEvent(event, keypad, now); ok {
				events = append(events, e)
			}
		default:
			done = true
		}
	}

	for key, pressedAt := range t.pressed {
		if now.Sub(pressedAt) >= keyHold {
			keypad.Set(key, false)
			delete(t.pressed, key)
		}
	}
	return events
}

func (t *Terminal) handleEvent(event tcell.Event, keypad *machine.Keypad, now time.Time) (runner.Event, bool) {
	switch e := event.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return runner.EventQuit, true
		case tcell.KeyRune:
			if e.Rune() == ' ' {
				return runner.EventTogglePause, true
			}
			if key, ok := frontend.KeyForRune(e.Rune()); ok {
				keypad.Set(key, true)
				t.pressed[key] = now
			}
		default:
		}

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return 0, false
}

// Present implements runner.Presenter.
func (t *Terminal) Present(d *display.Display, state machine.State) error {
	step := 2
	if d.HighRes() {
		step = 1
	}

	width := d.Width() / step
	rows := d.Height() / step
	for row := 0; row < rows; row += 2 {
		for col := range width {
			top := d.PixelAt(col*step, row*step)
			bottom := d.PixelAt(col*step, (row+1)*step)
			t.screen.SetContent(col, row/2, upperHalfBlock, nil, cellStyle(top, bottom))
		}
	}

	status := "          "
	if state == machine.Paused {
		status = "PAUSED    "
	}
	for i, r := range status {
		t.screen.SetContent(i, rows/2, r, nil, tcell.StyleDefault)
	}

	t.screen.Show()
	return nil
}

func cellStyle(top, bottom bool) tcell.Style {
	style := styleOff
	if top {
		style = style.Foreground(tcell.ColorWhite)
	}
	if bottom {
		style = style.Background(tcell.ColorWhite)
	}
	return style
}
