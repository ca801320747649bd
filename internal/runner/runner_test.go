package runner

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testInput struct {
	events [][]Event
	key    int
}

func (i *testInput) Poll(keypad *machine.Keypad) []Event {
	if i.key >= 0 {
		keypad.Set(uint8(i.key), true)
	}
	if len(i.events) == 0 {
		return nil
	}
	events := i.events[0]
	i.events = i.events[1:]
	return events
}

type testBeeper struct {
	active  bool
	changes int
}

func (b *testBeeper) SetActive(active bool) {
	if active != b.active {
		b.changes++
	}
	b.active = active
}

type testPresenter struct {
	frames int
}

func (p *testPresenter) Present(*display.Display, machine.State) error {
	p.frames++
	return nil
}

func newTestRunner(t *testing.T, input Input, beeper Beeper, cfg Config, program ...uint16) *Runner {
	t.Helper()

	rom := make([]byte, 0, len(program)*2)
	for _, opcode := range program {
		rom = append(rom, byte(opcode>>8), byte(opcode))
	}
	logger := log.NewTestLogger(t)
	m, err := machine.New(logger, rom, machine.Config{
		Quirks:     quirks.Preset(quirks.Chip8),
		RandSource: rand.NewPCG(1, 2),
	})
	assert.NoError(t, err)
	return New(logger, m, input, beeper, cfg)
}

func TestFrameExecutesCycles(t *testing.T) {
	// endless loop of increments
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 10}, 0x7001, 0x1200)

	assert.False(t, r.Frame())
	assert.Equal(t, byte(5), r.Machine().Snapshot().V[0])
	assert.Equal(t, 1, r.Frames())
}

func TestFrameStopsOnExit(t *testing.T) {
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 10}, 0x7001, 0x00FD, 0x7001)

	assert.True(t, r.Frame())
	assert.Equal(t, machine.Stopped, r.Machine().State())
	assert.Equal(t, byte(1), r.Machine().Snapshot().V[0])
}

func TestFrameLimit(t *testing.T) {
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 1, Frames: 3}, 0x1200)

	assert.False(t, r.Frame())
	assert.False(t, r.Frame())
	assert.True(t, r.Frame())
}

func TestFrameEvents(t *testing.T) {
	input := &testInput{
		events: [][]Event{{EventTogglePause}, nil, {EventTogglePause}, {EventQuit}},
		key:    -1,
	}
	r := newTestRunner(t, input, nil, Config{CyclesPerFrame: 1}, 0x7001, 0x1200)

	assert.False(t, r.Frame())
	assert.Equal(t, machine.Paused, r.Machine().State())
	assert.False(t, r.Frame())
	assert.Equal(t, 0, r.Frames())

	assert.False(t, r.Frame())
	assert.Equal(t, machine.Running, r.Machine().State())
	assert.Equal(t, byte(1), r.Machine().Snapshot().V[0])

	assert.True(t, r.Frame())
	assert.Equal(t, machine.Stopped, r.Machine().State())
}

func TestFrameKeypadInput(t *testing.T) {
	input := &testInput{key: 7}
	r := newTestRunner(t, input, nil, Config{CyclesPerFrame: 1}, 0xF00A)

	r.Frame()
	snapshot := r.Machine().Snapshot()
	assert.Equal(t, byte(7), snapshot.V[0])
	assert.Equal(t, uint16(0x202), snapshot.PC)
}

func TestFrameBeeper(t *testing.T) {
	beeper := &testBeeper{}
	// set sound timer to 2 and loop
	r := newTestRunner(t, nil, beeper, Config{CyclesPerFrame: 2}, 0x6002, 0xF018, 0x1204)

	r.Frame()
	assert.True(t, beeper.active)
	r.Frame()
	assert.False(t, beeper.active)
	assert.Equal(t, 2, beeper.changes)
}

func TestFrameContinuesAfterErrors(t *testing.T) {
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 4}, 0x0123, 0x00EE, 0x7001, 0x1200)

	assert.False(t, r.Frame())
	assert.Equal(t, byte(1), r.Machine().Snapshot().V[0])
	assert.True(t, r.reportedOpcodes.Contains(0x0123))
	assert.Equal(t, 2, r.warnings)
}

func TestFrameReportsFetchFaultOnce(t *testing.T) {
	// jump to the last byte, fetching its low byte faults on every step
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 4}, 0x1FFF)

	for range 3 {
		assert.False(t, r.Frame())
	}
	assert.Equal(t, uint16(0x0FFF), r.Machine().Snapshot().PC)
	assert.True(t, r.reportedFaults.Contains(0x0FFF))
	assert.Equal(t, 1, r.reportedFaults.Size())
	assert.Equal(t, 1, r.warnings)
}

func TestRun(t *testing.T) {
	presenter := &testPresenter{}
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 1, Frames: 2}, 0x1200)

	assert.NoError(t, r.Run(context.Background(), presenter))
	assert.Equal(t, 2, presenter.frames)
}

func TestRunCanceled(t *testing.T) {
	r := newTestRunner(t, nil, nil, Config{CyclesPerFrame: 1}, 0x1200)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := r.Run(ctx, nil)
	assert.Error(t, err)
}

func TestStop(t *testing.T) {
	beeper := &testBeeper{active: true}
	r := newTestRunner(t, nil, beeper, Config{}, 0x1200)

	r.Stop()
	assert.Equal(t, machine.Stopped, r.Machine().State())
	assert.False(t, beeper.active)
}
