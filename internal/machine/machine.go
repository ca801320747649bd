// Package machine implements the CHIP-8 execution engine: the register
// file, instruction dispatch and the run state.
package machine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the settings a machine is created with.
type Config struct {
	Quirks  quirks.Quirks
	HighRes bool // start in 128x64 mode
	Trace   bool // log every executed instruction

	// RandSource is used by the random opcode. A time seeded source is
	// used if it is not set.
	RandSource rand.Source
}

// Machine is a single CHIP-8 interpreter instance. Step and Tick must be
// called from the same goroutine, only the keypad may be accessed
// concurrently.
type Machine struct {
	logger *log.Logger
	trace  bool

	memory  *memory.Memory
	display *display.Display
	keypad  *Keypad
	regs    Registers
	quirks  quirks.Quirks
	state   State
	rng     *rand.Rand
}

// New returns a running machine with the ROM loaded at the program start.
func New(logger *log.Logger, rom []byte, cfg Config) (*Machine, error) {
	mem := memory.New()
	if err := mem.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	source := cfg.RandSource
	if source == nil {
		seed := uint64(time.Now().UnixNano())
		source = rand.NewPCG(seed, seed>>32)
	}

	m := &Machine{
		logger:  logger,
		trace:   cfg.Trace,
		memory:  mem,
		display: display.New(),
		keypad:  &Keypad{},
		regs:    newRegisters(),
		state:   Running,
		rng:     rand.New(source),
	}
	m.display.SetHighRes(cfg.HighRes)
	m.SetQuirks(cfg.Quirks)
	return m, nil
}

// Step fetches, decodes and executes one instruction. It does nothing if the
// machine is not running. Returned errors only concern the executed
// instruction, the machine stays usable.
func (m *Machine) Step() error {
	if m.state != Running {
		return nil
	}

	ins, err := instruction.Decode(m.memory, m.regs.PC)
	if err != nil {
		return fmt.Errorf("fetching instruction at $%04X: %w", m.regs.PC, err)
	}
	m.regs.PC += instruction.Size

	if m.trace {
		m.logger.Debug("Executing instruction",
			log.Hex("address", ins.Address),
			log.String("instruction", ins.Mnemonic()))
	}

	if err := handlers[ins.Op](m, ins); err != nil {
		return fmt.Errorf("executing %04X at $%04X: %w", ins.Opcode, ins.Address, err)
	}
	return nil
}

// Tick decrements the delay and sound timers. It is expected to be called
// at 60 Hz and does nothing if the machine is not running.
func (m *Machine) Tick() {
	if m.state != Running {
		return
	}
	if m.regs.DelayTimer > 0 {
		m.regs.DelayTimer--
	}
	if m.regs.SoundTimer > 0 {
		m.regs.SoundTimer--
	}
}

// SoundActive returns whether the beeper should currently sound.
func (m *Machine) SoundActive() bool {
	return m.state == Running && m.regs.SoundTimer > 0
}

// State returns the current run state.
func (m *Machine) State() State {
	return m.state
}

// TogglePause switches between running and paused.
func (m *Machine) TogglePause() {
	switch m.state {
	case Running:
		m.state = Paused
	case Paused:
		m.state = Running
	case Stopped:
	}
}

// Stop halts the machine permanently.
func (m *Machine) Stop() {
	m.state = Stopped
}

// SetQuirks replaces the quirk settings. It must not be called concurrently
// with Step.
func (m *Machine) SetQuirks(q quirks.Quirks) {
	m.quirks = q
	m.display.SetClipping(q.Clipping)
}

// Quirks returns the active quirk settings.
func (m *Machine) Quirks() quirks.Quirks {
	return m.quirks
}

// Display returns the framebuffer of the machine.
func (m *Machine) Display() *display.Display {
	return m.display
}

// Keypad returns the keypad of the machine.
func (m *Machine) Keypad() *Keypad {
	return m.keypad
}

// Memory returns the address space of the machine.
func (m *Machine) Memory() *memory.Memory {
	return m.memory
}
