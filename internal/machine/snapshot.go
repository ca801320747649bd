package machine

import "github.com/retroenv/retrochip8/internal/quirks"

// Snapshot is a copy of the observable machine state.
type Snapshot struct {
	State      State
	PC         uint16
	I          uint16
	V          [16]byte
	DelayTimer byte
	SoundTimer byte
	Stack      []uint16
	HighRes    bool
	Quirks     quirks.Quirks
}

// Snapshot returns a copy of the current machine state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		State:      m.state,
		PC:         m.regs.PC,
		I:          m.regs.I,
		V:          m.regs.V,
		DelayTimer: m.regs.DelayTimer,
		SoundTimer: m.regs.SoundTimer,
		Stack:      m.regs.Stack(),
		HighRes:    m.display.HighRes(),
		Quirks:     m.quirks,
	}
}
