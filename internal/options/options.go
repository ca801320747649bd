// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/set"
)

// Supported frontends.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// DefaultCyclesPerFrame is the number of instructions executed per 60 Hz frame.
const DefaultCyclesPerFrame = 11

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Config string `flag:"c" usage:"Lua configuration file"`
}

// Flags contains behavior options.
type Flags struct {
	Mode           string `flag:"m" usage:"quirk mode: chip8, schip-legacy, schip-modern (default: auto-detect)"`
	Frontend       string `flag:"f" usage:"frontend: window, terminal, headless" default:"window"`
	CyclesPerFrame int    `flag:"cycles" usage:"instructions executed per frame" default:"11"`
	Frames         int    `flag:"frames" usage:"stop after the given number of frames, 0 runs until exit"`
	Trace          bool   `flag:"trace" usage:"log every executed instruction"`
	Dump           bool   `flag:"dump" usage:"print the machine state on exit"`
	Debug          bool   `flag:"debug" usage:"enable debug logging"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains the individual quirk overrides.
type QuirkFlags struct {
	HighRes              bool `flag:"hires" usage:"start in 128x64 mode"`
	VFReset              bool `flag:"vfreset" usage:"logic opcodes reset VF"`
	Clipping             bool `flag:"clipping" usage:"clip sprites at the screen edge"`
	Jumping              bool `flag:"jumping" usage:"Bnnn jumps to nnn + Vx"`
	ShiftUsesVY          bool `flag:"shiftvy" usage:"shift opcodes use Vy as source"`
	LoadStoreIncrementsI bool `flag:"incrementi" usage:"Fx55/Fx65 increment I"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	QuirkFlags

	// Explicit contains the names of all flags that were set on the
	// command line, they take precedence over the configuration file.
	Explicit set.Set[string]
}

// Emulator defines the resolved settings of a machine run.
type Emulator struct {
	Mode           quirks.Mode
	Quirks         quirks.Quirks
	HighRes        bool
	CyclesPerFrame int
}

// NewEmulator returns emulator options using the preset of the given mode.
func NewEmulator(mode quirks.Mode) Emulator {
	return Emulator{
		Mode:           mode,
		Quirks:         quirks.Preset(mode),
		CyclesPerFrame: DefaultCyclesPerFrame,
	}
}

// ApplyFlags overrides the settings with all explicitly set command line flags.
func (e *Emulator) ApplyFlags(opts Program) {
	overrides := []struct {
		name   string
		value  bool
		target *bool
	}{
		{"hires", opts.HighRes, &e.HighRes},
		{"vfreset", opts.VFReset, &e.Quirks.VFReset},
		{"clipping", opts.Clipping, &e.Quirks.Clipping},
		{"jumping", opts.Jumping, &e.Quirks.Jumping},
		{"shiftvy", opts.ShiftUsesVY, &e.Quirks.ShiftUsesVY},
		{"incrementi", opts.LoadStoreIncrementsI, &e.Quirks.LoadStoreIncrementsI},
	}
	for _, override := range overrides {
		if opts.Explicit.Contains(override.name) {
			*override.target = override.value
		}
	}

	if opts.Explicit.Contains("cycles") && opts.CyclesPerFrame > 0 {
		e.CyclesPerFrame = opts.CyclesPerFrame
	}
}
