package options

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/set"
)

func TestNewEmulator(t *testing.T) {
	opts := NewEmulator(quirks.SChipModern)
	assert.Equal(t, quirks.SChipModern, opts.Mode)
	assert.Equal(t, quirks.Preset(quirks.SChipModern), opts.Quirks)
	assert.Equal(t, DefaultCyclesPerFrame, opts.CyclesPerFrame)
	assert.False(t, opts.HighRes)
}

func TestApplyFlags(t *testing.T) {
	explicit := set.New[string]()
	explicit.Add("vfreset")
	explicit.Add("hires")
	explicit.Add("cycles")

	prog := Program{
		Flags: Flags{CyclesPerFrame: 30},
		QuirkFlags: QuirkFlags{
			HighRes:  true,
			VFReset:  false,
			Clipping: false, // not explicit, preset value is kept
		},
		Explicit: explicit,
	}

	opts := NewEmulator(quirks.Chip8)
	opts.ApplyFlags(prog)

	assert.True(t, opts.HighRes)
	assert.False(t, opts.Quirks.VFReset)
	assert.True(t, opts.Quirks.Clipping)
	assert.Equal(t, 30, opts.CyclesPerFrame)
}
