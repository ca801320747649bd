// Package quirks contains the configurable behavior differences between
// CHIP-8 and SUPER-CHIP interpreters.
package quirks

import (
	"fmt"
	"strings"
)

// Mode names a preset of quirk settings.
type Mode string

// Supported quirk presets.
const (
	Chip8       Mode = "chip8"        // original COSMAC VIP interpreter
	SChipLegacy Mode = "schip-legacy" // SUPER-CHIP 1.0 on the HP48
	SChipModern Mode = "schip-modern" // SUPER-CHIP 1.1 as run by modern interpreters
)

// Quirks is a set of independent toggles that each change the behavior of
// one opcode family. It is read by the dispatcher and never written by it.
type Quirks struct {
	VFReset              bool // 8xy1/8xy2/8xy3 clear VF
	Clipping             bool // sprites are clipped at the screen edge instead of wrapping
	Jumping              bool // Bnnn adds Vx instead of V0
	ShiftUsesVY          bool // 8xy6/8xyE copy Vy to Vx before shifting
	LoadStoreIncrementsI bool // Fx55/Fx65 advance I by x+1
}

// Modes returns all supported preset names.
func Modes() []Mode {
	return []Mode{Chip8, SChipLegacy, SChipModern}
}

// ModeFromString returns the mode matching the given name, ignoring case.
func ModeFromString(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, mode := range Modes() {
		if string(mode) == name {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unsupported quirk mode '%s'", name)
}

// String implements the fmt.Stringer interface.
func (m Mode) String() string {
	return string(m)
}

// Preset returns the quirk settings of the given mode.
// Unknown modes return the CHIP-8 settings.
func Preset(mode Mode) Quirks {
	switch mode {
	case SChipLegacy:
		return Quirks{
			Clipping:             true,
			Jumping:              true,
			LoadStoreIncrementsI: true,
		}

	case SChipModern:
		return Quirks{
			Clipping: true,
			Jumping:  true,
		}

	default:
		return Quirks{
			VFReset:              true,
			Clipping:             true,
			ShiftUsesVY:          true,
			LoadStoreIncrementsI: true,
		}
	}
}
