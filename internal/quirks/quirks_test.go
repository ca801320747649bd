package quirks

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestModeFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{"chip8", "chip8", Chip8, false},
		{"upper case", "SCHIP-MODERN", SChipModern, false},
		{"whitespace", " schip-legacy ", SChipLegacy, false},
		{"unknown", "xo-chip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ModeFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestPreset(t *testing.T) {
	chip8 := Preset(Chip8)
	assert.True(t, chip8.VFReset)
	assert.True(t, chip8.ShiftUsesVY)
	assert.True(t, chip8.LoadStoreIncrementsI)
	assert.False(t, chip8.Jumping)

	modern := Preset(SChipModern)
	assert.False(t, modern.VFReset)
	assert.False(t, modern.ShiftUsesVY)
	assert.False(t, modern.LoadStoreIncrementsI)
	assert.True(t, modern.Jumping)

	legacy := Preset(SChipLegacy)
	assert.True(t, legacy.LoadStoreIncrementsI)

	assert.Equal(t, chip8, Preset(Mode("unknown")))
}
