package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		check   func(t *testing.T, opts options.Emulator)
		wantErr string
	}{
		{
			name:   "empty script keeps defaults",
			script: "",
			check: func(t *testing.T, opts options.Emulator) {
				t.Helper()
				assert.Equal(t, options.NewEmulator(quirks.Chip8), opts)
			},
		},
		{
			name:   "mode replaces preset",
			script: `mode = "schip-modern"`,
			check: func(t *testing.T, opts options.Emulator) {
				t.Helper()
				assert.Equal(t, quirks.SChipModern, opts.Mode)
				assert.Equal(t, quirks.Preset(quirks.SChipModern), opts.Quirks)
			},
		},
		{
			name: "quirks after mode",
			script: `
mode = "schip-legacy"
vf_reset = true
clipping = false
high_res = true
cycles_per_frame = 20
`,
			check: func(t *testing.T, opts options.Emulator) {
				t.Helper()
				assert.True(t, opts.Quirks.VFReset)
				assert.False(t, opts.Quirks.Clipping)
				assert.True(t, opts.Quirks.Jumping)
				assert.True(t, opts.HighRes)
				assert.Equal(t, 20, opts.CyclesPerFrame)
			},
		},
		{
			name:   "computed values",
			script: `cycles_per_frame = 10 * 3`,
			check: func(t *testing.T, opts options.Emulator) {
				t.Helper()
				assert.Equal(t, 30, opts.CyclesPerFrame)
			},
		},
		{
			name:    "invalid mode",
			script:  `mode = "xo-chip"`,
			wantErr: "unsupported quirk mode",
		},
		{
			name:    "wrong boolean type",
			script:  `clipping = "yes"`,
			wantErr: "expected boolean",
		},
		{
			name:    "fractional cycles",
			script:  `cycles_per_frame = 1.5`,
			wantErr: "positive integer",
		},
		{
			name:    "syntax error",
			script:  `mode = `,
			wantErr: "executing script",
		},
		{
			name:    "standard libraries are not loaded",
			script:  `os.exit(1)`,
			wantErr: "executing script",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.NewEmulator(quirks.Chip8)
			err := Load(tt.script, &opts)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chip8.lua")
	assert.NoError(t, os.WriteFile(path, []byte(`jumping = true`), 0o600))

	opts := options.NewEmulator(quirks.Chip8)
	assert.NoError(t, LoadFile(path, &opts))
	assert.True(t, opts.Quirks.Jumping)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.lua"), &opts)
	assert.Error(t, err)
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false, false))
	assert.NotNil(t, CreateLogger(true, false, false))
	assert.NotNil(t, CreateLogger(false, true, false))
	assert.NotNil(t, CreateLogger(false, true, true))
}
