package config

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/quirks"
	lua "github.com/yuin/gopher-lua"
)

// Global variable names recognized in configuration scripts.
const (
	globalMode           = "mode"
	globalHighRes        = "high_res"
	globalCyclesPerFrame = "cycles_per_frame"
)

// LoadFile executes the Lua configuration script and applies the settings
// it defines to the emulator options.
func LoadFile(path string, opts *options.Emulator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Load(string(data), opts); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// Load executes a Lua configuration script. A mode setting replaces all
// quirks by the mode preset before the individual quirk settings apply.
// Variables that are not set keep their current values.
func Load(script string, opts *options.Emulator) error {
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer state.Close()

	if err := state.DoString(script); err != nil {
		return fmt.Errorf("executing script: %w", err)
	}

	if err := applyMode(state, opts); err != nil {
		return err
	}

	bools := []struct {
		name   string
		target *bool
	}{
		{"vf_reset", &opts.Quirks.VFReset},
		{"clipping", &opts.Quirks.Clipping},
		{"jumping", &opts.Quirks.Jumping},
		{"shift_uses_vy", &opts.Quirks.ShiftUsesVY},
		{"load_store_increments_i", &opts.Quirks.LoadStoreIncrementsI},
		{globalHighRes, &opts.HighRes},
	}
	for _, b := range bools {
		if err := readBool(state, b.name, b.target); err != nil {
			return err
		}
	}

	return applyCycles(state, opts)
}

func applyMode(state *lua.LState, opts *options.Emulator) error {
	switch value := state.GetGlobal(globalMode).(type) {
	case *lua.LNilType:
		return nil

	case lua.LString:
		mode, err := quirks.ModeFromString(string(value))
		if err != nil {
			return fmt.Errorf("variable '%s': %w", globalMode, err)
		}
		opts.Mode = mode
		opts.Quirks = quirks.Preset(mode)
		return nil

	default:
		return fmt.Errorf("variable '%s' has type %s, expected string", globalMode, value.Type())
	}
}

func readBool(state *lua.LState, name string, target *bool) error {
	switch value := state.GetGlobal(name).(type) {
	case *lua.LNilType:
		return nil

	case lua.LBool:
		*target = bool(value)
		return nil

	default:
		return fmt.Errorf("variable '%s' has type %s, expected boolean", name, value.Type())
	}
}

func applyCycles(state *lua.LState, opts *options.Emulator) error {
	switch value := state.GetGlobal(globalCyclesPerFrame).(type) {
	case *lua.LNilType:
		return nil

	case lua.LNumber:
		cycles := int(value)
		if cycles <= 0 || float64(cycles) != float64(value) {
			return fmt.Errorf("variable '%s' must be a positive integer", globalCyclesPerFrame)
		}
		opts.CyclesPerFrame = cycles
		return nil

	default:
		return fmt.Errorf("variable '%s' has type %s, expected number", globalCyclesPerFrame, value.Type())
	}
}
