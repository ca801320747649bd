package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func headlessOptions(input string) options.Program {
	return options.Program{
		Parameters: options.Parameters{Input: input},
		Flags: options.Flags{
			Frontend:       options.FrontendHeadless,
			CyclesPerFrame: options.DefaultCyclesPerFrame,
			Quiet:          true,
		},
		Explicit: set.New[string](),
	}
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t), &bytes.Buffer{})

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecuteHeadless(t *testing.T) {
	// draw digit 0 at 0,0 and exit
	rom := []byte{
		0x00, 0xE0, // cls
		0x6A, 0x05, // ld VA, $05
		0x60, 0x00, // ld V0, $00
		0xF0, 0x29, // ld F, V0
		0xD0, 0x05, // drw V0, V0, 5
		0x00, 0xFD, // exit
	}
	path := createTempFile(t, "test.ch8", rom)

	var out bytes.Buffer
	p := New(log.NewTestLogger(t), &out)

	snapshot, err := p.Execute(context.Background(), headlessOptions(path))
	assert.NoError(t, err)
	assert.Equal(t, machine.Stopped, snapshot.State)
	assert.Equal(t, byte(5), snapshot.V[0xA])
	assert.Equal(t, uint16(memory.FontStart), snapshot.I)
	assert.Equal(t, quirks.Preset(quirks.Chip8), snapshot.Quirks)

	lines := strings.Split(out.String(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "####."))
	assert.True(t, strings.HasPrefix(lines[1], "#..#."))
}

func TestExecuteSettingsPrecedence(t *testing.T) {
	path := createTempFile(t, "test.sc8", []byte{0x00, 0xFD})
	configPath := createTempFile(t, "config.lua", []byte(`
jumping = false
clipping = false
`))

	opts := headlessOptions(path)
	opts.Config = configPath
	opts.Clipping = true
	opts.Explicit.Add("clipping")

	p := New(log.NewTestLogger(t), &bytes.Buffer{})
	snapshot, err := p.Execute(context.Background(), opts)
	assert.NoError(t, err)

	expected := quirks.Preset(quirks.SChipModern)
	expected.Jumping = false
	assert.Equal(t, expected, snapshot.Quirks)
}

func TestExecuteFrameLimitAndDump(t *testing.T) {
	path := createTempFile(t, "loop.ch8", []byte{0x70, 0x01, 0x12, 0x00})

	opts := headlessOptions(path)
	opts.Frames = 2
	opts.CyclesPerFrame = 4
	opts.Explicit.Add("cycles")
	opts.Dump = true

	var out bytes.Buffer
	p := New(log.NewTestLogger(t), &out)
	snapshot, err := p.Execute(context.Background(), opts)
	assert.NoError(t, err)
	assert.Equal(t, machine.Running, snapshot.State)
	assert.Equal(t, byte(4), snapshot.V[0])
	assert.Contains(t, out.String(), "DelayTimer")
}

func TestExecuteErrors(t *testing.T) {
	p := New(log.NewTestLogger(t), &bytes.Buffer{})

	_, err := p.Execute(context.Background(), headlessOptions(filepath.Join(t.TempDir(), "missing.ch8")))
	assert.True(t, errors.Is(err, loader.ErrRomLoadFailed))

	large := createTempFile(t, "large.ch8", make([]byte, memory.MaxROMSize+1))
	_, err = p.Execute(context.Background(), headlessOptions(large))
	assert.True(t, errors.Is(err, memory.ErrRomTooLarge))

	opts := headlessOptions(createTempFile(t, "test.ch8", []byte{0x00, 0xFD}))
	opts.Mode = "nes"
	_, err = p.Execute(context.Background(), opts)
	assert.Error(t, err)

	opts = headlessOptions(createTempFile(t, "test.ch8", []byte{0x00, 0xFD}))
	opts.Config = createTempFile(t, "bad.lua", []byte(`mode = 1`))
	_, err = p.Execute(context.Background(), opts)
	assert.ErrorContains(t, err, "loading config")
}

func TestExecuteCanceled(t *testing.T) {
	path := createTempFile(t, "loop.ch8", []byte{0x12, 0x00})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(log.NewTestLogger(t), &bytes.Buffer{})
	_, err := p.Execute(ctx, headlessOptions(path))
	assert.True(t, errors.Is(err, context.Canceled))
}
