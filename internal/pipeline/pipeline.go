// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/k0kubun/pp/v3"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend/audio"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	out      io.Writer
}

// New creates a new emulation pipeline. Text output of the headless
// frontend and state dumps are written to out.
func New(logger *log.Logger, out io.Writer) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		out:      out,
	}
}

// Execute runs the complete emulation pipeline and returns the final
// machine state.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (machine.Snapshot, error) {
	// Detect quirk mode
	mode, err := p.detector.Detect(opts)
	if err != nil {
		return machine.Snapshot{}, fmt.Errorf("detecting mode: %w", err)
	}

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return machine.Snapshot{}, fmt.Errorf("loading rom: %w", err)
	}

	// Resolve settings: preset, then config file, then command line flags
	settings := options.NewEmulator(mode)
	if opts.Config != "" {
		if err := config.LoadFile(opts.Config, &settings); err != nil {
			return machine.Snapshot{}, fmt.Errorf("loading config: %w", err)
		}
	}
	settings.ApplyFlags(opts)

	return p.ExecuteWithROM(ctx, rom, opts, settings)
}

// ExecuteWithROM runs the emulation with a pre-loaded ROM and resolved settings.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	settings options.Emulator) (machine.Snapshot, error) {

	m, err := machine.New(p.logger, rom, machine.Config{
		Quirks:  settings.Quirks,
		HighRes: settings.HighRes,
		Trace:   opts.Trace,
	})
	if err != nil {
		return machine.Snapshot{}, fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, settings, len(rom))

	cfg := runner.Config{
		CyclesPerFrame: settings.CyclesPerFrame,
		Frames:         opts.Frames,
	}
	if err := p.run(ctx, m, opts.Frontend, cfg); err != nil {
		return m.Snapshot(), err
	}

	snapshot := m.Snapshot()
	if opts.Dump {
		if _, err := pp.Fprintln(p.out, snapshot); err != nil {
			return snapshot, fmt.Errorf("dumping machine state: %w", err)
		}
	}
	return snapshot, nil
}

// run executes the machine using the selected frontend.
func (p *Pipeline) run(ctx context.Context, m *machine.Machine, frontend string, cfg runner.Config) error {
	switch frontend {
	case options.FrontendHeadless, "":
		h := headless.New(p.out)
		r := runner.New(p.logger, m, h, nil, cfg)
		if err := r.Run(ctx, h); err != nil {
			return fmt.Errorf("running headless: %w", err)
		}
		return h.PrintScreen(m.Display())

	case options.FrontendTerminal:
		t, err := terminal.New()
		if err != nil {
			return fmt.Errorf("creating terminal frontend: %w", err)
		}
		defer t.Close()

		beeper, closeBeeper := p.openBeeper()
		defer closeBeeper()

		r := runner.New(p.logger, m, t, beeper, cfg)
		if err := r.Run(ctx, t); err != nil {
			return fmt.Errorf("running terminal: %w", err)
		}
		return nil

	case options.FrontendWindow:
		w, err := window.New(p.logger, m.Display())
		if err != nil {
			return fmt.Errorf("creating window frontend: %w", err)
		}

		beeper, closeBeeper := p.openBeeper()
		defer closeBeeper()

		r := runner.New(p.logger, m, w, beeper, cfg)
		if err := w.Run(ctx, r); err != nil {
			return err
		}
		return ctx.Err()

	default:
		return fmt.Errorf("unsupported frontend '%s'", frontend)
	}
}

// openBeeper opens the audio output. Missing audio support is not fatal,
// the machine runs without sound instead.
func (p *Pipeline) openBeeper() (runner.Beeper, func()) {
	beeper, err := audio.New()
	if err != nil {
		p.logger.Warn("Audio output not available", log.Err(err))
		return nil, func() {}
	}

	return beeper, func() {
		if err := beeper.Close(); err != nil {
			p.logger.Error("Closing audio output failed", log.Err(err))
		}
	}
}

// printInfo prints information about the ROM being executed.
func (p *Pipeline) printInfo(opts options.Program, settings options.Emulator, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Stringer("mode", settings.Mode),
		log.String("frontend", opts.Frontend),
	)
	p.logger.Debug("Settings",
		log.String("quirks", fmt.Sprintf("%+v", settings.Quirks)),
		log.String("resolution", resolutionName(settings.HighRes)),
		log.Int("cycles_per_frame", settings.CyclesPerFrame),
	)
}

func resolutionName(highRes bool) string {
	if highRes {
		return "128x64"
	}
	return "64x32"
}
