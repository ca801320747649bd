// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the terminal frontend is selected without
// standard output being a terminal.
var ErrNoTerminal = errors.New("standard output is not a terminal")

// isTerminal reports whether standard output is connected to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	opts.Explicit = set.New[string]()
	flags.Visit(func(f *flag.Flag) {
		opts.Explicit.Add(f.Name)
	})

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	opts.Mode = strings.ToLower(opts.Mode)

	validFrontends := []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendHeadless}
	if !slices.Contains(validFrontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(validFrontends, ", "))
	}

	if opts.Frontend == options.FrontendTerminal && !isTerminal() {
		return fmt.Errorf("terminal frontend: %w", ErrNoTerminal)
	}

	if opts.CyclesPerFrame <= 0 {
		return fmt.Errorf("invalid cycles per frame %d, must be positive", opts.CyclesPerFrame)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d, must not be negative", opts.Frames)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Config, "c", "", "Lua configuration file to load quirk and timing settings from")
	flags.StringVar(&opts.Mode, "m", "", "quirk mode (chip8, schip-legacy, schip-modern) - if not auto-detected from file extension")
	flags.StringVar(&opts.Frontend, "f", options.FrontendWindow, "frontend to use (window, terminal, headless)")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", options.DefaultCyclesPerFrame, "number of instructions to execute per 60 Hz frame")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until the program exits")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.Dump, "dump", false, "print the machine state on exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.HighRes, "hires", false, "start in the 128x64 SUPER-CHIP resolution")
	flags.BoolVar(&opts.VFReset, "vfreset", false, "quirk: AND, OR and XOR reset VF")
	flags.BoolVar(&opts.Clipping, "clipping", false, "quirk: clip sprites at the screen edge instead of wrapping")
	flags.BoolVar(&opts.Jumping, "jumping", false, "quirk: Bnnn jumps to nnn + Vx instead of nnn + V0")
	flags.BoolVar(&opts.ShiftUsesVY, "shiftvy", false, "quirk: shift instructions copy Vy to Vx first")
	flags.BoolVar(&opts.LoadStoreIncrementsI, "incrementi", false, "quirk: register load and store increment I")
}
