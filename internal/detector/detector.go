// Package detector handles quirk mode detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/quirks"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles quirk mode detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new mode detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the quirk mode from options or file auto-detection.
// It first checks if a mode is explicitly specified in options, otherwise
// the mode is derived from the input filename extension.
func (d *Detector) Detect(opts options.Program) (quirks.Mode, error) {
	if opts.Mode != "" {
		mode, err := quirks.ModeFromString(opts.Mode)
		if err != nil {
			return "", fmt.Errorf("parsing mode option: %w", err)
		}
		return mode, nil
	}

	mode := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected quirk mode",
		log.Stringer("mode", mode),
		log.String("file", opts.Input))
	return mode, nil
}

// detectFromFile determines the quirk mode based on file extension.
func (d *Detector) detectFromFile(filename string) quirks.Mode {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".sc8", ".schip":
		return quirks.SChipModern
	default:
		// .ch8 and unknown extensions
		return quirks.Chip8
	}
}
