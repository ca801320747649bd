// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
)

// ErrRomLoadFailed is returned when the ROM file can not be read.
var ErrRomLoadFailed = errors.New("rom load failed")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file. CHIP-8 ROMs have no header, the whole file
// content is the program.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file %s: %w", ErrRomLoadFailed, path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a ROM from the reader and checks that it fits into memory.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized files
	rom, err := io.ReadAll(io.LimitReader(reader, memory.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading data: %w", ErrRomLoadFailed, err)
	}
	if len(rom) > memory.MaxROMSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", memory.ErrRomTooLarge, memory.MaxROMSize)
	}
	return rom, nil
}
