// Package memory implements the flat 4KB CHIP-8 address space including the
// built-in font glyphs.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout:
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: standard 4x5 hex font
//	0x0A0-0x13F: SUPER-CHIP 8x10 hex font
//	0x200-0xFFF: program space
const (
	// Size is the number of addressable bytes.
	Size = 0x1000

	// ProgramStart is the address that ROMs are loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits into the program space.
	MaxROMSize = Size - ProgramStart

	// FontStart is the address of the first glyph of the standard font.
	FontStart = 0x050

	// LargeFontStart is the address of the first glyph of the SUPER-CHIP font.
	LargeFontStart = FontStart + 16*GlyphHeight
)

// ErrRomTooLarge is returned when a ROM does not fit into the program space.
var ErrRomTooLarge = errors.New("rom too large")

// MemoryFaultError is returned for any access outside of the address space.
// Accesses are never wrapped around.
type MemoryFaultError struct {
	Address int
}

func (e *MemoryFaultError) Error() string {
	return fmt.Sprintf("memory fault at address $%04X", e.Address)
}

// Memory is the flat byte addressable store of a machine.
type Memory struct {
	data [Size]byte
}

// New returns a zero initialized memory with both fonts loaded.
func New() *Memory {
	m := &Memory{}
	copy(m.data[FontStart:], font[:])
	copy(m.data[LargeFontStart:], largeFont[:])
	return m
}

// LoadROM copies the program to the program start address.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed the limit of %d bytes", ErrRomTooLarge, len(rom), MaxROMSize)
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, &MemoryFaultError{Address: int(address)}
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return &MemoryFaultError{Address: int(address)}
	}
	m.data[address] = value
	return nil
}

// ReadBlock returns a copy of length bytes starting at address.
// The whole range is checked before any data is read.
func (m *Memory) ReadBlock(address uint16, length int) ([]byte, error) {
	if err := checkRange(address, length); err != nil {
		return nil, err
	}
	block := make([]byte, length)
	copy(block, m.data[address:])
	return block, nil
}

// WriteBlock copies data to memory starting at address. Nothing is written
// if the block does not fit completely.
func (m *Memory) WriteBlock(address uint16, data []byte) error {
	if err := checkRange(address, len(data)); err != nil {
		return err
	}
	copy(m.data[address:], data)
	return nil
}

func checkRange(address uint16, length int) error {
	if int(address) >= Size {
		return &MemoryFaultError{Address: int(address)}
	}
	if end := int(address) + length - 1; length > 0 && end >= Size {
		return &MemoryFaultError{Address: end}
	}
	return nil
}
