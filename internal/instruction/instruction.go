// Package instruction decodes CHIP-8 and SUPER-CHIP instructions.
package instruction

import "fmt"

// Size is the size of an encoded instruction in bytes.
const Size = 2

// MemoryReader provides read access to the address space.
type MemoryReader interface {
	Read(address uint16) (byte, error)
}

// Instruction is a decoded instruction with all sub fields extracted.
// Which of the fields are meaningful depends on Op.
type Instruction struct {
	Address uint16 // address the instruction was fetched from
	Opcode  uint16 // raw big endian instruction word
	Op      Op

	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	NN  uint8  // low byte
	NNN uint16 // low 12 bits
}

// Decode reads the instruction at the given address.
func Decode(mem MemoryReader, pc uint16) (Instruction, error) {
	high, err := mem.Read(pc)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading opcode high byte: %w", err)
	}
	low, err := mem.Read(pc + 1)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading opcode low byte: %w", err)
	}

	ins := FromOpcode(uint16(high)<<8 | uint16(low))
	ins.Address = pc
	return ins, nil
}

// FromOpcode splits an instruction word into its sub fields and classifies it.
func FromOpcode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		Op:     classify(opcode),
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		NN:     uint8(opcode),
		NNN:    opcode & 0x0FFF,
	}
}

func (i Instruction) String() string {
	return fmt.Sprintf("$%04X: %04X %s", i.Address, i.Opcode, i.Mnemonic())
}
