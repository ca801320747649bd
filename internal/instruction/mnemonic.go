package instruction

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// SUPER-CHIP extension mnemonics that the base CHIP-8 opcode set does not contain.
var extensionNames = map[Op]string{
	OpExit:      "exit",
	OpLowRes:    "low",
	OpHighRes:   "high",
	OpLargeFont: "ld",
}

// fallbackNames covers encodings that are executed but not matched by the
// CHIP-8 opcode table, like 5xy1 which ignores the lowest nibble.
var fallbackNames = map[Op]string{
	OpSkipEqualReg: chip8.SeName,
	OpSkipNotEqReg: chip8.SneName,
}

// Mnemonic returns the assembly representation of the instruction,
// for example "ld VA, $05". Unknown opcodes are rendered as data words.
func (i Instruction) Mnemonic() string {
	name, ok := i.name()
	if !ok {
		return fmt.Sprintf("dw $%04X", i.Opcode)
	}
	if params := i.formatParams(name); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// name looks up the instruction name in the CHIP-8 opcode table and falls
// back to the SUPER-CHIP extensions.
func (i Instruction) name() (string, bool) {
	if i.Op == OpUnknown {
		return "", false
	}
	if name, ok := extensionNames[i.Op]; ok {
		return name, true
	}

	for _, op := range chip8.Opcodes[int(i.Opcode>>12)] {
		if op.Info.Mask&i.Opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name, true
		}
	}
	if name, ok := fallbackNames[i.Op]; ok {
		return name, true
	}
	return i.Op.String(), true
}

func (i Instruction) formatParams(name string) string {
	switch name {
	case chip8.JpName:
		return i.formatJump()
	case chip8.CallName:
		return fmt.Sprintf("$%03X", i.NNN)
	case chip8.SeName, chip8.SneName:
		return i.formatCompare()
	case chip8.LdName:
		return i.formatLoad()
	case chip8.AddName:
		return i.formatAdd()
	case chip8.OrName, chip8.AndName, chip8.XorName, chip8.SubName, chip8.SubnName:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case chip8.ShrName, chip8.ShlName, chip8.SkpName, chip8.SknpName:
		return fmt.Sprintf("V%X", i.X)
	case chip8.RndName:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case chip8.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	}
	return ""
}

func (i Instruction) formatJump() string {
	if i.Op == OpJumpOffset {
		return fmt.Sprintf("V0, $%03X", i.NNN)
	}
	return fmt.Sprintf("$%03X", i.NNN)
}

func (i Instruction) formatCompare() string {
	switch i.Op {
	case OpSkipEqualReg, OpSkipNotEqReg:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	default:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	}
}

func (i Instruction) formatLoad() string {
	switch i.Op {
	case OpLoad:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case OpMove:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case OpLoadIndex:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case OpGetDelay:
		return fmt.Sprintf("V%X, DT", i.X)
	case OpWaitKey:
		return fmt.Sprintf("V%X, K", i.X)
	case OpSetDelay:
		return fmt.Sprintf("DT, V%X", i.X)
	case OpSetSound:
		return fmt.Sprintf("ST, V%X", i.X)
	case OpFont:
		return fmt.Sprintf("F, V%X", i.X)
	case OpLargeFont:
		return fmt.Sprintf("HF, V%X", i.X)
	case OpBCD:
		return fmt.Sprintf("B, V%X", i.X)
	case OpStoreRegisters:
		return fmt.Sprintf("[I], V%X", i.X)
	case OpLoadRegisters:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}

func (i Instruction) formatAdd() string {
	switch i.Op {
	case OpAdd:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case OpAddIndex:
		return fmt.Sprintf("I, V%X", i.X)
	default:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	}
}
