package machine

import "github.com/retroenv/retrochip8/internal/instruction"

// handler executes a single decoded instruction. The program counter already
// points to the following instruction when it is called.
type handler func(m *Machine, ins instruction.Instruction) error

var handlers = [instruction.OpCount]handler{
	instruction.OpUnknown:        (*Machine).unknown,
	instruction.OpClear:          (*Machine).clearScreen,
	instruction.OpReturn:         (*Machine).ret,
	instruction.OpExit:           (*Machine).exit,
	instruction.OpLowRes:         (*Machine).lowRes,
	instruction.OpHighRes:        (*Machine).highRes,
	instruction.OpJump:           (*Machine).jump,
	instruction.OpCall:           (*Machine).call,
	instruction.OpSkipEqual:      (*Machine).skipEqual,
	instruction.OpSkipNotEqual:   (*Machine).skipNotEqual,
	instruction.OpSkipEqualReg:   (*Machine).skipEqualRegister,
	instruction.OpLoad:           (*Machine).load,
	instruction.OpAdd:            (*Machine).add,
	instruction.OpMove:           (*Machine).move,
	instruction.OpOr:             (*Machine).or,
	instruction.OpAnd:            (*Machine).and,
	instruction.OpXor:            (*Machine).xor,
	instruction.OpAddReg:         (*Machine).addRegister,
	instruction.OpSub:            (*Machine).sub,
	instruction.OpShiftRight:     (*Machine).shiftRight,
	instruction.OpSubReverse:     (*Machine).subReverse,
	instruction.OpShiftLeft:      (*Machine).shiftLeft,
	instruction.OpSkipNotEqReg:   (*Machine).skipNotEqualRegister,
	instruction.OpLoadIndex:      (*Machine).loadIndex,
	instruction.OpJumpOffset:     (*Machine).jumpOffset,
	instruction.OpRandom:         (*Machine).random,
	instruction.OpDraw:           (*Machine).draw,
	instruction.OpSkipKey:        (*Machine).skipKey,
	instruction.OpSkipNotKey:     (*Machine).skipNotKey,
	instruction.OpGetDelay:       (*Machine).getDelay,
	instruction.OpWaitKey:        (*Machine).waitKey,
	instruction.OpSetDelay:       (*Machine).setDelay,
	instruction.OpSetSound:       (*Machine).setSound,
	instruction.OpAddIndex:       (*Machine).addIndex,
	instruction.OpFont:           (*Machine).font,
	instruction.OpLargeFont:      (*Machine).largeFont,
	instruction.OpBCD:            (*Machine).bcd,
	instruction.OpStoreRegisters: (*Machine).storeRegisters,
	instruction.OpLoadRegisters:  (*Machine).loadRegisters,
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.regs.PC += instruction.Size
	}
}

// setWithFlag writes the result register first and the flag last, so that
// VF holds the flag if it is also the result register.
func (m *Machine) setWithFlag(x uint8, value, flag byte) {
	m.regs.V[x] = value
	m.regs.V[flagRegister] = flag
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
