package machine

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/memory"
)

// wideSpriteBytes is the size of a 16x16 high resolution sprite.
const wideSpriteBytes = 32

func (m *Machine) unknown(ins instruction.Instruction) error {
	return &UnknownOpcodeError{Opcode: ins.Opcode}
}

func (m *Machine) clearScreen(instruction.Instruction) error {
	m.display.Clear()
	return nil
}

func (m *Machine) ret(instruction.Instruction) error {
	address, err := m.regs.pop()
	if err != nil {
		return err
	}
	m.regs.PC = address
	return nil
}

func (m *Machine) exit(instruction.Instruction) error {
	m.Stop()
	return nil
}

func (m *Machine) lowRes(instruction.Instruction) error {
	m.display.SetHighRes(false)
	return nil
}

func (m *Machine) highRes(instruction.Instruction) error {
	m.display.SetHighRes(true)
	return nil
}

func (m *Machine) jump(ins instruction.Instruction) error {
	m.regs.PC = ins.NNN
	return nil
}

func (m *Machine) call(ins instruction.Instruction) error {
	if err := m.regs.push(m.regs.PC); err != nil {
		return err
	}
	m.regs.PC = ins.NNN
	return nil
}

func (m *Machine) skipEqual(ins instruction.Instruction) error {
	m.skipIf(m.regs.V[ins.X] == ins.NN)
	return nil
}

func (m *Machine) skipNotEqual(ins instruction.Instruction) error {
	m.skipIf(m.regs.V[ins.X] != ins.NN)
	return nil
}

func (m *Machine) skipEqualRegister(ins instruction.Instruction) error {
	m.skipIf(m.regs.V[ins.X] == m.regs.V[ins.Y])
	return nil
}

func (m *Machine) skipNotEqualRegister(ins instruction.Instruction) error {
	m.skipIf(m.regs.V[ins.X] != m.regs.V[ins.Y])
	return nil
}

func (m *Machine) load(ins instruction.Instruction) error {
	m.regs.V[ins.X] = ins.NN
	return nil
}

func (m *Machine) add(ins instruction.Instruction) error {
	m.regs.V[ins.X] += ins.NN
	return nil
}

func (m *Machine) move(ins instruction.Instruction) error {
	m.regs.V[ins.X] = m.regs.V[ins.Y]
	return nil
}

func (m *Machine) or(ins instruction.Instruction) error {
	m.regs.V[ins.X] |= m.regs.V[ins.Y]
	m.resetFlag()
	return nil
}

func (m *Machine) and(ins instruction.Instruction) error {
	m.regs.V[ins.X] &= m.regs.V[ins.Y]
	m.resetFlag()
	return nil
}

func (m *Machine) xor(ins instruction.Instruction) error {
	m.regs.V[ins.X] ^= m.regs.V[ins.Y]
	m.resetFlag()
	return nil
}

func (m *Machine) resetFlag() {
	if m.quirks.VFReset {
		m.regs.V[flagRegister] = 0
	}
}

func (m *Machine) addRegister(ins instruction.Instruction) error {
	sum := uint16(m.regs.V[ins.X]) + uint16(m.regs.V[ins.Y])
	m.setWithFlag(ins.X, byte(sum), boolToByte(sum > 0xFF))
	return nil
}

func (m *Machine) sub(ins instruction.Instruction) error {
	vx, vy := m.regs.V[ins.X], m.regs.V[ins.Y]
	m.setWithFlag(ins.X, vx-vy, boolToByte(vx >= vy))
	return nil
}

func (m *Machine) subReverse(ins instruction.Instruction) error {
	vx, vy := m.regs.V[ins.X], m.regs.V[ins.Y]
	m.setWithFlag(ins.X, vy-vx, boolToByte(vy >= vx))
	return nil
}

func (m *Machine) shiftRight(ins instruction.Instruction) error {
	value := m.shiftSource(ins)
	m.setWithFlag(ins.X, value>>1, value&0x01)
	return nil
}

func (m *Machine) shiftLeft(ins instruction.Instruction) error {
	value := m.shiftSource(ins)
	m.setWithFlag(ins.X, value<<1, value>>7)
	return nil
}

func (m *Machine) shiftSource(ins instruction.Instruction) byte {
	if m.quirks.ShiftUsesVY {
		return m.regs.V[ins.Y]
	}
	return m.regs.V[ins.X]
}

func (m *Machine) loadIndex(ins instruction.Instruction) error {
	m.regs.I = ins.NNN
	return nil
}

func (m *Machine) jumpOffset(ins instruction.Instruction) error {
	offset := m.regs.V[0]
	if m.quirks.Jumping {
		offset = m.regs.V[ins.X]
	}
	m.regs.PC = ins.NNN + uint16(offset)
	return nil
}

func (m *Machine) random(ins instruction.Instruction) error {
	m.regs.V[ins.X] = byte(m.rng.UintN(256)) & ins.NN
	return nil
}

func (m *Machine) draw(ins instruction.Instruction) error {
	x := int(m.regs.V[ins.X])
	y := int(m.regs.V[ins.Y])

	if !m.display.HighRes() {
		sprite, err := m.memory.ReadBlock(m.regs.I, int(ins.N))
		if err != nil {
			return err
		}
		collision := m.display.DrawLowRes(x, y, sprite)
		m.regs.V[flagRegister] = boolToByte(collision)
		return nil
	}

	length, wide := int(ins.N), false
	if ins.N == 0 {
		length, wide = wideSpriteBytes, true
	}
	sprite, err := m.memory.ReadBlock(m.regs.I, length)
	if err != nil {
		return err
	}
	collisions := m.display.DrawHighRes(x, y, sprite, wide)
	m.regs.V[flagRegister] = byte(collisions)
	return nil
}

func (m *Machine) skipKey(ins instruction.Instruction) error {
	m.skipIf(m.keypad.Pressed(m.regs.V[ins.X] & 0x0F))
	return nil
}

func (m *Machine) skipNotKey(ins instruction.Instruction) error {
	m.skipIf(!m.keypad.Pressed(m.regs.V[ins.X] & 0x0F))
	return nil
}

func (m *Machine) getDelay(ins instruction.Instruction) error {
	m.regs.V[ins.X] = m.regs.DelayTimer
	return nil
}

// waitKey repeats itself until a key is pressed.
func (m *Machine) waitKey(ins instruction.Instruction) error {
	key, ok := m.keypad.Lowest()
	if !ok {
		m.regs.PC -= instruction.Size
		return nil
	}
	m.regs.V[ins.X] = key
	return nil
}

func (m *Machine) setDelay(ins instruction.Instruction) error {
	m.regs.DelayTimer = m.regs.V[ins.X]
	return nil
}

func (m *Machine) setSound(ins instruction.Instruction) error {
	m.regs.SoundTimer = m.regs.V[ins.X]
	return nil
}

func (m *Machine) addIndex(ins instruction.Instruction) error {
	m.regs.I += uint16(m.regs.V[ins.X])
	return nil
}

func (m *Machine) font(ins instruction.Instruction) error {
	digit := uint16(m.regs.V[ins.X] & 0x0F)
	m.regs.I = memory.FontStart + digit*memory.GlyphHeight
	return nil
}

func (m *Machine) largeFont(ins instruction.Instruction) error {
	digit := uint16(m.regs.V[ins.X] & 0x0F)
	m.regs.I = memory.LargeFontStart + digit*memory.LargeGlyphHeight
	return nil
}

func (m *Machine) bcd(ins instruction.Instruction) error {
	value := m.regs.V[ins.X]
	digits := []byte{value / 100, value / 10 % 10, value % 10}
	return m.memory.WriteBlock(m.regs.I, digits)
}

func (m *Machine) storeRegisters(ins instruction.Instruction) error {
	count := int(ins.X) + 1
	if err := m.memory.WriteBlock(m.regs.I, m.regs.V[:count]); err != nil {
		return err
	}
	m.advanceIndex(count)
	return nil
}

func (m *Machine) loadRegisters(ins instruction.Instruction) error {
	count := int(ins.X) + 1
	data, err := m.memory.ReadBlock(m.regs.I, count)
	if err != nil {
		return err
	}
	copy(m.regs.V[:], data)
	m.advanceIndex(count)
	return nil
}

func (m *Machine) advanceIndex(count int) {
	if m.quirks.LoadStoreIncrementsI {
		m.regs.I += uint16(count)
	}
}
