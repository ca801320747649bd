package machine

import "github.com/retroenv/retrochip8/internal/memory"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// flagRegister is the index of VF.
const flagRegister = 0xF

// Registers is the register file of the interpreter.
type Registers struct {
	V          [16]byte
	I          uint16
	PC         uint16
	DelayTimer byte
	SoundTimer byte

	stack [StackDepth]uint16
	sp    int
}

func newRegisters() Registers {
	return Registers{
		PC: memory.ProgramStart,
	}
}

func (r *Registers) push(address uint16) error {
	if r.sp == StackDepth {
		return ErrStackOverflow
	}
	r.stack[r.sp] = address
	r.sp++
	return nil
}

func (r *Registers) pop() (uint16, error) {
	if r.sp == 0 {
		return 0, ErrStackUnderflow
	}
	r.sp--
	return r.stack[r.sp], nil
}

// Stack returns a copy of the return addresses, oldest first.
func (r *Registers) Stack() []uint16 {
	stack := make([]uint16, r.sp)
	copy(stack, r.stack[:r.sp])
	return stack
}
