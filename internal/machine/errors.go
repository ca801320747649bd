package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned when a return executes with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when a call executes with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
)

// UnknownOpcodeError is returned for instruction words that do not encode
// any supported operation. Executing them has no effect.
type UnknownOpcodeError struct {
	Opcode uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X", e.Opcode)
}
