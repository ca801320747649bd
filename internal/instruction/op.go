package instruction

// Op identifies the operation an instruction performs.
type Op uint8

// All operations known to the interpreter.
const (
	OpUnknown Op = iota

	OpClear          // 00E0
	OpReturn         // 00EE
	OpExit           // 00FD
	OpLowRes         // 00FE
	OpHighRes        // 00FF
	OpJump           // 1nnn
	OpCall           // 2nnn
	OpSkipEqual      // 3xnn
	OpSkipNotEqual   // 4xnn
	OpSkipEqualReg   // 5xy0
	OpLoad           // 6xnn
	OpAdd            // 7xnn
	OpMove           // 8xy0
	OpOr             // 8xy1
	OpAnd            // 8xy2
	OpXor            // 8xy3
	OpAddReg         // 8xy4
	OpSub            // 8xy5
	OpShiftRight     // 8xy6
	OpSubReverse     // 8xy7
	OpShiftLeft      // 8xyE
	OpSkipNotEqReg   // 9xy0
	OpLoadIndex      // Annn
	OpJumpOffset     // Bnnn
	OpRandom         // Cxnn
	OpDraw           // Dxyn
	OpSkipKey        // Ex9E
	OpSkipNotKey     // ExA1
	OpGetDelay       // Fx07
	OpWaitKey        // Fx0A
	OpSetDelay       // Fx15
	OpSetSound       // Fx18
	OpAddIndex       // Fx1E
	OpFont           // Fx29
	OpLargeFont      // Fx30
	OpBCD            // Fx33
	OpStoreRegisters // Fx55
	OpLoadRegisters  // Fx65

	// OpCount is the number of defined operations.
	OpCount
)

var opNames = [OpCount]string{
	OpUnknown:        "unknown",
	OpClear:          "clear",
	OpReturn:         "return",
	OpExit:           "exit",
	OpLowRes:         "low-res",
	OpHighRes:        "high-res",
	OpJump:           "jump",
	OpCall:           "call",
	OpSkipEqual:      "skip-equal",
	OpSkipNotEqual:   "skip-not-equal",
	OpSkipEqualReg:   "skip-equal-register",
	OpLoad:           "load",
	OpAdd:            "add",
	OpMove:           "move",
	OpOr:             "or",
	OpAnd:            "and",
	OpXor:            "xor",
	OpAddReg:         "add-register",
	OpSub:            "sub",
	OpShiftRight:     "shift-right",
	OpSubReverse:     "sub-reverse",
	OpShiftLeft:      "shift-left",
	OpSkipNotEqReg:   "skip-not-equal-register",
	OpLoadIndex:      "load-index",
	OpJumpOffset:     "jump-offset",
	OpRandom:         "random",
	OpDraw:           "draw",
	OpSkipKey:        "skip-key",
	OpSkipNotKey:     "skip-not-key",
	OpGetDelay:       "get-delay",
	OpWaitKey:        "wait-key",
	OpSetDelay:       "set-delay",
	OpSetSound:       "set-sound",
	OpAddIndex:       "add-index",
	OpFont:           "font",
	OpLargeFont:      "large-font",
	OpBCD:            "bcd",
	OpStoreRegisters: "store-registers",
	OpLoadRegisters:  "load-registers",
}

// String implements the fmt.Stringer interface.
func (o Op) String() string {
	if o >= OpCount {
		return opNames[OpUnknown]
	}
	return opNames[o]
}

// groups classifies an opcode by its top nibble.
var groups = [16]func(opcode uint16) Op{
	0x0: classifySystem,
	0x1: fixed(OpJump),
	0x2: fixed(OpCall),
	0x3: fixed(OpSkipEqual),
	0x4: fixed(OpSkipNotEqual),
	0x5: fixed(OpSkipEqualReg),
	0x6: fixed(OpLoad),
	0x7: fixed(OpAdd),
	0x8: classifyArithmetic,
	0x9: fixed(OpSkipNotEqReg),
	0xA: fixed(OpLoadIndex),
	0xB: fixed(OpJumpOffset),
	0xC: fixed(OpRandom),
	0xD: fixed(OpDraw),
	0xE: classifyKey,
	0xF: classifyMisc,
}

var systemOps = map[uint16]Op{
	0x00E0: OpClear,
	0x00EE: OpReturn,
	0x00FD: OpExit,
	0x00FE: OpLowRes,
	0x00FF: OpHighRes,
}

// arithmeticOps is indexed by the lowest nibble of an 8xyn opcode.
var arithmeticOps = [16]Op{
	0x0: OpMove,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAddReg,
	0x5: OpSub,
	0x6: OpShiftRight,
	0x7: OpSubReverse,
	0xE: OpShiftLeft,
}

var keyOps = map[uint8]Op{
	0x9E: OpSkipKey,
	0xA1: OpSkipNotKey,
}

var miscOps = map[uint8]Op{
	0x07: OpGetDelay,
	0x0A: OpWaitKey,
	0x15: OpSetDelay,
	0x18: OpSetSound,
	0x1E: OpAddIndex,
	0x29: OpFont,
	0x30: OpLargeFont,
	0x33: OpBCD,
	0x55: OpStoreRegisters,
	0x65: OpLoadRegisters,
}

func classify(opcode uint16) Op {
	return groups[opcode>>12](opcode)
}

func fixed(op Op) func(uint16) Op {
	return func(uint16) Op {
		return op
	}
}

func classifySystem(opcode uint16) Op {
	return systemOps[opcode] // missing entries are OpUnknown
}

func classifyArithmetic(opcode uint16) Op {
	return arithmeticOps[opcode&0x000F]
}

func classifyKey(opcode uint16) Op {
	return keyOps[uint8(opcode)]
}

func classifyMisc(opcode uint16) Op {
	return miscOps[uint8(opcode)]
}
