package machine

import (
	"math/bits"
	"sync/atomic"
)

// KeyCount is the number of keys of the hex keypad.
const KeyCount = 16

// Keypad is the pressed state of the 16 hex keys. It is safe for concurrent
// use so that input handlers can update it while the machine is running.
type Keypad struct {
	keys atomic.Uint32
}

// Set marks the key as pressed or released. Keys outside of 0-F are ignored.
func (k *Keypad) Set(key uint8, pressed bool) {
	if key >= KeyCount {
		return
	}
	mask := uint32(1) << key
	if pressed {
		k.keys.Or(mask)
	} else {
		k.keys.And(^mask)
	}
}

// Pressed returns whether the key is currently held down.
func (k *Keypad) Pressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.keys.Load()&(1<<key) != 0
}

// Lowest returns the lowest numbered key that is pressed.
func (k *Keypad) Lowest() (uint8, bool) {
	keys := k.keys.Load()
	if keys == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros32(keys)), true
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.keys.Store(0)
}
