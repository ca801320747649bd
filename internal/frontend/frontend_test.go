package frontend

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r     rune
		key   uint8
		found bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'q', 0x4, true},
		{'R', 0xD, true},
		{'x', 0x0, true},
		{'v', 0xF, true},
		{'p', 0, false},
	}

	for _, tt := range tests {
		key, found := KeyForRune(tt.r)
		assert.Equal(t, tt.found, found)
		assert.Equal(t, tt.key, key)
	}
}

func TestLayoutCoversKeypad(t *testing.T) {
	seen := map[uint8]bool{}
	for i := range len(Layout) {
		seen[KeyAt(i)] = true
	}
	assert.Equal(t, 16, len(seen))
}
