package machine

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeypad(t *testing.T) {
	var k Keypad

	_, ok := k.Lowest()
	assert.False(t, ok)

	k.Set(0xC, true)
	k.Set(0x3, true)
	k.Set(0x10, true) // ignored
	assert.True(t, k.Pressed(0xC))
	assert.False(t, k.Pressed(0x10))

	key, ok := k.Lowest()
	assert.True(t, ok)
	assert.Equal(t, uint8(3), key)

	k.Set(0x3, false)
	key, _ = k.Lowest()
	assert.Equal(t, uint8(0xC), key)

	k.Reset()
	assert.False(t, k.Pressed(0xC))
}

func TestKeypadConcurrentUpdates(t *testing.T) {
	var k Keypad
	var wg sync.WaitGroup

	for key := range uint8(KeyCount) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k.Set(key, true)
		}()
	}
	wg.Wait()

	for key := range uint8(KeyCount) {
		assert.True(t, k.Pressed(key))
	}
}
