package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func sample(buf []byte, index int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[index*bytesPerSample:]))
}

func TestSquareWaveSilent(t *testing.T) {
	wave := newSquareWave(8, 2)
	buf := make([]byte, 8*bytesPerSample)

	n, err := wave.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)
	for i := range 8 {
		assert.Equal(t, float32(0), sample(buf, i))
	}
}

func TestSquareWaveActive(t *testing.T) {
	wave := newSquareWave(8, 2) // period of 4 samples
	wave.active.Store(true)
	buf := make([]byte, 8*bytesPerSample)

	_, err := wave.Read(buf)
	assert.NoError(t, err)

	expected := []float32{amplitude, amplitude, -amplitude, -amplitude}
	for i := range 8 {
		assert.Equal(t, expected[i%4], sample(buf, i))
	}
}

func TestSquareWavePartialSample(t *testing.T) {
	wave := newSquareWave(8, 2)
	n, err := wave.Read(make([]byte, 6))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
