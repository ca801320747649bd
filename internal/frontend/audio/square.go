// Package audio implements the beeper output of the machine.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Beeper tone settings.
const (
	SampleRate = 44100
	Frequency  = 440
	amplitude  = 0.15
)

const bytesPerSample = 4 // mono float32

// squareWave is an io.Reader producing a float32 little endian square wave
// while active and silence otherwise.
type squareWave struct {
	active atomic.Bool
	period int // in samples
	pos    int
}

func newSquareWave(sampleRate, frequency int) *squareWave {
	return &squareWave{
		period: sampleRate / frequency,
	}
}

// Read implements io.Reader. It never returns an error.
func (s *squareWave) Read(p []byte) (int, error) {
	active := s.active.Load()
	n := len(p) / bytesPerSample * bytesPerSample

	for i := 0; i < n; i += bytesPerSample {
		var value float32
		if active {
			value = amplitude
			if s.pos >= s.period/2 {
				value = -amplitude
			}
		}
		s.pos = (s.pos + 1) % s.period
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(value))
	}
	return n, nil
}
