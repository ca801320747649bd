//go:build !headless

package audio

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

const bufferSize = 50 * time.Millisecond

// Beeper plays a square wave tone while it is active.
type Beeper struct {
	context *oto.Context
	player  *oto.Player
	wave    *squareWave
}

// New opens the audio device and starts the silent beeper.
func New() (*Beeper, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		context: ctx,
		wave:    newSquareWave(SampleRate, Frequency),
	}
	b.player = ctx.NewPlayer(b.wave)
	b.player.Play()
	return b, nil
}

// SetActive turns the tone on or off. It implements runner.Beeper.
func (b *Beeper) SetActive(active bool) {
	b.wave.active.Store(active)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
