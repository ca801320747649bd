//go:build headless

package audio

// Beeper is silent in headless builds.
type Beeper struct{}

// New returns a silent beeper.
func New() (*Beeper, error) {
	return &Beeper{}, nil
}

// SetActive does nothing.
func (b *Beeper) SetActive(bool) {}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
