// Package display implements the monochrome CHIP-8 framebuffer with its
// low and high resolution drawing rules.
package display

import "strings"

// Framebuffer dimensions.
const (
	Width  = 128 // backing grid width, equals the high resolution width
	Height = 64  // backing grid height, equals the high resolution height

	LowResWidth  = Width / 2
	LowResHeight = Height / 2
)

// Display is a 128x64 grid of pixels. In low resolution mode every logical
// pixel occupies a 2x2 block of the grid.
type Display struct {
	pixels  [Height][Width]bool
	highRes bool
	clip    bool
}

// New returns a cleared display in low resolution mode.
func New() *Display {
	return &Display{}
}

// Clear turns all pixels off. The resolution mode is kept.
func (d *Display) Clear() {
	d.pixels = [Height][Width]bool{}
}

// SetHighRes switches between the 64x32 and 128x64 modes.
// The framebuffer contents are kept.
func (d *Display) SetHighRes(highRes bool) {
	d.highRes = highRes
}

// HighRes returns whether the high resolution mode is active.
func (d *Display) HighRes() bool {
	return d.highRes
}

// SetClipping sets whether sprites are clipped at the screen edge.
// Without clipping sprites wrap around to the opposite edge.
func (d *Display) SetClipping(clip bool) {
	d.clip = clip
}

// Width returns the backing grid width.
func (d *Display) Width() int {
	return Width
}

// Height returns the backing grid height.
func (d *Display) Height() int {
	return Height
}

// PixelAt returns whether the backing grid pixel is lit. Coordinates outside
// of the grid return false.
func (d *Display) PixelAt(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	return d.pixels[y][x]
}

// DrawLowRes draws an 8 pixel wide sprite in logical 64x32 coordinates.
// Every sprite row is one byte. It returns whether any lit pixel was turned
// off, sampled at the top left sub pixel of each 2x2 block.
func (d *Display) DrawLowRes(x, y int, sprite []byte) bool {
	x %= LowResWidth
	y %= LowResHeight

	collision := false
	for row, data := range sprite {
		py, ok := d.coordinate(y+row, LowResHeight)
		if !ok {
			continue
		}

		for bit := range 8 {
			if data&(0x80>>bit) == 0 {
				continue
			}
			px, ok := d.coordinate(x+bit, LowResWidth)
			if !ok {
				continue
			}

			gx, gy := px*2, py*2
			if d.pixels[gy][gx] {
				collision = true
			}
			d.pixels[gy][gx] = !d.pixels[gy][gx]
			d.pixels[gy][gx+1] = !d.pixels[gy][gx+1]
			d.pixels[gy+1][gx] = !d.pixels[gy+1][gx]
			d.pixels[gy+1][gx+1] = !d.pixels[gy+1][gx+1]
		}
	}
	return collision
}

// DrawHighRes draws a sprite in 128x64 coordinates. If wide is set, every
// sprite row consists of 2 bytes forming a 16 pixel row. It returns the
// number of rows that contained a collision.
func (d *Display) DrawHighRes(x, y int, sprite []byte, wide bool) int {
	x %= Width
	y %= Height

	bytesPerRow := 1
	if wide {
		bytesPerRow = 2
	}

	collisions := 0
	for row := 0; (row+1)*bytesPerRow <= len(sprite); row++ {
		py, ok := d.coordinate(y+row, Height)
		if !ok {
			continue
		}

		var data uint16
		width := 8
		if wide {
			data = uint16(sprite[row*2])<<8 | uint16(sprite[row*2+1])
			width = 16
		} else {
			data = uint16(sprite[row])
		}

		rowCollision := false
		for bit := range width {
			if data&(1<<(width-1-bit)) == 0 {
				continue
			}
			px, ok := d.coordinate(x+bit, Width)
			if !ok {
				continue
			}
			if d.pixels[py][px] {
				rowCollision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
		if rowCollision {
			collisions++
		}
	}
	return collisions
}

// coordinate applies the clipping or wrapping rule to a pixel coordinate.
func (d *Display) coordinate(value, limit int) (int, bool) {
	if value < limit {
		return value, true
	}
	if d.clip {
		return 0, false
	}
	return value % limit, true
}

// Text renders the display at its logical resolution as text lines, using
// the on rune for lit pixels and the off rune for unlit pixels.
func (d *Display) Text(on, off rune) string {
	step := 2
	if d.highRes {
		step = 1
	}

	var sb strings.Builder
	for y := 0; y < Height; y += step {
		for x := 0; x < Width; x += step {
			if d.pixels[y][x] {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
