package window

import "github.com/retroenv/retrochip8/internal/display"

// Pixel colors in RGBA order.
var (
	colorOn  = [4]byte{0xe0, 0xf0, 0xe0, 0xff}
	colorOff = [4]byte{0x10, 0x18, 0x10, 0xff}
)

// fillPixels converts the backing grid of the display into RGBA pixels.
func fillPixels(pixels []byte, d *display.Display) {
	for y := range display.Height {
		for x := range display.Width {
			c := colorOff
			if d.PixelAt(x, y) {
				c = colorOn
			}
			copy(pixels[(y*display.Width+x)*4:], c[:])
		}
	}
}
