// Package display implements the 64x32 monochrome CHIP-8 frame buffer.
package display

import "strings"

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32
)

// Display is a row-major monochrome pixel grid.
type Display struct {
	pixels [Width * Height]bool
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
}

// Draw XORs the sprite onto the display with its top left corner at (x, y).
// Every sprite byte is one row of 8 pixels, bit 7 being the leftmost one.
// Pixels outside of the display wrap around on both axes. The result reports
// whether any pixel that was set got turned off.
func (d *Display) Draw(x, y int, sprite []byte) bool {
	collision := false

	for row, b := range sprite {
		yp := wrap(y+row, Height)
		for col := range 8 {
			if b&(0x80>>col) == 0 {
				continue
			}

			xp := wrap(x+col, Width)
			index := yp*Width + xp
			if d.pixels[index] {
				collision = true
			}
			d.pixels[index] = !d.pixels[index]
		}
	}
	return collision
}

// At returns whether the pixel at (x, y) is set. Coordinates outside of the
// display wrap around like they do for Draw.
func (d *Display) At(x, y int) bool {
	return d.pixels[wrap(y, Height)*Width+wrap(x, Width)]
}

// wrap maps v into 0..n-1, negative values included.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// String renders the display as rows of '#' for set and '.' for cleared pixels.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := range Height {
		for x := range Width {
			if d.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
