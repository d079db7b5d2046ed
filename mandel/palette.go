package mandel

import "lumen/hal"

// buildPalette fills the 256-entry escape palette. Index 0 is reserved for
// interior points and forced to black regardless of the generator.
func buildPalette(pal *[256]uint16) {
	for i := 0; i < 256; i++ {
		r := uint8(i)
		g := uint8((i * 5) ^ (i << 1))
		b := uint8(255 - i)
		pal[i] = hal.ColorFromRGB(r, g, b)
	}
	pal[0] = hal.ColorFromRGB(0, 0, 0)
}
