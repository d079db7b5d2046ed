// Package gfx provides small drawing helpers over hal.Display: span fills,
// frame outlines and tinyfont text. Everything here runs under the
// single-threaded step-loop contract; the shared span buffers are safe
// because only one page draws at a time.
package gfx

import "lumen/hal"

// Swap565 converts a native RGB565 word to the byte-swapped wire format the
// display transport expects.
func Swap565(c uint16) uint16 {
	return (c << 8) | (c >> 8)
}

var spanbuf [hal.ScreenWidth]uint16

// FillRect fills the inclusive rectangle [x0,x1]x[y0,y1], clipped to the
// screen, with a native RGB565 color.
func FillRect(d hal.Display, x0, y0, x1, y1 int, c uint16) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= hal.ScreenWidth {
		x1 = hal.ScreenWidth - 1
	}
	if y1 >= hal.ScreenHeight {
		y1 = hal.ScreenHeight - 1
	}
	if x0 > x1 || y0 > y1 {
		return
	}

	w := x1 - x0 + 1
	pix := Swap565(c)
	for i := 0; i < w; i++ {
		spanbuf[i] = pix
	}

	d.SetWindow(int16(x0), int16(y0), int16(x1), int16(y1))
	for y := y0; y <= y1; y++ {
		d.Transfer(spanbuf[:w])
	}
}

// HLine draws the horizontal run [x0,x1] at row y.
func HLine(d hal.Display, x0, x1, y int, c uint16) {
	FillRect(d, x0, y, x1, y, c)
}

// VLine draws the vertical run [y0,y1] at column x.
func VLine(d hal.Display, x, y0, y1 int, c uint16) {
	FillRect(d, x, y0, x, y1, c)
}

var pixbuf [1]uint16

// PutPixel writes a single native RGB565 pixel.
func PutPixel(d hal.Display, x, y int, c uint16) {
	if x < 0 || x >= hal.ScreenWidth || y < 0 || y >= hal.ScreenHeight {
		return
	}
	pixbuf[0] = Swap565(c)
	d.SetWindow(int16(x), int16(y), int16(x), int16(y))
	d.Transfer(pixbuf[:])
}
