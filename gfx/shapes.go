package gfx

import "lumen/hal"

// DrawFrame draws a 1-pixel rectangle outline around the whole screen.
func DrawFrame(d hal.Display, c uint16) {
	w, h := hal.ScreenWidth, hal.ScreenHeight
	HLine(d, 0, w-1, 0, c)
	HLine(d, 0, w-1, h-1, c)
	VLine(d, 0, 0, h-1, c)
	VLine(d, w-1, 0, h-1, c)
}

// DrawRoundedFrame draws a screen-sized rectangle outline with rounded
// corners of the given radius. Used as page chrome.
func DrawRoundedFrame(d hal.Display, r int, c uint16) {
	w, h := hal.ScreenWidth, hal.ScreenHeight
	if r < 0 {
		r = 0
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}

	HLine(d, r, w-1-r, 0, c)
	HLine(d, r, w-1-r, h-1, c)
	VLine(d, 0, r, h-1-r, c)
	VLine(d, w-1, r, h-1-r, c)

	// Midpoint circle for the four corner arcs.
	cxL, cxR := r, w-1-r
	cyT, cyB := r, h-1-r

	x, y := r, 0
	err := 1 - r
	for x >= y {
		PutPixel(d, cxL-x, cyT-y, c)
		PutPixel(d, cxL-y, cyT-x, c)
		PutPixel(d, cxR+x, cyT-y, c)
		PutPixel(d, cxR+y, cyT-x, c)
		PutPixel(d, cxL-x, cyB+y, c)
		PutPixel(d, cxL-y, cyB+x, c)
		PutPixel(d, cxR+x, cyB+y, c)
		PutPixel(d, cxR+y, cyB+x, c)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}
