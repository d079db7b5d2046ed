// Package mandel renders a continuously zooming mandelbrot animation in
// Q4.28 fixed point, one batch of scanlines per tick.
//
// The visible area inside the 1-pixel page frame is sampled at half vertical
// resolution; each computed row is pushed to two adjacent display rows. A
// full pass over the sample rows triggers at most one zoom step, gated by a
// wall-clock interval so the zoom speed does not depend on how often the
// host ticks the renderer.
package mandel

import (
	"lumen/fixp"
	"lumen/gfx"
	"lumen/hal"
)

const (
	border  = 1
	dispW   = hal.ScreenWidth - 2*border
	dispH   = hal.ScreenHeight - 2*border
	sampleH = dispH / 2 // 1x2 vertical upscale

	zoomIntervalMS = 10

	iterStart = 64
	iterCap   = 140
)

var zoomFactor = fixp.FromFloat(0.985)

// Anim is the renderer state. Created with New, reset by Init, advanced by
// Tick; owned by a single caller per the cooperative scheduling contract.
type Anim struct {
	d   hal.Display
	now func() uint32 // monotonic milliseconds

	cx, cy  fixp.Val
	scale   fixp.Val // distance per pixel, strictly positive
	maxIter uint16
	nextRow int // sample row cursor in [0, sampleH)

	lastZoomMS uint32

	pal  [256]uint16
	line [dispW]uint16
}

// New returns an animation drawing to d and reading the monotonic clock
// from now.
func New(d hal.Display, now func() uint32) *Anim {
	a := &Anim{d: d, now: now}
	buildPalette(&a.pal)
	return a
}

// Init resets the animation to the seed view: a low iteration bound for
// early responsiveness, centered on a fixed deep-zoom coordinate.
func (a *Anim) Init() {
	a.cx = fixp.FromFloat(-0.743643887037151)
	a.cy = fixp.FromFloat(0.131825904205330)
	a.scale = fixp.FromFloat(0.010)

	a.maxIter = iterStart
	a.nextRow = 0

	a.lastZoomMS = a.now()
}

// Tick renders the next `rows` sample rows, wrapping at the end of a pass.
// A zero budget is treated as one row.
func (a *Anim) Tick(rows int) {
	if rows < 1 {
		rows = 1
	}

	for i := 0; i < rows; i++ {
		sy := a.nextRow
		y0 := border + sy*2
		y1 := y0 + 1 // duplicate for the 1x2 upscale

		a.renderRow(y0)
		a.pushRow(y0)
		a.pushRow(y1)

		a.nextRow++
		if a.nextRow >= sampleH {
			a.nextRow = 0

			now := a.now()
			if now-a.lastZoomMS >= zoomIntervalMS {
				a.lastZoomMS = now
				a.zoomStep()
			}
		}
	}
}

// pixelToComplex maps a display pixel to the complex plane:
// center + (dx, dy) * scale, with offsets taken from screen center.
func (a *Anim) pixelToComplex(x, y int) (cr, ci fixp.Val) {
	dx := int32(x - hal.ScreenWidth/2)
	dy := int32(y - hal.ScreenHeight/2)
	cr = a.cx + fixp.Val(int64(dx)*int64(a.scale))
	ci = a.cy + fixp.Val(int64(dy)*int64(a.scale))
	return cr, ci
}

// inCardioidOrBulb reports whether c lies in the main cardioid or the
// period-2 bulb. Both regions are provably inside the set, so this is a
// pure fast path with no misclassification.
func inCardioidOrBulb(cr, ci fixp.Val) bool {
	y2 := fixp.Mul(ci, ci)

	// period-2 bulb: (x+1)^2 + y^2 <= 1/16
	x1 := fixp.Add(cr, fixp.One)
	x1sq := fixp.Mul(x1, x1)
	if fixp.Add(x1sq, y2) <= fixp.One>>4 {
		return true
	}

	// main cardioid: q = (x - 1/4)^2 + y^2; q*(q + (x - 1/4)) <= y^2/4
	xm := fixp.Sub(cr, fixp.One>>2)
	q := fixp.Add(fixp.Mul(xm, xm), y2)

	left := fixp.Mul(q, fixp.Add(q, xm))
	right := y2 >> 2
	return left <= right
}

// escapeIterations runs z <- z^2 + c from zero and returns the iteration
// count at escape (|z|^2 > 4), or maxIter if the point never escaped.
func escapeIterations(cr, ci fixp.Val, maxIter uint16) uint16 {
	var zr, zi fixp.Val
	var it uint16

	for it < maxIter {
		zr2 := fixp.Mul(zr, zr)
		zi2 := fixp.Mul(zi, zi)
		if fixp.Add(zr2, zi2) > fixp.Four {
			break
		}

		twoZrZi := fixp.Mul(zr, zi) << 1
		zr = fixp.Add(fixp.Sub(zr2, zi2), cr)
		zi = fixp.Add(twoZrZi, ci)
		it++
	}
	return it
}

// colorAt classifies one pixel and returns its native RGB565 color.
func (a *Anim) colorAt(x, y int) uint16 {
	cr, ci := a.pixelToComplex(x, y)

	if inCardioidOrBulb(cr, ci) {
		return a.pal[0]
	}

	it := escapeIterations(cr, ci, a.maxIter)
	if it == a.maxIter {
		return a.pal[0]
	}
	idx := uint8((uint32(it) * 255) / uint32(a.maxIter))
	return a.pal[idx]
}

// renderRow fills the line buffer with swapped pixels for display row y,
// covering the full width inside the frame.
func (a *Anim) renderRow(y int) {
	for x := border; x <= hal.ScreenWidth-1-border; x++ {
		a.line[x-border] = gfx.Swap565(a.colorAt(x, y))
	}
}

func (a *Anim) pushRow(y int) {
	a.d.SetWindow(border, int16(y), border+dispW-1, int16(y))
	a.d.Transfer(a.line[:])
}

// zoomStep shrinks the visible region and, below the cap, buys one more
// iteration of detail. Unconditional with respect to image content.
func (a *Anim) zoomStep() {
	a.scale = fixp.Mul(a.scale, zoomFactor)

	if a.maxIter < iterCap {
		a.maxIter++
	}
}
