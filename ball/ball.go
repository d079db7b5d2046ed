// Package ball animates an elastically bouncing ball with span-based circle
// rendering. One Tick advances and redraws exactly one frame.
package ball

import (
	"lumen/gfx"
	"lumen/hal"
)

const (
	border = 1

	// MaxRadius bounds the geometry tables; larger requests are clamped.
	MaxRadius = 32
)

// cornerColors is the fill cycle applied on simultaneous two-axis impacts
// (native RGB565): red, green, blue, yellow, magenta, cyan, white.
var cornerColors = [7]uint16{
	0xF800,
	0x07E0,
	0x001F,
	0xFFE0,
	0xF81F,
	0x07FF,
	0xFFFF,
}

// nextCornerColor advances through the cycle; an unknown current color
// resets to the first entry.
func nextCornerColor(cur uint16) uint16 {
	for i, c := range cornerColors {
		if c == cur {
			return cornerColors[(i+1)%len(cornerColors)]
		}
	}
	return cornerColors[0]
}

// Config is the caller-supplied initial state. Radius is clamped internally;
// velocity components must be nonzero.
type Config struct {
	Radius int
	VX, VY int

	Fill   uint16
	BG     uint16
	Border uint16
}

// Bouncer owns the animation state, including the single-entry circle
// geometry cache keyed by the last radius used.
type Bouncer struct {
	d hal.Display

	cx, cy int
	vx, vy int
	r      int

	color  uint16
	bg     uint16
	border uint16

	cachedR int
	halfw   [MaxRadius + 1]int

	span [2*MaxRadius + 1]uint16
}

func New(d hal.Display) *Bouncer {
	return &Bouncer{d: d, cachedR: -1}
}

// precompute builds the per-row half-width table
// halfw[dy] = floor(sqrt(r^2 - dy^2)) when the radius changes.
func (b *Bouncer) precompute(r int) {
	if r == b.cachedR {
		return
	}
	b.cachedR = r

	rr := r * r
	for dy := 0; dy <= r; dy++ {
		x := r
		for x > 0 && x*x+dy*dy > rr {
			x--
		}
		b.halfw[dy] = x
	}
}

// drawCircle emits a filled circle as one clipped horizontal span per row.
func (b *Bouncer) drawCircle(cx, cy, r int, c uint16) {
	pix := gfx.Swap565(c)
	for i := 0; i < 2*r+1; i++ {
		b.span[i] = pix
	}

	for dy := -r; dy <= r; dy++ {
		ay := dy
		if ay < 0 {
			ay = -ay
		}
		dx := b.halfw[ay]

		y := cy + dy
		x0 := cx - dx
		x1 := cx + dx

		if y < 0 || y >= hal.ScreenHeight {
			continue
		}
		if x0 < 0 {
			x0 = 0
		}
		if x1 >= hal.ScreenWidth {
			x1 = hal.ScreenWidth - 1
		}
		n := x1 - x0 + 1
		if n <= 0 {
			continue
		}

		b.d.SetWindow(int16(x0), int16(y), int16(x1), int16(y))
		b.d.Transfer(b.span[:n])
	}
}

// Init establishes the first visible frame: cleared background, 1-pixel
// border frame, ball centered on screen.
func (b *Bouncer) Init(cfg Config) {
	r := cfg.Radius
	if r > MaxRadius {
		r = MaxRadius
	}

	b.r = r
	b.vx = cfg.VX
	b.vy = cfg.VY
	b.color = cfg.Fill
	b.bg = cfg.BG
	b.border = cfg.Border

	b.precompute(r)

	b.cx = hal.ScreenWidth / 2
	b.cy = hal.ScreenHeight / 2

	b.d.FillScreen(b.bg)
	gfx.DrawFrame(b.d, b.border)

	b.drawCircle(b.cx, b.cy, b.r, b.color)
}

// Tick advances one frame: move, reflect off the frame, cycle the fill
// color on corner impacts, erase the old circle and draw the new one.
func (b *Bouncer) Tick() {
	minX := border + b.r
	maxX := (hal.ScreenWidth - 1 - border) - b.r
	minY := border + b.r
	maxY := (hal.ScreenHeight - 1 - border) - b.r

	oldX, oldY := b.cx, b.cy

	b.cx += b.vx
	b.cy += b.vy

	hitX := false
	hitY := false

	if b.cx <= minX {
		b.cx = minX
		b.vx = -b.vx
		hitX = true
	}
	if b.cx >= maxX {
		b.cx = maxX
		b.vx = -b.vx
		hitX = true
	}
	if b.cy <= minY {
		b.cy = minY
		b.vy = -b.vy
		hitY = true
	}
	if b.cy >= maxY {
		b.cy = maxY
		b.vy = -b.vy
		hitY = true
	}

	// Both axes in the same tick means a corner impact.
	if hitX && hitY {
		b.color = nextCornerColor(b.color)
	}

	b.drawCircle(oldX, oldY, b.r, b.bg)

	// The border never needs repainting: the clamp keeps the ball off it.

	b.drawCircle(b.cx, b.cy, b.r, b.color)
}
