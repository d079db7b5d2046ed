package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"

	"lumen/ball"
	"lumen/gfx"
	"lumen/hal"
	"lumen/quote"
)

const frameRadius = 4

var (
	colorBlack = hal.ColorFromRGB(0, 0, 0)
	colorRed   = hal.ColorFromRGB(255, 0, 0)
	colorCyan  = hal.ColorFromRGB(0, 255, 255)

	textRed = color.RGBA{R: 0xFF, A: 0xFF}
)

// chrome paints the shared page background: black fill, red rounded frame.
func (a *app) chrome() {
	d := a.h.Display()
	d.FillScreen(colorBlack)
	gfx.DrawRoundedFrame(d, frameRadius, colorRed)
}

// Clock page layout: big time readout over a smaller date line.
const (
	timeBaseline = 112
	timeBandTop  = 78
	timeBandBot  = 122

	dateBaseline = 154
	dateBandTop  = 138
	dateBandBot  = 160
)

func (a *app) enterClock() {
	a.chrome()
	a.updateClock()
}

// updateClock redraws the readout bands. Before the first host sync the
// page stays blank chrome.
func (a *app) updateClock() {
	t, ok := a.clk.Local()
	if !ok {
		return
	}

	d := a.h.Display()

	dateStr := fmt.Sprintf("%s %02d/%02d/%04d",
		t.Weekday().String()[:3], int(t.Month()), t.Day(), t.Year())
	timeStr := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())

	gfx.FillRect(d, frameRadius+2, timeBandTop, hal.ScreenWidth-1-frameRadius-2, timeBandBot, colorBlack)
	gfx.DrawTextCentered(d, &freesans.Bold18pt7b, timeBaseline, textRed, timeStr)

	gfx.FillRect(d, frameRadius+2, dateBandTop, hal.ScreenWidth-1-frameRadius-2, dateBandBot, colorBlack)
	gfx.DrawTextCentered(d, &freesans.Regular9pt7b, dateBaseline, textRed, dateStr)
}

func (a *app) enterQuote() {
	a.chrome()

	q, rng := quote.Pick(a.rng)
	a.rng = rng

	gfx.DrawParagraphCentered(a.h.Display(), &freemono.Regular9pt7b, 20,
		hal.ScreenWidth-40, textRed, q)
}

func (a *app) enterBounce() {
	a.ball.Init(ball.Config{
		Radius: 12,
		VX:     2,
		VY:     2,
		Fill:   colorCyan,
		BG:     colorBlack,
		Border: colorRed,
	})
}

func (a *app) enterFractal() {
	a.chrome()
	a.fract.Init()
}
