// Package app wires the four widget pages to the HAL and schedules their
// ticks. One step() call is one cooperative scheduler pass; the host window,
// the headless runner and the device main loop all drive the same closure.
package app

import (
	"time"

	"lumen/ball"
	"lumen/clock"
	"lumen/hal"
	"lumen/mandel"
)

// Page identifies one of the button-selected displays.
type Page uint8

const (
	PageClock Page = iota
	PageQuote
	PageBounce
	PageFractal
)

func (p Page) String() string {
	switch p {
	case PageClock:
		return "clock"
	case PageQuote:
		return "quote"
	case PageBounce:
		return "bounce"
	case PageFractal:
		return "fractal"
	}
	return "?"
}

type Config struct {
	StartPage Page
}

const (
	debounceMS      = 200
	clockIntervalMS = 1000
	animIntervalMS  = 16

	// Sample rows rendered per fractal tick. At 60 passes/s this walks a
	// full frame in ~4 passes without starving the button poll.
	fractalRowsPerTick = 32
)

type app struct {
	h hal.HAL

	page      Page
	lastAnim  uint32
	lastClock uint32
	btnLast   [hal.NumButtons]uint32

	ball  *ball.Bouncer
	fract *mandel.Anim
	clk   *clock.Clock
	sync  *clock.SyncPoller

	rng uint32
}

// New initializes the widget and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := newApp(h, cfg)
	return a.step
}

// Run drives the widget forever (device entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		_ = step()
		time.Sleep(time.Millisecond)
	}
}

func newApp(h hal.HAL, cfg Config) *app {
	millis := h.Time().Millis
	clk := clock.New(millis)

	a := &app{
		h:     h,
		ball:  ball.New(h.Display()),
		fract: mandel.New(h.Display(), millis),
		clk:   clk,
		sync:  clock.NewSyncPoller(h.Serial(), clk),
		rng:   millis() | 1,
	}

	h.Logger().WriteLineString("lumen: boot")
	a.enter(cfg.StartPage, millis())
	return a
}

func (a *app) step() error {
	now := a.h.Time().Millis()

	a.sync.Poll()

	for b := hal.Button(0); b < hal.NumButtons; b++ {
		if a.buttonPressed(b, now) {
			a.enter(pageForButton(b), now)
		}
	}

	switch a.page {
	case PageClock:
		if now-a.lastClock >= clockIntervalMS {
			a.lastClock = now
			a.updateClock()
		}
	case PageBounce:
		if now-a.lastAnim >= animIntervalMS {
			a.lastAnim = now
			a.ball.Tick()
		}
	case PageFractal:
		if now-a.lastAnim >= animIntervalMS {
			a.lastAnim = now
			a.fract.Tick(fractalRowsPerTick)
		}
	}

	return nil
}

// buttonPressed reports a debounced press: a held level registers at most
// once per debounce window.
func (a *app) buttonPressed(b hal.Button, now uint32) bool {
	if !a.h.Buttons().Down(b) {
		return false
	}
	if now-a.btnLast[b] <= debounceMS {
		return false
	}
	a.btnLast[b] = now
	return true
}

func pageForButton(b hal.Button) Page {
	switch b {
	case hal.ButtonA:
		return PageClock
	case hal.ButtonB:
		return PageQuote
	case hal.ButtonX:
		return PageBounce
	default:
		return PageFractal
	}
}

// enter switches pages, discarding the previous page's progress. Re-pressing
// the current page's button re-initializes it.
func (a *app) enter(p Page, now uint32) {
	a.page = p
	a.h.Logger().WriteLineString("page: " + p.String())

	switch p {
	case PageClock:
		a.enterClock()
		a.lastClock = now
	case PageQuote:
		a.enterQuote()
	case PageBounce:
		a.enterBounce()
		a.lastAnim = now
	case PageFractal:
		a.enterFractal()
		a.lastAnim = now
	}
}
