package app

import (
	"testing"

	"lumen/hal"
)

type fakeDisplay struct {
	fills     int
	transfers int
}

func (f *fakeDisplay) Size() (w, h int) { return hal.ScreenWidth, hal.ScreenHeight }

func (f *fakeDisplay) SetWindow(x0, y0, x1, y1 int16) {}

func (f *fakeDisplay) Transfer(pix []uint16) { f.transfers++ }

func (f *fakeDisplay) FillScreen(c uint16) { f.fills++ }

type fakeButtons struct {
	down [hal.NumButtons]bool
}

func (f *fakeButtons) Down(b hal.Button) bool { return f.down[b] }

type fakeSerial struct{}

func (fakeSerial) Buffered() int               { return 0 }
func (fakeSerial) ReadByte() (byte, error)     { return 0, hal.ErrNotImplemented }
func (fakeSerial) Write(p []byte) (int, error) { return len(p), nil }

type fakeTime struct {
	ms uint32
}

func (f *fakeTime) Millis() uint32 { return f.ms }

type nullLogger struct{}

func (nullLogger) WriteLineString(s string) {}
func (nullLogger) WriteLineBytes(b []byte)  {}

type fakeHAL struct {
	d *fakeDisplay
	b *fakeButtons
	t *fakeTime
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{d: &fakeDisplay{}, b: &fakeButtons{}, t: &fakeTime{ms: 1000}}
}

func (h *fakeHAL) Logger() hal.Logger   { return nullLogger{} }
func (h *fakeHAL) Display() hal.Display { return h.d }
func (h *fakeHAL) Buttons() hal.Buttons { return h.b }
func (h *fakeHAL) Serial() hal.Serial   { return fakeSerial{} }
func (h *fakeHAL) Time() hal.Time       { return h.t }

func TestButtonSwitchesPage(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{})

	if a.page != PageClock {
		t.Fatalf("start page = %v, want clock", a.page)
	}

	h.b.down[hal.ButtonX] = true
	if err := a.step(); err != nil {
		t.Fatal(err)
	}
	if a.page != PageBounce {
		t.Fatalf("page = %v after button X, want bounce", a.page)
	}
}

func TestHeldButtonDebounced(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{})

	h.b.down[hal.ButtonX] = true
	a.step()
	fills := h.d.fills

	// Held within the debounce window: no re-init.
	for i := 0; i < 10; i++ {
		h.t.ms += 10
		a.step()
	}
	if h.d.fills != fills {
		t.Fatalf("page re-entered %d times within debounce window", h.d.fills-fills)
	}

	// Past the window the held level registers again and re-inits the page.
	h.t.ms += debounceMS + 1
	a.step()
	if h.d.fills != fills+1 {
		t.Fatalf("fills = %d, want %d after debounce expiry", h.d.fills, fills+1)
	}
}

func TestAnimationCadence(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{StartPage: PageBounce})

	base := h.d.transfers
	h.t.ms += animIntervalMS - 2
	a.step()
	if h.d.transfers != base {
		t.Fatal("ball ticked before the animation interval")
	}

	h.t.ms += 2
	a.step()
	if h.d.transfers == base {
		t.Fatal("ball did not tick at the animation interval")
	}
}

func TestFractalPageTicksRows(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{StartPage: PageFractal})

	base := h.d.transfers
	h.t.ms += animIntervalMS
	a.step()

	// Each sample row pushes two display rows.
	want := base + 2*fractalRowsPerTick
	if h.d.transfers != want {
		t.Fatalf("transfers = %d after fractal tick, want %d", h.d.transfers, want)
	}
}

func TestClockPageBlankUntilSynced(t *testing.T) {
	h := newFakeHAL()
	a := newApp(h, Config{})

	base := h.d.transfers
	h.t.ms += clockIntervalMS
	a.step()
	if h.d.transfers != base {
		t.Fatal("clock page drew a readout before time sync")
	}

	a.clk.SetEpochUTC(1767355200)
	h.t.ms += clockIntervalMS
	a.step()
	if h.d.transfers == base {
		t.Fatal("clock page did not draw after time sync")
	}
}
