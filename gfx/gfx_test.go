package gfx

import (
	"testing"

	"tinygo.org/x/tinyfont/freemono"

	"lumen/hal"
)

type window struct {
	x0, y0, x1, y1 int16
}

type fakeDisplay struct {
	windows []window
	data    [][]uint16
	fills   []uint16
}

func (f *fakeDisplay) Size() (w, h int) { return hal.ScreenWidth, hal.ScreenHeight }

func (f *fakeDisplay) SetWindow(x0, y0, x1, y1 int16) {
	f.windows = append(f.windows, window{x0, y0, x1, y1})
}

func (f *fakeDisplay) Transfer(pix []uint16) {
	cp := make([]uint16, len(pix))
	copy(cp, pix)
	f.data = append(f.data, cp)
}

func (f *fakeDisplay) FillScreen(c uint16) { f.fills = append(f.fills, c) }

func TestSwap565(t *testing.T) {
	if got := Swap565(0x12F3); got != 0xF312 {
		t.Fatalf("Swap565(0x12F3) = %#04x, want 0xF312", got)
	}
	if got := Swap565(Swap565(0xABCD)); got != 0xABCD {
		t.Fatalf("double swap = %#04x, want identity", got)
	}
}

func TestFillRectClipsAndSwaps(t *testing.T) {
	fd := &fakeDisplay{}
	c := hal.ColorFromRGB(255, 0, 0)
	FillRect(fd, -10, -10, 4, 2, c)

	if len(fd.windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(fd.windows))
	}
	if w := fd.windows[0]; w != (window{0, 0, 4, 2}) {
		t.Fatalf("window = %+v, want clipped to origin", w)
	}
	if len(fd.data) != 3 {
		t.Fatalf("got %d row transfers, want 3", len(fd.data))
	}
	for _, row := range fd.data {
		if len(row) != 5 {
			t.Fatalf("row length %d, want 5", len(row))
		}
		for _, p := range row {
			if p != Swap565(c) {
				t.Fatalf("pixel %#04x, want swapped color", p)
			}
		}
	}
}

func TestFillRectRejectsEmpty(t *testing.T) {
	fd := &fakeDisplay{}
	FillRect(fd, 10, 10, 5, 5, 0xFFFF)
	if len(fd.windows) != 0 {
		t.Fatal("empty rectangle produced output")
	}
}

func TestPutPixelBounds(t *testing.T) {
	fd := &fakeDisplay{}
	PutPixel(fd, -1, 0, 0xFFFF)
	PutPixel(fd, hal.ScreenWidth, 0, 0xFFFF)
	if len(fd.windows) != 0 {
		t.Fatal("out-of-bounds pixel produced output")
	}

	PutPixel(fd, 3, 7, 0xFFFF)
	if len(fd.windows) != 1 || fd.windows[0] != (window{3, 7, 3, 7}) {
		t.Fatalf("windows = %+v, want single 1x1 at (3,7)", fd.windows)
	}
}

func TestWrapTextRespectsWidth(t *testing.T) {
	font := &freemono.Regular9pt7b
	const maxW = 150

	lines := WrapText(font, "the quick brown fox jumps over the lazy dog", maxW)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %q", lines)
	}
	for _, line := range lines {
		if w := TextWidth(font, line); w > maxW {
			t.Fatalf("line %q is %d wide, max %d", line, w, maxW)
		}
	}
}

func TestWrapTextEdgeCases(t *testing.T) {
	font := &freemono.Regular9pt7b

	if lines := WrapText(font, "   ", 100); lines != nil {
		t.Fatalf("blank input wrapped to %q", lines)
	}

	// A word wider than the limit still gets emitted on its own line.
	lines := WrapText(font, "incomprehensibilities", 20)
	if len(lines) != 1 {
		t.Fatalf("oversized word wrapped to %q", lines)
	}
}

func TestDrawFrameCoversEdges(t *testing.T) {
	fd := &fakeDisplay{}
	DrawFrame(fd, 0xF800)

	if len(fd.windows) != 4 {
		t.Fatalf("got %d spans, want 4", len(fd.windows))
	}
	want := []window{
		{0, 0, hal.ScreenWidth - 1, 0},
		{0, hal.ScreenHeight - 1, hal.ScreenWidth - 1, hal.ScreenHeight - 1},
		{0, 0, 0, hal.ScreenHeight - 1},
		{hal.ScreenWidth - 1, 0, hal.ScreenWidth - 1, hal.ScreenHeight - 1},
	}
	for i, w := range want {
		if fd.windows[i] != w {
			t.Fatalf("span %d = %+v, want %+v", i, fd.windows[i], w)
		}
	}
}
