package gfx

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"lumen/hal"
)

// displayer adapts hal.Display to the drivers.Displayer contract tinyfont
// draws against. Glyph pixels become 1x1 window transfers; text is page
// chrome, not a hot path.
type displayer struct {
	d hal.Display
}

var _ drivers.Displayer = displayer{}

func (p displayer) Size() (x, y int16) {
	w, h := p.d.Size()
	return int16(w), int16(h)
}

func (p displayer) SetPixel(x, y int16, c color.RGBA) {
	PutPixel(p.d, int(x), int(y), hal.ColorFromRGB(c.R, c.G, c.B))
}

func (p displayer) Display() error { return nil }

// TextWidth returns the outbox width of s in the given font.
func TextWidth(font tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(font, s)
	return int(w)
}

// DrawText draws s with its baseline at (x, y).
func DrawText(d hal.Display, font tinyfont.Fonter, x, y int, c color.RGBA, s string) {
	tinyfont.WriteLine(displayer{d: d}, font, int16(x), int16(y), s, c)
}

// DrawTextCentered draws s horizontally centered with its baseline at y.
func DrawTextCentered(d hal.Display, font tinyfont.Fonter, y int, c color.RGBA, s string) {
	w, _ := d.Size()
	x := (w - TextWidth(font, s)) / 2
	DrawText(d, font, x, y, c, s)
}

// WrapText splits s into lines no wider than maxWidth, breaking on spaces.
// A single word wider than maxWidth gets a line of its own.
func WrapText(font tinyfont.Fonter, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		cand := cur + " " + w
		if TextWidth(font, cand) <= maxWidth {
			cur = cand
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}

// DrawParagraphCentered word-wraps s and draws it centered on both axes.
func DrawParagraphCentered(d hal.Display, font tinyfont.Fonter, lineHeight, maxWidth int, c color.RGBA, s string) {
	lines := WrapText(font, s, maxWidth)
	if len(lines) == 0 {
		return
	}

	_, h := d.Size()
	y := (h-len(lines)*lineHeight)/2 + lineHeight
	for _, line := range lines {
		DrawTextCentered(d, font, y, c, line)
		y += lineHeight
	}
}
