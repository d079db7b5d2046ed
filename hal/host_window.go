//go:build !tinygo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"lumen/internal/buildinfo"
)

// RunWindow opens a desktop window showing the simulated LCD and forwards
// keyboard input as button levels. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("lumen (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.disp.width*2, h.disp.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.btn.set(pollButtons())
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// Buttons map to 1/2/3/4 or A/B/X/Y on the keyboard.
func pollButtons() [NumButtons]bool {
	var s [NumButtons]bool
	s[ButtonA] = ebiten.IsKeyPressed(ebiten.KeyDigit1) || ebiten.IsKeyPressed(ebiten.KeyA)
	s[ButtonB] = ebiten.IsKeyPressed(ebiten.KeyDigit2) || ebiten.IsKeyPressed(ebiten.KeyB)
	s[ButtonX] = ebiten.IsKeyPressed(ebiten.KeyDigit3) || ebiten.IsKeyPressed(ebiten.KeyX)
	s[ButtonY] = ebiten.IsKeyPressed(ebiten.KeyDigit4) || ebiten.IsKeyPressed(ebiten.KeyY)
	return s
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	d := g.h.disp
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, d.width, d.height))
		g.scratch = make([]byte, len(d.buf))
		g.fbImg = ebiten.NewImage(d.width, d.height)
	}

	d.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.width, g.h.disp.height
}
