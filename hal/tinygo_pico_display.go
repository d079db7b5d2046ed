//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type st7789 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	bl  machine.Pin

	txBuf []byte
}

func initST7789() *st7789 {
	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 62_500_000,
	})

	lcd := &st7789{
		spi:   *machine.SPI0,
		cs:    machine.GP17,
		dc:    machine.GP16,
		bl:    machine.GP20,
		txBuf: make([]byte, 2048),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()

	lcd.init()
	lcd.bl.High()

	return lcd
}

func (d *st7789) init() {
	d.cmd(0x01) // SWRESET
	time.Sleep(150 * time.Millisecond)

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Landscape 320x240: row/column exchange + X mirror.
	d.cmd(0x36, 0x60|0x08) // MADCTL: MV|MX + BGR panel order

	// These panels expect inversion enabled.
	d.cmd(0x21) // INVON

	d.cmd(0x13) // NORON
	d.cmd(0x29) // DISPON
	time.Sleep(50 * time.Millisecond)
}

func (d *st7789) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *st7789) Size() (w, h int) { return ScreenWidth, ScreenHeight }

func (d *st7789) SetWindow(x0, y0, x1, y1 int16) {
	d.cmd(
		0x2A, // CASET
		byte(uint16(x0)>>8), byte(x0),
		byte(uint16(x1)>>8), byte(x1),
	)
	d.cmd(
		0x2B, // RASET
		byte(uint16(y0)>>8), byte(y0),
		byte(uint16(y1)>>8), byte(y1),
	)
	d.cmd(0x2C) // RAMWR
}

// Transfer streams byte-swapped RGB565 words into the current window.
// The swap already matches the panel's big-endian wire order, so words go
// out in memory order.
func (d *st7789) Transfer(pix []uint16) {
	d.cs.Low()
	d.dc.High()

	chunk := d.txBuf
	n := 0
	for _, p := range pix {
		chunk[n] = byte(p)
		chunk[n+1] = byte(p >> 8)
		n += 2
		if n == len(chunk) {
			d.spi.Tx(chunk[:n], nil)
			n = 0
		}
	}
	if n > 0 {
		d.spi.Tx(chunk[:n], nil)
	}

	d.cs.High()
}

func (d *st7789) FillScreen(c uint16) {
	d.SetWindow(0, 0, ScreenWidth-1, ScreenHeight-1)

	d.cs.Low()
	d.dc.High()

	chunk := d.txBuf
	hi := byte(c >> 8)
	lo := byte(c)
	for i := 0; i+1 < len(chunk); i += 2 {
		chunk[i] = hi
		chunk[i+1] = lo
	}

	remain := ScreenWidth * ScreenHeight * 2
	for remain > 0 {
		n := len(chunk) &^ 1
		if n > remain {
			n = remain
		}
		d.spi.Tx(chunk[:n], nil)
		remain -= n
	}

	d.cs.High()
}
