//go:build !tinygo

package hal

import "sync"

// hostDisplay emulates LCD GRAM: a write window with an advancing cursor,
// backed by a little-endian RGB565 buffer the window renderer snapshots.
type hostDisplay struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte

	x0, y0 int
	x1, y1 int
	cx, cy int
}

func newHostDisplay(width, height int) *hostDisplay {
	d := &hostDisplay{
		width:  width,
		height: height,
		buf:    make([]byte, width*height*2),
	}
	d.x1 = width - 1
	d.y1 = height - 1
	return d
}

func (d *hostDisplay) Size() (w, h int) { return d.width, d.height }

func (d *hostDisplay) SetWindow(x0, y0, x1, y1 int16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.x0, d.y0 = int(x0), int(y0)
	d.x1, d.y1 = int(x1), int(y1)
	d.cx, d.cy = d.x0, d.y0
}

func (d *hostDisplay) Transfer(pix []uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range pix {
		if d.cy > d.y1 {
			return
		}
		if d.cx >= 0 && d.cx < d.width && d.cy >= 0 && d.cy < d.height {
			// The wire format is byte-swapped; GRAM stores native order.
			native := (p << 8) | (p >> 8)
			off := (d.cy*d.width + d.cx) * 2
			d.buf[off] = byte(native)
			d.buf[off+1] = byte(native >> 8)
		}
		d.cx++
		if d.cx > d.x1 {
			d.cx = d.x0
			d.cy++
		}
	}
}

func (d *hostDisplay) FillScreen(c uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	lo := byte(c)
	hi := byte(c >> 8)
	for i := 0; i < len(d.buf); i += 2 {
		d.buf[i] = lo
		d.buf[i+1] = hi
	}
}

func (d *hostDisplay) snapshotRGB565(dst []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	copy(dst, d.buf)
}
