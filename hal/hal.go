package hal

import "errors"

// Screen geometry for this deployment. The engines assume these do not
// change without recompilation.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Display is a windowed pixel stream in the style of an ST7789 controller:
// SetWindow defines a rectangular target, Transfer streams pixels into it
// left-to-right, top-to-bottom from the window origin.
//
// Transfer takes byte-swapped RGB565 words (high byte first on the wire);
// callers perform the swap. FillScreen takes a native RGB565 color.
type Display interface {
	Size() (w, h int)
	SetWindow(x0, y0, x1, y1 int16)
	Transfer(pix []uint16)
	FillScreen(c uint16)
}

// Button identifies one of the four face buttons.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	NumButtons
)

// Buttons reports raw button levels. Debouncing is the caller's concern.
type Buttons interface {
	Down(b Button) bool
}

// Time provides a monotonic millisecond clock since boot.
type Time interface {
	Millis() uint32
}

// Serial is a non-blocking byte stream (USB CDC on device, stdio on host).
type Serial interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// HAL is the only contact point between the widget and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	Serial() Serial
	Time() Time
}
