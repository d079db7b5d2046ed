//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	disp   *st7789
	btn    *picoButtons
	serial usbSerial
	t      *tinyGoTime
}

// New returns the Pico HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: ST7789 on SPI0, SCK GP18 / MOSI GP19 / CS GP17 / DC GP16 / BL GP20.
// Buttons: A/B/X/Y on GP12..GP15, active-low with pull-ups.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		disp:   initST7789(),
		btn:    initButtons(),
		serial: usbSerial{},
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Buttons() Buttons { return h.btn }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHAL) Time() Time       { return h.t }

type tinyGoTime struct {
	start time.Time
}

func newTinyGoTime() *tinyGoTime {
	return &tinyGoTime{start: time.Now()}
}

func (t *tinyGoTime) Millis() uint32 {
	return uint32(time.Since(t.start) / time.Millisecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// usbSerial exposes the USB CDC console for the time-sync protocol.
type usbSerial struct{}

func (usbSerial) Buffered() int               { return machine.Serial.Buffered() }
func (usbSerial) ReadByte() (byte, error)     { return machine.Serial.ReadByte() }
func (usbSerial) Write(p []byte) (int, error) { return machine.Serial.Write(p) }
