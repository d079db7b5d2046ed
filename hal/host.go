//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	disp   *hostDisplay
	btn    *hostButtons
	serial *hostSerial
	t      *hostTime
}

// New returns a host HAL implementation backed by an in-memory display.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		disp:   newHostDisplay(ScreenWidth, ScreenHeight),
		btn:    &hostButtons{},
		serial: newHostSerial(os.Stdin, os.Stdout),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Buttons() Buttons { return h.btn }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostButtons struct {
	mu   sync.Mutex
	down [NumButtons]bool
}

func (b *hostButtons) Down(btn Button) bool {
	if btn >= NumButtons {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.down[btn]
}

func (b *hostButtons) set(states [NumButtons]bool) {
	b.mu.Lock()
	b.down = states
	b.mu.Unlock()
}

type hostSerial struct {
	mu sync.Mutex
	w  *os.File
	ch chan byte
}

func newHostSerial(r, w *os.File) *hostSerial {
	s := &hostSerial{w: w, ch: make(chan byte, 256)}
	if r != nil {
		go func() {
			buf := make([]byte, 64)
			for {
				n, err := r.Read(buf)
				for i := 0; i < n; i++ {
					s.ch <- buf[i]
				}
				if err != nil {
					return
				}
			}
		}()
	}
	return s
}

func (s *hostSerial) Buffered() int { return len(s.ch) }

func (s *hostSerial) ReadByte() (byte, error) {
	select {
	case c := <-s.ch:
		return c, nil
	default:
		return 0, ErrNotImplemented
	}
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
