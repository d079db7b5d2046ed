package clock

import (
	"strconv"
	"strings"

	"lumen/hal"
)

// Sync protocol: the host writes lines of the form "T <epoch-utc>"; each
// line is answered with OK or a one-line error.
const (
	epochMin = 1700000000 // sanity window: late 2023 ...
	epochMax = 4102444800 // ... to 2100

	maxLine = 64
)

// SyncPoller accumulates serial input and applies valid sync lines to the
// clock. Poll is non-blocking and called once per scheduler pass.
type SyncPoller struct {
	s hal.Serial
	c *Clock

	buf [maxLine]byte
	n   int
}

func NewSyncPoller(s hal.Serial, c *Clock) *SyncPoller {
	return &SyncPoller{s: s, c: c}
}

// Poll drains buffered serial input.
func (p *SyncPoller) Poll() {
	for p.s.Buffered() > 0 {
		b, err := p.s.ReadByte()
		if err != nil {
			return
		}

		switch {
		case b == '\r':
			// ignore
		case b == '\n':
			p.handleLine(string(p.buf[:p.n]))
			p.n = 0
		case p.n+1 < maxLine:
			p.buf[p.n] = b
			p.n++
		default:
			p.n = 0
			p.reply("ERR overflow")
		}
	}
}

func (p *SyncPoller) handleLine(line string) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "T" {
		p.reply("ERR fmt")
		return
	}

	epoch, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		p.reply("ERR fmt")
		return
	}
	if epoch <= epochMin || epoch >= epochMax {
		p.reply("ERR range")
		return
	}

	p.c.SetEpochUTC(epoch)
	p.reply("OK")
}

func (p *SyncPoller) reply(s string) {
	p.s.Write([]byte(s + "\n"))
}
