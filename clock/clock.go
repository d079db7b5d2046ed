// Package clock keeps wall-clock time as an epoch anchor plus the monotonic
// millisecond counter, and speaks the host time-sync protocol over serial.
// There is no battery-backed RTC in this deployment; time is invalid until
// the host syncs it.
package clock

import "time"

// Displayed time is fixed to UTC-5; the host always syncs UTC.
const tzOffsetHours = -5

// Clock is a software RTC anchored to the monotonic clock.
type Clock struct {
	millis func() uint32

	valid  bool
	epoch  int64  // UTC seconds at the anchor point
	anchor uint32 // millis() at the anchor point
}

func New(millis func() uint32) *Clock {
	return &Clock{millis: millis}
}

// Valid reports whether the clock has been synced since boot.
func (c *Clock) Valid() bool { return c.valid }

// SetEpochUTC anchors the clock to the given UTC epoch seconds.
func (c *Clock) SetEpochUTC(epoch int64) {
	c.epoch = epoch
	c.anchor = c.millis()
	c.valid = true
}

// Local returns the current local time, or false if never synced.
func (c *Clock) Local() (time.Time, bool) {
	if !c.valid {
		return time.Time{}, false
	}
	elapsed := int64(c.millis()-c.anchor) / 1000
	return time.Unix(c.epoch+elapsed+tzOffsetHours*3600, 0).UTC(), true
}
