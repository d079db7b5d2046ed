//go:build tinygo && baremetal

package hal

import "machine"

type picoButtons struct {
	pins [NumButtons]machine.Pin
}

func initButtons() *picoButtons {
	b := &picoButtons{
		pins: [NumButtons]machine.Pin{
			ButtonA: machine.GP12,
			ButtonB: machine.GP13,
			ButtonX: machine.GP14,
			ButtonY: machine.GP15,
		},
	}
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

// Down reports the raw level; buttons are active-low.
func (b *picoButtons) Down(btn Button) bool {
	if btn >= NumButtons {
		return false
	}
	return !b.pins[btn].Get()
}
