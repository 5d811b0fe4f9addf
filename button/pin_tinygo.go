//go:build tinygo

package button

import "machine"

// ConfigurePin sets pin as an input, pulled to the released level.
// machine.Pin implements Pin.
func ConfigurePin(pin machine.Pin, activeLow bool) Pin {
	mode := machine.PinInputPulldown
	if activeLow {
		mode = machine.PinInputPullup
	}
	pin.Configure(machine.PinConfig{Mode: mode})
	return pin
}
