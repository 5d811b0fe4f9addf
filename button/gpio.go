//go:build !tinygo

package button

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// GPIO is a periph.io input pin
type GPIO struct {
	gpio.PinIn
}

// Get returns true if the pin reads high
func (g GPIO) Get() bool {
	return g.Read() == gpio.High
}

// OpenGPIO configures the named pin as an input, pulled to the released
// level.  Call after host.Init.
func OpenGPIO(name string, activeLow bool) (GPIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return GPIO{}, fmt.Errorf("button: no pin %q", name)
	}
	pull := gpio.PullDown
	if activeLow {
		pull = gpio.PullUp
	}
	if err := p.In(pull, gpio.NoEdge); err != nil {
		return GPIO{}, fmt.Errorf("button: pin %s: %w", name, err)
	}
	return GPIO{p}, nil
}
