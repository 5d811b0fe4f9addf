// Package pointer adapts a TinyGo touch driver, such as the FT6336, to a
// touch.Controller.
package pointer

import (
	"github.com/merliot/inktouch/touch"
	drivers "tinygo.org/x/drivers/touch"
)

// Range is the span of X and Y reported by TinyGo touch drivers.  The FT6336
// driver scales its native resolution up to 16 bits, so a touch.Mapper for
// it uses Range for PanelWidth and PanelHeight.
const Range = 1 << 16

// Pointer wraps a driver that implements tinygo.org/x/drivers/touch.Pointer.
// The drivers report Z == 0 when the panel is not touched.
type Pointer struct {
	p drivers.Pointer
}

// New returns a touch.Controller for p
func New(p drivers.Pointer) *Pointer {
	return &Pointer{p: p}
}

func (p *Pointer) Poll() (touch.Raw, bool, error) {
	pt := p.p.ReadTouchPoint()
	if pt.Z == 0 {
		return touch.Raw{}, false, nil
	}
	return touch.Raw{X: pt.X, Y: pt.Y, Pressure: pt.Z}, true, nil
}

func (p *Pointer) Close() error {
	return nil
}
