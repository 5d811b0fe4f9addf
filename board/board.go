// Package board wires a touch controller, an e-paper panel and two buttons
// for a supported board.
package board

import (
	"errors"

	"github.com/merliot/inktouch"
	"github.com/merliot/inktouch/button"
	"github.com/merliot/inktouch/screen"
	"github.com/merliot/inktouch/touch"
)

// ErrNoBoard is returned by Open when the build target has no board support
var ErrNoBoard = errors.New("board: no board for this target")

// Board is the hardware the sketch runs on.  Touch, A and B are nil if the
// device could not be opened.
type Board struct {
	Name  string
	Touch touch.Controller
	// Mapper places the touch panel on the display.  A zero Width or
	// Height is taken from the panel.
	Mapper    touch.MapperConfig
	Panel     screen.Panel
	A, B      button.Pin
	ActiveLow bool
	closers   []func() error
}

// Config selects the board's wiring
type Config struct {
	// I2C bus of the touch controller
	I2C string
	// I2C address of the touch controller
	TouchAddr uint16
	// Reset pin of the touch controller
	TouchReset string
	// Pins of buttons A and B
	ButtonA, ButtonB string
	// Use the panel in landscape orientation
	Landscape bool
}

// DefaultConfig returns the wiring of the Waveshare 2.13" Touch e-Paper HAT
// with buttons on GPIO5 and GPIO6.  The pins can be changed with
// INKTOUCH_I2C, INKTOUCH_TOUCH_RESET, INKTOUCH_BUTTON_A and
// INKTOUCH_BUTTON_B.
func DefaultConfig() Config {
	return Config{
		I2C:        inktouch.GetEnv("INKTOUCH_I2C", "1"),
		TouchAddr:  0x14,
		TouchReset: inktouch.GetEnv("INKTOUCH_TOUCH_RESET", "GPIO22"),
		ButtonA:    inktouch.GetEnv("INKTOUCH_BUTTON_A", "GPIO5"),
		ButtonB:    inktouch.GetEnv("INKTOUCH_BUTTON_B", "GPIO6"),
		Landscape:  true,
	}
}

// OnClose registers fn to run when the board is closed.  Functions run in
// reverse order of registration.
func (b *Board) OnClose(fn func() error) {
	b.closers = append(b.closers, fn)
}

// Close releases the board's devices
func (b *Board) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
