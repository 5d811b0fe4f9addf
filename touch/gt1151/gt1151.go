// Package gt1151 reads the Goodix GT1151 capacitive touch controller used on
// Waveshare's 2.13" Touch e-Paper HAT.
//
// Only the first touch point is read; the controller's multi-touch reports
// are not used.
package gt1151

import (
	"fmt"
	"time"

	"github.com/merliot/inktouch/touch"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the controller's I2C address with INT held low at reset
const DefaultAddr = 0x14

const (
	regProductID = 0x8140
	regStatus    = 0x814E
	regPoints    = 0x814F

	statusReady = 0x80
	statusCount = 0x0F

	maxPoints = 5
	pointSize = 8
)

// Dev is a GT1151 on an I2C bus.  Dev implements touch.Controller.
type Dev struct {
	d i2c.Dev
}

// New returns a GT1151 at addr on bus
func New(bus i2c.Bus, addr uint16) *Dev {
	return &Dev{d: i2c.Dev{Bus: bus, Addr: addr}}
}

// Reset pulses the controller's reset line
func Reset(rst gpio.PinOut) error {
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("gt1151: reset: %w", err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("gt1151: reset: %w", err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("gt1151: reset: %w", err)
	}
	time.Sleep(100 * time.Millisecond)
	return nil
}

func (d *Dev) read(reg uint16, r []byte) error {
	w := []byte{byte(reg >> 8), byte(reg & 0xFF)}
	if err := d.d.Tx(w, r); err != nil {
		return fmt.Errorf("gt1151: read 0x%04X: %w", reg, err)
	}
	return nil
}

func (d *Dev) write(reg uint16, b byte) error {
	w := []byte{byte(reg >> 8), byte(reg & 0xFF), b}
	if err := d.d.Tx(w, nil); err != nil {
		return fmt.Errorf("gt1151: write 0x%04X: %w", reg, err)
	}
	return nil
}

// ProductID returns the controller's product ID, "1158" for a GT1151
func (d *Dev) ProductID() (string, error) {
	id := make([]byte, 4)
	if err := d.read(regProductID, id); err != nil {
		return "", err
	}
	return string(id), nil
}

// Poll returns the first touch point if the controller has a new report.
// The report buffer is released after reading.
func (d *Dev) Poll() (touch.Raw, bool, error) {
	var status [1]byte
	if err := d.read(regStatus, status[:]); err != nil {
		return touch.Raw{}, false, err
	}
	if status[0]&statusReady == 0 {
		return touch.Raw{}, false, nil
	}

	count := int(status[0] & statusCount)
	if count < 1 || count > maxPoints {
		// zero points is a release report
		return touch.Raw{}, false, d.write(regStatus, 0)
	}

	var data [pointSize]byte
	if err := d.read(regPoints, data[:]); err != nil {
		return touch.Raw{}, false, err
	}
	if err := d.write(regStatus, 0); err != nil {
		return touch.Raw{}, false, err
	}

	// data[0] is the track ID
	return touch.Raw{
		X:        int(data[1]) | int(data[2])<<8,
		Y:        int(data[3]) | int(data[4])<<8,
		Pressure: int(data[5]) | int(data[6])<<8,
	}, true, nil
}

// Close does nothing; the bus belongs to the caller
func (d *Dev) Close() error {
	return nil
}
