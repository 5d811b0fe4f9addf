//go:build !tinygo

package board

import (
	"fmt"

	"github.com/merliot/inktouch/button"
	"github.com/merliot/inktouch/screen/waveshare"
	"github.com/merliot/inktouch/touch"
	"github.com/merliot/inktouch/touch/gt1151"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// The GT1151 on the HAT reports portrait coordinates, upside down relative
// to the panel
const (
	hatTouchWidth  = 122
	hatTouchHeight = 250
)

// Open the Waveshare 2.13" Touch e-Paper HAT on a Raspberry Pi.  The panel is
// required; a missing touch controller or button is logged and left nil.
func Open(cfg Config) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("board: host init: %w", err)
	}

	b := &Board{Name: "waveshare_2in13_touch_hat", ActiveLow: true}

	port, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("board: spi: %w", err)
	}
	b.OnClose(port.Close)

	panel, err := waveshare.Open(port, cfg.Landscape)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("board: %w", err)
	}
	b.Panel = panel
	b.OnClose(panel.Halt)

	b.Mapper = touch.MapperConfig{
		PanelWidth:  hatTouchWidth,
		PanelHeight: hatTouchHeight,
		Rotation:    touch.Rotate180,
	}
	if cfg.Landscape {
		b.Mapper.Rotation = touch.Rotate90
	}

	if err := b.openTouch(cfg); err != nil {
		fmt.Printf("Touch unavailable: %s\r\n", err)
	}

	if pin, err := button.OpenGPIO(cfg.ButtonA, b.ActiveLow); err != nil {
		fmt.Printf("Button A unavailable: %s\r\n", err)
	} else {
		b.A = pin
	}
	if pin, err := button.OpenGPIO(cfg.ButtonB, b.ActiveLow); err != nil {
		fmt.Printf("Button B unavailable: %s\r\n", err)
	} else {
		b.B = pin
	}

	return b, nil
}

func (b *Board) openTouch(cfg Config) error {
	bus, err := i2creg.Open(cfg.I2C)
	if err != nil {
		return fmt.Errorf("i2c %q: %w", cfg.I2C, err)
	}

	if rst := gpioreg.ByName(cfg.TouchReset); rst != nil {
		if err := gt1151.Reset(rst); err != nil {
			bus.Close()
			return err
		}
	}

	dev := gt1151.New(bus, cfg.TouchAddr)
	id, err := dev.ProductID()
	if err != nil {
		bus.Close()
		return err
	}
	fmt.Printf("Touch controller GT%s on i2c %s\r\n", id, cfg.I2C)

	b.Touch = dev
	b.OnClose(bus.Close)
	return nil
}
