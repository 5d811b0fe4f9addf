//go:build tinygo

// Package uc8151 adapts the TinyGo UC8151 e-paper driver, as found on the
// Pimoroni Badger 2040, to a screen.Panel.
package uc8151

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers/uc8151"
)

var (
	ink   = color.RGBA{1, 1, 1, 255}
	paper = color.RGBA{0, 0, 0, 255}
)

// Panel is a UC8151 panel
type Panel struct {
	dev *uc8151.Device
}

// New returns a panel for a configured device
func New(dev *uc8151.Device) *Panel {
	return &Panel{dev: dev}
}

func (p *Panel) Bounds() image.Rectangle {
	w, h := p.dev.Size()
	return image.Rect(0, 0, int(w), int(h))
}

// Flush copies region r of img into the driver's buffer and refreshes.  The
// controller updates partial windows in whole bytes, so r is widened to
// multiples of 8 columns.
func (p *Panel) Flush(img *image.Gray, r image.Rectangle, full bool) error {
	r = align(r).Intersect(p.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := paper
			if img.GrayAt(x, y).Y < 0x80 {
				c = ink
			}
			p.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	if full {
		return p.dev.Display()
	}
	return p.dev.DisplayRect(int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()))
}

// Sleep waits for the panel to finish refreshing
func (p *Panel) Sleep() error {
	p.dev.WaitUntilIdle()
	return nil
}
