//go:build !tinygo

// Package waveshare drives the Waveshare 2.13" v4 e-paper panel through
// periph.io, as a screen.Panel.
//
// The panel is portrait, 122x250.  In landscape mode the screen is 250x122
// and is rotated a quarter turn clockwise onto the panel.
//
// The periph driver always refreshes with the full waveform.  A partial
// Flush uploads only the dirty window, but the panel still flashes through
// a full refresh, so there is no partial update ghosting to clean up.
package waveshare

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/waveshare2in13v4"
)

// Panel is a Waveshare 2.13" v4 panel
type Panel struct {
	dev       *waveshare2in13v4.Dev
	landscape bool
	sleeping  bool
	buf       *image1bit.VerticalLSB
}

// Open initializes and clears the panel on the SPI port
func Open(port spi.Port, landscape bool) (*Panel, error) {
	opts := waveshare2in13v4.EPD2in13v4
	dev, err := waveshare2in13v4.NewHat(port, &opts)
	if err != nil {
		return nil, fmt.Errorf("waveshare: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("waveshare: init: %w", err)
	}
	if err := dev.Clear(color.White); err != nil {
		return nil, fmt.Errorf("waveshare: clear: %w", err)
	}
	return &Panel{
		dev:       dev,
		landscape: landscape,
		buf:       image1bit.NewVerticalLSB(dev.Bounds()),
	}, nil
}

// Bounds of the screen, in landscape if the panel is landscape
func (p *Panel) Bounds() image.Rectangle {
	b := p.dev.Bounds()
	if p.landscape {
		return image.Rect(0, 0, b.Dy(), b.Dx())
	}
	return b
}

// Flush region r of img to the panel.  A full flush reinitializes the
// panel first.  Either way the driver uses the full refresh waveform.
func (p *Panel) Flush(img *image.Gray, r image.Rectangle, full bool) error {
	if p.sleeping || full {
		if err := p.dev.Init(); err != nil {
			return fmt.Errorf("waveshare: wake: %w", err)
		}
		p.sleeping = false
	}

	b := p.dev.Bounds()
	if full {
		r = p.Bounds()
	}

	src := image.Image(img)
	dst := r
	if p.landscape {
		src = toPortrait(img, b)
		dst = rectToPortrait(r, b)
	}

	draw.Draw(p.buf, dst, src, dst.Min, draw.Src)
	if err := p.dev.Draw(dst, p.buf, dst.Min); err != nil {
		return fmt.Errorf("waveshare: draw %v: %w", dst, err)
	}
	return nil
}

// PartialRefresh returns false: the driver has no partial waveform
func (p *Panel) PartialRefresh() bool {
	return false
}

// Sleep the panel.  The next Flush wakes it.
func (p *Panel) Sleep() error {
	if p.sleeping {
		return nil
	}
	if err := p.dev.Sleep(); err != nil {
		return fmt.Errorf("waveshare: sleep: %w", err)
	}
	p.sleeping = true
	return nil
}

// Halt clears the panel and puts it to sleep
func (p *Panel) Halt() error {
	if p.sleeping {
		if err := p.dev.Init(); err != nil {
			return fmt.Errorf("waveshare: wake: %w", err)
		}
		p.sleeping = false
	}
	if err := p.dev.Clear(color.White); err != nil {
		return fmt.Errorf("waveshare: clear: %w", err)
	}
	return p.Sleep()
}
