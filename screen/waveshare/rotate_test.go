package waveshare

import (
	"image"
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"
)

var portrait = image.Rect(0, 0, 122, 250)

func TestToPortrait(t *testing.T) {
	c := qt.New(t)

	src := image.NewGray(image.Rect(0, 0, 250, 122))
	src.SetGray(0, 0, color.Gray{Y: 1})
	src.SetGray(249, 121, color.Gray{Y: 2})
	src.SetGray(10, 20, color.Gray{Y: 3})

	dst := toPortrait(src, portrait)
	c.Assert(dst.Rect, qt.Equals, portrait)
	c.Assert(dst.GrayAt(121, 0).Y, qt.Equals, uint8(1))
	c.Assert(dst.GrayAt(0, 249).Y, qt.Equals, uint8(2))
	c.Assert(dst.GrayAt(101, 10).Y, qt.Equals, uint8(3))
}

func TestRectToPortrait(t *testing.T) {
	c := qt.New(t)

	// the single pixel (10, 20) lands on (101, 10)
	r := rectToPortrait(image.Rect(10, 20, 11, 21), portrait)
	c.Assert(r, qt.Equals, image.Rect(101, 10, 102, 11))

	full := rectToPortrait(image.Rect(0, 0, 250, 122), portrait)
	c.Assert(full, qt.Equals, portrait)

	// the top strip of the landscape screen is the right edge of the panel
	strip := rectToPortrait(image.Rect(0, 0, 250, 16), portrait)
	c.Assert(strip, qt.Equals, image.Rect(106, 0, 122, 250))
}
