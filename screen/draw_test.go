package screen

import (
	"image"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newTestScreen() *Screen {
	s := New(newFakePanel(), Config{})
	s.Refresh(at(0), false)
	return s
}

func TestLine(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	s.Line(5, 5, 5, 10, Ink)
	c.Assert(s.Dirty(), qt.Equals, image.Rect(5, 5, 6, 11))
	for y := 5; y <= 10; y++ {
		c.Assert(s.Image().GrayAt(5, y).Y, qt.Equals, uint8(black))
	}
	c.Assert(s.Image().GrayAt(5, 11).Y, qt.Equals, uint8(white))
}

func TestLineClipped(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	s.Line(-10, 0, 10, 0, Ink)
	c.Assert(s.Dirty(), qt.Equals, image.Rect(0, 0, 11, 1))
}

func TestRect(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	s.Rect(image.Rect(10, 10, 20, 15), Ink)
	c.Assert(s.Dirty(), qt.Equals, image.Rect(10, 10, 20, 15))
	c.Assert(s.Image().GrayAt(19, 14).Y, qt.Equals, uint8(black))
	c.Assert(s.Image().GrayAt(15, 12).Y, qt.Equals, uint8(white))
}

func TestCrosshair(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	p := image.Pt(50, 50)
	s.Crosshair(p, 6, Ink)
	c.Assert(s.Dirty(), qt.Equals, CrosshairBounds(p, 6))
	c.Assert(s.Image().GrayAt(50, 50).Y, qt.Equals, uint8(black))
	c.Assert(s.Image().GrayAt(44, 50).Y, qt.Equals, uint8(black))

	// erasing with paper restores the background
	s.Crosshair(p, 6, Paper)
	c.Assert(s.Image().GrayAt(50, 50).Y, qt.Equals, uint8(white))
}

func TestText(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	r := s.Text(2, 20, "A", Ink)
	c.Assert(r, qt.Equals, image.Rect(2, 9, 9, 22))
	c.Assert(s.Dirty(), qt.Equals, r)

	inked := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.Image().GrayAt(x, y).Y == black {
				inked++
			}
		}
	}
	c.Assert(inked > 0, qt.IsTrue)
}

func TestLabel(t *testing.T) {
	c := qt.New(t)

	s := newTestScreen()
	r := image.Rect(0, 0, 40, 16)
	s.Label(r, "a very long label that does not fit", Paper)
	c.Assert(s.Dirty(), qt.Equals, r)
	// outside the label is untouched
	c.Assert(s.Image().GrayAt(40, 0).Y, qt.Equals, uint8(white))
	c.Assert(s.Image().GrayAt(0, 16).Y, qt.Equals, uint8(white))
	// background of the label is ink
	c.Assert(s.Image().GrayAt(0, 0).Y, qt.Equals, uint8(black))
}
