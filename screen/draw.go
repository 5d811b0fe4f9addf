package screen

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Color is either the foreground (Ink) or background (Paper) color
type Color bool

const (
	Paper Color = false
	Ink   Color = true
)

// Face is the font used for text
var Face font.Face = basicfont.Face7x13

func (s *Screen) gray(c Color) color.Gray {
	if c == Ink {
		return color.Gray{Y: s.fg}
	}
	return color.Gray{Y: s.bg}
}

func (s *Screen) set(x, y int, g color.Gray) {
	if image.Pt(x, y).In(s.img.Rect) {
		s.img.SetGray(x, y, g)
	}
}

// FillRect fills r
func (s *Screen) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(s.img.Rect)
	draw.Draw(s.img, r, &image.Uniform{s.gray(c)}, image.Point{}, draw.Src)
	s.mark(r)
}

// Rect outlines r.  r.Max is exclusive.
func (s *Screen) Rect(r image.Rectangle, c Color) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	s.Line(x0, y0, x1, y0, c)
	s.Line(x0, y1, x1, y1, c)
	s.Line(x0, y0, x0, y1, c)
	s.Line(x1, y0, x1, y1, c)
}

// Line draws a line between two points, inclusive
func (s *Screen) Line(x0, y0, x1, y1 int, c Color) {
	g := s.gray(c)
	s.mark(image.Rect(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.set(x0, y0, g)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle of radius r around (cx, cy)
func (s *Screen) Circle(cx, cy, r int, c Color, fill bool) {
	g := s.gray(c)
	s.mark(image.Rect(cx-r, cy-r, cx+r+1, cy+r+1))
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d > r*r {
				continue
			}
			if fill || d >= (r-1)*(r-1) {
				s.set(cx+x, cy+y, g)
			}
		}
	}
}

// Crosshair draws a cross of arm length size centered on p, with a ring
func (s *Screen) Crosshair(p image.Point, size int, c Color) {
	s.Line(p.X-size, p.Y, p.X+size, p.Y, c)
	s.Line(p.X, p.Y-size, p.X, p.Y+size, c)
	s.Circle(p.X, p.Y, size/2, c, false)
}

// CrosshairBounds returns the region a crosshair at p covers
func CrosshairBounds(p image.Point, size int) image.Rectangle {
	return image.Rect(p.X-size, p.Y-size, p.X+size+1, p.Y+size+1)
}

// TextBounds returns the region text drawn with its baseline at (x, y)
// covers
func TextBounds(x, y int, str string) image.Rectangle {
	m := Face.Metrics()
	w := font.MeasureString(Face, str).Ceil()
	return image.Rect(x, y-m.Ascent.Ceil(), x+w, y+m.Descent.Ceil())
}

// Text draws str with its baseline at (x, y) and returns the region covered
func (s *Screen) Text(x, y int, str string, c Color) image.Rectangle {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.gray(c)),
		Face: Face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(str)
	r := TextBounds(x, y, str)
	s.mark(r)
	return r
}

// Label clears r and draws str inside it, left aligned with a small margin
// and vertically centered.  Text that does not fit is clipped.
func (s *Screen) Label(r image.Rectangle, str string, c Color) {
	bg := Paper
	if c == Paper {
		bg = Ink
	}
	s.FillRect(r, bg)

	m := Face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	y := r.Min.Y + (r.Dy()-h)/2 + m.Ascent.Ceil()

	sub := s.img.SubImage(r).(*image.Gray)
	d := font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(s.gray(c)),
		Face: Face,
		Dot:  fixed.P(r.Min.X+2, y),
	}
	d.DrawString(str)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
