package sketch

import "image"

const barHeight = 16

// Layout divides the screen into a header with one feedback box per button,
// a status bar along the bottom, and the canvas in between
type Layout struct {
	Bounds  image.Rectangle
	ButtonA image.Rectangle
	ButtonB image.Rectangle
	Status  image.Rectangle
	Canvas  image.Rectangle
}

// NewLayout lays out the screen bounds b
func NewLayout(b image.Rectangle) Layout {
	mid := b.Min.X + b.Dx()/2
	header := b.Min.Y + barHeight
	footer := b.Max.Y - barHeight
	return Layout{
		Bounds:  b,
		ButtonA: image.Rect(b.Min.X, b.Min.Y, mid, header),
		ButtonB: image.Rect(mid, b.Min.Y, b.Max.X, header),
		Status:  image.Rect(b.Min.X, footer, b.Max.X, b.Max.Y),
		Canvas:  image.Rect(b.Min.X, header+1, b.Max.X, footer-1),
	}
}

// inset returns p moved inside r by at least margin pixels
func inset(p image.Point, r image.Rectangle, margin int) image.Point {
	if p.X < r.Min.X+margin {
		p.X = r.Min.X + margin
	}
	if p.X > r.Max.X-1-margin {
		p.X = r.Max.X - 1 - margin
	}
	if p.Y < r.Min.Y+margin {
		p.Y = r.Min.Y + margin
	}
	if p.Y > r.Max.Y-1-margin {
		p.Y = r.Max.Y - 1 - margin
	}
	return p
}
