package uc8151

import "image"

// align widens r horizontally to whole bytes of 8 pixels
func align(r image.Rectangle) image.Rectangle {
	r.Min.X &^= 7
	r.Max.X = (r.Max.X + 7) &^ 7
	return r
}
