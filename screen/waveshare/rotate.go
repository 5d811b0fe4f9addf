package waveshare

import "image"

// A landscape point (x, y) lands on the portrait panel b at
// (b.Dx()-1-y, x).

// toPortrait rotates a landscape image onto the portrait bounds b
func toPortrait(src *image.Gray, b image.Rectangle) *image.Gray {
	dst := image.NewGray(b)
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < w; x++ {
			dst.SetGray(x, y, src.GrayAt(y, w-1-x))
		}
	}
	return dst
}

// rectToPortrait maps a landscape rectangle onto the portrait bounds b
func rectToPortrait(r image.Rectangle, b image.Rectangle) image.Rectangle {
	w := b.Dx()
	return image.Rect(w-r.Max.Y, r.Min.X, w-r.Min.Y, r.Max.X).Intersect(b)
}
