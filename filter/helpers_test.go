package filter

import "image"

// newTestRGB builds a w×h buffer from pixels listed row by row.
func newTestRGB(w, h int, pixels ...Pixel) *RGB {
	img := NewRGB(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		img.SetPixel(i%w, i/w, p)
	}
	return img
}

func newTestMask(w, h int, pixels ...Pixel) *Mask {
	m, err := NewMask(newTestRGB(w, h, pixels...))
	if err != nil {
		panic(err)
	}
	return m
}

func uniformMask(p Pixel) *Mask {
	return newTestMask(1, 1, p)
}

func pixelsOf(img *RGB) []Pixel {
	var out []Pixel
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			out = append(out, img.PixelAt(x, y))
		}
	}
	return out
}

func mustMonochromacy(m *Mask) Halftone {
	h, err := NewMonochromacy(m)
	if err != nil {
		panic(err)
	}
	return h
}

func mustPattern(m *Mask) Halftone {
	h, err := NewPattern(m)
	if err != nil {
		panic(err)
	}
	return h
}
