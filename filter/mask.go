package filter

import (
	"errors"
	"image"
)

// ErrEmptyMask is returned when a mask image has no pixels to tile.
var ErrEmptyMask = errors.New("mask has zero width or height")

// Mask is a read-only image tiled indefinitely over a larger target.
// Lookups wrap around the mask edges without any interpolation, so a
// Mask may be shared by any number of goroutines.
type Mask struct {
	rgb  *RGB
	w, h int
}

// NewMask copies img into a new Mask. The copy keeps the mask immune to
// later changes of img.
func NewMask(img image.Image) (*Mask, error) {
	if img == nil {
		return nil, ErrEmptyMask
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyMask
	}

	rgb := NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*RGB); ok {
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(rgb.Pix[y*rgb.Stride:(y+1)*rgb.Stride], src.Pix[i:i+rgb.Stride])
		}
	} else {
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				rgb.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}

	return &Mask{rgb: rgb, w: b.Dx(), h: b.Dy()}, nil
}

// Bounds returns the extent of a single tile.
func (m *Mask) Bounds() image.Rectangle {
	return m.rgb.Rect
}

// At returns the mask pixel covering (x, y) of the target image, i.e.
// the pixel at (x mod W, y mod H).
func (m *Mask) At(x, y int) Pixel {
	x %= m.w
	if x < 0 {
		x += m.w
	}
	y %= m.h
	if y < 0 {
		y += m.h
	}
	i := y*m.rgb.Stride + x*3
	s := m.rgb.Pix[i : i+3 : i+3]
	return Pixel{s[0], s[1], s[2]}
}
