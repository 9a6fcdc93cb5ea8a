package filter

import "fmt"

// Transform maps a single source pixel at (x, y) to its output value.
// Implementations depend only on their arguments and on immutable state,
// so Pixel may be called concurrently for different coordinates.
type Transform interface {
	Pixel(x, y int, c Pixel) Pixel
}

// Halftone collapses every pixel to one intensity: the largest of the
// multiply-blends of each source channel against the matching channel of
// the tiled mask. The result always has three equal channels.
type Halftone struct {
	mask *Mask
}

// NewMonochromacy simulates total colour blindness using a filter mask
// that weighs how strongly each channel is still perceived.
func NewMonochromacy(mask *Mask) (Halftone, error) {
	if mask == nil {
		return Halftone{}, ErrEmptyMask
	}
	return Halftone{mask: mask}, nil
}

// NewPattern overlays a channel pattern on the image, producing a
// grayscale composite.
func NewPattern(pattern *Mask) (Halftone, error) {
	return NewMonochromacy(pattern)
}

func (h Halftone) Pixel(x, y int, c Pixel) Pixel {
	return Gray(blendMax(c, h.mask.At(x, y)))
}

// Dichromacy simulates the loss of one colour channel. The mask is read
// as a stencil: wherever its red channel is exactly zero, the pixel is
// replaced by the intensity of the missing channel; elsewhere the pixel
// is left untouched.
//
// Only the red channel of the mask is tested, whichever channel is
// missing.
type Dichromacy struct {
	mask    *Mask
	missing Channel
}

func NewDichromacy(mask *Mask, missing Channel) (Dichromacy, error) {
	if mask == nil {
		return Dichromacy{}, ErrEmptyMask
	}
	if !missing.Valid() {
		return Dichromacy{}, fmt.Errorf("%w: %s", ErrUnknownChannel, missing)
	}
	return Dichromacy{mask: mask, missing: missing}, nil
}

// Missing returns the channel the simulated viewer cannot perceive.
func (d Dichromacy) Missing() Channel {
	return d.missing
}

func (d Dichromacy) Pixel(x, y int, c Pixel) Pixel {
	if d.mask.At(x, y)[Red.Index()] != 0 {
		return c
	}
	return Gray(c[d.missing.Index()])
}
