package imageio

import (
	"image"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/chromacy/filter"
)

// ToRGB converts img to a filter.RGB with its origin at (0, 0). Colours
// are un-premultiplied before alpha is dropped, so a translucent pixel
// keeps its own hue rather than fading toward black.
func ToRGB(img image.Image) *filter.RGB {
	b := img.Bounds()
	dst := filter.NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch src := img.(type) {
	case *filter.RGB:
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[i:])
		}
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride:]
			for x := 0; x < b.Dx(); x++ {
				d[3*x+0], d[3*x+1], d[3*x+2] = s[4*x+0], s[4*x+1], s[4*x+2]
			}
		}
	case *image.Gray:
		for y := 0; y < b.Dy(); y++ {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Pix[y*dst.Stride:]
			for x := 0; x < b.Dx(); x++ {
				d[3*x+0], d[3*x+1], d[3*x+2] = s[x], s[x], s[x]
			}
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				dst.SetPixel(x, y, straight(img, b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return dst
}

// straight returns the un-premultiplied colour at (x, y). A fully
// transparent pixel of a premultiplied image has no colour left to
// recover and comes back black.
func straight(img image.Image, x, y int) filter.Pixel {
	c, ok := clr.MakeColor(img.At(x, y))
	if !ok {
		return filter.Pixel{}
	}
	r, g, b := c.RGB255()
	return filter.Pixel{r, g, b}
}

// Luma projects img onto a single gray channel using the same weights as
// image/color. A pixel whose channels are already equal keeps its value.
func Luma(img *filter.RGB) *image.Gray {
	b := img.Rect
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		s := img.Pix[y*img.Stride:]
		d := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			r := uint32(s[3*x+0]) * 0x101
			g := uint32(s[3*x+1]) * 0x101
			bl := uint32(s[3*x+2]) * 0x101
			d[x] = uint8((19595*r + 38470*g + 7471*bl + 1<<15) >> 24)
		}
	}
	return dst
}

func toRGBA(img *filter.RGB) *image.RGBA {
	b := img.Rect
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		s := img.Pix[y*img.Stride:]
		d := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			d[4*x+0], d[4*x+1], d[4*x+2], d[4*x+3] = s[3*x+0], s[3*x+1], s[3*x+2], 0xFF
		}
	}
	return dst
}
