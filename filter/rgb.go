package filter

import (
	"image"
	"image/color"
)

// Pixel holds the red, green and blue components of a single pixel,
// in Channel.Index order.
type Pixel [3]uint8

func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p[0])
	r |= r << 8
	g = uint32(p[1])
	g |= g << 8
	b = uint32(p[2])
	b |= b << 8
	a = 0xFFFF
	return
}

// Gray returns a pixel with every channel set to v.
func Gray(v uint8) Pixel {
	return Pixel{v, v, v}
}

// RGBModel converts any colour to an opaque Pixel.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// RGB is an in-memory image of opaque 8-bit red, green and blue
// samples. It is the buffer every Transform is applied to.
type RGB struct {
	// Pix holds the samples in R, G, B order, row by row.
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	return &RGB{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

func (p *RGB) ColorModel() color.Model { return RGBModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// PixOffset returns the index of the first sample of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB) PixelAt(x, y int) Pixel {
	if !(image.Point{x, y}.In(p.Rect)) {
		return Pixel{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return Pixel{s[0], s[1], s[2]}
}

func (p *RGB) SetPixel(x, y int, c Pixel) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c[0], c[1], c[2]
}

func (p *RGB) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, RGBModel.Convert(c).(Pixel))
}

// Opaque always reports true; RGB has no alpha channel.
func (p *RGB) Opaque() bool { return true }
