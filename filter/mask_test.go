package filter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaskEmpty(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 0, 0),
		image.Rect(0, 0, 5, 0),
		image.Rect(0, 0, 0, 5),
	} {
		_, err := NewMask(image.NewRGBA(r))
		assert.ErrorIs(t, err, ErrEmptyMask, "%v", r)
	}

	_, err := NewMask(nil)
	assert.ErrorIs(t, err, ErrEmptyMask)
}

func TestMaskTiling(t *testing.T) {
	m := newTestMask(3, 2,
		Pixel{1, 2, 3}, Pixel{4, 5, 6}, Pixel{7, 8, 9},
		Pixel{10, 11, 12}, Pixel{13, 14, 15}, Pixel{16, 17, 18},
	)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := m.At(x, y)
			for k := 0; k < 4; k++ {
				for l := 0; l < 4; l++ {
					assert.Equal(t, want, m.At(x+3*k, y+2*l), "(%d,%d) k=%d l=%d", x, y, k, l)
				}
			}
		}
	}

	assert.Equal(t, Pixel{13, 14, 15}, m.At(301, 7))
	assert.Equal(t, Pixel{7, 8, 9}, m.At(-1, -2))
}

func TestMaskCopiesSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.Set(10, 20, color.NRGBA{R: 9, G: 8, B: 7, A: 0xFF})
	src.Set(11, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 0xFF})

	m, err := NewMask(src)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 1), m.Bounds())

	src.Set(10, 20, color.NRGBA{A: 0xFF})
	assert.Equal(t, Pixel{9, 8, 7}, m.At(0, 0))
	assert.Equal(t, Pixel{1, 2, 3}, m.At(1, 0))
}

func TestMaskFromOffsetRGB(t *testing.T) {
	src := NewRGB(image.Rect(5, 5, 7, 7))
	src.SetPixel(5, 5, Pixel{1, 1, 1})
	src.SetPixel(6, 5, Pixel{2, 2, 2})
	src.SetPixel(5, 6, Pixel{3, 3, 3})
	src.SetPixel(6, 6, Pixel{4, 4, 4})

	m, err := NewMask(src)
	require.NoError(t, err)
	assert.Equal(t, Pixel{1, 1, 1}, m.At(0, 0))
	assert.Equal(t, Pixel{4, 4, 4}, m.At(3, 3))
}
