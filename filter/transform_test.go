package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePixels = []Pixel{
	{255, 0, 0}, {0, 255, 0},
	{0, 0, 255}, {10, 20, 30},
}

func allPixels(fn func(c Pixel)) {
	for v := 0; v < 1<<24; v += 0x010305 {
		fn(Pixel{uint8(v >> 16), uint8(v >> 8), uint8(v)})
	}
}

func TestMonochromacyExample(t *testing.T) {
	img := newTestRGB(2, 2, samplePixels...)
	Apply(img, mustMonochromacy(uniformMask(Pixel{255, 255, 255})), 1)

	want := []Pixel{
		{255, 255, 255}, {255, 255, 255},
		{255, 255, 255}, {30, 30, 30},
	}
	if diff := cmp.Diff(want, pixelsOf(img)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestHalftoneEqualChannels(t *testing.T) {
	mask := newTestMask(2, 2,
		Pixel{255, 0, 128}, Pixel{3, 200, 40},
		Pixel{0, 0, 0}, Pixel{90, 90, 255},
	)
	for _, tr := range []Halftone{mustMonochromacy(mask), mustPattern(mask)} {
		allPixels(func(c Pixel) {
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					out := tr.Pixel(x, y, c)
					if out[0] != out[1] || out[1] != out[2] {
						t.Fatalf("Pixel(%d, %d, %v) = %v", x, y, c, out)
					}
				}
			}
		})
	}
}

func TestHalftoneWhiteMask(t *testing.T) {
	tr := mustMonochromacy(uniformMask(Pixel{255, 255, 255}))
	allPixels(func(c Pixel) {
		want := max(c[0], c[1], c[2])
		if out := tr.Pixel(7, 3, c); out != Gray(want) {
			t.Fatalf("Pixel(%v) = %v, want %d", c, out, want)
		}
	})
}

func TestHalftoneZeroMask(t *testing.T) {
	tr := mustPattern(uniformMask(Pixel{}))
	allPixels(func(c Pixel) {
		if out := tr.Pixel(1, 1, c); out != (Pixel{}) {
			t.Fatalf("Pixel(%v) = %v", c, out)
		}
	})
}

func TestHalftoneUsesMaximum(t *testing.T) {
	tr := mustPattern(newTestMask(2, 1, Pixel{255, 0, 0}, Pixel{0, 128, 255}))

	assert.Equal(t, Gray(10), tr.Pixel(0, 0, Pixel{10, 200, 250}))
	assert.Equal(t, Gray(250), tr.Pixel(1, 0, Pixel{10, 200, 250}))
	assert.Equal(t, Gray(10), tr.Pixel(2, 5, Pixel{10, 200, 250}))
	assert.Equal(t, Gray(100), tr.Pixel(1, 0, Pixel{0, 200, 100}))
}

func TestDichromacyExample(t *testing.T) {
	d, err := NewDichromacy(uniformMask(Pixel{0, 255, 255}), Red)
	require.NoError(t, err)

	img := newTestRGB(2, 2, samplePixels...)
	Apply(img, d, 1)

	want := []Pixel{
		{255, 255, 255}, {0, 0, 0},
		{0, 0, 0}, {10, 10, 10},
	}
	if diff := cmp.Diff(want, pixelsOf(img)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestDichromacyStencil(t *testing.T) {
	mask := newTestMask(3, 1, Pixel{0, 0, 0}, Pixel{1, 0, 0}, Pixel{0, 255, 255})

	for _, missing := range Channels {
		d, err := NewDichromacy(mask, missing)
		require.NoError(t, err)
		assert.Equal(t, missing, d.Missing())

		allPixels(func(c Pixel) {
			if out := d.Pixel(1, 0, c); out != c {
				t.Fatalf("%s: pass-through changed %v to %v", missing, c, out)
			}
			want := Gray(c[missing.Index()])
			if out := d.Pixel(0, 0, c); out != want {
				t.Fatalf("%s: Pixel(%v) = %v, want %v", missing, c, out, want)
			}
			if out := d.Pixel(5, 0, c); out != want {
				t.Fatalf("%s: red-only stencil: Pixel(%v) = %v, want %v", missing, c, out, want)
			}
		})
	}
}

func TestNewDichromacyInvalidChannel(t *testing.T) {
	_, err := NewDichromacy(uniformMask(Pixel{}), Channel(3))
	assert.ErrorIs(t, err, ErrUnknownChannel)
}

func TestTransformsRejectNilMask(t *testing.T) {
	_, err := NewMonochromacy(nil)
	assert.ErrorIs(t, err, ErrEmptyMask)
	_, err = NewPattern(nil)
	assert.ErrorIs(t, err, ErrEmptyMask)
	_, err = NewDichromacy(nil, Red)
	assert.ErrorIs(t, err, ErrEmptyMask)
}
