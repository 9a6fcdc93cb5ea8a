package filter

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minBandPixels is the smallest number of pixels worth handing to a
// goroutine of its own.
const minBandPixels = 1 << 14

// Apply replaces every pixel of img with t's output for it. Rows are
// split into contiguous bands processed by up to workers goroutines;
// workers <= 0 means runtime.GOMAXPROCS(0). Coordinates passed to t are
// relative to the image origin, so the mask tiling always starts at the
// top-left pixel.
func Apply(img *RGB, t Transform, workers int) {
	b := img.Rect
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n := w * h / minBandPixels; n < workers {
		workers = max(n, 1)
	}
	workers = min(workers, h)

	if workers == 1 {
		applyRows(img, t, 0, h)
		return
	}

	rowsPerBand := (h + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < h; start += rowsPerBand {
		start, end := start, min(start+rowsPerBand, h)
		g.Go(func() error {
			applyRows(img, t, start, end)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	g.Wait()
}

func applyRows(img *RGB, t Transform, start, end int) {
	w := img.Rect.Dx()
	for y := start; y < end; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+3*w]
		for x := 0; x < w; x++ {
			s := row[3*x : 3*x+3 : 3*x+3]
			c := t.Pixel(x, y, Pixel{s[0], s[1], s[2]})
			s[0], s[1], s[2] = c[0], c[1], c[2]
		}
	}
}
