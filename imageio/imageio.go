// Package imageio loads images into filter.RGB buffers and writes the
// results back out as PNG.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/32bitkid/chromacy/filter"
	_ "github.com/32bitkid/chromacy/pbm"
)

// Decode reads an image in any registered format and converts it to
// straight 8-bit RGB, dropping alpha. It also returns the format name.
func Decode(r io.Reader) (*filter.RGB, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return ToRGB(img), format, nil
}

// Open decodes the named file from fsys.
func Open(fsys fs.FS, name string) (*filter.RGB, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Load decodes the image file at path.
func Load(path string) (*filter.RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// outputPerm is the mode of files written by Save.
const outputPerm = 0o644

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes img to w as a PNG using the best compression level.
func Encode(w io.Writer, img image.Image) error {
	if rgb, ok := img.(*filter.RGB); ok {
		img = toRGBA(rgb)
	}
	return encoder.Encode(w, img)
}

// Save encodes img as a PNG at path. The file only appears once it has
// been completely written; on failure nothing is left behind.
func Save(path string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".chromacy-*.png")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = f.Chmod(outputPerm); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
