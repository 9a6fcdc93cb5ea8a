// Package pbm decodes Netpbm bitmaps (PBM), the usual storage for the
// binary stencils that drive dichromacy masks.
//
// Both the plain (P1) and the raw (P4) encodings are supported. Importing
// the package registers the format with image.Decode.
package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/32bitkid/bitreader"
)

// FormatError reports malformed PBM data.
type FormatError string

func (e FormatError) Error() string { return "pbm: invalid format: " + string(e) }

var errNotPBM = FormatError("missing P1 or P4 magic number")

// maxPixels bounds the size of an image accepted by Decode.
const maxPixels = 1 << 28

const (
	plainMagic = "P1"
	rawMagic   = "P4"
)

var (
	black = color.Gray{Y: 0x00}
	white = color.Gray{Y: 0xFF}
)

type header struct {
	raw           bool
	width, height int
}

func readHeader(r *bufio.Reader) (header, error) {
	var h header

	var magic [2]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return h, unexpected(err)
	}
	switch string(magic[:]) {
	case plainMagic:
	case rawMagic:
		h.raw = true
	default:
		return h, errNotPBM
	}

	var err error
	if h.width, err = readInt(r); err != nil {
		return h, err
	}
	if h.height, err = readInt(r); err != nil {
		return h, err
	}
	if h.width <= 0 || h.height <= 0 {
		return h, FormatError(fmt.Sprintf("non-positive dimensions %dx%d", h.width, h.height))
	}
	if h.width > maxPixels/h.height {
		return h, FormatError(fmt.Sprintf("image too large: %dx%d", h.width, h.height))
	}

	// A single whitespace byte separates the raw header from the raster.
	if h.raw {
		c, err := r.ReadByte()
		if err != nil {
			return h, unexpected(err)
		}
		if !isSpace(c) {
			return h, FormatError("missing whitespace after header")
		}
	}
	return h, nil
}

// skipSpace consumes whitespace and comments up to the next token.
func skipSpace(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return unexpected(err)
		}
		switch {
		case c == '#':
			if _, err := r.ReadString('\n'); err != nil {
				return unexpected(err)
			}
		case isSpace(c):
		default:
			return r.UnreadByte()
		}
	}
}

func readInt(r *bufio.Reader) (int, error) {
	if err := skipSpace(r); err != nil {
		return 0, err
	}
	n, digits := 0, 0
	for {
		c, err := r.ReadByte()
		if err == io.EOF && digits > 0 {
			break
		}
		if err != nil {
			return 0, unexpected(err)
		}
		if c < '0' || c > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
		if n > maxPixels {
			return 0, FormatError("dimension overflow")
		}
		n = n*10 + int(c-'0')
		digits++
	}
	if digits == 0 {
		return 0, FormatError("expected a decimal number")
	}
	return n, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Decode reads a PBM image from r. Set bits become black, clear bits
// white.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, h.width, h.height))
	if h.raw {
		err = decodeRaw(br, img)
	} else {
		err = decodePlain(br, img)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// decodeRaw reads rows of packed bits, most significant bit first. Each
// row is padded to a whole byte.
func decodeRaw(r io.Reader, img *image.Gray) error {
	bits := bitreader.NewReader(r)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pad := uint((8 - w%8) % 8)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := 0; x < w; x += 8 {
			n := min(8, w-x)
			v, err := bits.Read8(uint(n))
			if err != nil {
				return unexpected(err)
			}
			for i := 0; i < n; i++ {
				if v&(1<<uint(n-1-i)) != 0 {
					row[x+i] = black.Y
				} else {
					row[x+i] = white.Y
				}
			}
		}
		if pad > 0 && y < h-1 {
			if err := bits.Skip(pad); err != nil {
				return unexpected(err)
			}
		}
	}
	return nil
}

func decodePlain(r *bufio.Reader, img *image.Gray) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			if err := skipSpace(r); err != nil {
				return err
			}
			c, err := r.ReadByte()
			if err != nil {
				return unexpected(err)
			}
			switch c {
			case '0':
				row[x] = white.Y
			case '1':
				row[x] = black.Y
			default:
				return FormatError(fmt.Sprintf("unexpected byte %q in raster", c))
			}
		}
	}
	return nil
}

// DecodeConfig returns the dimensions of a PBM image without decoding
// its raster.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.GrayModel,
		Width:      h.width,
		Height:     h.height,
	}, nil
}

func init() {
	image.RegisterFormat("pbm", plainMagic, Decode, DecodeConfig)
	image.RegisterFormat("pbm", rawMagic, Decode, DecodeConfig)
}
