// Package chromacy simulates colour-vision deficiencies and overlays
// channel patterns on raster images.
//
// A run pairs a source image with a named mask image. Filter masks drive
// the monochromacy and dichromacy simulations; pattern masks drive the
// standalone channel-pattern composite. Masks are small images tiled over
// the whole source.
package chromacy

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/32bitkid/chromacy/filter"
	"github.com/32bitkid/chromacy/imageio"
)

// MaskKind selects which collection a mask is looked up in.
type MaskKind uint8

const (
	FilterMask MaskKind = iota
	PatternMask
)

func (k MaskKind) String() string {
	switch k {
	case FilterMask:
		return "filter"
	case PatternMask:
		return "pattern"
	}
	return fmt.Sprintf("MaskKind(%d)", uint8(k))
}

// Library is the source of named mask images.
type Library struct {
	Filters  fs.FS
	Patterns fs.FS
}

// Directories, relative to a library root, holding each kind of mask.
const (
	FiltersDir  = "filters"
	PatternsDir = "patterns"
)

// NewLibrary returns a Library reading masks from the filters and
// patterns directories below root.
func NewLibrary(root string) Library {
	return Library{
		Filters:  os.DirFS(filepath.Join(root, FiltersDir)),
		Patterns: os.DirFS(filepath.Join(root, PatternsDir)),
	}
}

func (l Library) collection(kind MaskKind) (fs.FS, string) {
	switch kind {
	case FilterMask:
		return l.Filters, FiltersDir
	case PatternMask:
		return l.Patterns, PatternsDir
	}
	return nil, ""
}

// LoadMask decodes the named mask of the given kind.
func (l Library) LoadMask(kind MaskKind, name string) (*filter.Mask, error) {
	fsys, dir := l.collection(kind)
	if fsys == nil {
		return nil, fmt.Errorf("no %s masks available", kind)
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%s %q: %w", kind, name, fs.ErrInvalid)
	}

	img, err := imageio.Open(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", kind, filepath.Join(dir, name), err)
	}

	mask, err := filter.NewMask(img)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", kind, filepath.Join(dir, name), err)
	}
	return mask, nil
}
