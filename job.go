package chromacy

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/32bitkid/chromacy/filter"
)

// ErrMissingArgument is returned when a Job lacks a required field.
var ErrMissingArgument = errors.New("missing argument")

// Job describes one invocation: which transform to apply, with which
// mask, to which image.
type Job struct {
	Mode Mode
	// Missing is the channel the viewer cannot perceive. Only used by
	// Dichromacy.
	Missing filter.Channel
	// Mask names the filter or pattern image.
	Mask   string
	Source string
	// Output is optional; see OutputPath.
	Output string
}

func (j Job) Validate() error {
	switch j.Mode {
	case Monochromacy, Pattern:
	case Dichromacy:
		if !j.Missing.Valid() {
			return fmt.Errorf("%w: %s", filter.ErrUnknownChannel, j.Missing)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, j.Mode)
	}
	if j.Mask == "" {
		return fmt.Errorf("%w: %s name", ErrMissingArgument, j.Mode.MaskKind())
	}
	if j.Source == "" {
		return fmt.Errorf("%w: image", ErrMissingArgument)
	}
	return nil
}

// OutputPath returns Output when set. Otherwise the name is derived from
// the mask and the source file name, e.g. "dots - photo.png" or, for
// dichromacy, "dots - red - photo.png".
func (j Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	base := filepath.Base(j.Source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if j.Mode == Dichromacy {
		return fmt.Sprintf("%s - %s - %s.png", j.Mask, j.Missing, stem)
	}
	return fmt.Sprintf("%s - %s.png", j.Mask, stem)
}

// Transform builds the job's transform around mask.
func (j Job) Transform(mask *filter.Mask) (filter.Transform, error) {
	switch j.Mode {
	case Monochromacy:
		return filter.NewMonochromacy(mask)
	case Dichromacy:
		return filter.NewDichromacy(mask, j.Missing)
	case Pattern:
		return filter.NewPattern(mask)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, j.Mode)
}
