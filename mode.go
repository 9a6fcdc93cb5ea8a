package chromacy

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned for an unrecognised mode selector.
var ErrUnknownMode = errors.New("unknown mode")

type Mode uint8

const (
	Monochromacy Mode = iota + 1
	Dichromacy
	Pattern
)

func (m Mode) String() string {
	switch m {
	case Monochromacy:
		return "monochromacy"
	case Dichromacy:
		return "dichromacy"
	case Pattern:
		return "pattern"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts a mode name or the numeric selectors "1"
// (monochromacy) and "2" (dichromacy).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "1", "monochromacy":
		return Monochromacy, nil
	case "2", "dichromacy":
		return Dichromacy, nil
	case "pattern":
		return Pattern, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MaskKind reports which collection the mode draws its mask from.
func (m Mode) MaskKind() MaskKind {
	if m == Pattern {
		return PatternMask
	}
	return FilterMask
}

// Flatten reports whether output is written as single-channel luma.
func (m Mode) Flatten() bool {
	return m == Monochromacy || m == Pattern
}
