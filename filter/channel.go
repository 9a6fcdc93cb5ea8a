package filter

import (
	"errors"
	"fmt"
)

// ErrUnknownChannel is returned when a colour name does not select
// one of the three channels.
var ErrUnknownChannel = errors.New("unknown colour channel")

// Channel identifies one of the three colour channels of a Pixel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every valid channel in pixel order.
var Channels = [...]Channel{Red, Green, Blue}

// Index returns the position of the channel within a Pixel:
// Red is 0, Green is 1 and Blue is 2.
func (c Channel) Index() int {
	switch c {
	case Red:
		return 0
	case Green:
		return 1
	case Blue:
		return 2
	}
	panic(fmt.Sprintf("filter: invalid channel %d", uint8(c)))
}

func (c Channel) Valid() bool {
	return c <= Blue
}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

// ParseChannel maps "red", "green" or "blue" to its Channel.
func ParseChannel(name string) (Channel, error) {
	switch name {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}
