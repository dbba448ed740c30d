// Package placeholder models the text placeholders content is written into
// and partitions them into groups that receive content together.
package placeholder

import (
	"fmt"
	"strconv"
	"strings"
)

// Descriptor is a snapshot of one text placeholder taken by the host.
type Descriptor struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Characters string  `json:"characters" yaml:"characters"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
}

// Kind selects the attribute descriptors are grouped by.
type Kind string

const (
	KindName       Kind = "NAME"
	KindText       Kind = "TEXT"
	KindPositionXY Kind = "POSITION_XY"
	KindPositionX  Kind = "POSITION_X"
	KindPositionY  Kind = "POSITION_Y"
	KindSize       Kind = "SIZE"
)

// Kinds lists every grouping kind in display order.
func Kinds() []Kind {
	return []Kind{KindName, KindText, KindPositionXY, KindPositionX, KindPositionY, KindSize}
}

// ParseKind accepts the kind names case-insensitively, with "-" or "_"
// separators, plus the LOCAL_* spellings used by older snapshots.
func ParseKind(raw string) (Kind, error) {
	normalised := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_"))
	switch normalised {
	case "NAME":
		return KindName, nil
	case "TEXT", "CHARACTERS":
		return KindText, nil
	case "POSITION_XY", "LOCAL_XY", "XY", "POSITION":
		return KindPositionXY, nil
	case "POSITION_X", "LOCAL_X", "X":
		return KindPositionX, nil
	case "POSITION_Y", "LOCAL_Y", "Y":
		return KindPositionY, nil
	case "SIZE":
		return KindSize, nil
	default:
		return "", fmt.Errorf("placeholder: unknown grouping kind %q", raw)
	}
}

// Label is a short human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindName:
		return "Layer name"
	case KindText:
		return "Current text"
	case KindPositionXY:
		return "Position (x,y)"
	case KindPositionX:
		return "Position (x)"
	case KindPositionY:
		return "Position (y)"
	case KindSize:
		return "Size (width,height)"
	default:
		return string(k)
	}
}

// KeyFor derives the grouping key of d for kind.
func KeyFor(d Descriptor, kind Kind) string {
	switch kind {
	case KindName:
		return d.Name
	case KindText:
		return d.Characters
	case KindPositionXY:
		return formatNumber(d.X) + "," + formatNumber(d.Y)
	case KindPositionX:
		return formatNumber(d.X)
	case KindPositionY:
		return formatNumber(d.Y)
	case KindSize:
		return formatNumber(d.Width) + "," + formatNumber(d.Height)
	default:
		return ""
	}
}

// formatNumber prints the shortest decimal form, so 10 stays "10" and 10.5
// stays "10.5".
func formatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
