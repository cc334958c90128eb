package text

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
)

// unknownStr is returned by String methods for out-of-range values.
const unknownStr = "Unknown"

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// ParseHinting parses a hinting name as printed by String, ignoring case.
func ParseHinting(s string) (Hinting, error) {
	for _, h := range []Hinting{HintingNone, HintingVertical, HintingFull} {
		if strings.EqualFold(s, h.String()) {
			return h, nil
		}
	}
	return HintingFull, fmt.Errorf("text: unknown hinting %q", s)
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
