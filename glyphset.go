package fontatlas

import (
	"os"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// First and last code point of the fixed variant's character set.
const (
	FirstPrintableASCII rune = 32
	LastPrintableASCII  rune = 127

	// PrintableASCIICount is the glyph count of the fixed variant.
	PrintableASCIICount = int(LastPrintableASCII-FirstPrintableASCII) + 1
)

// GlyphSet is an ordered sequence of distinct code points.
//
// The order is established once and used for cell placement, the width table
// and the code point table of one atlas.
type GlyphSet []rune

// PrintableASCII returns code points 32..127 in ascending order.
func PrintableASCII() GlyphSet {
	gs := make(GlyphSet, 0, PrintableASCIICount)
	for r := FirstPrintableASCII; r <= LastPrintableASCII; r++ {
		gs = append(gs, r)
	}
	return gs
}

// NewGlyphSet builds a glyph set from runes, keeping the first occurrence of
// every code point.
func NewGlyphSet(runes ...rune) GlyphSet {
	seen := make(map[rune]struct{}, len(runes))
	gs := make(GlyphSet, 0, len(runes))
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		gs = append(gs, r)
	}
	return gs
}

// GlyphSetOption adjusts how text is turned into a glyph set.
type GlyphSetOption func(*glyphSetConfig)

type glyphSetConfig struct {
	nfc            bool
	skipLineBreaks bool
}

// WithNFC normalizes the text to NFC before collecting characters, so a
// decomposed sequence such as "e\u0301" yields the precomposed glyph.
func WithNFC() GlyphSetOption {
	return func(c *glyphSetConfig) {
		c.nfc = true
	}
}

// WithoutLineBreaks drops '\n' and '\r' from the text.
func WithoutLineBreaks() GlyphSetOption {
	return func(c *glyphSetConfig) {
		c.skipLineBreaks = true
	}
}

// GlyphSetFromText returns the distinct characters of s in first-seen order.
// Every rune of s is kept as is, combining marks and line breaks included,
// unless opts say otherwise.
func GlyphSetFromText(s string, opts ...GlyphSetOption) GlyphSet {
	var cfg glyphSetConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nfc {
		s = norm.NFC.String(s)
	}
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if cfg.skipLineBreaks && (r == '\n' || r == '\r') {
			continue
		}
		runes = append(runes, r)
	}
	return NewGlyphSet(runes...)
}

// LoadGlyphSet reads a UTF-8 text file and returns the distinct characters
// it contains, as GlyphSetFromText does.
func LoadGlyphSet(path string, opts ...GlyphSetOption) (GlyphSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, &GlyphSetSourceError{Path: path, Err: err}
	}
	return GlyphSetFromText(string(data), opts...), nil
}

// Sorted returns a copy of the set in ascending code point order.
func (gs GlyphSet) Sorted() GlyphSet {
	out := slices.Clone(gs)
	slices.Sort(out)
	return out
}

// IsPrintableASCII reports whether gs is exactly code points 32..127 in order.
func (gs GlyphSet) IsPrintableASCII() bool {
	if len(gs) != PrintableASCIICount {
		return false
	}
	for i, r := range gs {
		if r != FirstPrintableASCII+rune(i) {
			return false
		}
	}
	return true
}

// validate checks the invariants the composer relies on.
func (gs GlyphSet) validate() error {
	if len(gs) == 0 {
		return ErrEmptyGlyphSet
	}
	seen := make(map[rune]struct{}, len(gs))
	for _, r := range gs {
		if _, ok := seen[r]; ok {
			return ErrDuplicateCodepoint
		}
		seen[r] = struct{}{}
	}
	return nil
}
