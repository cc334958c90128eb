package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// Coverage answers whether a font maps a code point to a glyph.
//
// It reads the font's cmap through go-text/typesetting, independently of the
// x/image parser used for drawing, so a code point that would silently render
// as the .notdef box can be reported before the atlas is built.
type Coverage struct {
	font *font.Font
}

// NewCoverage parses the cmap of source.
func NewCoverage(source *FontSource) (*Coverage, error) {
	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read cmap: %w", err)
	}
	return &Coverage{font: face.Font}, nil
}

// Has reports whether the font has a glyph for r.
func (c *Coverage) Has(r rune) bool {
	_, ok := c.font.NominalGlyph(r)
	return ok
}

// Missing returns the code points of glyphs the font has no glyph for, in
// their original order.
func (c *Coverage) Missing(glyphs []rune) []rune {
	var missing []rune
	for _, r := range glyphs {
		if !c.Has(r) {
			missing = append(missing, r)
		}
	}
	return missing
}
