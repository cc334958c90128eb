package fontatlas

// GlyphMetric is the measured ink box of one glyph, already inflated by
// twice the outline width on each axis.
type GlyphMetric struct {
	Codepoint rune
	Width     int
	Height    int
}

// MeasureGlyphs returns one metric per glyph, in the order of glyphs.
func MeasureGlyphs(h FontHandle, glyphs GlyphSet, outlineWidth int) []GlyphMetric {
	metrics := make([]GlyphMetric, len(glyphs))
	for i, r := range glyphs {
		w, ht := h.MeasureGlyph(r)
		metrics[i] = GlyphMetric{
			Codepoint: r,
			Width:     w + 2*outlineWidth,
			Height:    ht + 2*outlineWidth,
		}
	}
	return metrics
}

// maxInkSize returns the largest width and height over metrics.
func maxInkSize(metrics []GlyphMetric) (w, h int) {
	for _, m := range metrics {
		w = max(w, m.Width)
		h = max(h, m.Height)
	}
	return w, h
}
