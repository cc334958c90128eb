package fontatlas

import (
	"image/color"
	"image/draw"
)

// Rasterizer opens fonts for measuring and drawing glyphs.
//
// The default implementation lives in package text and uses
// golang.org/x/image/font/opentype. Tests use fixed, deterministic fakes.
type Rasterizer interface {
	// OpenFont loads the font at path for the given point size.
	// Implementations return a *FontOpenError when the font is missing or
	// cannot be parsed.
	OpenFont(path string, pointSize float64) (FontHandle, error)
}

// FontHandle is a font opened at one point size.
//
// A FontHandle is used by a single generation run and is not safe for
// concurrent use; batch generation opens one handle per job.
type FontHandle interface {
	// MeasureGlyph returns the ink box size of r in pixels.
	MeasureGlyph(r rune) (width, height int)

	// DrawGlyph draws r into dst with the top-left corner of its ink box at
	// (x, y). With outlineWidth > 0 the glyph is surrounded by an outline
	// of that many pixels in outlineColor.
	DrawGlyph(dst draw.Image, r rune, x, y int, fill color.Color, outlineWidth int, outlineColor color.Color)

	// Close releases the resources held by the handle.
	Close() error
}
