// Package fontatlas renders glyph atlases: PNG images holding a grid of glyph
// cells plus a few metadata rows that describe the grid.
//
// # Overview
//
// An atlas is built by measuring every glyph of a [GlyphSet], planning a
// grid of equal cells large enough for the largest glyph, drawing each glyph
// into its cell and storing a metadata payload in the rows below the grid.
// Every metadata value is a 32-bit unsigned integer stored little-endian in
// one pixel: R holds the low byte and A the high byte.
//
// # Formats
//
// Two metadata formats exist:
//
//   - [VariantFixed] covers exactly code points 32..127 in a 16-column grid.
//     One metadata row holds the magic "FONT", the format version, the x
//     offset and the 96 glyph widths.
//   - [VariantCustom] covers any code points in a near-square grid. The
//     metadata rows hold the magic "CFON", the format version, the glyph
//     count, the x offset, the cell size and one (width, code point) pair
//     per glyph, wrapping onto as many rows as needed.
//
// # Quick Start
//
//	c := fontatlas.NewComposer(text.NewRasterizer())
//	path, err := c.GenerateFile("DejaVuSans.ttf", 16, fontatlas.PrintableASCII(), "out")
//
// Atlases are read back with [Decode] or [LoadAtlas].
//
// # Rasterizers
//
// Glyph measuring and drawing is delegated to a [Rasterizer]. The text
// sub-package provides one based on golang.org/x/image; tests and other
// backends can supply their own.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug layout
// details, info records for written atlases and warnings for code points the
// font has no glyph for.
package fontatlas
