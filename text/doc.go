// Package text loads TrueType and OpenType fonts and rasterizes single
// glyphs for atlas generation.
//
// The rendering pipeline follows a separation of concerns:
//
//   - FontSource: parsed font file, shared by every size (golang.org/x/image)
//   - Rasterizer: opens a FontSource at a point size and hands out a
//     fontatlas.FontHandle that measures and draws glyphs
//   - Coverage: code point lookup through go-text/typesetting, used to
//     report characters a font has no glyph for
//
// # Example usage
//
//	composer := fontatlas.NewComposer(text.NewRasterizer())
//	path, err := composer.GenerateFile("Roboto-Regular.ttf", 30, fontatlas.PrintableASCII(), ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Measurement
//
// A glyph is measured as the box the pen covers when the glyph is drawn
// with its line top at the cell origin: the advance (or the ink's right edge,
// whichever is larger) wide and ascent plus descent high. Glyphs are drawn
// with the baseline one ascent below the requested y.
package text
