package fontatlas

import "image/color"

// Option configures a Compose call.
type Option func(*config)

// config holds the rendering parameters shared by every glyph of one atlas.
type config struct {
	variant       Variant
	fill          color.Color
	outlineWidth  int
	outlineColor  color.Color
	formatVersion uint32
}

// defaultConfig returns the default composition parameters: automatic
// variant, opaque white glyphs and no outline.
func defaultConfig() config {
	return config{
		variant:       VariantAuto,
		fill:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		outlineWidth:  0,
		outlineColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		formatVersion: FormatVersion,
	}
}

// WithVariant selects the metadata format.
// The default, VariantAuto, picks VariantFixed for the printable ASCII set.
func WithVariant(v Variant) Option {
	return func(c *config) {
		c.variant = v
	}
}

// WithFillColor sets the glyph fill color.
func WithFillColor(col color.Color) Option {
	return func(c *config) {
		c.fill = col
	}
}

// WithOutline draws an outline of width pixels around every glyph.
//
// The outline inflates every measured ink box by 2*width on both axes and
// moves the glyph origin by width; the extra x offset is not recorded in the
// metadata, so decoded proportional widths include the outline.
func WithOutline(width int, col color.Color) Option {
	return func(c *config) {
		c.outlineWidth = max(width, 0)
		c.outlineColor = col
	}
}

// WithFormatVersion overrides the format version written to the header.
// It exists to produce atlases for decoders of other layout revisions.
func WithFormatVersion(v uint32) Option {
	return func(c *config) {
		c.formatVersion = v
	}
}
