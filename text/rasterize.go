package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
)

// defaultDPI makes one point one pixel.
const defaultDPI = 72

// Rasterizer implements fontatlas.Rasterizer with golang.org/x/image.
//
// The zero value renders at 72 DPI without hinting; NewRasterizer enables
// full hinting.
type Rasterizer struct {
	// DPI is the resolution used to convert points to pixels. Zero means 72.
	DPI float64

	// Hinting is the hinting mode applied to outlines.
	Hinting Hinting
}

// NewRasterizer returns a Rasterizer at 72 DPI with full hinting.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{DPI: defaultDPI, Hinting: HintingFull}
}

// OpenFont implements fontatlas.Rasterizer. Read and parse failures are
// reported as *fontatlas.FontOpenError.
func (r *Rasterizer) OpenFont(path string, pointSize float64) (fontatlas.FontHandle, error) {
	source, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, &fontatlas.FontOpenError{Path: path, Err: err}
	}
	h, err := r.Open(source, pointSize)
	if err != nil {
		return nil, &fontatlas.FontOpenError{Path: path, Err: err}
	}
	return h, nil
}

// Open opens an already loaded font at pointSize.
func (r *Rasterizer) Open(source *FontSource, pointSize float64) (*Handle, error) {
	if !(pointSize > 0) {
		return nil, ErrInvalidSize
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	face, err := opentype.NewFace(source.parsed, &opentype.FaceOptions{
		Size:    pointSize,
		DPI:     dpi,
		Hinting: mapHinting(r.Hinting),
	})
	if err != nil {
		return nil, err
	}

	fm := face.Metrics()
	h := &Handle{
		face:    face,
		metrics: metricsFromFace(fm),
		ascent:  fm.Ascent,
	}
	h.lineHeight = h.metrics.LineHeight()
	fontatlas.Logger().Debug("text: face opened",
		"font", source.Name(),
		"glyphs", source.NumGlyphs(),
		"size", pointSize,
		"dpi", dpi,
		"ascent", h.metrics.Ascent,
		"descent", h.metrics.Descent,
		"lineHeight", h.lineHeight)

	if cov, err := NewCoverage(source); err == nil {
		h.coverage = cov
	} else {
		fontatlas.Logger().Debug("text: coverage unavailable", "font", source.Name(), "err", err)
	}

	return h, nil
}

// Handle is a font opened at one size. It implements fontatlas.FontHandle.
//
// Handle is not safe for concurrent use.
type Handle struct {
	face       font.Face
	coverage   *Coverage
	metrics    Metrics
	ascent     fixed.Int26_6
	lineHeight int
}

// MeasureGlyph implements fontatlas.FontHandle.
func (h *Handle) MeasureGlyph(r rune) (width, height int) {
	bounds, advance, _ := h.face.GlyphBounds(r)
	width = max(advance.Ceil(), bounds.Max.X.Ceil(), 0)
	return width, h.lineHeight
}

// DrawGlyph implements fontatlas.FontHandle. The line top of the glyph is
// placed at y; the baseline sits one ascent below it.
//
// The outline is drawn by stamping the glyph mask in outlineColor at every
// offset within outlineWidth pixels, then filling the glyph on top.
func (h *Handle) DrawGlyph(dst draw.Image, r rune, x, y int, fill color.Color, outlineWidth int, outlineColor color.Color) {
	dot := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + h.ascent}

	if outlineWidth > 0 {
		dr, mask, maskp, _, ok := h.face.Glyph(dot, r)
		if ok {
			src := image.NewUniform(outlineColor)
			rr := outlineWidth * outlineWidth
			for dy := -outlineWidth; dy <= outlineWidth; dy++ {
				for dx := -outlineWidth; dx <= outlineWidth; dx++ {
					if dx*dx+dy*dy > rr {
						continue
					}
					draw.DrawMask(dst, dr.Add(image.Pt(dx, dy)), src, image.Point{}, mask, maskp, draw.Over)
				}
			}
		}
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fill),
		Face: h.face,
		Dot:  dot,
	}
	d.DrawString(string(r))
}

// MissingGlyphs returns the code points of glyphs the font has no glyph
// for, in their original order. Without cmap information none are reported.
func (h *Handle) MissingGlyphs(glyphs []rune) []rune {
	if h.coverage == nil {
		return nil
	}
	return h.coverage.Missing(glyphs)
}

// Close implements fontatlas.FontHandle.
func (h *Handle) Close() error {
	return h.face.Close()
}
