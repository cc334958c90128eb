package fontatlas

import (
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
)

// fakeRasterizer measures every glyph from a fixed table and draws it as a
// solid rectangle, so layouts and pixels are fully predictable.
type fakeRasterizer struct {
	sizes    map[rune]image.Point
	fallback image.Point

	// overdraw grows every drawn rectangle beyond the measured size.
	overdraw int

	// missing lists code points MissingGlyphs reports as absent.
	missing map[rune]bool

	openErr error

	opened atomic.Int64
	draws  atomic.Int64
	closed atomic.Int64
}

func (f *fakeRasterizer) OpenFont(path string, pointSize float64) (FontHandle, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.opened.Add(1)
	return &fakeHandle{r: f}, nil
}

type fakeHandle struct {
	r *fakeRasterizer
}

func (h *fakeHandle) size(r rune) image.Point {
	if p, ok := h.r.sizes[r]; ok {
		return p
	}
	return h.r.fallback
}

func (h *fakeHandle) MeasureGlyph(r rune) (width, height int) {
	p := h.size(r)
	return p.X, p.Y
}

func (h *fakeHandle) DrawGlyph(dst draw.Image, r rune, x, y int, fill color.Color, outlineWidth int, outlineColor color.Color) {
	h.r.draws.Add(1)
	p := h.size(r)
	rect := image.Rect(x, y, x+p.X+h.r.overdraw, y+p.Y+h.r.overdraw)
	if outlineWidth > 0 {
		draw.Draw(dst, rect.Inset(-outlineWidth), image.NewUniform(outlineColor), image.Point{}, draw.Src)
	}
	draw.Draw(dst, rect, image.NewUniform(fill), image.Point{}, draw.Src)
}

func (h *fakeHandle) MissingGlyphs(glyphs []rune) []rune {
	var out []rune
	for _, r := range glyphs {
		if h.r.missing[r] {
			out = append(out, r)
		}
	}
	return out
}

func (h *fakeHandle) Close() error {
	h.r.closed.Add(1)
	return nil
}

// uniformMetrics returns n metrics of the same size for code points from 'A'.
func uniformMetrics(n, w, h int) []GlyphMetric {
	m := make([]GlyphMetric, n)
	for i := range m {
		m[i] = GlyphMetric{Codepoint: 'A' + rune(i), Width: w, Height: h}
	}
	return m
}
