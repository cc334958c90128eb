package fontatlas

import (
	"image"
	"image/color"
)

// GlyphRegion locates one glyph on a decoded atlas.
type GlyphRegion struct {
	Codepoint rune

	// X and Y are the top-left corner of the glyph, X already shifted by
	// the atlas x offset.
	X, Y int

	// Width is the proportional width of the glyph.
	Width int

	// Height is the drawable height, one less than the cell height.
	Height int
}

// Rect returns the proportional glyph rectangle.
func (g GlyphRegion) Rect() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.Width, g.Y+g.Height)
}

// Atlas is the metadata recovered from an atlas image.
type Atlas struct {
	Variant Variant

	// Header is zero for a plain 16x6 grid without metadata.
	Header AtlasHeader

	CellWidth  int
	CellHeight int
	Glyphs     []GlyphRegion

	index map[rune]int
}

// Glyph returns the region of r.
func (a *Atlas) Glyph(r rune) (GlyphRegion, bool) {
	i, ok := a.index[r]
	if !ok {
		return GlyphRegion{}, false
	}
	return a.Glyphs[i], true
}

// HasMetadata reports whether the atlas carried embedded metadata.
func (a *Atlas) HasMetadata() bool {
	return a.Header.Magic != ""
}

// TextSize returns the size of s laid out with the fixed cell stride.
// A newline starts a new line.
func (a *Atlas) TextSize(s string) image.Point {
	cols, maxCols, lines := 0, 0, 1
	for _, r := range s {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		maxCols = max(maxCols, cols)
	}
	return image.Pt(maxCols*a.CellWidth, lines*a.CellHeight)
}

// TextSizeProp returns the size of s laid out with per-glyph widths.
// Characters missing from the atlas have zero width.
func (a *Atlas) TextSizeProp(s string) image.Point {
	x, maxX, lines := 0, 0, 1
	for _, r := range s {
		if r == '\n' {
			lines++
			x = 0
			continue
		}
		if g, ok := a.Glyph(r); ok {
			x += g.Width
		}
		maxX = max(maxX, x)
	}
	return image.Pt(maxX, lines*a.CellHeight)
}

// Decode recovers the atlas metadata embedded in img.
//
// A custom atlas is recognized by a "CFON" pixel at x=0 of any row, searched
// bottom-up. A fixed atlas carries "FONT" at the start of its last row. Any
// other image is read as a plain 16x6 grid of the 96 printable ASCII glyphs
// with monospace widths; cell sizes are width/16 and height/6, truncated, so
// leftover pixels on the right and bottom are ignored. ErrNoMetadata is
// returned only when the image is too small for a one-pixel cell.
func Decode(img image.Image) (*Atlas, error) {
	r := newValueReader(img)
	if r.width == 0 || r.height == 0 {
		return nil, ErrNoMetadata
	}

	custom := magicValue(MagicCustom)
	for y := r.height - 1; y >= 0; y-- {
		if r.at(0, y) == custom {
			return decodeCustom(r, y)
		}
	}

	if r.at(0, r.height-1) == magicValue(MagicFixed) {
		return decodeFixed(r)
	}

	if r.width < fixedColumns || r.height < 6 {
		return nil, ErrNoMetadata
	}
	return decodePlainGrid(r), nil
}

func decodeCustom(r *valueReader, startRow int) (*Atlas, error) {
	seq := func(i int) uint32 { return r.seq(startRow, i) }
	available := (r.height-startRow)*r.width

	if available < customHeaderLen {
		return nil, ErrTruncatedMetadata
	}
	h := AtlasHeader{
		Magic:         MagicCustom,
		FormatVersion: seq(1),
		GlyphCount:    seq(2),
		XOffset:       seq(3),
		CellWidth:     seq(4),
		CellHeight:    seq(5),
	}
	if h.FormatVersion != FormatVersion {
		return nil, &FormatVersionError{Magic: MagicCustom, Version: h.FormatVersion}
	}
	if h.CellWidth == 0 || h.CellHeight == 0 || int(h.CellWidth) > r.width {
		return nil, ErrNoMetadata
	}
	n := int(h.GlyphCount)
	if PayloadLen(VariantCustom, n) > available {
		return nil, ErrTruncatedMetadata
	}

	a := &Atlas{
		Variant:    VariantCustom,
		Header:     h,
		CellWidth:  int(h.CellWidth),
		CellHeight: int(h.CellHeight),
		Glyphs:     make([]GlyphRegion, n),
	}
	columns := r.width / a.CellWidth
	for i := range n {
		a.Glyphs[i] = GlyphRegion{
			Codepoint: rune(seq(customHeaderLen + 2*i + 1)), //nolint:gosec // code points fit in rune
			X:         i%columns*a.CellWidth + int(h.XOffset),
			Y:         i / columns * a.CellHeight,
			Width:     int(seq(customHeaderLen + 2*i)),
			Height:    a.CellHeight - 1,
		}
	}
	a.buildIndex()
	return a, nil
}

func decodeFixed(r *valueReader) (*Atlas, error) {
	row := r.height - 1
	if r.width < fixedHeaderLen+PrintableASCIICount {
		return nil, ErrTruncatedMetadata
	}
	h := AtlasHeader{
		Magic:         MagicFixed,
		FormatVersion: r.at(1, row),
		GlyphCount:    uint32(PrintableASCIICount),
		XOffset:       r.at(2, row),
	}
	if h.FormatVersion != FormatVersion {
		return nil, &FormatVersionError{Magic: MagicFixed, Version: h.FormatVersion}
	}

	a := &Atlas{
		Variant:    VariantFixed,
		Header:     h,
		CellWidth:  r.width / fixedColumns,
		CellHeight: (r.height - 1) / 6,
		Glyphs:     make([]GlyphRegion, PrintableASCIICount),
	}
	h.CellWidth = uint32(a.CellWidth)   //nolint:gosec // positive image dimension
	h.CellHeight = uint32(a.CellHeight) //nolint:gosec // positive image dimension
	a.Header = h

	for i := range PrintableASCIICount {
		a.Glyphs[i] = GlyphRegion{
			Codepoint: FirstPrintableASCII + rune(i),
			X:         i%fixedColumns*a.CellWidth + int(h.XOffset),
			Y:         i / fixedColumns * a.CellHeight,
			Width:     int(r.at(fixedHeaderLen+i, row)),
			Height:    a.CellHeight - 1,
		}
	}
	a.buildIndex()
	return a, nil
}

func decodePlainGrid(r *valueReader) *Atlas {
	a := &Atlas{
		Variant:    VariantFixed,
		CellWidth:  r.width / fixedColumns,
		CellHeight: r.height / 6,
		Glyphs:     make([]GlyphRegion, PrintableASCIICount),
	}
	for i := range PrintableASCIICount {
		a.Glyphs[i] = GlyphRegion{
			Codepoint: FirstPrintableASCII + rune(i),
			X:         i % fixedColumns * a.CellWidth,
			Y:         i / fixedColumns * a.CellHeight,
			Width:     a.CellWidth,
			Height:    a.CellHeight - 1,
		}
	}
	a.buildIndex()
	return a
}

func (a *Atlas) buildIndex() {
	a.index = make(map[rune]int, len(a.Glyphs))
	for i, g := range a.Glyphs {
		if _, dup := a.index[g.Codepoint]; !dup {
			a.index[g.Codepoint] = i
		}
	}
}

// valueReader reads 32-bit values back from image pixels.
type valueReader struct {
	img           image.Image
	nrgba         *image.NRGBA
	min           image.Point
	width, height int
}

func newValueReader(img image.Image) *valueReader {
	b := img.Bounds()
	r := &valueReader{img: img, min: b.Min, width: b.Dx(), height: b.Dy()}
	r.nrgba, _ = img.(*image.NRGBA)
	return r
}

// at returns the value stored at (x, y) relative to the image origin.
// Only non-premultiplied images preserve values with partial alpha exactly.
func (r *valueReader) at(x, y int) uint32 {
	x += r.min.X
	y += r.min.Y
	if r.nrgba != nil {
		return ValueFromPixel(r.nrgba.NRGBAAt(x, y))
	}
	return ValueFromPixel(color.NRGBAModel.Convert(r.img.At(x, y)).(color.NRGBA))
}

// seq returns the i-th value of a sequence laid out row-major from (0, row).
func (r *valueReader) seq(row, i int) uint32 {
	return r.at(i%r.width, row+i/r.width)
}
