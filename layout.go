package fontatlas

import (
	"image"
	"math"
)

const (
	// CellPadding is added to the largest ink box on each axis to keep
	// neighbouring glyphs from bleeding into each other when sampled scaled.
	CellPadding = 2

	// GlyphXOffset is the left inset of every glyph inside its cell.
	GlyphXOffset = 2

	// fixedColumns is the column count of the fixed 16-column grid.
	fixedColumns = 16
)

// Topology selects how glyph cells are arranged on the atlas.
type Topology int

const (
	// Fixed16Column is a 16-column grid with exactly one metadata row.
	Fixed16Column Topology = iota

	// NearSquare uses ceil(sqrt(n)) columns and as many metadata rows as
	// the custom payload needs.
	NearSquare
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case Fixed16Column:
		return "Fixed16Column"
	case NearSquare:
		return "NearSquare"
	default:
		return "Unknown"
	}
}

// LayoutPlan is the geometry of one atlas. It is derived once per run.
type LayoutPlan struct {
	Topology   Topology
	GlyphCount int

	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
	XOffset    int

	ImageWidth  int
	ImageHeight int

	MetadataRowCount int
	MetadataStartRow int
}

// PlanLayout computes the atlas geometry for metrics arranged in topology.
//
// Returns ErrEmptyGlyphSet for no metrics, and *MetadataCapacityError when a
// Fixed16Column atlas is too narrow to hold its header and width table in
// its single metadata row.
func PlanLayout(metrics []GlyphMetric, topology Topology) (LayoutPlan, error) {
	n := len(metrics)
	if n == 0 {
		return LayoutPlan{}, ErrEmptyGlyphSet
	}

	inkW, inkH := maxInkSize(metrics)
	p := LayoutPlan{
		Topology:   topology,
		GlyphCount: n,
		CellWidth:  inkW + CellPadding,
		CellHeight: inkH + CellPadding,
		XOffset:    GlyphXOffset,
	}

	switch topology {
	case Fixed16Column:
		p.Columns = fixedColumns
		p.Rows = ceilDiv(n, fixedColumns)
		p.ImageWidth = p.Columns * p.CellWidth
		p.MetadataRowCount = 1
		if need := PayloadLen(VariantFixed, n); need > p.ImageWidth {
			return LayoutPlan{}, &MetadataCapacityError{Need: need, Have: p.ImageWidth}
		}
	default:
		p.Columns = int(math.Ceil(math.Sqrt(float64(n))))
		p.Rows = ceilDiv(n, p.Columns)
		p.ImageWidth = p.Columns * p.CellWidth
		// ImageWidth does not depend on the metadata rows, so one pass suffices.
		p.MetadataRowCount = ceilDiv(PayloadLen(VariantCustom, n), p.ImageWidth)
	}

	p.MetadataStartRow = p.Rows * p.CellHeight
	p.ImageHeight = p.MetadataStartRow + p.MetadataRowCount

	Logger().Debug("fontatlas: layout planned",
		"topology", topology.String(),
		"glyphs", n,
		"cell", image.Pt(p.CellWidth, p.CellHeight),
		"grid", image.Pt(p.Columns, p.Rows),
		"size", image.Pt(p.ImageWidth, p.ImageHeight),
		"metadataRows", p.MetadataRowCount)

	return p, nil
}

// Cell returns the rectangle of the i-th glyph cell.
func (p LayoutPlan) Cell(i int) image.Rectangle {
	col := i % p.Columns
	row := i / p.Columns
	x := col * p.CellWidth
	y := row * p.CellHeight
	return image.Rect(x, y, x+p.CellWidth, y+p.CellHeight)
}

// GlyphOrigin returns where the i-th glyph is drawn: the cell corner moved
// right by the x offset and inset by the outline width on both axes.
func (p LayoutPlan) GlyphOrigin(i, outlineWidth int) image.Point {
	c := p.Cell(i).Min
	return image.Pt(c.X+p.XOffset+outlineWidth, c.Y+outlineWidth)
}

// GlyphArea returns the part of the image reserved for glyph cells.
func (p LayoutPlan) GlyphArea() image.Rectangle {
	return image.Rect(0, 0, p.ImageWidth, p.MetadataStartRow)
}

// MetadataArea returns the trailing rows reserved for metadata.
func (p LayoutPlan) MetadataArea() image.Rectangle {
	return image.Rect(0, p.MetadataStartRow, p.ImageWidth, p.ImageHeight)
}

// Bounds returns the full image rectangle.
func (p LayoutPlan) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.ImageWidth, p.ImageHeight)
}

// MetadataCapacity returns the number of values the metadata region holds.
func (p LayoutPlan) MetadataCapacity() int {
	return p.ImageWidth * p.MetadataRowCount
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
