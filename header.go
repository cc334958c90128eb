package fontatlas

import "encoding/binary"

// FormatVersion is the metadata layout revision written by this package.
const FormatVersion uint32 = 1

// Magic tags stored in the first metadata pixel, one ASCII byte per channel.
const (
	MagicFixed  = "FONT"
	MagicCustom = "CFON"
)

// Header sizes in values, magic included.
const (
	fixedHeaderLen  = 3
	customHeaderLen = 6
)

// Variant selects the metadata format of an atlas.
type Variant int

const (
	// VariantAuto picks VariantFixed for exactly the printable ASCII set and
	// VariantCustom otherwise.
	VariantAuto Variant = iota

	// VariantFixed encodes code points 32..127 implicitly: magic "FONT",
	// version, x offset and 96 widths in one metadata row.
	VariantFixed

	// VariantCustom encodes arbitrary code points: magic "CFON", version,
	// glyph count, x offset, cell size, then (width, code point) pairs.
	VariantCustom
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantFixed:
		return "fixed"
	case VariantCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Topology returns the grid arrangement used by the variant.
func (v Variant) Topology() Topology {
	if v == VariantFixed {
		return Fixed16Column
	}
	return NearSquare
}

// Magic returns the magic tag of the variant.
func (v Variant) Magic() string {
	if v == VariantFixed {
		return MagicFixed
	}
	return MagicCustom
}

// AtlasHeader holds the header fields of the metadata payload.
// GlyphCount, CellWidth and CellHeight are only encoded by VariantCustom.
type AtlasHeader struct {
	Magic         string
	FormatVersion uint32
	GlyphCount    uint32
	XOffset       uint32
	CellWidth     uint32
	CellHeight    uint32
}

// NewHeader returns the header describing plan in the given variant.
func NewHeader(plan LayoutPlan, variant Variant) AtlasHeader {
	return AtlasHeader{
		Magic:         variant.Magic(),
		FormatVersion: FormatVersion,
		GlyphCount:    uint32(plan.GlyphCount), //nolint:gosec // glyph counts are far below 2^32
		XOffset:       uint32(plan.XOffset),    //nolint:gosec // non-negative constant
		CellWidth:     uint32(plan.CellWidth),  //nolint:gosec // positive by construction
		CellHeight:    uint32(plan.CellHeight), //nolint:gosec // positive by construction
	}
}

// PayloadLen returns the number of 32-bit values encoded for n glyphs.
func PayloadLen(variant Variant, n int) int {
	if variant == VariantFixed {
		return fixedHeaderLen + n
	}
	return customHeaderLen + 2*n
}

// Payload serializes header and metrics into the value sequence stored in
// the metadata region.
func Payload(header AtlasHeader, metrics []GlyphMetric, variant Variant) []uint32 {
	out := make([]uint32, 0, PayloadLen(variant, len(metrics)))
	out = append(out, magicValue(header.Magic), header.FormatVersion)

	if variant == VariantFixed {
		out = append(out, header.XOffset)
		for _, m := range metrics {
			out = append(out, uint32(m.Width)) //nolint:gosec // widths are small and non-negative
		}
		return out
	}

	out = append(out, header.GlyphCount, header.XOffset, header.CellWidth, header.CellHeight)
	for _, m := range metrics {
		out = append(out, uint32(m.Width), uint32(m.Codepoint)) //nolint:gosec // widths and code points are non-negative
	}
	return out
}

// magicValue packs a 4-byte tag so that its first byte lands in channel 0.
func magicValue(tag string) uint32 {
	var b [4]byte
	copy(b[:], tag)
	return binary.LittleEndian.Uint32(b[:])
}

// magicString is the inverse of magicValue.
func magicString(v uint32) string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return string(b[:])
}
