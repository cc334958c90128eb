package fontatlas

import (
	"image"
	"image/color"
)

// PixelWrite is one encoded metadata value at its pixel position.
type PixelWrite struct {
	X, Y  int
	Pixel color.NRGBA
}

// PixelFromValue maps v onto the four channels in little-endian order:
// R holds bits 0-7 and A holds bits 24-31.
func PixelFromValue(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// ValueFromPixel is the inverse of PixelFromValue.
func ValueFromPixel(c color.NRGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// EncodeMetadata returns the pixel writes that store header and metrics in
// the metadata region of plan.
//
// Values are placed row-major from (0, MetadataStartRow), wrapping to the
// next row at ImageWidth. If the region is too small a *MetadataCapacityError
// is returned and nothing is produced.
func EncodeMetadata(header AtlasHeader, metrics []GlyphMetric, plan LayoutPlan, variant Variant) ([]PixelWrite, error) {
	values := Payload(header, metrics, variant)
	if capacity := plan.MetadataCapacity(); len(values) > capacity {
		return nil, &MetadataCapacityError{Need: len(values), Have: capacity}
	}

	writes := make([]PixelWrite, len(values))
	for i, v := range values {
		writes[i] = PixelWrite{
			X:     i % plan.ImageWidth,
			Y:     plan.MetadataStartRow + i/plan.ImageWidth,
			Pixel: PixelFromValue(v),
		}
	}

	Logger().Debug("fontatlas: metadata encoded",
		"magic", header.Magic,
		"values", len(values),
		"rows", plan.MetadataRowCount)

	return writes, nil
}

// ApplyMetadata stamps writes into dst.
func ApplyMetadata(dst *image.NRGBA, writes []PixelWrite) {
	for _, w := range writes {
		dst.SetNRGBA(w.X, w.Y, w.Pixel)
	}
}
