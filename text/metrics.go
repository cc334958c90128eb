package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics holds the vertical metrics of a face in pixels.
type Metrics struct {
	// Ascent is the distance from the line top to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the line bottom (positive).
	Descent float64

	// XHeight is the height of lowercase letters.
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the height every glyph cell is measured with:
// ascent plus descent, rounded up to whole pixels.
func (m Metrics) LineHeight() int {
	return int(math.Ceil(m.Ascent + m.Descent))
}

func metricsFromFace(m font.Metrics) Metrics {
	return Metrics{
		Ascent:    fixedToFloat(m.Ascent),
		Descent:   fixedToFloat(m.Descent),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
