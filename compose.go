package fontatlas

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/runenames"

	intImage "github.com/gogpu/fontatlas/internal/image"
)

// Result is a composed atlas together with the data it was built from.
type Result struct {
	Image   *image.NRGBA
	Variant Variant
	Plan    LayoutPlan
	Header  AtlasHeader
	Metrics []GlyphMetric
	Glyphs  GlyphSet
}

// coverageReporter is implemented by font handles that can tell which code
// points the font has no glyph for.
type coverageReporter interface {
	MissingGlyphs(glyphs []rune) []rune
}

// Composer builds atlas images using a Rasterizer.
//
// A Composer holds no per-run state and can be shared by concurrent runs
// as long as its Rasterizer opens independent handles.
type Composer struct {
	rasterizer Rasterizer
}

// NewComposer returns a Composer drawing glyphs with r.
func NewComposer(r Rasterizer) *Composer {
	return &Composer{rasterizer: r}
}

// Compose renders glyphs from the font at fontPath into an atlas image with
// embedded metadata.
//
// Inputs are validated before the font is opened. A font that cannot be
// opened aborts the run before any image is allocated.
func (c *Composer) Compose(fontPath string, pointSize float64, glyphs GlyphSet, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glyphs.validate(); err != nil {
		return nil, err
	}
	if !(pointSize > 0) {
		return nil, ErrInvalidPointSize
	}

	variant := cfg.variant
	if variant == VariantAuto {
		variant = VariantCustom
		if glyphs.IsPrintableASCII() {
			variant = VariantFixed
		}
	}
	if variant == VariantFixed && !glyphs.IsPrintableASCII() {
		return nil, ErrFixedCharset
	}

	h, err := c.rasterizer.OpenFont(fontPath, pointSize)
	if err != nil {
		var openErr *FontOpenError
		if !errors.As(err, &openErr) {
			err = &FontOpenError{Path: fontPath, Err: err}
		}
		return nil, err
	}
	defer func() {
		_ = h.Close()
	}()

	if cov, ok := h.(coverageReporter); ok {
		for _, r := range cov.MissingGlyphs(glyphs) {
			Logger().Warn("fontatlas: font has no glyph",
				"font", fontPath,
				"codepoint", fmt.Sprintf("U+%04X", r),
				"name", runenames.Name(r))
		}
	}

	metrics := MeasureGlyphs(h, glyphs, cfg.outlineWidth)

	plan, err := PlanLayout(metrics, variant.Topology())
	if err != nil {
		return nil, err
	}

	header := NewHeader(plan, variant)
	header.FormatVersion = cfg.formatVersion

	writes, err := EncodeMetadata(header, metrics, plan, variant)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(plan.Bounds())

	// Glyphs draw through a view that ends above the metadata rows.
	glyphArea, _ := img.SubImage(plan.GlyphArea()).(*image.NRGBA)
	for i, r := range glyphs {
		o := plan.GlyphOrigin(i, cfg.outlineWidth)
		h.DrawGlyph(glyphArea, r, o.X, o.Y, cfg.fill, cfg.outlineWidth, cfg.outlineColor)
	}

	ApplyMetadata(img, writes)

	Logger().Info("fontatlas: atlas composed",
		"font", fontPath,
		"variant", variant.String(),
		"glyphs", len(glyphs),
		"size", plan.Bounds().Size())

	return &Result{
		Image:   img,
		Variant: variant,
		Plan:    plan,
		Header:  header,
		Metrics: metrics,
		Glyphs:  glyphs,
	}, nil
}

// GenerateFile composes an atlas and writes it to outDir as
// OutputName(fontPath). It returns the path written.
// Nothing is written when any step fails.
func (c *Composer) GenerateFile(fontPath string, pointSize float64, glyphs GlyphSet, outDir string, opts ...Option) (string, error) {
	res, err := c.Compose(fontPath, pointSize, glyphs, opts...)
	if err != nil {
		return "", err
	}

	out := filepath.Join(outDir, OutputName(fontPath))
	if err := intImage.SavePNG(out, res.Image); err != nil {
		return "", fmt.Errorf("fontatlas: write atlas: %w", err)
	}

	Logger().Info("fontatlas: atlas written", "path", out)
	return out, nil
}

// OutputName returns the atlas file name for a font: its base name with the
// extension replaced by ".png".
func OutputName(fontPath string) string {
	base := filepath.Base(fontPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
}

// LoadAtlas reads an atlas PNG and decodes its metadata.
func LoadAtlas(path string) (*Atlas, image.Image, error) {
	img, err := intImage.LoadPNG(path)
	if err != nil {
		return nil, nil, fmt.Errorf("fontatlas: read atlas: %w", err)
	}
	a, err := Decode(img)
	if err != nil {
		return nil, nil, err
	}
	return a, img, nil
}
