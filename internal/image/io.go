// Package image reads and writes atlas images as PNG.
//
// Atlases are kept as non-premultiplied *image.NRGBA so that metadata pixels
// with partial alpha survive a write/read round trip byte for byte.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ErrEmptyImage is returned when asked to encode an image with no pixels.
var ErrEmptyImage = errors.New("image: empty image")

// LoadPNG loads a PNG image from the given file path.
func LoadPNG(path string) (*image.NRGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from r into non-premultiplied RGBA.
func DecodePNG(r io.Reader) (*image.NRGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode PNG: %w", err)
	}
	return ToNRGBA(img), nil
}

// SavePNG saves img as a PNG file. The file is removed again if encoding
// fails, so a failed save leaves no partial output behind.
func SavePNG(path string, img image.Image) error {
	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// ToNRGBA returns img as *image.NRGBA with its origin at (0, 0).
// An *image.NRGBA already anchored at the origin is returned as is.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if nrgba, ok := img.(*image.NRGBA); ok {
		if b.Min == (image.Point{}) {
			return nrgba
		}
		// Row copy keeps partial-alpha pixels exact; draw.Draw would
		// round-trip them through premultiplied color.
		for y := range b.Dy() {
			src := nrgba.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:(y+1)*out.Stride], nrgba.Pix[src:src+b.Dx()*4])
		}
		return out
	}

	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
