package fontatlas

import (
	"errors"
	"strconv"
)

// Sentinel errors for fontatlas package.
var (
	// ErrEmptyGlyphSet is returned when an atlas is requested for no glyphs.
	ErrEmptyGlyphSet = errors.New("fontatlas: glyph set is empty")

	// ErrInvalidPointSize is returned when the point size is not positive.
	ErrInvalidPointSize = errors.New("fontatlas: point size must be positive")

	// ErrDuplicateCodepoint is returned when a glyph set lists a code point twice.
	ErrDuplicateCodepoint = errors.New("fontatlas: duplicate code point in glyph set")

	// ErrFixedCharset is returned when the fixed variant is requested for
	// anything other than the 96 printable ASCII code points in order.
	ErrFixedCharset = errors.New("fontatlas: fixed variant requires code points 32..127")

	// ErrNoMetadata is returned when an image carries no recognizable atlas metadata.
	ErrNoMetadata = errors.New("fontatlas: no atlas metadata found")

	// ErrTruncatedMetadata is returned when the metadata region ends before
	// the glyph table announced by its header.
	ErrTruncatedMetadata = errors.New("fontatlas: metadata region is truncated")
)

// FontOpenError is returned when the font file cannot be read or parsed.
// It is fatal for a generation run and reported before any image work.
type FontOpenError struct {
	Path string
	Err  error
}

func (e *FontOpenError) Error() string {
	return "fontatlas: unable to open font " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *FontOpenError) Unwrap() error { return e.Err }

// GlyphSetSourceError is returned when a glyph set file cannot be read.
type GlyphSetSourceError struct {
	Path string
	Err  error
}

func (e *GlyphSetSourceError) Error() string {
	return "fontatlas: unable to load glyph set " + strconv.Quote(e.Path) + ": " + e.Err.Error()
}

func (e *GlyphSetSourceError) Unwrap() error { return e.Err }

// MetadataCapacityError is returned when the metadata region of a layout
// cannot hold the encoded header and glyph table.
type MetadataCapacityError struct {
	Need int // values to encode
	Have int // pixels available
}

func (e *MetadataCapacityError) Error() string {
	return "fontatlas: metadata needs " + strconv.Itoa(e.Need) +
		" pixels, region holds " + strconv.Itoa(e.Have)
}

// FormatVersionError is returned by Decode for metadata written with a
// format version this package does not understand.
type FormatVersionError struct {
	Magic   string
	Version uint32
}

func (e *FormatVersionError) Error() string {
	return "fontatlas: unsupported " + e.Magic + " format version " +
		strconv.FormatUint(uint64(e.Version), 10)
}
