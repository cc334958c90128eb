// Command fontatlas renders a glyph atlas PNG with embedded metadata.
//
// Usage:
//
//	fontatlas [flags] <fontFile> <pointSize> [glyphSetFile]
//	fontatlas -inspect <atlas.png>
//
// With two arguments the printable ASCII set is rendered in the fixed
// 16-column format. A glyph set file switches to the custom format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/text"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cliFlags holds the parsed command line flags.
type cliFlags struct {
	outDir       string
	outline      int
	fill         string
	outlineColor string
	hinting      string
	sortGlyphs   bool
	nfc          bool
	skipNewlines bool
	verbose      bool
	inspect      bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("fontatlas", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	fs.StringVar(&f.outDir, "o", ".", "output directory")
	fs.IntVar(&f.outline, "outline", 0, "outline width in pixels")
	fs.StringVar(&f.fill, "fill", "FFFFFFFF", "glyph fill color as RRGGBBAA")
	fs.StringVar(&f.outlineColor, "outline-color", "FFFFFFFF", "outline color as RRGGBBAA")
	fs.StringVar(&f.hinting, "hinting", "full", "outline hinting: none, vertical or full")
	fs.BoolVar(&f.sortGlyphs, "sort", false, "sort the glyph set by code point")
	fs.BoolVar(&f.nfc, "nfc", false, "normalize the glyph set file to NFC before collecting characters")
	fs.BoolVar(&f.skipNewlines, "skip-newlines", false, "leave line breaks of the glyph set file out of the atlas")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.BoolVar(&f.inspect, "inspect", false, "print the metadata of an existing atlas")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fontatlas [flags] <fontFile> <pointSize> [glyphSetFile]")
		fmt.Fprintln(stderr, "       fontatlas -inspect <atlas.png>")
		fs.PrintDefaults()
	}
	return fs, f
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, f := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	fontatlas.SetLogger(newLogger(stderr, f.verbose))

	if f.inspect {
		if fs.NArg() != 1 {
			fs.Usage()
			return exitUsage
		}
		if err := inspectAtlas(stdout, fs.Arg(0)); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		return exitOK
	}

	if fs.NArg() < 2 || fs.NArg() > 3 {
		fs.Usage()
		return exitUsage
	}
	pointSize, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil || !(pointSize > 0) {
		fmt.Fprintf(stderr, "fontatlas: invalid point size %q\n", fs.Arg(1))
		fs.Usage()
		return exitUsage
	}
	fillColor, err := parseColor(f.fill)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	strokeColor, err := parseColor(f.outlineColor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	hinting, err := text.ParseHinting(f.hinting)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	opts := []fontatlas.Option{
		fontatlas.WithFillColor(fillColor),
		fontatlas.WithOutline(f.outline, strokeColor),
	}

	glyphs := fontatlas.PrintableASCII()
	if fs.NArg() == 3 {
		var setOpts []fontatlas.GlyphSetOption
		if f.nfc {
			setOpts = append(setOpts, fontatlas.WithNFC())
		}
		if f.skipNewlines {
			setOpts = append(setOpts, fontatlas.WithoutLineBreaks())
		}
		glyphs, err = fontatlas.LoadGlyphSet(fs.Arg(2), setOpts...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
		if f.sortGlyphs {
			glyphs = glyphs.Sorted()
		}
		opts = append(opts, fontatlas.WithVariant(fontatlas.VariantCustom))
	} else {
		opts = append(opts, fontatlas.WithVariant(fontatlas.VariantFixed))
	}

	r := text.NewRasterizer()
	r.Hinting = hinting
	c := fontatlas.NewComposer(r)
	out, err := c.GenerateFile(fs.Arg(0), pointSize, glyphs, f.outDir, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	fmt.Fprintln(stdout, out)
	return exitOK
}

// newLogger writes human readable logs to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// parseColor parses an RRGGBBAA hex string, with or without a leading '#'.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("fontatlas: color %q is not RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("fontatlas: color %q is not RRGGBBAA", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil //nolint:gosec // masked bytes
}

func inspectAtlas(w io.Writer, path string) error {
	a, img, err := fontatlas.LoadAtlas(path)
	if err != nil {
		if errors.Is(err, fontatlas.ErrNoMetadata) {
			return fmt.Errorf("%s: %w", path, err)
		}
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(w, "image      %dx%d\n", b.Dx(), b.Dy())
	if a.HasMetadata() {
		fmt.Fprintf(w, "magic      %s\n", a.Header.Magic)
		fmt.Fprintf(w, "version    %d\n", a.Header.FormatVersion)
		fmt.Fprintf(w, "x offset   %d\n", a.Header.XOffset)
	} else {
		fmt.Fprintln(w, "magic      none (plain 16x6 grid)")
	}
	fmt.Fprintf(w, "variant    %s\n", a.Variant)
	fmt.Fprintf(w, "cell       %dx%d\n", a.CellWidth, a.CellHeight)
	fmt.Fprintf(w, "glyphs     %d\n", len(a.Glyphs))
	for _, g := range a.Glyphs {
		fmt.Fprintf(w, "U+%04X  x=%-5d y=%-5d w=%-3d %s\n", g.Codepoint, g.X, g.Y, g.Width, runenames.Name(g.Codepoint))
	}
	return nil
}
