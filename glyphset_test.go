package fontatlas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrintableASCII(t *testing.T) {
	gs := PrintableASCII()
	if len(gs) != 96 {
		t.Fatalf("len = %d, want 96", len(gs))
	}
	if gs[0] != ' ' || gs[95] != 127 {
		t.Errorf("range = %U..%U, want U+0020..U+007F", gs[0], gs[95])
	}
	if !gs.IsPrintableASCII() {
		t.Error("IsPrintableASCII() = false")
	}
	if gs.Sorted().IsPrintableASCII() != true {
		t.Error("sorted ASCII should stay ASCII")
	}
}

func TestGlyphSet_IsPrintableASCII(t *testing.T) {
	reversed := PrintableASCII()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	tests := []struct {
		name string
		gs   GlyphSet
		want bool
	}{
		{"empty", nil, false},
		{"subset", GlyphSet("ABC"), false},
		{"reversed", reversed, false},
		{"exact", PrintableASCII(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gs.IsPrintableASCII(); got != tt.want {
				t.Errorf("IsPrintableASCII() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewGlyphSet_Dedup(t *testing.T) {
	got := NewGlyphSet('b', 'a', 'b', 'c', 'a')
	if diff := cmp.Diff(GlyphSet{'b', 'a', 'c'}, got); diff != "" {
		t.Errorf("NewGlyphSet() mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphSetFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []GlyphSetOption
		want GlyphSet
	}{
		{"plain", "hello", nil, GlyphSet{'h', 'e', 'l', 'o'}},
		{"line breaks kept", "ab\r\nba\n", nil, GlyphSet{'a', 'b', '\r', '\n'}},
		{"line breaks skipped", "ab\r\nba\n", []GlyphSetOption{WithoutLineBreaks()}, GlyphSet{'a', 'b'}},
		{"decomposed keeps base and mark", "e\u0301", nil, GlyphSet{'e', '\u0301'}},
		{"precomposed and decomposed stay apart", "\u00e9e\u0301", nil, GlyphSet{'\u00e9', 'e', '\u0301'}},
		{"nfc folds decomposed", "e\u0301\u00e9", []GlyphSetOption{WithNFC()}, GlyphSet{'\u00e9'}},
		{"non latin", "日本語日", nil, GlyphSet{'日', '本', '語'}},
		{"empty", "", nil, GlyphSet{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, GlyphSetFromText(tt.text, tt.opts...)); diff != "" {
				t.Errorf("GlyphSetFromText(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestLoadGlyphSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyphs.txt")
	if err := os.WriteFile(path, []byte("CAB\nBAC\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	gs, err := LoadGlyphSet(path)
	if err != nil {
		t.Fatalf("LoadGlyphSet() error = %v", err)
	}
	if diff := cmp.Diff(GlyphSet{'C', 'A', 'B', '\n'}, gs); diff != "" {
		t.Errorf("LoadGlyphSet() mismatch (-want +got):\n%s", diff)
	}

	gs, err = LoadGlyphSet(path, WithoutLineBreaks())
	if err != nil {
		t.Fatalf("LoadGlyphSet() error = %v", err)
	}
	if diff := cmp.Diff(GlyphSet{'A', 'B', 'C'}, gs.Sorted()); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	if gs[0] != 'C' {
		t.Error("Sorted() modified the receiver")
	}
}

func TestLoadGlyphSet_CombiningMarks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks.txt")
	if err := os.WriteFile(path, []byte("e\u0301a\u0308"), 0o600); err != nil {
		t.Fatal(err)
	}

	gs, err := LoadGlyphSet(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(GlyphSet{'e', '\u0301', 'a', '\u0308'}, gs); diff != "" {
		t.Errorf("LoadGlyphSet() mismatch (-want +got):\n%s", diff)
	}

	gs, err = LoadGlyphSet(path, WithNFC())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(GlyphSet{'\u00e9', '\u00e4'}, gs); diff != "" {
		t.Errorf("LoadGlyphSet(WithNFC) mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadGlyphSet_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := LoadGlyphSet(path)
	var srcErr *GlyphSetSourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("LoadGlyphSet() error = %v, want *GlyphSetSourceError", err)
	}
	if srcErr.Path != path || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("GlyphSetSourceError = %v", srcErr)
	}
}

func TestGlyphSet_Validate(t *testing.T) {
	if err := GlyphSet(nil).validate(); !errors.Is(err, ErrEmptyGlyphSet) {
		t.Errorf("validate(nil) = %v, want ErrEmptyGlyphSet", err)
	}
	if err := (GlyphSet{'a', 'b', 'a'}).validate(); !errors.Is(err, ErrDuplicateCodepoint) {
		t.Errorf("validate(dup) = %v, want ErrDuplicateCodepoint", err)
	}
	if err := (GlyphSet{'a'}).validate(); err != nil {
		t.Errorf("validate(a) = %v", err)
	}
}
