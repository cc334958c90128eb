package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{"font.ttf"}},
		{"too many", []string{"a", "1", "b", "c"}},
		{"bad size", []string{"font.ttf", "big"}},
		{"zero size", []string{"font.ttf", "0"}},
		{"bad color", []string{"-fill", "red", "font.ttf", "12"}},
		{"unknown flag", []string{"-nope", "font.ttf", "12"}},
		{"inspect without file", []string{"-inspect"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitUsage {
				t.Errorf("run(%q) = %d, want %d", tt.args, code, exitUsage)
			}
			if !strings.Contains(stderr.String(), "usage") && !strings.Contains(stderr.String(), "RRGGBBAA") {
				t.Errorf("stderr = %q, want usage", stderr.String())
			}
		})
	}
}

func TestRun_MissingInputs(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "Go.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing font", []string{"-o", dir, filepath.Join(dir, "Nope.ttf"), "12"}},
		{"missing glyph set", []string{"-o", dir, fontPath, "12", filepath.Join(dir, "nope.txt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != exitError {
				t.Errorf("run() = %d, want %d; stderr %q", code, exitError, stderr.String())
			}
			if _, err := os.Stat(filepath.Join(dir, "Go.png")); !os.IsNotExist(err) {
				t.Error("output written for a failed run")
			}
		})
	}
}

func TestRun_GenerateAndInspect(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "Go.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	setPath := filepath.Join(dir, "set.txt")
	if err := os.WriteFile(setPath, []byte("zyxA"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", dir, "-sort", "-outline", "1", fontPath, "14", setPath}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run() = %d, stderr %q", code, stderr.String())
	}
	out := strings.TrimSpace(stdout.String())
	if out != filepath.Join(dir, "Go.png") {
		t.Errorf("stdout = %q", out)
	}

	stdout.Reset()
	if code := run([]string{"-inspect", out}, &stdout, &stderr); code != exitOK {
		t.Fatalf("inspect = %d, stderr %q", code, stderr.String())
	}
	report := stdout.String()
	for _, want := range []string{"magic      CFON", "glyphs     4", "U+0041", "LATIN SMALL LETTER Z"} {
		if !strings.Contains(report, want) {
			t.Errorf("inspect output missing %q:\n%s", want, report)
		}
	}
	// -sort puts 'A' first.
	if strings.Index(report, "U+0041") > strings.Index(report, "U+0078") {
		t.Errorf("glyphs not sorted:\n%s", report)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"FF000080", color.NRGBA{R: 255, A: 128}, false},
		{"#00ff00ff", color.NRGBA{G: 255, A: 255}, false},
		{"FFF", color.NRGBA{}, true},
		{"GG000000", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFlagDefaults(t *testing.T) {
	var stderr bytes.Buffer
	fs, f := newFlagSet(&stderr)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	for name, s := range map[string]string{"fill": f.fill, "outline-color": f.outlineColor} {
		c, err := parseColor(s)
		if err != nil {
			t.Fatalf("-%s default %q: %v", name, s, err)
		}
		if c != white {
			t.Errorf("-%s default = %v, want opaque white", name, c)
		}
	}
	if f.hinting != "full" || f.nfc || f.skipNewlines || f.outline != 0 {
		t.Errorf("defaults = %+v", f)
	}
}

func TestRun_BadHinting(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-hinting", "light", "font.ttf", "12"}, &stdout, &stderr); code != exitUsage {
		t.Errorf("run() = %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr.String(), "unknown hinting") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_GlyphSetNormalization(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "Go.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	setPath := filepath.Join(dir, "set.txt")
	if err := os.WriteFile(setPath, []byte("e\u0301\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		flags []string
		want  []string
		count string
	}{
		{"raw", nil, []string{"U+0065", "U+0301", "U+000A"}, "glyphs     3"},
		{"nfc", []string{"-nfc", "-skip-newlines"}, []string{"U+00E9"}, "glyphs     1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := t.TempDir()
			args := append([]string{"-o", outDir, "-hinting", "none"}, tt.flags...)
			args = append(args, fontPath, "14", setPath)

			var stdout, stderr bytes.Buffer
			if code := run(args, &stdout, &stderr); code != exitOK {
				t.Fatalf("run() = %d, stderr %q", code, stderr.String())
			}
			out := strings.TrimSpace(stdout.String())

			stdout.Reset()
			if code := run([]string{"-inspect", out}, &stdout, &stderr); code != exitOK {
				t.Fatalf("inspect = %d, stderr %q", code, stderr.String())
			}
			report := stdout.String()
			if !strings.Contains(report, tt.count) {
				t.Errorf("inspect output missing %q:\n%s", tt.count, report)
			}
			for _, cp := range tt.want {
				if !strings.Contains(report, cp) {
					t.Errorf("inspect output missing %s:\n%s", cp, report)
				}
			}
		})
	}
}
