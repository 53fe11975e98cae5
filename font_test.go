package termtext

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestFontWidthBasicFace(t *testing.T) {
	w := NewFontWidth(nil)

	if got, want := w.XWidth(), int(fixed.I(7)); got != want {
		t.Fatalf("XWidth() = %d, want %d", got, want)
	}

	tests := []struct {
		s    string
		cols int
	}{
		{"", 0},
		{"X", 1},
		{"hello", 5},
		{"a b c", 5},
	}

	for _, tt := range tests {
		if got, want := w.Width(tt.s), tt.cols*w.XWidth(); got != want {
			t.Errorf("Width(%q) = %d, want %d", tt.s, got, want)
		}
	}
}

func TestFontWidthRuler(t *testing.T) {
	r := New(WithWidth(NewFontWidth(basicfont.Face7x13)), WithLevel(LevelNone))

	if got := r.Columns("abcd"); got != 4 {
		t.Errorf("Columns(%q) = %d, want 4", "abcd", got)
	}

	chunks, err := r.Chunks("abcdef", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 2 || chunks[0] != "abcd" || chunks[1] != "ef" {
		t.Errorf("Chunks = %q, want [abcd ef]", chunks)
	}
}

func TestParseFontWidthInvalid(t *testing.T) {
	if _, err := ParseFontWidth([]byte("not a font"), 0); err == nil {
		t.Error("ParseFontWidth should fail on garbage input")
	}
	if _, err := ReadFontWidth(strings.NewReader("not a font"), 12); err == nil {
		t.Error("ReadFontWidth should fail on garbage input")
	}
}

func TestFindFontWidthErrors(t *testing.T) {
	want := errors.New("no such font")
	src := FontSourceFunc(func(name string) (string, error) { return "", want })
	if _, err := FindFontWidth(src, "Mono", 12); !errors.Is(err, want) {
		t.Errorf("FindFontWidth error = %v, want %v", err, want)
	}

	if _, err := FindFontWidth(FontPaths{}, "Mono", 12); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FindFontWidth with unknown name error = %v, want ErrOutOfRange", err)
	}

	missing := FontPaths{"Mono": filepath.Join(t.TempDir(), "missing.ttf")}
	if _, err := FindFontWidth(missing, "Mono", 12); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FindFontWidth with missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestFontPaths(t *testing.T) {
	paths := FontPaths{"Mono": "/fonts/mono.ttf"}

	got, err := paths.Find("Mono")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/fonts/mono.ttf" {
		t.Errorf("Find(%q) = %q, want %q", "Mono", got, "/fonts/mono.ttf")
	}
}
