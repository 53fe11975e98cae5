package termtext

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the point size used by ParseFontWidth when none is given.
const DefaultFontSize = 14

// FontSource resolves a font name, such as "DejaVu Sans Mono", to a font file path.
type FontSource interface {
	Find(name string) (string, error)
}

// FontSourceFunc adapts a function to FontSource.
type FontSourceFunc func(name string) (string, error)

// Find calls f(name).
func (f FontSourceFunc) Find(name string) (string, error) {
	return f(name)
}

// FontPaths is a FontSource over a fixed name to path table.
type FontPaths map[string]string

// Find returns the path registered for name.
func (p FontPaths) Find(name string) (string, error) {
	path, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: no font named %q", ErrOutOfRange, name)
	}
	return path, nil
}

// FontWidth measures text by the advance of its glyphs in a font face.
// Width units are 26.6 fixed-point pixels; XWidth is the advance of 'X'.
// Faces are not safe for concurrent use, so access is serialized.
type FontWidth struct {
	mu     sync.Mutex
	face   font.Face
	xWidth int
}

// NewFontWidth wraps face. If face is nil, uses basicfont.Face7x13.
func NewFontWidth(face font.Face) *FontWidth {
	if face == nil {
		face = basicfont.Face7x13
	}

	adv, ok := face.GlyphAdvance('X')
	if !ok || adv <= 0 {
		adv = fixed.I(7) // the basicfont cell
	}

	return &FontWidth{face: face, xWidth: int(adv)}
}

// Width returns the advance of text in 26.6 fixed-point units.
func (w *FontWidth) Width(text string) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return int(font.MeasureString(w.face, text))
}

// XWidth returns the advance of 'X' in 26.6 fixed-point units.
func (w *FontWidth) XWidth() int {
	return w.xWidth
}

// ParseFontWidth measures with a TrueType or OpenType font given as raw bytes,
// rendered at size points (DefaultFontSize when size <= 0) and 72 DPI, so one
// point is one pixel.
func ParseFontWidth(data []byte, size float64) (*FontWidth, error) {
	if size <= 0 {
		size = DefaultFontSize
	}

	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("termtext: parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("termtext: font face at %vpt: %w", size, err)
	}

	return NewFontWidth(face), nil
}

// ReadFontWidth is ParseFontWidth over the contents of r.
func ReadFontWidth(r io.Reader, size float64) (*FontWidth, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("termtext: read font: %w", err)
	}
	return ParseFontWidth(data, size)
}

// FindFontWidth resolves name to a font file through src and measures with it.
func FindFontWidth(src FontSource, name string, size float64) (*FontWidth, error) {
	path, err := src.Find(name)
	if err != nil {
		return nil, fmt.Errorf("termtext: find font %q: %w", name, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("termtext: font %q: %w", name, err)
	}
	return ParseFontWidth(data, size)
}
