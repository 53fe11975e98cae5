package termtext

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// TextWidth measures the rendered width of text in abstract width units.
// It is the only platform-dependent primitive; every column computation is derived from it.
type TextWidth interface {
	// Width returns the rendered width of text in width units.
	Width(text string) int
	// XWidth returns the width units of one reference monospaced character.
	XWidth() int
}

// CellWidth measures text in terminal cells: 2 for wide characters (CJK, emoji), 1 for normal,
// 0 for zero-width (combining marks, control chars).
type CellWidth struct{}

// Width returns the total display width of text.
func (CellWidth) Width(text string) int {
	return uniwidth.StringWidth(text)
}

// XWidth returns 1; one cell is one width unit.
func (CellWidth) XWidth() int {
	return 1
}

// RuneWidth measures text with go-runewidth tables.
// EastAsian makes ambiguous-width characters occupy 2 cells.
type RuneWidth struct {
	EastAsian bool
}

// Width returns the total display width of text.
func (w RuneWidth) Width(text string) int {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = w.EastAsian
	return cond.StringWidth(text)
}

// XWidth returns 1; one cell is one width unit.
func (RuneWidth) XWidth() int {
	return 1
}

// GraphemeWidth measures text grapheme by grapheme, so emoji sequences count once.
type GraphemeWidth struct{}

// Width returns the total display width of text.
func (GraphemeWidth) Width(text string) int {
	return uniseg.StringWidth(text)
}

// XWidth returns 1; one cell is one width unit.
func (GraphemeWidth) XWidth() int {
	return 1
}

// StringWidth returns the display width of text in cells using the default CellWidth.
func StringWidth(text string) int {
	return CellWidth{}.Width(text)
}
