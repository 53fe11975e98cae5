package termtext

import "strconv"

// Cursor control sequences. They render as "" at LevelNone.
const (
	seqShowCursor = CSI + "?25h"
	seqHideCursor = CSI + "?25l"
)

// move renders CSI count final; a negative count uses the opposite final byte.
func (p *Palette) move(count int, forward, backward byte) string {
	if p.level == LevelNone || count == 0 {
		return ""
	}
	final := forward
	if count < 0 {
		count, final = -count, backward
	}
	return CSI + strconv.Itoa(count) + string(final)
}

// CursorUp moves the cursor up count lines.
func (p *Palette) CursorUp(count int) string {
	return p.move(count, 'A', 'B')
}

// CursorDown moves the cursor down count lines.
func (p *Palette) CursorDown(count int) string {
	return p.move(count, 'B', 'A')
}

// CursorRight moves the cursor right count columns.
func (p *Palette) CursorRight(count int) string {
	return p.move(count, 'C', 'D')
}

// CursorLeft moves the cursor left count columns.
func (p *Palette) CursorLeft(count int) string {
	return p.move(count, 'D', 'C')
}

// ShowCursor makes the cursor visible.
func (p *Palette) ShowCursor() string {
	if p.level == LevelNone {
		return ""
	}
	return seqShowCursor
}

// HideCursor makes the cursor invisible.
func (p *Palette) HideCursor() string {
	if p.level == LevelNone {
		return ""
	}
	return seqHideCursor
}

// ClearLine erases the whole line the cursor is on and returns to column 0.
func (p *Palette) ClearLine() string {
	if p.level == LevelNone {
		return ""
	}
	return CSI + "2K\r"
}
