package termtext

import (
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

// Attr is a bitmask of SGR text attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrike
)

// Has returns true if flag is set.
func (a Attr) Has(flag Attr) bool {
	return a&flag != 0
}

// Span is a run of text rendered with the same attributes and colors.
// Fg and Bg are nil for the terminal defaults.
type Span struct {
	Text  string
	Attrs Attr
	Fg    Color
	Bg    Color
}

func (s Span) sameStyle(o Span) bool {
	return s.Attrs == o.Attrs && s.Fg == o.Fg && s.Bg == o.Bg
}

// DecodeSpans interprets the escape sequences of text and returns its visible
// text split into runs of equal style. Adjacent runs with the same style are merged.
// Cursor movement and other non-text sequences are ignored.
func DecodeSpans(text string) []Span {
	d := &spanDecoder{}
	dec := ansicode.NewDecoder(d)
	dec.Write([]byte(text))
	d.flush()
	return d.spans
}

// spanDecoder collects text and SGR state from an ansicode.Decoder.
// Handler methods not listed below are never reached by SGR-only input.
type spanDecoder struct {
	ansicode.Handler

	style Span
	text  strings.Builder
	spans []Span
}

// Ensure spanDecoder implements ansicode.Handler
var _ ansicode.Handler = (*spanDecoder)(nil)

func (d *spanDecoder) flush() {
	if d.text.Len() == 0 {
		return
	}
	span := d.style
	span.Text = d.text.String()
	d.text.Reset()

	if n := len(d.spans); n > 0 && d.spans[n-1].sameStyle(span) {
		d.spans[n-1].Text += span.Text
		return
	}
	d.spans = append(d.spans, span)
}

func (d *spanDecoder) Input(r rune) {
	d.text.WriteRune(r)
}

func (d *spanDecoder) LineFeed() {
	d.text.WriteByte('\n')
}

func (d *spanDecoder) CarriageReturn() {
	d.text.WriteByte('\r')
}

func (d *spanDecoder) Tab(n int) {
	for i := 0; i < n; i++ {
		d.text.WriteByte('\t')
	}
}

func (d *spanDecoder) ResetState() {
	d.flush()
	d.style = Span{}
}

// SetTerminalCharAttribute applies one SGR attribute to the running style.
func (d *spanDecoder) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	d.flush()

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		d.style = Span{}

	case ansicode.CharAttributeBold:
		d.style.Attrs |= AttrBold

	case ansicode.CharAttributeDim:
		d.style.Attrs |= AttrDim

	case ansicode.CharAttributeItalic:
		d.style.Attrs |= AttrItalic

	case ansicode.CharAttributeUnderline, ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline, ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		d.style.Attrs |= AttrUnderline

	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		d.style.Attrs |= AttrBlink

	case ansicode.CharAttributeReverse:
		d.style.Attrs |= AttrInverse

	case ansicode.CharAttributeHidden:
		d.style.Attrs |= AttrHidden

	case ansicode.CharAttributeStrike:
		d.style.Attrs |= AttrStrike

	case ansicode.CharAttributeCancelBold:
		d.style.Attrs &^= AttrBold

	case ansicode.CharAttributeCancelBoldDim:
		d.style.Attrs &^= AttrBold | AttrDim

	case ansicode.CharAttributeCancelItalic:
		d.style.Attrs &^= AttrItalic

	case ansicode.CharAttributeCancelUnderline:
		d.style.Attrs &^= AttrUnderline

	case ansicode.CharAttributeCancelBlink:
		d.style.Attrs &^= AttrBlink

	case ansicode.CharAttributeCancelReverse:
		d.style.Attrs &^= AttrInverse

	case ansicode.CharAttributeCancelHidden:
		d.style.Attrs &^= AttrHidden

	case ansicode.CharAttributeCancelStrike:
		d.style.Attrs &^= AttrStrike

	case ansicode.CharAttributeForeground:
		d.style.Fg = attributeColor(attr)

	case ansicode.CharAttributeBackground:
		d.style.Bg = attributeColor(attr)
	}
}

// attributeColor resolves the color of an attribute; nil means the terminal default.
func attributeColor(attr ansicode.TerminalCharAttribute) Color {
	if attr.RGBColor != nil {
		return RGB{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B}
	}

	if attr.IndexedColor != nil {
		return Ansi256{Code: int(attr.IndexedColor.Index)}
	}

	if attr.NamedColor != nil {
		switch name := int(*attr.NamedColor); {
		case name >= 0 && name < 8:
			return Ansi16{Code: 30 + name}
		case name >= 8 && name < 16:
			return Ansi16{Code: 90 + name - 8}
		}
	}

	return nil
}

// The remaining handlers are not part of styled text.

func (d *spanDecoder) ApplicationCommandReceived(data []byte) {}
func (d *spanDecoder) Backspace() {}
func (d *spanDecoder) Bell() {}
func (d *spanDecoder) ClearLine(mode ansicode.LineClearMode) {}
func (d *spanDecoder) ClearScreen(mode ansicode.ClearMode) {}
func (d *spanDecoder) ClearTabs(mode ansicode.TabulationClearMode) {}
func (d *spanDecoder) ClipboardLoad(clipboard byte, terminator string) {}
func (d *spanDecoder) ClipboardStore(clipboard byte, data []byte) {}
func (d *spanDecoder) ConfigureCharset(index ansicode.CharsetIndex, cs ansicode.Charset) {}
func (d *spanDecoder) Decaln() {}
func (d *spanDecoder) DeleteChars(n int) {}
func (d *spanDecoder) DeleteLines(n int) {}
func (d *spanDecoder) DeviceStatus(n int) {}
func (d *spanDecoder) EraseChars(n int) {}
func (d *spanDecoder) Goto(row, col int) {}
func (d *spanDecoder) GotoCol(col int) {}
func (d *spanDecoder) GotoLine(row int) {}
func (d *spanDecoder) HorizontalTabSet() {}
func (d *spanDecoder) IdentifyTerminal(b byte) {}
func (d *spanDecoder) InsertBlank(n int) {}
func (d *spanDecoder) InsertBlankLines(n int) {}
func (d *spanDecoder) MoveBackward(n int) {}
func (d *spanDecoder) MoveBackwardTabs(n int) {}
func (d *spanDecoder) MoveDown(n int) {}
func (d *spanDecoder) MoveDownCr(n int) {}
func (d *spanDecoder) MoveForward(n int) {}
func (d *spanDecoder) MoveForwardTabs(n int) {}
func (d *spanDecoder) MoveUp(n int) {}
func (d *spanDecoder) MoveUpCr(n int) {}
func (d *spanDecoder) PopKeyboardMode(n int) {}
func (d *spanDecoder) PopTitle() {}
func (d *spanDecoder) PrivacyMessageReceived(data []byte) {}
func (d *spanDecoder) PushKeyboardMode(mode ansicode.KeyboardMode) {}
func (d *spanDecoder) PushTitle() {}
func (d *spanDecoder) ReportKeyboardMode() {}
func (d *spanDecoder) ReportModifyOtherKeys() {}
func (d *spanDecoder) ResetColor(i int) {}
func (d *spanDecoder) RestoreCursorPosition() {}
func (d *spanDecoder) ReverseIndex() {}
func (d *spanDecoder) SaveCursorPosition() {}
func (d *spanDecoder) ScrollDown(n int) {}
func (d *spanDecoder) ScrollUp(n int) {}
func (d *spanDecoder) SetActiveCharset(n int) {}
func (d *spanDecoder) SetColor(index int, c color.Color) {}
func (d *spanDecoder) SetCursorStyle(style ansicode.CursorStyle) {}
func (d *spanDecoder) SetDynamicColor(prefix string, index int, terminator string) {}
func (d *spanDecoder) SetHyperlink(hyperlink *ansicode.Hyperlink) {}
func (d *spanDecoder) SetKeypadApplicationMode() {}
func (d *spanDecoder) SetMode(mode ansicode.TerminalMode) {}
func (d *spanDecoder) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (d *spanDecoder) SetScrollingRegion(top, bottom int) {}
func (d *spanDecoder) SetTitle(title string) {}
func (d *spanDecoder) StartOfStringReceived(data []byte) {}
func (d *spanDecoder) Substitute() {}
func (d *spanDecoder) TextAreaSizeChars() {}
func (d *spanDecoder) TextAreaSizePixels() {}
func (d *spanDecoder) UnsetKeypadApplicationMode() {}
func (d *spanDecoder) UnsetMode(mode ansicode.TerminalMode) {}
func (d *spanDecoder) SetWorkingDirectory(uri string) {}
func (d *spanDecoder) CellSizePixels() {}
func (d *spanDecoder) SixelReceived(params [][]uint16, data []byte) {}

func (d *spanDecoder) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
