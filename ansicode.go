package termtext

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// ESC starts every escape sequence.
	ESC = "\x1b"
	// CSI is the control sequence introducer.
	CSI = ESC + "["
)

// EscapePattern matches any CSI sequence: ESC '[' parameter bytes (0x30-0x3F),
// intermediate bytes (0x20-0x2F) and a final byte (0x40-0x7E).
var EscapePattern = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// sgrPattern matches SGR sequences and captures their numeric parameters.
var sgrPattern = regexp.MustCompile(`\x1b\[((?:\d{1,3};?)+)m`)

// StripEscapes removes every CSI sequence from text.
func StripEscapes(text string) string {
	if !strings.Contains(text, ESC) {
		return text
	}
	return EscapePattern.ReplaceAllString(text, "")
}

// IsStyled reports whether text contains any CSI sequence.
func IsStyled(text string) bool {
	return strings.Contains(text, ESC) && EscapePattern.MatchString(text)
}

// codePair is one style span: the SGR parameters that open it and the one that closes it.
type codePair struct {
	open  []int
	close int
}

// AnsiCode is an immutable list of (open codes, close code) pairs that formats
// text by wrapping it in SGR sequences.
//
// The zero value is EmptyCode, which formats text unchanged and is the identity
// of Combine. DisabledCode renders nothing and absorbs every code it is combined with.
type AnsiCode struct {
	pairs    []codePair
	disabled bool
}

var (
	// EmptyCode has no pairs.
	EmptyCode = AnsiCode{}
	// DisabledCode is the code of support level none.
	DisabledCode = AnsiCode{disabled: true}
)

// NewAnsiCode creates a code with a single pair.
func NewAnsiCode(open []int, close int) AnsiCode {
	return AnsiCode{pairs: []codePair{{open: append([]int(nil), open...), close: close}}}
}

// IsDisabled reports whether the code renders nothing.
func (c AnsiCode) IsDisabled() bool {
	return c.disabled
}

// IsEmpty reports whether the code has no pairs.
func (c AnsiCode) IsEmpty() bool {
	return !c.disabled && len(c.pairs) == 0
}

// OpenCodes returns the flattened open parameters of all pairs.
func (c AnsiCode) OpenCodes() []int {
	if c.disabled {
		return nil
	}
	var codes []int
	for _, p := range c.pairs {
		codes = append(codes, p.open...)
	}
	return codes
}

// CloseCodes returns the close parameter of every pair.
func (c AnsiCode) CloseCodes() []int {
	if c.disabled {
		return nil
	}
	codes := make([]int, 0, len(c.pairs))
	for _, p := range c.pairs {
		codes = append(codes, p.close)
	}
	return codes
}

// Open returns the sequence that starts the style.
func (c AnsiCode) Open() string {
	return tag(c.OpenCodes())
}

// Close returns the sequence that ends the style.
func (c AnsiCode) Close() string {
	return tag(c.CloseCodes())
}

// Combine returns a code applying c's pairs followed by others' pairs.
func (c AnsiCode) Combine(others ...AnsiCode) AnsiCode {
	if c.disabled {
		return DisabledCode
	}
	pairs := append([]codePair(nil), c.pairs...)
	for _, o := range others {
		if o.disabled {
			return DisabledCode
		}
		pairs = append(pairs, o.pairs...)
	}
	return AnsiCode{pairs: pairs}
}

// Format wraps text in the code's open and close sequences.
//
// Wherever text already contains one of this code's close parameters, the
// parameter is replaced by the matching open parameters, so nested styles do
// not end the outer style early. A close parameter in a sequence that ends
// the text is dropped instead. Pairs sharing a close parameter are all reopened.
// The arguments of extended colors (38;5;n, 48;2;r;g;b) are left untouched.
func (c AnsiCode) Format(text string) string {
	if text == "" {
		return ""
	}
	if c.disabled || len(c.pairs) == 0 {
		return text
	}
	return c.Open() + c.reopen(text) + c.Close()
}

// reopen substitutes this code's close parameters inside every SGR sequence of text.
func (c AnsiCode) reopen(text string) string {
	matches := sgrPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	openByClose := make(map[int][]int, len(c.pairs))
	for _, p := range c.pairs {
		openByClose[p.close] = append(openByClose[p.close], p.open...)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		atEnd := m[1] == len(text)

		params := sgrParams(text[m[2]:m[3]])
		codes := make([]int, 0, len(params))
		for i := 0; i < len(params); i++ {
			n := params[i]
			if k := colorArgs(params[i:]); k > 0 {
				codes = append(codes, params[i:i+k+1]...)
				i += k
				continue
			}
			open, ok := openByClose[n]
			switch {
			case ok && atEnd:
			case ok:
				codes = append(codes, open...)
			default:
				codes = append(codes, n)
			}
		}

		sb.WriteString(text[last:m[0]])
		sb.WriteString(tag(codes))
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// sgrParams parses the ';' separated parameters of an SGR sequence, dropping
// the ones that are not integers.
func sgrParams(s string) []int {
	var params []int
	for _, param := range strings.Split(s, ";") {
		n, err := strconv.Atoi(param)
		if err != nil {
			continue
		}
		params = append(params, n)
	}
	return params
}

// colorArgs returns how many arguments follow an extended color selector
// (38, 48 or 58 followed by 5;n or 2;r;g;b) at the start of params, or 0.
// The arguments are color components, never close codes.
func colorArgs(params []int) int {
	if len(params) < 2 {
		return 0
	}
	switch params[0] {
	case 38, 48, 58:
	default:
		return 0
	}
	switch params[1] {
	case 5:
		return min(2, len(params)-1)
	case 2:
		return min(4, len(params)-1)
	}
	return 0
}

// String returns the open sequence, so a code can be printed in place.
func (c AnsiCode) String() string {
	return c.Open()
}

// tag renders codes as one SGR sequence, or "" when there are none.
func tag(codes []int) string {
	if len(codes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(CSI)
	for i, code := range codes {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(code))
	}
	sb.WriteByte('m')
	return sb.String()
}

// ColorCode is an AnsiCode for a foreground color that can also be applied as a background.
type ColorCode struct {
	AnsiCode
	bg AnsiCode
}

var disabledColor = ColorCode{AnsiCode: DisabledCode, bg: DisabledCode}

// Background returns the background form of the color.
func (c ColorCode) Background() AnsiCode {
	return c.bg
}

// OnBackground combines this foreground with the background form of bg.
func (c ColorCode) OnBackground(bg ColorCode) AnsiCode {
	return c.AnsiCode.Combine(bg.bg)
}

// ansi16Code builds a code for a 16-color code; backgrounds sit 10 above foregrounds.
func ansi16Code(c Ansi16) ColorCode {
	fg := c.foreground()
	return ColorCode{
		AnsiCode: NewAnsiCode([]int{fg}, 39),
		bg:       NewAnsiCode([]int{fg + 10}, 49),
	}
}

func ansi256Code(c Ansi256) ColorCode {
	return ColorCode{
		AnsiCode: NewAnsiCode([]int{38, 5, c.Code}, 39),
		bg:       NewAnsiCode([]int{48, 5, c.Code}, 49),
	}
}

func rgbCode(c RGB) ColorCode {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return ColorCode{
		AnsiCode: NewAnsiCode([]int{38, 2, r, g, b}, 39),
		bg:       NewAnsiCode([]int{48, 2, r, g, b}, 49),
	}
}
