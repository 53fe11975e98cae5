package termtext

import "sync"

// Named 16-color foreground codes.
const (
	CodeBlack         = 30
	CodeRed           = 31
	CodeGreen         = 32
	CodeYellow        = 33
	CodeBlue          = 34
	CodeMagenta       = 35
	CodeCyan          = 36
	CodeWhite         = 37
	CodeGray          = 90
	CodeBrightRed     = 91
	CodeBrightGreen   = 92
	CodeBrightYellow  = 93
	CodeBrightBlue    = 94
	CodeBrightMagenta = 95
	CodeBrightCyan    = 96
	CodeBrightWhite   = 97
)

// Text style (open, close) pairs.
var (
	styleReset         = codePair{open: []int{0}, close: 0}
	styleBold          = codePair{open: []int{1}, close: 22}
	styleDim           = codePair{open: []int{2}, close: 22}
	styleItalic        = codePair{open: []int{3}, close: 23}
	styleUnderline     = codePair{open: []int{4}, close: 24}
	styleInverse       = codePair{open: []int{7}, close: 27}
	styleHidden        = codePair{open: []int{8}, close: 28}
	styleStrikethrough = codePair{open: []int{9}, close: 29}
)

// Palette builds AnsiCodes for one support level.
// Named colors are computed once at construction; a Palette is immutable and safe for concurrent use.
type Palette struct {
	level SupportLevel
	named map[int]ColorCode
}

// NewPalette creates a palette rendering at level.
func NewPalette(level SupportLevel) *Palette {
	p := &Palette{
		level: level,
		named: make(map[int]ColorCode, 16),
	}

	for _, base := range [...]int{30, 90} {
		for i := 0; i < 8; i++ {
			code := base + i
			if level == LevelNone {
				p.named[code] = disabledColor
			} else {
				p.named[code] = ansi16Code(Ansi16{Code: code})
			}
		}
	}

	return p
}

var defaultPalette = sync.OnceValue(func() *Palette {
	return NewPalette(DetectSupportLevel())
})

// DefaultPalette returns the process-wide palette for the detected support level.
// It is built on first use and never changes afterwards.
func DefaultPalette() *Palette {
	return defaultPalette()
}

// Level returns the palette's support level.
func (p *Palette) Level() SupportLevel {
	return p.level
}

func (p *Palette) style(pair codePair) AnsiCode {
	if p.level == LevelNone {
		return DisabledCode
	}
	return NewAnsiCode(pair.open, pair.close)
}

// Reset clears every attribute; its close code is also 0.
func (p *Palette) Reset() AnsiCode { return p.style(styleReset) }

// Bold renders text in bold.
func (p *Palette) Bold() AnsiCode { return p.style(styleBold) }

// Dim renders text with decreased intensity. It shares its close code with Bold.
func (p *Palette) Dim() AnsiCode { return p.style(styleDim) }

// Italic renders text in italics.
func (p *Palette) Italic() AnsiCode { return p.style(styleItalic) }

// Underline underlines text.
func (p *Palette) Underline() AnsiCode { return p.style(styleUnderline) }

// Inverse swaps foreground and background colors.
func (p *Palette) Inverse() AnsiCode { return p.style(styleInverse) }

// Hidden renders text invisible.
func (p *Palette) Hidden() AnsiCode { return p.style(styleHidden) }

// Strikethrough crosses text out.
func (p *Palette) Strikethrough() AnsiCode { return p.style(styleStrikethrough) }

// Black is the 16-color code 30.
func (p *Palette) Black() ColorCode { return p.named[CodeBlack] }

// Red is the 16-color red foreground.
func (p *Palette) Red() ColorCode { return p.named[CodeRed] }

// Green is the 16-color green foreground.
func (p *Palette) Green() ColorCode { return p.named[CodeGreen] }

// Yellow is the 16-color yellow foreground.
func (p *Palette) Yellow() ColorCode { return p.named[CodeYellow] }

// Blue is the 16-color blue foreground.
func (p *Palette) Blue() ColorCode { return p.named[CodeBlue] }

// Magenta is the 16-color magenta foreground.
func (p *Palette) Magenta() ColorCode { return p.named[CodeMagenta] }

// Cyan is the 16-color cyan foreground.
func (p *Palette) Cyan() ColorCode { return p.named[CodeCyan] }

// White is code 37, a light gray on most terminals.
func (p *Palette) White() ColorCode { return p.named[CodeWhite] }

// Gray is bright black, code 90.
func (p *Palette) Gray() ColorCode { return p.named[CodeGray] }

// BrightRed is the bright variant of Red.
func (p *Palette) BrightRed() ColorCode { return p.named[CodeBrightRed] }

// BrightGreen is the bright variant of Green.
func (p *Palette) BrightGreen() ColorCode { return p.named[CodeBrightGreen] }

// BrightYellow is the bright variant of Yellow.
func (p *Palette) BrightYellow() ColorCode { return p.named[CodeBrightYellow] }

// BrightBlue is the bright variant of Blue.
func (p *Palette) BrightBlue() ColorCode { return p.named[CodeBrightBlue] }

// BrightMagenta is the bright variant of Magenta.
func (p *Palette) BrightMagenta() ColorCode { return p.named[CodeBrightMagenta] }

// BrightCyan is the bright variant of Cyan.
func (p *Palette) BrightCyan() ColorCode { return p.named[CodeBrightCyan] }

// BrightWhite is the bright variant of White.
func (p *Palette) BrightWhite() ColorCode { return p.named[CodeBrightWhite] }

// Color selects the code for c according to the support level:
//
//   - none: disabled
//   - ansi16: always downgraded to Ansi16
//   - ansi256: Ansi16 kept, everything else downgraded to Ansi256
//   - truecolor: Ansi16 and Ansi256 kept, everything else as RGB
func (p *Palette) Color(c Color) ColorCode {
	switch p.level {
	case LevelNone:
		return disabledColor
	case LevelAnsi16:
		return ansi16Code(c.Ansi16())
	case LevelAnsi256:
		if v, ok := c.(Ansi16); ok {
			return ansi16Code(v)
		}
		return ansi256Code(c.Ansi256())
	default:
		switch v := c.(type) {
		case Ansi16:
			return ansi16Code(v)
		case Ansi256:
			return ansi256Code(v)
		default:
			return rgbCode(c.RGB())
		}
	}
}

// Hex parses hex and selects its code (see Color).
func (p *Palette) Hex(hex string) (ColorCode, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return ColorCode{}, err
	}
	return p.Color(c), nil
}

// RGB validates the components and selects their code (see Color).
func (p *Palette) RGB(r, g, b int) (ColorCode, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return ColorCode{}, err
	}
	return p.Color(c), nil
}

// HSV validates the components and selects their code (see Color).
func (p *Palette) HSV(h, s, v int) (ColorCode, error) {
	c, err := NewHSV(h, s, v)
	if err != nil {
		return ColorCode{}, err
	}
	return p.Color(c), nil
}

// Color256 validates the palette index and selects its code (see Color).
func (p *Palette) Color256(code int) (ColorCode, error) {
	c, err := NewAnsi256(code)
	if err != nil {
		return ColorCode{}, err
	}
	return p.Color(c), nil
}
