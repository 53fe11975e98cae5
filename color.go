package termtext

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color in one of the supported spaces, convertible to every other space.
// Conversions may be lossy. Every Color also satisfies image/color.Color.
type Color interface {
	color.Color

	RGB() RGB
	HSV() HSV
	Ansi16() Ansi16
	Ansi256() Ansi256

	// Alpha returns the opacity in [0, 1]; spaces without an alpha channel report 1.
	Alpha() float64
}

var (
	_ Color = RGB{}
	_ Color = HSV{}
	_ Color = Ansi16{}
	_ Color = Ansi256{}
)

// RGB is a 24-bit color with optional opacity.
type RGB struct {
	R, G, B uint8

	alpha    float64
	hasAlpha bool
}

// NewRGB validates components in [0, 255].
func NewRGB(r, g, b int) (RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: rgb component %d not in [0, 255]", ErrOutOfRange, v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// NewRGBA validates components in [0, 255] and alpha in [0, 1].
func NewRGBA(r, g, b int, alpha float64) (RGB, error) {
	c, err := NewRGB(r, g, b)
	if err != nil {
		return RGB{}, err
	}
	if err := checkAlpha(alpha); err != nil {
		return RGB{}, err
	}
	c.alpha, c.hasAlpha = alpha, true
	return c, nil
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// FromColor converts any image/color.Color to RGB, keeping non-opaque alpha.
func FromColor(c color.Color) RGB {
	if v, ok := c.(Color); ok {
		return v.RGB()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := RGB{R: n.R, G: n.G, B: n.B}
	if n.A != 0xff {
		out.alpha, out.hasAlpha = float64(n.A)/0xff, true
	}
	return out
}

func checkAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return fmt.Errorf("%w: alpha %v not in [0, 1]", ErrOutOfRange, alpha)
	}
	return nil
}

// Alpha returns the opacity, 1 unless set by NewRGBA or FromColor.
func (c RGB) Alpha() float64 {
	if c.hasAlpha {
		return c.alpha
	}
	return 1
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c RGB) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.Alpha() * 0xffff))
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// RGB returns c.
func (c RGB) RGB() RGB {
	return c
}

// HSV converts with the min/max/delta hue formula; all components are rounded.
func (c RGB) HSV() HSV {
	h, s, v := c.hsv()
	hue := int(math.Round(h))
	if hue == 360 {
		hue = 0
	}
	out := HSV{H: hue, S: int(math.Round(s)), V: int(math.Round(v))}
	out.alpha, out.hasAlpha = c.alpha, c.hasAlpha
	return out
}

// hsv returns unrounded hue in degrees and saturation/value in percent.
func (c RGB) hsv() (h, s, v float64) {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	hi := max(r, g, b)
	lo := min(r, g, b)
	delta := hi - lo

	switch {
	case delta == 0:
		h = 0
	case hi == r:
		h = (g - b) / delta
	case hi == g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h = min(h*60, 360)
	if h < 0 {
		h += 360
	}

	if hi != 0 {
		s = delta / hi * 100
	}
	v = hi / 255 * 100
	return h, s, v
}

// Ansi16 maps the color onto the 16 basic codes.
// The brightness is round(v/50) of the unrounded HSV value: 0 yields black (30),
// 2 (v >= 75) adds the bright offset 60.
func (c RGB) Ansi16() Ansi16 {
	_, _, v := c.hsv()
	return rgbToAnsi16(c, math.Round(v/50))
}

func rgbToAnsi16(c RGB, value float64) Ansi16 {
	if value == 0 {
		return Ansi16{Code: 30}
	}
	bit := func(x uint8) int {
		return int(math.Round(float64(x) / 255))
	}
	code := 30 + (bit(c.B)<<2 | bit(c.G)<<1 | bit(c.R))
	if value >= 2 {
		code += 60
	}
	return Ansi16{Code: code}
}

// Ansi256 maps grays onto the 232-255 ramp and everything else onto the 6x6x6 cube.
func (c RGB) Ansi256() Ansi256 {
	if c.R == c.G && c.G == c.B {
		switch {
		case c.R < 8:
			return Ansi256{Code: 16}
		case c.R > 248:
			return Ansi256{Code: 231}
		default:
			return Ansi256{Code: int(math.Round(float64(c.R-8)/247*24)) + 232}
		}
	}
	level := func(x uint8) int {
		return int(math.Round(float64(x) / 255 * 5))
	}
	return Ansi256{Code: 16 + 36*level(c.R) + 6*level(c.G) + level(c.B)}
}

// HSV is a hue/saturation/value color with h in [0, 360] and s, v in [0, 100].
type HSV struct {
	H, S, V int

	alpha    float64
	hasAlpha bool
}

// NewHSV validates h in [0, 360] and s, v in [0, 100].
func NewHSV(h, s, v int) (HSV, error) {
	if h < 0 || h > 360 {
		return HSV{}, fmt.Errorf("%w: hue %d not in [0, 360]", ErrOutOfRange, h)
	}
	if s < 0 || s > 100 {
		return HSV{}, fmt.Errorf("%w: saturation %d not in [0, 100]", ErrOutOfRange, s)
	}
	if v < 0 || v > 100 {
		return HSV{}, fmt.Errorf("%w: value %d not in [0, 100]", ErrOutOfRange, v)
	}
	return HSV{H: h, S: s, V: v}, nil
}

// NewHSVA is NewHSV with an opacity in [0, 1].
func NewHSVA(h, s, v int, alpha float64) (HSV, error) {
	c, err := NewHSV(h, s, v)
	if err != nil {
		return HSV{}, err
	}
	if err := checkAlpha(alpha); err != nil {
		return HSV{}, err
	}
	c.alpha, c.hasAlpha = alpha, true
	return c, nil
}

// Alpha returns the opacity, 1 unless set by NewHSVA or inherited from RGB.
func (c HSV) Alpha() float64 {
	if c.hasAlpha {
		return c.alpha
	}
	return 1
}

// RGBA implements color.Color.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGB converts by hue sector: hi = floor(h/60) mod 6 with fractional part f.
func (c HSV) RGB() RGB {
	h := float64(c.H) / 60
	s := float64(c.S) / 100
	v := float64(c.V) / 100

	hi := int(math.Floor(h)) % 6
	f := h - math.Floor(h)
	p := 255 * v * (1 - s)
	q := 255 * v * (1 - s*f)
	t := 255 * v * (1 - s*(1-f))
	v *= 255

	var r, g, b float64
	switch hi {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	out := RGB{R: roundByte(r), G: roundByte(g), B: roundByte(b)}
	out.alpha, out.hasAlpha = c.alpha, c.hasAlpha
	return out
}

// HSV returns c.
func (c HSV) HSV() HSV {
	return c
}

// Ansi16 uses the HSV value directly as brightness.
func (c HSV) Ansi16() Ansi16 {
	return rgbToAnsi16(c.RGB(), math.Round(float64(c.V)/50))
}

// Ansi256 converts through RGB.
func (c HSV) Ansi256() Ansi256 {
	return c.RGB().Ansi256()
}

// Ansi16 is one of the 16 basic SGR color codes: 30-37 and 90-97 for
// foregrounds, 40-47 and 100-107 for backgrounds.
type Ansi16 struct {
	Code int
}

// NewAnsi16 validates code against the four 8-code families.
func NewAnsi16(code int) (Ansi16, error) {
	switch {
	case code >= 30 && code <= 37, code >= 40 && code <= 47,
		code >= 90 && code <= 97, code >= 100 && code <= 107:
		return Ansi16{Code: code}, nil
	}
	return Ansi16{}, fmt.Errorf("%w: ansi16 code %d", ErrOutOfRange, code)
}

// foreground returns the foreground form of a background code.
func (c Ansi16) foreground() int {
	if (c.Code >= 40 && c.Code <= 47) || (c.Code >= 100 && c.Code <= 107) {
		return c.Code - 10
	}
	return c.Code
}

// Alpha returns 1.
func (Ansi16) Alpha() float64 {
	return 1
}

// RGBA implements color.Color.
func (c Ansi16) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGB expands the code. Black and white variants map onto a gray scale of
// (n + 3.5 if bright) / 10.5; other colors use 127.5 or 255 per set bit.
func (c Ansi16) RGB() RGB {
	code := c.foreground()
	n := code % 10
	bright := code > 50

	if n == 0 || n == 7 {
		gray := float64(n)
		if bright {
			gray += 3.5
		}
		v := roundByte(gray / 10.5 * 255)
		return RGB{R: v, G: v, B: v}
	}

	mul := 0.5
	if bright {
		mul = 1
	}
	return RGB{
		R: roundByte(float64(n&1) * mul * 255),
		G: roundByte(float64(n>>1&1) * mul * 255),
		B: roundByte(float64(n>>2&1) * mul * 255),
	}
}

// HSV converts through RGB.
func (c Ansi16) HSV() HSV {
	return c.RGB().HSV()
}

// Ansi16 returns c.
func (c Ansi16) Ansi16() Ansi16 {
	return c
}

// Ansi256 maps 30-37 to 0-7 and 90-97 to 8-15.
func (c Ansi16) Ansi256() Ansi256 {
	code := c.foreground()
	if code >= 90 {
		return Ansi256{Code: code - 90 + 8}
	}
	return Ansi256{Code: code - 30}
}

// Ansi256 is an xterm 256-color palette index: 0-15 basic colors, 16-231 the
// 6x6x6 cube, 232-255 the gray ramp.
type Ansi256 struct {
	Code int
}

// NewAnsi256 validates code in [0, 255].
func NewAnsi256(code int) (Ansi256, error) {
	if code < 0 || code > 255 {
		return Ansi256{}, fmt.Errorf("%w: ansi256 code %d not in [0, 255]", ErrOutOfRange, code)
	}
	return Ansi256{Code: code}, nil
}

// Alpha returns 1.
func (Ansi256) Alpha() float64 {
	return 1
}

// RGBA implements color.Color.
func (c Ansi256) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGB inverts the palette layout: gray ramp level 8 + 10*step, cube levels
// multiples of 51, basic colors through Ansi16.
func (c Ansi256) RGB() RGB {
	switch {
	case c.Code < 16:
		return c.Ansi16().RGB()
	case c.Code >= 232:
		v := roundByte(float64((c.Code-232)*10 + 8))
		return RGB{R: v, G: v, B: v}
	}
	n := c.Code - 16
	return RGB{
		R: roundByte(float64(n/36) / 5 * 255),
		G: roundByte(float64(n%36/6) / 5 * 255),
		B: roundByte(float64(n%6) / 5 * 255),
	}
}

// HSV converts through RGB.
func (c Ansi256) HSV() HSV {
	return c.RGB().HSV()
}

// Ansi16 maps 0-15 directly and everything else through RGB.
func (c Ansi256) Ansi16() Ansi16 {
	switch {
	case c.Code >= 0 && c.Code < 8:
		return Ansi16{Code: 30 + c.Code}
	case c.Code >= 8 && c.Code < 16:
		return Ansi16{Code: 90 + c.Code - 8}
	}
	return c.RGB().Ansi16()
}

// Ansi256 returns c.
func (c Ansi256) Ansi256() Ansi256 {
	return c
}

func roundByte(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}
