package termtext

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func mustRGB(t *testing.T, r, g, b int) RGB {
	t.Helper()
	c, err := NewRGB(r, g, b)
	if err != nil {
		t.Fatalf("NewRGB(%d, %d, %d) failed: %v", r, g, b, err)
	}
	return c
}

func TestRGBToAnsi16(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    int
	}{
		{255, 0, 0, 91},
		{191, 0, 0, 31},
		{192, 0, 0, 91},
		{0, 0, 0, 30},
		{255, 255, 255, 97},
		{128, 128, 128, 37},
		{0, 255, 0, 92},
		{0, 0, 128, 34},
		{255, 255, 0, 93},
	}

	for _, tt := range tests {
		got := mustRGB(t, tt.r, tt.g, tt.b).Ansi16()
		if got.Code != tt.want {
			t.Errorf("RGB(%d, %d, %d).Ansi16() = %d, want %d", tt.r, tt.g, tt.b, got.Code, tt.want)
		}
	}
}

func TestRGBToAnsi256(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    int
	}{
		{255, 0, 0, 196},
		{0, 0, 0, 16},
		{5, 5, 5, 16},
		{255, 255, 255, 231},
		{250, 250, 250, 231},
		{128, 128, 128, 244},
		{0, 135, 255, 39},
	}

	for _, tt := range tests {
		got := mustRGB(t, tt.r, tt.g, tt.b).Ansi256()
		if got.Code != tt.want {
			t.Errorf("RGB(%d, %d, %d).Ansi256() = %d, want %d", tt.r, tt.g, tt.b, got.Code, tt.want)
		}
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    HSV
	}{
		{255, 0, 0, HSV{H: 0, S: 100, V: 100}},
		{0, 255, 0, HSV{H: 120, S: 100, V: 100}},
		{0, 0, 255, HSV{H: 240, S: 100, V: 100}},
		{255, 255, 0, HSV{H: 60, S: 100, V: 100}},
		{128, 128, 128, HSV{H: 0, S: 0, V: 50}},
		{255, 0, 128, HSV{H: 330, S: 100, V: 100}},
		{0, 0, 0, HSV{}},
	}

	for _, tt := range tests {
		if got := mustRGB(t, tt.r, tt.g, tt.b).HSV(); got != tt.want {
			t.Errorf("RGB(%d, %d, %d).HSV() = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRGBToHSVMatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 85 {
				got := mustRGB(t, r, g, b).HSV()
				h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()

				dh := math.Abs(float64(got.H) - h)
				dh = math.Min(dh, 360-dh)
				if dh > 1 || math.Abs(float64(got.S)-s*100) > 1 || math.Abs(float64(got.V)-v*100) > 1 {
					t.Errorf("RGB(%d, %d, %d).HSV() = %+v, colorful = (%.1f, %.1f, %.1f)", r, g, b, got, h, s*100, v*100)
				}
			}
		}
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v int
		want    RGB
	}{
		{0, 100, 100, RGB{R: 255}},
		{120, 100, 100, RGB{G: 255}},
		{240, 100, 50, RGB{B: 128}},
		{360, 100, 100, RGB{R: 255}},
		{0, 0, 100, RGB{R: 255, G: 255, B: 255}},
		{60, 100, 100, RGB{R: 255, G: 255}},
	}

	for _, tt := range tests {
		c, err := NewHSV(tt.h, tt.s, tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.RGB(); got != tt.want {
			t.Errorf("HSV(%d, %d, %d).RGB() = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestHSVToAnsi16(t *testing.T) {
	c, err := NewHSV(0, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Ansi16().Code; got != 91 {
		t.Errorf("HSV(0, 100, 100).Ansi16() = %d, want 91", got)
	}
	if got := c.Ansi256().Code; got != 196 {
		t.Errorf("HSV(0, 100, 100).Ansi256() = %d, want 196", got)
	}
}

func TestAnsi16ToRGB(t *testing.T) {
	tests := []struct {
		code int
		want RGB
	}{
		{30, RGB{}},
		{31, RGB{R: 128}},
		{91, RGB{R: 255}},
		{37, RGB{R: 170, G: 170, B: 170}},
		{90, RGB{R: 85, G: 85, B: 85}},
		{97, RGB{R: 255, G: 255, B: 255}},
		{41, RGB{R: 128}},
		{106, RGB{G: 255, B: 255}},
	}

	for _, tt := range tests {
		c, err := NewAnsi16(tt.code)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.RGB(); got != tt.want {
			t.Errorf("Ansi16(%d).RGB() = %+v, want %+v", tt.code, got, tt.want)
		}
	}
}

func TestAnsi16ToAnsi256(t *testing.T) {
	tests := []struct {
		code, want int
	}{
		{30, 0},
		{31, 1},
		{97, 15},
		{41, 1},
	}

	for _, tt := range tests {
		if got := (Ansi16{Code: tt.code}).Ansi256().Code; got != tt.want {
			t.Errorf("Ansi16(%d).Ansi256() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestAnsi256ToRGB(t *testing.T) {
	tests := []struct {
		code int
		want RGB
	}{
		{196, RGB{R: 255}},
		{244, RGB{R: 128, G: 128, B: 128}},
		{232, RGB{R: 8, G: 8, B: 8}},
		{39, RGB{G: 153, B: 255}},
		{1, RGB{R: 128}},
		{15, RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		if got := (Ansi256{Code: tt.code}).RGB(); got != tt.want {
			t.Errorf("Ansi256(%d).RGB() = %+v, want %+v", tt.code, got, tt.want)
		}
	}

	if got := (Ansi256{Code: 9}).Ansi16().Code; got != 91 {
		t.Errorf("Ansi256(9).Ansi16() = %d, want 91", got)
	}
	if got := (Ansi256{Code: 196}).Ansi16().Code; got != 91 {
		t.Errorf("Ansi256(196).Ansi16() = %d, want 91", got)
	}
}

func TestRGBAnsi256RoundTripBound(t *testing.T) {
	// One quantization step, in whole channel units.
	cubeStep := math.Ceil(255.0 / 5)
	grayStep := math.Ceil(255.0 / 24)

	check := func(c RGB) {
		back := c.Ansi256().RGB()
		bound := cubeStep
		if c.R == c.G && c.G == c.B {
			bound = grayStep
		}
		for _, d := range [...]int{int(c.R) - int(back.R), int(c.G) - int(back.G), int(c.B) - int(back.B)} {
			if math.Abs(float64(d)) > bound {
				t.Errorf("%s -> Ansi256(%d) -> %s exceeds %.1f", c.Hex(), c.Ansi256().Code, back.Hex(), bound)
				return
			}
		}
	}

	for v := 0; v <= 255; v++ {
		check(RGB{R: uint8(v), G: uint8(v), B: uint8(v)})
	}
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				check(RGB{R: uint8(r), G: uint8(g), B: uint8(b)})
			}
		}
	}
}

func TestColorValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"NewRGB", func() error { _, err := NewRGB(256, 0, 0); return err }()},
		{"NewRGB", func() error { _, err := NewRGB(0, -1, 0); return err }()},
		{"NewRGBA", func() error { _, err := NewRGBA(0, 0, 0, 1.5); return err }()},
		{"NewRGBA", func() error { _, err := NewRGBA(0, 0, 0, math.NaN()); return err }()},
		{"NewHSV", func() error { _, err := NewHSV(361, 0, 0); return err }()},
		{"NewHSV", func() error { _, err := NewHSV(0, 101, 0); return err }()},
		{"NewHSV", func() error { _, err := NewHSV(0, 0, -1); return err }()},
		{"NewHSVA", func() error { _, err := NewHSVA(0, 0, 0, -0.1); return err }()},
		{"NewAnsi16", func() error { _, err := NewAnsi16(38); return err }()},
		{"NewAnsi16", func() error { _, err := NewAnsi16(108); return err }()},
		{"NewAnsi256", func() error { _, err := NewAnsi256(256); return err }()},
		{"ParseHex", func() error { _, err := ParseHex("#zzzzzz"); return err }()},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, ErrOutOfRange) {
			t.Errorf("%s error = %v, want ErrOutOfRange", tt.name, tt.err)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		s    string
		want RGB
	}{
		{"#ff8800", RGB{R: 255, G: 136}},
		{"ff8800", RGB{R: 255, G: 136}},
		{"#f80", RGB{R: 255, G: 136}},
		{"000000", RGB{}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.s)
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tt.s, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.s, got, tt.want)
		}
	}

	if got := (RGB{R: 255, G: 136}).Hex(); got != "#ff8800" {
		t.Errorf("Hex() = %q, want %q", got, "#ff8800")
	}
}

func TestColorAlpha(t *testing.T) {
	c, err := NewHSVA(0, 100, 100, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.RGB().Alpha(); got != 0.5 {
		t.Errorf("HSVA.RGB().Alpha() = %v, want 0.5", got)
	}
	if got := c.RGB().HSV().Alpha(); got != 0.5 {
		t.Errorf("alpha lost in round trip: %v", got)
	}

	if got := (Ansi256{Code: 1}).Alpha(); got != 1 {
		t.Errorf("Ansi256.Alpha() = %v, want 1", got)
	}
	if got := mustRGB(t, 1, 2, 3).Alpha(); got != 1 {
		t.Errorf("RGB.Alpha() = %v, want 1", got)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("FromColor(opaque) = %+v", got)
	}

	half := FromColor(color.NRGBA{R: 255, A: 128})
	if half.R != 255 || math.Abs(half.Alpha()-128.0/255) > 1e-9 {
		t.Errorf("FromColor(translucent) = %+v, alpha %v", half, half.Alpha())
	}

	if got := FromColor(Ansi16{Code: 91}); got != (RGB{R: 255}) {
		t.Errorf("FromColor(Ansi16) = %+v, want red", got)
	}
}

func TestRGBAImplementsImageColor(t *testing.T) {
	r, g, b, a := mustRGB(t, 255, 0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want opaque red", r, g, b, a)
	}

	n := color.NRGBAModel.Convert(Ansi256{Code: 196}).(color.NRGBA)
	if n != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBA of Ansi256(196) = %+v", n)
	}
}
