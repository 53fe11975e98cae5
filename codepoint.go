package termtext

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// CodePoint is a single Unicode scalar value.
// Any int32 may be wrapped; the predicates describe whatever value is stored.
type CodePoint rune

const (
	// MaxCodePoint is the largest Unicode scalar value.
	MaxCodePoint CodePoint = 0x10FFFF

	// ZeroWidthJoiner is U+200D, which always binds its neighbours into one cluster.
	ZeroWidthJoiner CodePoint = 0x200D

	// ReplacementCharacter is U+FFFD, emitted for values that cannot be encoded.
	ReplacementCharacter CodePoint = 0xFFFD
)

// Surrogate and plane boundaries.
const (
	minHighSurrogate = 0xD800
	maxHighSurrogate = 0xDBFF
	minLowSurrogate  = 0xDC00
	maxLowSurrogate  = 0xDFFF

	minPrivateUseBMP = 0xE000
	maxPrivateUseBMP = 0xF8FF
)

// ParseCodePoint decodes text that must consist of exactly one UTF-8 encoded scalar.
func ParseCodePoint(text string) (CodePoint, error) {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidCodePoint, text)
	}
	if size != len(text) {
		return 0, fmt.Errorf("%w: %q holds more than one code point", ErrInvalidCodePoint, text)
	}
	return CodePoint(r), nil
}

// DecodeCodePoint is ParseCodePoint over raw bytes.
func DecodeCodePoint(b []byte) (CodePoint, error) {
	r, size := utf8.DecodeRune(b)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("%w: % x is not valid UTF-8", ErrInvalidCodePoint, b)
	}
	if size != len(b) {
		return 0, fmt.Errorf("%w: % x holds more than one code point", ErrInvalidCodePoint, b)
	}
	return CodePoint(r), nil
}

// CodePoints yields the code points of text in order.
// Invalid UTF-8 bytes are yielded as ReplacementCharacter, one per byte.
func CodePoints(text string) iter.Seq[CodePoint] {
	return func(yield func(CodePoint) bool) {
		for _, r := range text {
			if !yield(CodePoint(r)) {
				return
			}
		}
	}
}

// RandomCodePoint returns a uniformly chosen usable code point (see IsUsable).
func RandomCodePoint(r *rand.Rand) CodePoint {
	for {
		c := CodePoint(r.Int32N(int32(MaxCodePoint) + 1))
		if c.IsUsable() {
			return c
		}
	}
}

// Rune returns the value as a Go rune.
func (c CodePoint) Rune() rune {
	return rune(c)
}

// String returns the UTF-8 string form; invalid values render as U+FFFD.
func (c CodePoint) String() string {
	return string(c.UTF8())
}

// UTF8 encodes the code point into 1-4 bytes.
// Surrogates and out-of-range values encode as U+FFFD.
func (c CodePoint) UTF8() []byte {
	return utf8.AppendRune(nil, rune(c))
}

// Char returns the single UTF-16 unit projection.
// ok is false when the value needs a surrogate pair or is not a valid scalar.
func (c CodePoint) Char() (unit uint16, ok bool) {
	if c < 0 || c > 0xFFFF {
		return 0, false
	}
	return uint16(c), true
}

// UTF16 returns the UTF-16 units of the code point.
func (c CodePoint) UTF16() []uint16 {
	if unit, ok := c.Char(); ok {
		return []uint16{unit}
	}
	if !c.IsValid() {
		return []uint16{uint16(ReplacementCharacter)}
	}
	hi, lo := utf16.EncodeRune(rune(c))
	return []uint16{uint16(hi), uint16(lo)}
}

// Len returns the number of UTF-8 bytes UTF8 produces.
func (c CodePoint) Len() int {
	if n := utf8.RuneLen(rune(c)); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// IsValid reports whether the value lies in [0, MaxCodePoint].
func (c CodePoint) IsValid() bool {
	return c >= 0 && c <= MaxCodePoint
}

// IsHighSurrogate reports whether c is in U+D800..U+DBFF.
func (c CodePoint) IsHighSurrogate() bool {
	return c >= minHighSurrogate && c <= maxHighSurrogate
}

// IsLowSurrogate reports whether c is in U+DC00..U+DFFF.
func (c CodePoint) IsLowSurrogate() bool {
	return c >= minLowSurrogate && c <= maxLowSurrogate
}

// IsSurrogate reports whether c is a high or low surrogate.
func (c CodePoint) IsSurrogate() bool {
	return c >= minHighSurrogate && c <= maxLowSurrogate
}

// Plane returns the Unicode plane (0-16), or -1 for invalid values.
func (c CodePoint) Plane() int {
	if !c.IsValid() {
		return -1
	}
	return int(c >> 16)
}

// IsDefinedPlane reports whether c belongs to a plane with assigned blocks
// (BMP, SMP, SIP, TIP or SSP).
func (c CodePoint) IsDefinedPlane() bool {
	switch c.Plane() {
	case 0, 1, 2, 3, 14:
		return true
	}
	return false
}

// IsPrivateUse reports whether c is in the BMP private use area or planes 15-16.
func (c CodePoint) IsPrivateUse() bool {
	if c >= minPrivateUseBMP && c <= maxPrivateUseBMP {
		return true
	}
	p := c.Plane()
	return p == 15 || p == 16
}

// IsUsable reports whether c is in a defined plane and is neither private use nor a surrogate.
func (c CodePoint) IsUsable() bool {
	return c.IsDefinedPlane() && !c.IsPrivateUse() && !c.IsSurrogate()
}

// IsControl reports whether c is a C0 or C1 control character.
func (c CodePoint) IsControl() bool {
	return (c >= 0 && c < 0x20) || (c >= 0x7F && c <= 0x9F)
}

// IsZeroWidthJoiner reports whether c is U+200D.
func (c CodePoint) IsZeroWidthJoiner() bool {
	return c == ZeroWidthJoiner
}

// IsWhitespace reports whether the UTF-16 projection is whitespace.
// Values outside the BMP answer false.
func (c CodePoint) IsWhitespace() bool {
	unit, ok := c.Char()
	return ok && unicode.IsSpace(rune(unit))
}

// IsUpperCase reports whether the UTF-16 projection is an upper case letter.
// Values outside the BMP answer false.
func (c CodePoint) IsUpperCase() bool {
	unit, ok := c.Char()
	return ok && unicode.IsUpper(rune(unit))
}

// IsLowerCase reports whether the UTF-16 projection is a lower case letter.
// Values outside the BMP answer false.
func (c CodePoint) IsLowerCase() bool {
	unit, ok := c.Char()
	return ok && unicode.IsLower(rune(unit))
}

// IsLetter reports whether c is a letter in any plane.
func (c CodePoint) IsLetter() bool {
	return unicode.IsLetter(rune(c))
}

// IsDigit reports whether c is a decimal digit in any plane.
func (c CodePoint) IsDigit() bool {
	return unicode.IsDigit(rune(c))
}
