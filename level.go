package termtext

import (
	"fmt"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// SupportLevel is a terminal's color capability tier. Levels are ordered.
type SupportLevel int

const (
	// LevelNone renders no escape sequences at all.
	LevelNone SupportLevel = iota
	// LevelAnsi16 renders every color as one of the 16 basic codes (4-bit).
	LevelAnsi16
	// LevelAnsi256 renders colors from the 256-color palette (8-bit).
	LevelAnsi256
	// LevelTrueColor renders 24-bit RGB colors.
	LevelTrueColor
)

var levelNames = [...]string{"none", "ansi16", "ansi256", "truecolor"}

// String returns the lower-case level name.
func (l SupportLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("SupportLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseSupportLevel accepts the level names as well as "4bit", "8bit", "24bit" and "16", "256".
func ParseSupportLevel(name string) (SupportLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off", "ascii", "0":
		return LevelNone, nil
	case "ansi16", "ansi", "4bit", "16":
		return LevelAnsi16, nil
	case "ansi256", "8bit", "256":
		return LevelAnsi256, nil
	case "truecolor", "24bit", "rgb":
		return LevelTrueColor, nil
	}
	return LevelNone, fmt.Errorf("%w: unknown support level %q", ErrOutOfRange, name)
}

// levelFromProfile maps a termenv color profile onto a SupportLevel.
func levelFromProfile(p termenv.Profile) SupportLevel {
	switch p {
	case termenv.TrueColor:
		return LevelTrueColor
	case termenv.ANSI256:
		return LevelAnsi256
	case termenv.ANSI:
		return LevelAnsi16
	default:
		return LevelNone
	}
}

var detectedLevel = sync.OnceValue(func() SupportLevel {
	return levelFromProfile(termenv.EnvColorProfile())
})

// DetectSupportLevel returns the color support of the process environment
// (TERM, COLORTERM, NO_COLOR, CLICOLOR_FORCE). It is computed once per process.
func DetectSupportLevel() SupportLevel {
	return detectedLevel()
}
