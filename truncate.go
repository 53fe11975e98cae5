package termtext

import (
	"fmt"
	"strings"
	"unicode"
)

// TruncationStrategy selects which part of a text survives truncation.
type TruncationStrategy int

const (
	// TruncateStart keeps the tail and prefixes the marker.
	TruncateStart TruncationStrategy = iota
	// TruncateMiddle keeps both ends and puts the marker in between.
	TruncateMiddle
	// TruncateEnd keeps the head and suffixes the marker.
	TruncateEnd
)

var strategyNames = [...]string{"start", "middle", "end"}

// String returns the lower-case strategy name.
func (s TruncationStrategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("TruncationStrategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseTruncationStrategy parses "start", "middle" or "end" (case-insensitive).
func ParseTruncationStrategy(name string) (TruncationStrategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return TruncationStrategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown truncation strategy %q", ErrOutOfRange, name)
}

// Truncate shortens text to at most maxLength code points using strategy and marker.
// Text already within maxLength is returned unchanged. When marker is longer than
// maxLength, the result is the marker alone.
func Truncate(text string, maxLength int, strategy TruncationStrategy, marker string) (string, error) {
	if maxLength <= 0 {
		return "", fmt.Errorf("%w: maxLength must be positive, got %d", ErrInvalidChunkSize, maxLength)
	}

	runes := []rune(text)
	if len(runes) <= maxLength {
		return text, nil
	}

	budget := max(maxLength-len([]rune(marker)), 0)

	switch strategy {
	case TruncateStart:
		return marker + string(runes[len(runes)-budget:]), nil
	case TruncateMiddle:
		left := (budget + 1) / 2
		right := budget / 2
		return string(runes[:left]) + marker + string(runes[len(runes)-right:]), nil
	case TruncateEnd:
		return string(runes[:budget]) + marker, nil
	default:
		return "", fmt.Errorf("%w: unknown truncation strategy %d", ErrOutOfRange, int(strategy))
	}
}

// Truncate shortens text to at most maxLength code points using the Ruler's marker.
func (r *Ruler) Truncate(text string, maxLength int, strategy TruncationStrategy) (string, error) {
	return Truncate(text, maxLength, strategy, r.marker)
}

// TruncateColumns shortens text to at most maxColumns columns using strategy and the Ruler's marker.
// Wide characters are never split: one straddling a cut is dropped, so the result
// may be narrower than maxColumns. Only a marker wider than maxColumns exceeds it.
func (r *Ruler) TruncateColumns(text string, maxColumns int, strategy TruncationStrategy) (string, error) {
	if maxColumns <= 0 {
		return "", fmt.Errorf("%w: maxColumns must be positive, got %d", ErrInvalidChunkSize, maxColumns)
	}
	if r.Columns(text) <= maxColumns {
		return text, nil
	}

	budget := max(maxColumns-r.Columns(r.marker), 0)

	switch strategy {
	case TruncateStart:
		return r.marker + r.fittingSuffix(text, budget), nil
	case TruncateMiddle:
		head, err := r.TakeColumns(text, (budget+1)/2)
		if err != nil {
			return "", err
		}
		return head + r.marker + r.fittingSuffix(text, budget/2), nil
	case TruncateEnd:
		head, err := r.TakeColumns(text, budget)
		if err != nil {
			return "", err
		}
		return head + r.marker, nil
	default:
		return "", fmt.Errorf("%w: unknown truncation strategy %d", ErrOutOfRange, int(strategy))
	}
}

// TruncateBy removes count code points of whitespace from text (see TruncateTo).
func TruncateBy(text string, count, minWhitespaceLength int) string {
	return TruncateTo(text, len([]rune(text))-count, minWhitespaceLength)
}

// TruncateTo shortens text towards maxLength code points by removing whitespace only.
//
// Trailing whitespace goes first. After that the longest run of more than
// minWhitespaceLength whitespace characters (the last one on ties) has its first
// two characters replaced by a single space, until maxLength is reached or no such
// run is left. With minWhitespaceLength 0 single spaces qualify too, and the
// character following them is consumed.
func TruncateTo(text string, maxLength, minWhitespaceLength int) string {
	runes := []rune(text)
	if minWhitespaceLength < 0 {
		minWhitespaceLength = 0
	}

	for len(runes) > maxLength {
		difference := len(runes) - maxLength

		if trailing := trailingWhitespace(runes); trailing > 0 {
			runes = runes[:len(runes)-min(trailing, difference)]
			continue
		}

		start, ok := longestWhitespaceRun(runes, minWhitespaceLength+1)
		if !ok {
			break
		}
		end := min(start+2, len(runes))
		collapsed := make([]rune, 0, len(runes)-1)
		collapsed = append(collapsed, runes[:start]...)
		collapsed = append(collapsed, ' ')
		collapsed = append(collapsed, runes[end:]...)
		runes = collapsed
	}
	return string(runes)
}

func trailingWhitespace(runes []rune) int {
	n := 0
	for i := len(runes) - 1; i >= 0 && unicode.IsSpace(runes[i]); i-- {
		n++
	}
	return n
}

// longestWhitespaceRun returns the start of the longest whitespace run of at least minLength,
// preferring the last one among equally long runs.
func longestWhitespaceRun(runes []rune, minLength int) (int, bool) {
	bestStart, bestLength := -1, 0
	for i := 0; i < len(runes); {
		if !unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if length := i - start; length >= minLength && length >= bestLength {
			bestStart, bestLength = start, length
		}
	}
	return bestStart, bestStart >= 0
}
