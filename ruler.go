package termtext

import (
	"fmt"
	"iter"
	"math"
)

const (
	// DefaultMarker is appended, prepended or inserted by truncation.
	DefaultMarker = "…"
	// DefaultColumnPadding is the number of spaces between columns laid out by FormatColumns.
	DefaultColumnPadding = 5
)

// Ruler measures and cuts text in column space.
// It is immutable after construction and safe for concurrent use when its TextWidth is.
type Ruler struct {
	width   TextWidth
	marker  string
	padding int

	level    SupportLevel
	levelSet bool
	palette  *Palette
}

// Option configures a Ruler during construction.
type Option func(*Ruler)

// WithWidth sets the width oracle. If nil, CellWidth is used.
func WithWidth(w TextWidth) Option {
	return func(r *Ruler) {
		if w != nil {
			r.width = w
		}
	}
}

// WithMarker sets the truncation marker used by the Ruler's truncation helpers.
func WithMarker(marker string) Option {
	return func(r *Ruler) {
		r.marker = marker
	}
}

// WithColumnPadding sets the spaces between columns in FormatColumns and AddColumn.
// Negative values are replaced with 0.
func WithColumnPadding(padding int) Option {
	if padding < 0 {
		padding = 0
	}

	return func(r *Ruler) {
		r.padding = padding
	}
}

// WithLevel pins the color support level of the Ruler's Palette.
// Without it, the detected process-wide level is used.
func WithLevel(level SupportLevel) Option {
	return func(r *Ruler) {
		r.level = level
		r.levelSet = true
	}
}

// New creates a Ruler with the given options.
// Defaults to CellWidth, DefaultMarker and DefaultColumnPadding.
func New(opts ...Option) *Ruler {
	r := &Ruler{
		width:   CellWidth{},
		marker:  DefaultMarker,
		padding: DefaultColumnPadding,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.levelSet {
		r.palette = NewPalette(r.level)
	} else {
		r.palette = DefaultPalette()
		r.level = r.palette.Level()
	}

	return r
}

// Width returns the Ruler's width oracle.
func (r *Ruler) Width() TextWidth {
	return r.width
}

// Marker returns the truncation marker.
func (r *Ruler) Marker() string {
	return r.marker
}

// Padding returns the inter-column padding.
func (r *Ruler) Padding() int {
	return r.padding
}

// Palette returns the styling palette for the Ruler's support level.
func (r *Ruler) Palette() *Palette {
	return r.palette
}

// Columns returns the number of monospace cells text occupies, rounded to the nearest integer.
func (r *Ruler) Columns(text string) int {
	if text == "" {
		return 0
	}
	x := r.width.XWidth()
	if x <= 0 {
		x = 1
	}
	return int(math.Round(float64(r.width.Width(text)) / float64(x)))
}

// VisibleColumns returns the columns of text after removing escape sequences.
func (r *Ruler) VisibleColumns(text string) int {
	return r.Columns(StripEscapes(text))
}

// FindIndexByColumns returns the code point index at which column starts.
// Characters spanning several columns are never split: the index of the widest
// prefix fitting in column is returned, including trailing zero-width characters.
// A column equal to the text's width returns its length.
func (r *Ruler) FindIndexByColumns(text string, column int) (int, error) {
	runes := []rune(text)
	return r.findIndex(runes, r.Columns(text), column)
}

func (r *Ruler) findIndex(runes []rune, total, column int) (int, error) {
	if column < 0 {
		return 0, fmt.Errorf("%w: negative column %d", ErrColumnResolution, column)
	}
	if column == total {
		return len(runes), nil
	}
	if column > total {
		return 0, fmt.Errorf("%w: column %d beyond width %d", ErrColumnResolution, column, total)
	}

	index := 0
	for i := 1; i <= len(runes); i++ {
		if r.Columns(string(runes[:i])) > column {
			break
		}
		index = i
	}
	return index, nil
}

// SubSequenceByColumns returns the text between the start and end columns.
// Bounds that cannot be resolved are reported, never clamped.
func (r *Ruler) SubSequenceByColumns(text string, start, end int) (string, error) {
	runes := []rune(text)
	total := r.Columns(text)

	from, err := r.findIndex(runes, total, start)
	if err != nil {
		return "", err
	}
	to, err := r.findIndex(runes, total, end)
	if err != nil {
		return "", err
	}
	if from > to {
		return "", fmt.Errorf("%w: start column %d after end column %d", ErrColumnResolution, start, end)
	}
	return string(runes[from:to]), nil
}

// TakeColumns returns the longest prefix occupying at most n columns.
func (r *Ruler) TakeColumns(text string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative column count %d", ErrInvalidChunkSize, n)
	}
	total := r.Columns(text)
	return r.SubSequenceByColumns(text, 0, min(n, total))
}

// DropColumns returns text without its first n columns.
func (r *Ruler) DropColumns(text string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative column count %d", ErrInvalidChunkSize, n)
	}
	total := r.Columns(text)
	return r.SubSequenceByColumns(text, min(n, total), total)
}

// TakeLastColumns returns the suffix made of the last n columns.
func (r *Ruler) TakeLastColumns(text string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative column count %d", ErrInvalidChunkSize, n)
	}
	total := r.Columns(text)
	return r.SubSequenceByColumns(text, total-min(n, total), total)
}

// DropLastColumns returns text without its last n columns.
func (r *Ruler) DropLastColumns(text string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative column count %d", ErrInvalidChunkSize, n)
	}
	total := r.Columns(text)
	return r.SubSequenceByColumns(text, 0, total-min(n, total))
}

// fittingSuffix returns the longest suffix of text occupying at most n columns.
// Unlike TakeLastColumns, a wide glyph straddling the bound is left out.
func (r *Ruler) fittingSuffix(text string, n int) string {
	runes := []rune(text)
	for i := range runes {
		if r.Columns(string(runes[i:])) <= n {
			return string(runes[i:])
		}
	}
	return ""
}

// ChunkedByColumns lazily splits text into chunks of at most columns columns.
// A character wider than columns becomes a chunk of its own.
func (r *Ruler) ChunkedByColumns(text string, columns int) (iter.Seq[string], error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidChunkSize, columns)
	}

	return func(yield func(string) bool) {
		rest := []rune(text)
		for len(rest) > 0 {
			chunk, err := r.TakeColumns(string(rest), columns)
			if err != nil {
				return
			}
			n := len([]rune(chunk))
			if n == 0 {
				n = 1
			}
			if !yield(string(rest[:n])) {
				return
			}
			rest = rest[n:]
		}
	}, nil
}

// Chunks is ChunkedByColumns collected into a slice.
func (r *Ruler) Chunks(text string, columns int) ([]string, error) {
	seq, err := r.ChunkedByColumns(text, columns)
	if err != nil {
		return nil, err
	}

	var chunks []string
	for chunk := range seq {
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
