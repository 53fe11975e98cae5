// Package termtext measures, cuts and styles text for monospace terminals.
//
// The package is organized around two independent halves that meet when
// measured text is colorized:
//
//   - Measurement: [CodePoint], [TextWidth], [Ruler] and [Cluster]
//   - Styling: [Color], [AnsiCode], [ColorCode] and [Palette]
//
// # Quick Start
//
//	r := termtext.New()
//	fmt.Println(r.Columns("Hello 世界"))  // 10
//
//	head, _ := r.TruncateColumns("a rather long line", 10, termtext.TruncateEnd)
//	fmt.Println(head) // "a rather …"
//
//	p := termtext.NewPalette(termtext.LevelAnsi16)
//	fmt.Println(p.Red().Format("error"))  // "\x1b[31merror\x1b[39m"
//
// # Width Units and Columns
//
// Every computation in column space is derived from a single [TextWidth]
// oracle, which reports the rendered width of text in abstract width units and
// the width of one reference monospace character ([TextWidth.XWidth]). Columns
// are width divided by XWidth, rounded to the nearest integer.
//
// Available oracles:
//
//   - [CellWidth]: terminal cells via uniwidth (default)
//   - [RuneWidth]: terminal cells via go-runewidth, with East Asian ambiguous widths
//   - [GraphemeWidth]: terminal cells per grapheme via uniseg
//   - [FontWidth]: pixel advances of a font face (x/image), for renderers that draw text
//
// Select one with [WithWidth]:
//
//	r := termtext.New(termtext.WithWidth(termtext.NewFontWidth(nil)))
//
// # Column Arithmetic
//
// Indexes are code point indexes. [Ruler.FindIndexByColumns] maps a column to
// the index where it starts; wide characters are never split, so columns that
// fall inside one resolve to the index before it. Bounds that cannot be
// resolved (negative, or past the width of the text) are reported as
// [ErrColumnResolution] rather than clamped:
//
//	s, err := r.SubSequenceByColumns("日本語", 2, 6) // "本語"
//
// [Ruler.ChunkedByColumns] splits text lazily into chunks of at most N columns;
// [Ruler.Wrap], [Ruler.AddColumn] and [Ruler.FormatColumns] build rectangular,
// side-by-side blocks from it.
//
// # Grapheme Clusters
//
// [Ruler.Clusters] groups code points by width stability: a code point that
// leaves the measured width unchanged joins the current cluster. Zero width
// joiners bind both neighbours. This is a heuristic, not UAX #29.
//
// # Truncation
//
// [Truncate] and [Ruler.TruncateColumns] shorten text to a length or column
// budget keeping the start, middle or end. [TruncateTo] and [TruncateBy] shorten
// text by collapsing whitespace only, preserving words.
//
// # Colors and Support Levels
//
// [RGB], [HSV], [Ansi16] and [Ansi256] convert into each other (lossily) and
// implement [image/color.Color]. A [Palette] renders them for one
// [SupportLevel]:
//
//   - [LevelNone]: nothing is rendered; formatting returns text unchanged
//   - [LevelAnsi16]: every color is downgraded to the 16 basic codes
//   - [LevelAnsi256]: 16-color codes are kept, others use the 256 palette
//   - [LevelTrueColor]: palette codes are kept, others use 24-bit RGB
//
// [DefaultPalette] uses the level detected from the environment once per process.
//
// # Nested Styles
//
// [AnsiCode.Format] can be applied to text that is already styled. Any close
// parameter of the outer code found inside the text is replaced by the outer
// code's open parameters, so the outer style continues after the inner one:
//
//	red, blue := p.Red(), p.Blue()
//	red.Format("a" + blue.Format("b") + "c")
//	// "\x1b[31ma\x1b[34mb\x1b[31mc\x1b[39m"
//
// Codes combine with [AnsiCode.Combine]; [ColorCode.OnBackground] pairs a
// foreground with a background. [DecodeSpans] reads styled text back into runs
// of equal style.
//
// # Errors
//
// All failures are input validation errors, returned wrapped around one of
// [ErrInvalidCodePoint], [ErrOutOfRange], [ErrColumnResolution] and
// [ErrInvalidChunkSize]; use [errors.Is] to classify them. The package never logs.
package termtext
