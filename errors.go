package termtext

import "errors"

var (
	// ErrInvalidCodePoint is returned when input does not decode to exactly one Unicode scalar.
	ErrInvalidCodePoint = errors.New("termtext: invalid code point")

	// ErrOutOfRange is returned when a color component or range bound violates its documented limits.
	ErrOutOfRange = errors.New("termtext: value out of range")

	// ErrColumnResolution is returned when a column boundary cannot be located in a text.
	ErrColumnResolution = errors.New("termtext: column cannot be resolved")

	// ErrInvalidChunkSize is returned for non-positive chunk, column or length budgets.
	ErrInvalidChunkSize = errors.New("termtext: invalid chunk size")
)
