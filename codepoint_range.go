package termtext

import (
	"fmt"
	"iter"
)

// CodePointProgression is an arithmetic progression of code points.
// Last is always a member of the progression when it is not empty.
type CodePointProgression struct {
	First CodePoint
	Last  CodePoint
	Step  int
}

// NewCodePointProgression creates a progression from start towards endInclusive.
// When endInclusive is not reachable by whole steps, Last is moved inward to the
// last reachable value. A zero step returns ErrOutOfRange.
func NewCodePointProgression(start, endInclusive CodePoint, step int) (CodePointProgression, error) {
	if step == 0 {
		return CodePointProgression{}, fmt.Errorf("%w: step must be non-zero", ErrOutOfRange)
	}
	return CodePointProgression{
		First: start,
		Last:  CodePoint(progressionLast(int(start), int(endInclusive), step)),
		Step:  step,
	}, nil
}

// CodePointRange returns the progression start..endInclusive with step 1.
func CodePointRange(start, endInclusive CodePoint) CodePointProgression {
	return CodePointProgression{First: start, Last: endInclusive, Step: 1}
}

// CodePointsUntil returns the half-open progression start..<endExclusive with step 1.
func CodePointsUntil(start, endExclusive CodePoint) CodePointProgression {
	return CodePointProgression{First: start, Last: endExclusive - 1, Step: 1}
}

// CodePointsDownTo returns the progression start downTo end with step -1.
func CodePointsDownTo(start, end CodePoint) CodePointProgression {
	return CodePointProgression{First: start, Last: end, Step: -1}
}

// progressionLast returns the last element reachable from start towards end.
func progressionLast(start, end, step int) int {
	switch {
	case step > 0:
		if start >= end {
			return end
		}
		return end - differenceModulo(end, start, step)
	default:
		if start <= end {
			return end
		}
		return end + differenceModulo(start, end, -step)
	}
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func differenceModulo(a, b, c int) int {
	return mod(mod(a, c)-mod(b, c), c)
}

// IsEmpty reports whether the progression has no elements.
func (p CodePointProgression) IsEmpty() bool {
	if p.Step > 0 {
		return p.First > p.Last
	}
	return p.First < p.Last
}

// Len returns the number of elements.
func (p CodePointProgression) Len() int {
	if p.Step == 0 || p.IsEmpty() {
		return 0
	}
	return (int(p.Last)-int(p.First))/p.Step + 1
}

// Contains reports whether c is one of the progression's elements.
func (p CodePointProgression) Contains(c CodePoint) bool {
	if p.Step == 0 || p.IsEmpty() {
		return false
	}
	lo, hi := p.First, p.Last
	if p.Step < 0 {
		lo, hi = hi, lo
	}
	if c < lo || c > hi {
		return false
	}
	return (int(c)-int(p.First))%p.Step == 0
}

// Reversed returns the same elements in the opposite order.
func (p CodePointProgression) Reversed() CodePointProgression {
	return CodePointProgression{First: p.Last, Last: p.First, Step: -p.Step}
}

// WithStep returns a progression over the same bounds and direction using step.
// step must be positive.
func (p CodePointProgression) WithStep(step int) (CodePointProgression, error) {
	if step <= 0 {
		return CodePointProgression{}, fmt.Errorf("%w: step must be positive, got %d", ErrOutOfRange, step)
	}
	if p.Step < 0 {
		step = -step
	}
	return NewCodePointProgression(p.First, p.Last, step)
}

// All yields the elements lazily.
func (p CodePointProgression) All() iter.Seq[CodePoint] {
	return func(yield func(CodePoint) bool) {
		if p.Step == 0 || p.IsEmpty() {
			return
		}
		for c := p.First; ; c += CodePoint(p.Step) {
			if !yield(c) || c == p.Last {
				return
			}
		}
	}
}

// String renders the progression as "first..last step n".
func (p CodePointProgression) String() string {
	if p.Step > 0 {
		return fmt.Sprintf("%U..%U step %d", p.First, p.Last, p.Step)
	}
	return fmt.Sprintf("%U downTo %U step %d", p.First, p.Last, -p.Step)
}
