package geom

import "github.com/arl/math32"

// Span is a 1-D interval [Min, Max].
type Span struct {
	Min, Max float32
}

// NewSpan returns the span [min, max].
func NewSpan(min, max float32) Span {
	return Span{Min: min, Max: max}
}

// EmptySpan returns the canonical empty span.
func EmptySpan() Span {
	return Span{}
}

// IsEmpty reports whether the span contains no points.
func (s Span) IsEmpty() bool {
	return s.Min >= s.Max
}

// Intersect returns the overlap of s and other, or the empty span if they
// don't overlap.
func (s Span) Intersect(other Span) Span {
	if s.IsEmpty() || other.IsEmpty() {
		return EmptySpan()
	}
	return NewSpan(math32.Max(s.Min, other.Min), math32.Min(s.Max, other.Max))
}
