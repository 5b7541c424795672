package tripwire

import "math"

// Range is an inclusive integer interval.
//
// An inverted range (Min > Max) is legal and contains nothing.
type Range struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return r.Min <= n && n <= r.Max
}

// Between returns the inclusive range [min, max].
func Between(min, max int) Range {
	return Range{Min: min, Max: max}
}

// AtMost returns the range covering every count up to and including max.
// Useful as a "fire from here on" window on a counting-down latch.
func AtMost(max int) Range {
	return Range{Min: math.MinInt, Max: max}
}
