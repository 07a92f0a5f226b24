// Package mathx provides small numeric helpers shared by the layout
// engines and caches: clamping ratios and percentages into their
// specified legal ranges (spec.md §8 invariants).
package mathx

// Clamp restricts v to [lo, hi].
func Clamp[T int | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T int | float32 | float64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
