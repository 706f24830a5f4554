package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Lerp blends a and b by t without clamping t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// NearlyEqual reports whether |a-b| <= tolerance.
func NearlyEqual[T constraints.Float](a, b, tolerance T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
