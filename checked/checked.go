// Package checked provides integer arithmetic that reports overflow instead
// of wrapping.
package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Add returns a+b. ok is false when the mathematical sum is not
// representable in T; the value is then 0.
func Add[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// Sub returns a-b. ok is false when the mathematical difference is not
// representable in T; the value is then 0.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

// Mul returns a*b. ok is false when the mathematical product is not
// representable in T; the value is then 0. Overflow is decided before the
// multiply with a bound division, one case per sign combination, so the
// product itself never wraps. This is the check to reach for when sizing
// untrusted count*elementSize allocations.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	min, max := bounds[T]()
	switch {
	case a > 0 && b > 0:
		if a > max/b {
			return 0, false
		}
	case a < 0 && b < 0:
		if a < max/b {
			return 0, false
		}
	case a > 0 && b < 0:
		if b < min/a {
			return 0, false
		}
	default: // a < 0 && b > 0
		if a < min/b {
			return 0, false
		}
	}
	return a * b, true
}

// bounds returns the smallest and largest values representable in T,
// derived from the bit pattern so one implementation serves every width and
// signedness.
func bounds[T constraints.Integer]() (min, max T) {
	allOnes := ^T(0)
	if allOnes > 0 {
		return 0, allOnes
	}
	shift := 8*unsafe.Sizeof(allOnes) - 1
	min = allOnes << shift
	max = ^min
	return min, max
}
