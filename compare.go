package rational

import (
	"cmp"
	"math/bits"
)

// Equal returns true if x and y are the same number.
// NaN is not equal to anything, including itself.
func (x Rational[T]) Equal(y Rational[T]) bool {
	return !x.IsNaN() && x.m == y.m && x.n == y.n
}

// Less returns true if x < y. It returns false if either is NaN.
func (x Rational[T]) Less(y Rational[T]) bool {
	return !x.IsNaN() && !y.IsNaN() && x.order(y) < 0
}

// LessEqual returns true if x <= y. It returns false if either is NaN.
func (x Rational[T]) LessEqual(y Rational[T]) bool {
	return !x.IsNaN() && !y.IsNaN() && x.order(y) <= 0
}

// Greater returns true if x > y. It returns false if either is NaN.
func (x Rational[T]) Greater(y Rational[T]) bool {
	return !x.IsNaN() && !y.IsNaN() && x.order(y) > 0
}

// GreaterEqual returns true if x >= y. It returns false if either is NaN.
func (x Rational[T]) GreaterEqual(y Rational[T]) bool {
	return !x.IsNaN() && !y.IsNaN() && x.order(y) >= 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// Like cmp.Compare for floats, Cmp is a total order: NaN is treated as less
// than every other value and equal to itself. This makes Cmp suitable for
// slices.SortFunc, but use Less and friends for IEEE-style comparisons.
func (x Rational[T]) Cmp(y Rational[T]) int {
	xNaN, yNaN := x.IsNaN(), y.IsNaN()
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return 1
	}
	return x.order(y)
}

// order compares two values, neither of which may be NaN.
func (x Rational[T]) order(y Rational[T]) int {
	if x.IsInf() || y.IsInf() {
		return cmp.Compare(x.rank(), y.rank())
	}
	sx, sy := x.sgn(), y.sgn()
	if sx != sy || sx == 0 {
		return cmp.Compare(sx, sy)
	}

	// Both have the same nonzero sign and positive denominators, so compare
	// |mx|*ny against |my|*nx. Each magnitude fits in 63 bits, so the
	// products fit in 128 bits and cannot overflow.
	ah, al := bits.Mul64(uabs(x.m), uint64(y.Den()))
	bh, bl := bits.Mul64(uabs(y.m), uint64(x.Den()))
	c := cmp.Compare(ah, bh)
	if c == 0 {
		c = cmp.Compare(al, bl)
	}
	return c * sx
}

// rank places -Inf, finite values and +Inf in ascending order.
func (x Rational[T]) rank() int {
	if x.IsFinite() {
		return 0
	}
	return x.sgn()
}
