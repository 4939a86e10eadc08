package rational

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n; GCD(m, 0) is |m|
// and GCD(0, 0) is 0. The result is never negative unless it is the minimum
// value of T, which has no positive counterpart.
func GCD[T constraints.Integer](m, n T) T {
	// plain Euclid; normalization calls this on uint64 magnitudes, where it
	// stays within a few ns/op for the 63-bit inputs we care about
	for n != 0 {
		m, n = n, m%n
	}
	if m < 0 {
		m = -m
	}
	return m
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
//
// The sign of d follows the last nonzero remainder, so it may be negative
// when m or n is.
func ExtGCD[T constraints.Signed](m, n T) (a, b, d T) {
	if n == 0 {
		return 1, 0, m
	}
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 T
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c = d
		d = r
		t := a0
		a0 = a
		a = t - q*a
		t = b0
		b0 = b
		b = t - q*b
	}
}
