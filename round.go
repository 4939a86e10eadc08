package rational

import "fmt"

// RoundingMode determines how a Rational is rounded to an integer.
// The names follow math/big.RoundingMode.
type RoundingMode byte

// These constants define supported rounding modes.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	ToZero                            // == IEEE 754-2008 roundTowardZero
	AwayFromZero                      // no IEEE 754-2008 equivalent
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

func (mode RoundingMode) String() string {
	switch mode {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNearestAway:
		return "ToNearestAway"
	case ToZero:
		return "ToZero"
	case AwayFromZero:
		return "AwayFromZero"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToPositiveInf:
		return "ToPositiveInf"
	}
	return fmt.Sprintf("RoundingMode(%d)", byte(mode))
}

// Round returns x rounded to the nearest integer, with ties rounded away from
// zero. It is shorthand for x.RoundMode(ToNearestAway); note that this is not
// the same tie rule as ToNearestEven, which rounds 5/2 to 2 rather than 3.
// Round panics if x is NaN or infinite.
func (x Rational[T]) Round() T {
	return x.RoundMode(ToNearestAway)
}

// RoundMode returns x rounded to an integer according to mode.
// RoundMode panics if x is NaN or infinite, or if mode is not valid.
func (x Rational[T]) RoundMode(mode RoundingMode) T {
	v, err := x.TryRoundMode(mode)
	if err != nil {
		panic(err)
	}
	return v
}

// TryRoundMode returns x rounded to an integer according to mode.
// TryRoundMode returns ErrNotFinite if x is NaN or infinite and
// ErrRoundingMode if mode is not one of the defined constants.
//
// The result always fits in T: rounding only moves away from the truncated
// quotient when the denominator is at least 2, which halves its magnitude.
func (x Rational[T]) TryRoundMode(mode RoundingMode) (T, error) {
	if mode > ToPositiveInf {
		return 0, ErrRoundingMode
	}
	if !x.IsFinite() {
		return 0, ErrNotFinite
	}
	m, n := x.Num(), x.Den()
	q, r := m/n, m%n
	if r == 0 {
		return q, nil
	}

	// r has the sign of m, so moving away from zero means stepping q by the
	// sign of r
	var away bool
	switch mode {
	case AwayFromZero:
		away = true
	case ToNegativeInf:
		away = r < 0
	case ToPositiveInf:
		away = r > 0
	case ToNearestEven, ToNearestAway:
		// compare |r| against n/2 without dividing; |r| < n <= MaxInt64 so
		// doubling it cannot overflow uint64
		switch half := 2 * uabs(r); {
		case half > uint64(n):
			away = true
		case half == uint64(n):
			away = mode == ToNearestAway || q%2 != 0
		}
	}
	if away {
		if r > 0 {
			q++
		} else {
			q--
		}
	}
	return q, nil
}

// Mixed splits x into its whole part, truncated toward zero, and the
// fractional remainder, such that x == whole + frac and |frac| < 1.
// The remainder has the same sign as x, or is zero.
// Mixed panics if x is NaN or infinite.
func (x Rational[T]) Mixed() (whole T, frac Rational[T]) {
	whole, frac, err := x.TryMixed()
	if err != nil {
		panic(err)
	}
	return whole, frac
}

// TryMixed is like Mixed but returns ErrNotFinite instead of panicking.
func (x Rational[T]) TryMixed() (whole T, frac Rational[T], err error) {
	if !x.IsFinite() {
		return 0, Rational[T]{}, ErrNotFinite
	}
	m, n := x.Num(), x.Den()
	// GCD(m - q*n, n) == GCD(m, n) == 1, so the remainder over n is already
	// in lowest terms; a zero remainder implies n == 1 and thus x.n == 0.
	return m / n, Rational[T]{m % n, x.n}, nil
}
