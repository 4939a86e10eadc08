// Package rational provides fixed-width rational numbers that behave like
// IEEE-754 floating-point values at the boundaries: division by zero yields a
// signed infinity and indeterminate forms yield NaN.
// See the Rational type and the Try function for details.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrOverflow     = errors.New("integer overflow")
	ErrNumOverflow  = fmt.Errorf("numerator: %w", ErrOverflow)
	ErrDenOverflow  = fmt.Errorf("denominator: %w", ErrOverflow)
	ErrNotFinite    = errors.New("value is not finite")
	ErrRoundingMode = errors.New("invalid rounding mode")
)

// Rational is a rational number whose numerator and denominator are both of
// the signed integer type T.
//
// The numerator carries the sign and the denominator is positive for finite
// values. Neither ever holds the minimum value of T, so every finite value
// can be negated. Internally, the denominator is biased by 1, which means the
// zero value is equivalent to 0/1 and thus valid and equal to 0.
//
// A zero denominator encodes the special values:
//
//	 0/0  NaN
//	 1/0  +Inf
//	-1/0  -Inf
//
// Any other numerator over zero is collapsed onto the infinity of the same
// sign, so 42/0 and 1/0 are the same value.
//
// Rational has proper value semantics and its values can be freely copied.
// The == operator compares encodings; use Equal for IEEE-style comparison,
// under which NaN is not equal to itself.
type Rational[T constraints.Signed] struct {
	m T
	n T
}

// Ratio is a Rational over the platform int.
type Ratio = Rational[int]

// Try creates a new rational number with the given numerator and denominator,
// reduced to lowest terms with the sign moved onto the numerator.
// A zero denominator yields NaN or an infinity depending on the sign of num.
// Try returns an error wrapping ErrOverflow if the reduced numerator or
// denominator would be the minimum value of T.
func Try[T constraints.Signed](num, den T) (Rational[T], error) {
	return norm[T]((num < 0) != (den < 0), uabs(num), uabs(den))
}

// New is like Try but panics if the result would overflow.
func New[T constraints.Signed](num, den T) Rational[T] {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// NaN returns the not-a-number value, 0/0.
func NaN[T constraints.Signed]() Rational[T] {
	return Rational[T]{0, -1}
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T constraints.Signed](sign int) Rational[T] {
	if sign < 0 {
		return Rational[T]{-1, -1}
	}
	return Rational[T]{1, -1}
}

// Num returns the numerator of x.
func (x Rational[T]) Num() T {
	return x.m
}

// Den returns the denominator of x, which is 0 for NaN and infinities.
func (x Rational[T]) Den() T {
	return x.n + 1
}

// IsNaN returns true if x is NaN.
func (x Rational[T]) IsNaN() bool {
	return x.n == -1 && x.m == 0
}

// IsInf returns true if x is positive or negative infinity.
func (x Rational[T]) IsInf() bool {
	return x.n == -1 && x.m != 0
}

// IsFinite returns true if x is neither NaN nor infinite.
func (x Rational[T]) IsFinite() bool {
	return x.n != -1
}

// IsZero returns true if x is equal to 0.
func (x Rational[T]) IsZero() bool {
	return x.m == 0 && x.n != -1
}

// IsInt returns true if x is a finite integer.
func (x Rational[T]) IsInt() bool {
	return x.n == 0
}

// IsCanonical returns true if x is in canonical form.
// Values that are not canonical do not arise under normal circumstances, but
// may occur if a value is constructed or manipulated using unsafe operations.
// NaN is canonical, since 0/0 is its only encoding.
func (x Rational[T]) IsCanonical() bool {
	limit := maxMag[T]()
	switch {
	case x.n == -1:
		return x.m >= -1 && x.m <= 1
	case x.n < 0 || uint64(x.n) >= limit:
		return false
	case x.m == 0:
		return x.n == 0
	case uabs(x.m) > limit:
		return false
	}
	return GCD(uabs(x.m), uint64(x.n)+1) == 1
}

// Sign is the sign of a rational number, as reported by Rational.Sign.
type Sign int8

// Zero is Plus, because there is no negative zero. NaN has NoSign.
const (
	Plus Sign = iota
	Minus
	NoSign
)

func (s Sign) String() string {
	switch s {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case NoSign:
		return "none"
	}
	return fmt.Sprintf("Sign(%d)", int8(s))
}

// Sign returns Minus if x is negative (including -Inf), NoSign if x is NaN,
// and Plus otherwise.
func (x Rational[T]) Sign() Sign {
	switch {
	case x.m < 0:
		return Minus
	case x.IsNaN():
		return NoSign
	}
	return Plus
}

// Neg returns the negation of x, -x.
func (x Rational[T]) Neg() Rational[T] {
	return Rational[T]{-x.m, x.n}
}

// Abs returns the absolute value of x, |x|.
func (x Rational[T]) Abs() Rational[T] {
	if x.m < 0 {
		return Rational[T]{-x.m, x.n}
	}
	return x
}

// Inv returns the inverse of x, 1/x.
// The inverse of 0 is +Inf, the inverse of either infinity is 0, and the
// inverse of NaN is NaN.
func (x Rational[T]) Inv() Rational[T] {
	switch {
	case x.IsNaN():
		return x
	case x.IsInf():
		return Rational[T]{}
	case x.m == 0:
		return Inf[T](1)
	case x.m < 0:
		return Rational[T]{-x.Den(), -x.m - 1}
	}
	return Rational[T]{x.Den(), x.m - 1}
}

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and a non-nil error if the result would overflow.
//
// Infinities of the same sign add to themselves, infinities of opposite signs
// add to NaN, and NaN plus anything is NaN.
func (x Rational[T]) TryAdd(y Rational[T]) (Rational[T], error) {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN[T](), nil
	case x.IsInf() && y.IsInf():
		if x.m != y.m {
			return NaN[T](), nil
		}
		return x, nil
	case x.IsInf():
		return x, nil
	case y.IsInf():
		return y, nil
	case x.m == 0:
		return y, nil
	case y.m == 0:
		return x, nil
	}

	mx, nx := int64(x.Num()), int64(x.Den())
	my, ny := int64(y.Num()), int64(y.Den())

	// Use naive arithmetic if we can.
	if abs64(mx) < math.MaxInt32 && abs64(my) < math.MaxInt32 && nx < math.MaxInt32 && ny < math.MaxInt32 {
		// Overflow analysis:
		//
		// Define len(x) as the number of bits used to represent abs(x); the
		// sign always takes up 1 bit in int64 regardless of the operands.
		//
		// The if statement guarantees len <= 31 for all four operands, so
		// len(mx*ny) <= 62 and len(my*nx) <= 62, and their sum takes at most
		// 63 bits. Likewise len(nx*ny) <= 62. Neither term can overflow int64;
		// whether the reduced result fits in T is left to norm.
		num := mx*ny + my*nx
		return norm[T](num < 0, uabs(num), uint64(nx*ny))
	}

	// The intermediate values might overflow int64, so go through big.Rat
	// instead. The result is exact, so an error here means the reduced sum
	// really does not fit in T.
	return FromBigRat[T](new(big.Rat).Add(x.BigRat(), y.BigRat()))
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x Rational[T]) Add(y Rational[T]) Rational[T] {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and a non-nil error if the result would overflow.
func (x Rational[T]) TrySub(y Rational[T]) (Rational[T], error) {
	return x.TryAdd(y.Neg())
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y) == x.Add(y.Neg())
func (x Rational[T]) Sub(y Rational[T]) Rational[T] {
	return x.Add(y.Neg())
}

// TryMul multiplies x and y and returns the result.
// TryMul returns 0 and a non-nil error if the result would overflow.
//
// An infinity times a nonzero value is an infinity with the product of the
// signs, an infinity times 0 is NaN, and NaN times anything is NaN.
func (x Rational[T]) TryMul(y Rational[T]) (Rational[T], error) {
	switch {
	case x.IsNaN() || y.IsNaN():
		return NaN[T](), nil
	case x.IsInf() || y.IsInf():
		sgn := x.sgn() * y.sgn()
		if sgn == 0 {
			return NaN[T](), nil
		}
		return Inf[T](sgn), nil
	case x.m == 0 || y.m == 0:
		return Rational[T]{}, nil
	}

	// We can ignore the operand signs now that we know the result sign, so we
	// work only with absolute values for simplicity.
	neg := (x.m < 0) != (y.m < 0)
	mx, nx := uabs(x.m), uint64(x.Den())
	my, ny := uabs(y.m), uint64(y.Den())

	// Next, we reduce the fractions by their cross-GCDs to avoid overflow.
	// Even though x and y are already reduced, their product may introduce
	// factors from each that aren't present in the other.
	// Since the result is going to be (mx*my)/(nx*ny), we can divide out
	// GCD(mx, ny) and GCD(my, nx) without changing the value. What is left
	// is already in lowest terms, so any overflow below is genuine.
	if d := GCD(mx, ny); d != 1 {
		mx, ny = mx/d, ny/d
	}
	if d := GCD(my, nx); d != 1 {
		my, nx = my/d, nx/d
	}

	mh, ml := bits.Mul64(mx, my)
	if mh != 0 {
		return Rational[T]{}, ErrNumOverflow
	}
	nh, nl := bits.Mul64(nx, ny)
	if nh != 0 {
		return Rational[T]{}, ErrDenOverflow
	}
	return norm[T](neg, ml, nl)
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x Rational[T]) Mul(y Rational[T]) Rational[T] {
	z, err := x.TryMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and a non-nil error if the result would overflow.
//
// Dividing a nonzero value by 0 yields an infinity with the sign of x, while
// 0/0 and Inf/Inf yield NaN.
func (x Rational[T]) TryDiv(y Rational[T]) (Rational[T], error) {
	return x.TryMul(y.Inv())
}

// Div divides x by y and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y) == x.Mul(y.Inv())
func (x Rational[T]) Div(y Rational[T]) Rational[T] {
	return x.Mul(y.Inv())
}

// String returns a string representation of x: "m/n", or just "m" when the
// denominator is 1, or one of "nan", "inf" and "-inf".
func (x Rational[T]) String() string {
	switch {
	case x.IsNaN():
		return "nan"
	case x.IsInf():
		if x.m < 0 {
			return "-inf"
		}
		return "inf"
	case x.n == 0:
		return fmt.Sprintf("%d", x.Num())
	}
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// norm builds the canonical value of ±num/den with the sign given by neg.
// Working on unsigned magnitudes lets the minimum value of T reduce without
// ever being negated.
func norm[T constraints.Signed](neg bool, num, den uint64) (Rational[T], error) {
	if den == 0 {
		switch {
		case num == 0:
			return NaN[T](), nil
		case neg:
			return Inf[T](-1), nil
		}
		return Inf[T](1), nil
	}
	if num == 0 {
		return Rational[T]{}, nil
	}
	if d := GCD(num, den); d != 1 {
		num, den = num/d, den/d
	}
	limit := maxMag[T]()
	if num > limit {
		return Rational[T]{}, ErrNumOverflow
	}
	if den > limit {
		return Rational[T]{}, ErrDenOverflow
	}
	m := T(num)
	if neg {
		m = -m
	}
	return Rational[T]{m, T(den) - 1}, nil
}

// sgn returns -1 if x < 0, 0 if x is 0 or NaN, and 1 if x > 0.
func (x Rational[T]) sgn() int {
	if x.m == 0 {
		return 0
	}
	if x.m < 0 {
		return -1
	}
	return 1
}

// width returns the size of T in bits.
func width[T constraints.Signed]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// maxMag returns the maximum value of T as a magnitude.
func maxMag[T constraints.Signed]() uint64 {
	return uint64(1)<<(width[T]()-1) - 1
}

// uabs returns the absolute value of x, which always fits in uint64.
func uabs[T constraints.Signed](x T) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
