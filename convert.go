package rational

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// FromInt returns v as a rational number, v/1.
// FromInt panics if v is the minimum value of T, which has no negation.
func FromInt[T constraints.Signed](v T) Rational[T] {
	return New(v, 1)
}

// FromIntegerExactly converts an integer of any type to a Rational[T].
// It returns false if v is out of range for T, which includes the minimum
// value of T.
func FromIntegerExactly[T constraints.Signed, I constraints.Integer](v I) (Rational[T], bool) {
	neg := v < 0
	var mag uint64
	if neg {
		mag = uabs(int64(v))
	} else {
		mag = uint64(v)
	}
	if mag > maxMag[T]() {
		return Rational[T]{}, false
	}
	m := T(mag)
	if neg {
		m = -m
	}
	return Rational[T]{m, 0}, true
}

// FromInteger is like FromIntegerExactly but saturates to an infinity of the
// same sign when v is out of range for T.
func FromInteger[T constraints.Signed, I constraints.Integer](v I) Rational[T] {
	if x, ok := FromIntegerExactly[T](v); ok {
		return x
	}
	if v < 0 {
		return Inf[T](-1)
	}
	return Inf[T](1)
}

// Integer returns x truncated toward zero, as an integer of type I.
// Integer panics with ErrNotFinite if x is NaN or infinite and with
// ErrNumOverflow if the truncated value is out of range for I.
func Integer[I constraints.Integer, T constraints.Signed](x Rational[T]) I {
	q, err := x.TryRoundMode(ToZero)
	if err != nil {
		panic(err)
	}
	v, ok := convInt[I](q)
	if !ok {
		panic(ErrNumOverflow)
	}
	return v
}

// IntegerExactly returns x as an integer of type I. It returns false if x is
// not an integer (including NaN and infinities) or is out of range for I.
func IntegerExactly[I constraints.Integer, T constraints.Signed](x Rational[T]) (I, bool) {
	if !x.IsInt() {
		return 0, false
	}
	return convInt[I](x.m)
}

// FromFloat64 converts a float64 to the nearest rational number.
// NaN and infinities map to their Rational counterparts. Finite values are
// exact whenever FromFloat64Exactly would succeed; otherwise magnitudes too
// large for T become infinities and fractions whose denominator is too large
// are rounded, ties to even, to the nearest multiple of the smallest power of
// two that T can hold as a denominator.
func FromFloat64[T constraints.Signed](v float64) Rational[T] {
	x, _ := fromFloat[T](v, false)
	return x
}

// FromFloat64Exactly extracts a rational number from a float64. It returns
// false if the result cannot be exactly equal to v, such as when v is a
// subnormal needing a denominator of 2^1074.
func FromFloat64Exactly[T constraints.Signed](v float64) (Rational[T], bool) {
	return fromFloat[T](v, true)
}

// FromFloat32 is like FromFloat64 for float32 values.
func FromFloat32[T constraints.Signed](v float32) Rational[T] {
	return FromFloat64[T](float64(v))
}

// FromFloat32Exactly is like FromFloat64Exactly for float32 values.
func FromFloat32Exactly[T constraints.Signed](v float32) (Rational[T], bool) {
	return FromFloat64Exactly[T](float64(v))
}

// fromFloat converts v, reporting whether the result is exact. If exact is
// true then it gives up as soon as precision would be lost.
func fromFloat[T constraints.Signed](v float64, exact bool) (Rational[T], bool) {
	switch {
	case math.IsNaN(v):
		return NaN[T](), true
	case math.IsInf(v, 0):
		return Inf[T](int(math.Copysign(1, v))), true
	case v == 0:
		return Rational[T]{}, true
	}

	// decompose v such that v = f*2^e with abs(f) in [0.5, 1)
	f, e := math.Frexp(v)

	// convert f to an integer in [2^52, 2^53); m is this integer and
	// neg is its original sign
	neg := f < 0
	if neg {
		f = -f
	}
	m := uint64(f * 0x1p53)
	e -= 53

	// remove trailing zeros from m
	tz := bits.TrailingZeros64(m)
	m >>= tz
	e += tz

	// at this point we have v = m*2^e with m odd; the numerator may use all
	// w value bits of T, but the largest power of two denominator is 2^(w-1)
	w := width[T]() - 1
	lossless := true
	if e < 0 {
		if shift := max(bits.Len64(m)-w, -e-(w-1)); shift > 0 {
			if exact {
				return Rational[T]{}, false
			}
			m, e = roundShift(m, shift), e+shift
			if m == 0 {
				return Rational[T]{}, false
			}
			// rounding may have carried into a power of two
			tz = bits.TrailingZeros64(m)
			m >>= tz
			e += tz
			lossless = false
		}
	}
	if e >= 0 {
		// v is an integer
		if bits.Len64(m)+e > w {
			// v needs more bits than we have
			if exact {
				return Rational[T]{}, false
			}
			if neg {
				return Inf[T](-1), false
			}
			return Inf[T](1), false
		}
		m <<= e
		e = 0
	}

	num := T(m)
	if neg {
		num = -num
	}
	return Rational[T]{num, T(uint64(1)<<-e) - 1}, lossless
}

// roundShift returns m/2^shift rounded to the nearest integer, ties to even.
// m comes from a float64 mantissa, so it is below 2^53.
func roundShift(m uint64, shift int) uint64 {
	if shift >= 64 {
		return 0
	}
	q := m >> shift
	rem := m & (uint64(1)<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && q&1 == 1) {
		q++
	}
	return q
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the quotient m/n computed in
// floating point, which may be off by more than half an ulp when m or n is
// itself not representable. NaN and infinities convert exactly.
func (x Rational[T]) Float64() (v float64, exact bool) {
	switch {
	case x.IsNaN():
		return math.NaN(), true
	case x.IsInf():
		return math.Inf(x.sgn()), true
	}
	return x.float(53)
}

// Float32 is like Float64 but returns a float32. When x is inexact the
// quotient is rounded twice, first to float64 and then to float32.
func (x Rational[T]) Float32() (v float32, exact bool) {
	switch {
	case x.IsNaN():
		return float32(math.NaN()), true
	case x.IsInf():
		return float32(math.Inf(x.sgn())), true
	}
	f, exact := x.float(24)
	return float32(f), exact
}

// float computes m/n in float64 and reports whether it is exact for a
// mantissa of prec bits.
func (x Rational[T]) float(prec int) (float64, bool) {
	m, n := int64(x.Num()), int64(x.Den())

	// check for zero, trivial case
	if m == 0 {
		return 0, true
	}

	// integers are exact as long as their significant bits fit in the
	// mantissa
	u := uabs(m)
	sig := bits.Len64(u) - bits.TrailingZeros64(u)
	if n == 1 {
		return float64(m), sig <= prec
	}

	// non-integers are exact as long as the numerator fits in the mantissa
	// and the denominator is a power of two; n <= 2^62 keeps 1/n normal even
	// for float32
	nIsPow2 := bits.OnesCount64(uint64(n)) == 1
	return float64(m) / float64(n), sig <= prec && nIsPow2
}

// FromBigRat converts a big.Rat to a Rational[T], if it is possible to do so.
func FromBigRat[T constraints.Signed](r *big.Rat) (Rational[T], error) {
	num, den := r.Num(), r.Denom()
	// r is already in lowest terms, so check the bounds in the same order
	// as norm does
	w := width[T]() - 1
	mag := new(big.Int).Abs(num)
	if mag.BitLen() > w {
		return Rational[T]{}, ErrNumOverflow
	} else if den.BitLen() > w {
		return Rational[T]{}, ErrDenOverflow
	}
	return norm[T](num.Sign() < 0, mag.Uint64(), den.Uint64())
}

// BigRat converts x to a new big.Rat. It returns nil if x is NaN or
// infinite, since big.Rat has no such values.
func (x Rational[T]) BigRat() *big.Rat {
	if !x.IsFinite() {
		return nil
	}
	return big.NewRat(int64(x.Num()), int64(x.Den()))
}

// maxDecimalDigits is the number of decimal digits in math.MaxInt64; 10 to
// this power exceeds the largest magnitude of any Rational.
const maxDecimalDigits = 19

// FromDecimal converts a decimal.Decimal to a Rational[T], if it is possible
// to do so. The result is exact; an error wrapping ErrOverflow is returned
// when the reduced fraction does not fit in T.
func FromDecimal[T constraints.Signed](d decimal.Decimal) (Rational[T], error) {
	coef, exp := d.Coefficient(), d.Exponent()
	if coef.Sign() == 0 {
		return Rational[T]{}, nil
	}
	// coef*10^exp is at least 10^exp in magnitude, and its reduced
	// denominator is at least 10^-exp/|coef|; either is out of reach of
	// every T once the power passes maxDecimalDigits
	if exp > maxDecimalDigits {
		return Rational[T]{}, ErrNumOverflow
	}
	if digits := len(new(big.Int).Abs(coef).String()); -int64(exp) > maxDecimalDigits+int64(digits) {
		return Rational[T]{}, ErrDenOverflow
	}
	r := new(big.Rat).SetInt(coef)
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(abs64(int64(exp))), nil))
	if exp >= 0 {
		r.Mul(r, scale)
	} else {
		r.Quo(r, scale)
	}
	return FromBigRat[T](r)
}

// Decimal returns x as a decimal.Decimal with the given number of digits
// after the decimal point. The last digit is rounded to nearest, with ties
// rounded away from zero.
// Decimal panics with ErrNotFinite if x is NaN or infinite.
func (x Rational[T]) Decimal(places int32) decimal.Decimal {
	if !x.IsFinite() {
		panic(ErrNotFinite)
	}
	num := decimal.New(int64(x.Num()), 0)
	den := decimal.New(int64(x.Den()), 0)
	return num.DivRound(den, places)
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// NaN and infinities are rendered as by String.
//
// The following relation holds for all finite values of x and prec >= 0,
// except that big.Rat may render a negative value that rounds to zero as "-0":
//
//	x.DecimalString(prec) == x.BigRat().FloatString(prec)
func (x Rational[T]) DecimalString(prec int) string {
	if !x.IsFinite() {
		return x.String()
	}
	if prec < 0 {
		prec = 0
	}
	return x.Decimal(int32(prec)).StringFixed(int32(prec))
}

// convInt converts v to I, reporting false if the value does not survive the
// round trip or changes sign along the way.
func convInt[I constraints.Integer, T constraints.Signed](v T) (I, bool) {
	i := I(v)
	if T(i) != v || (i < 0) != (v < 0) {
		return 0, false
	}
	return i, true
}
