// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dfloat

import (
	"math/bits"
)

// Exponent and precision limits.
const (
	// scalePow is the number of fractional mantissa digits; a normal
	// mantissa lies in [scale, 10*scale) and represents a number in
	// [1, 10) in units of 1/scale. scale leaves enough uint64
	// headroom for the intermediate carry of an addition, and the
	// product of two mantissas divided by scale fits 64 bits after a
	// 128 bit widening.
	scalePow = 17
	scale    = 100000000000000000
	mantCap  = 10 * scale
	base     = 10

	// MaxPow and MinPow bound the base-10 exponent of a finite
	// Dfloat.
	MaxPow = 100
	MinPow = -100
)

type sign int8

const (
	signNeg  sign = -1
	signZero sign = 0
	signPos  sign = 1
	signNaN  sign = 2
)

// A Dfloat is a decimal floating-point number with 18 significant
// decimal digits: sign * (mant/scale) * 10**pow. Using a base-10
// exponent keeps decimal quantities such as currency exact where a
// binary float would not be.
//
// When sign is zero or NaN, mant and pow are meaningless. A nonzero
// finite value keeps mant in [scale, 10*scale), except for denormals:
// once pow has saturated at MinPow the mantissa is allowed to fall
// below scale, mirroring gradual underflow.
//
// Invalid operations do not return errors: dividing by zero,
// overflowing MaxPow and malformed parse input all produce NaN, which
// then propagates through arithmetic and compares false to everything,
// itself included. The zero value is 0 and ready to use.
type Dfloat struct {
	sign sign
	mant uint64
	pow  int8
}

// NaN returns the not-a-number value.
func NaN() Dfloat {
	return Dfloat{sign: signNaN}
}

// FromInt returns v as a Dfloat.
func FromInt(v int) Dfloat {
	return FromInt64(int64(v))
}

// FromInt64 returns v as a Dfloat.
func FromInt64(v int64) Dfloat {
	if v == 0 {
		return Dfloat{}
	}
	if v > 0 {
		return finite(signPos, uint64(v), scalePow)
	}
	// negating in uint64 is safe for the minimum int64
	return finite(signNeg, -uint64(v), scalePow)
}

// FromUint64 returns v as a Dfloat, truncating past 18 significant
// digits.
func FromUint64(v uint64) Dfloat {
	if v == 0 {
		return Dfloat{}
	}
	return finite(signPos, v, scalePow)
}

// finite renormalizes a raw mantissa into [scale, mantCap) and clamps
// the exponent: past MaxPow the value becomes NaN, below MinPow digits
// are shed one by one into a denormal and, once nothing remains, zero.
// pow is widened so that callers may pass intermediate exponents
// outside the int8 range.
func finite(s sign, mant uint64, pow int) Dfloat {
	if mant == 0 {
		return Dfloat{}
	}
	for mant >= mantCap {
		mant /= base
		pow++
	}
	for mant < scale && pow > MinPow {
		mant *= base
		pow--
	}
	if pow > MaxPow {
		return NaN()
	}
	for pow < MinPow {
		mant /= base
		pow++
		if mant == 0 {
			return Dfloat{}
		}
	}
	return Dfloat{sign: s, mant: mant, pow: int8(pow)}
}

// parts returns the mantissa normalized into [scale, mantCap) and the
// matching exponent, which sits below MinPow for a denormal input. x
// must be nonzero and finite.
func (x Dfloat) parts() (uint64, int) {
	m, p := x.mant, int(x.pow)
	for m < scale {
		m *= base
		p--
	}
	return m, p
}

// IsNaN reports whether x is the NaN value.
func (x Dfloat) IsNaN() bool {
	return x.sign == signNaN
}

// IsFinite reports whether x is an ordinary number, i.e. not NaN.
func (x Dfloat) IsFinite() bool {
	return x.sign != signNaN
}

// IsZero reports whether x is 0.
func (x Dfloat) IsZero() bool {
	return x.sign == signZero
}

// Sign returns -1, 0 or +1 for negative, zero and positive values.
// The result is 0 for NaN; use IsNaN to tell the two apart.
func (x Dfloat) Sign() int {
	switch x.sign {
	case signNeg:
		return -1
	case signPos:
		return 1
	}
	return 0
}

// Neg returns x with its sign flipped. Zero and NaN are unchanged.
func (x Dfloat) Neg() Dfloat {
	switch x.sign {
	case signPos:
		x.sign = signNeg
	case signNeg:
		x.sign = signPos
	}
	return x
}

// Add returns x + y.
//
// The addend with the smaller exponent is scaled down to align the
// exponents, discarding low-order digits, so adding values of widely
// differing magnitude loses precision. Overflow past MaxPow yields
// NaN; cancellation at MinPow yields a denormal or zero.
func (x Dfloat) Add(y Dfloat) Dfloat {
	if x.sign == signNaN || y.sign == signNaN {
		return NaN()
	}
	if x.sign == signZero {
		return y
	}
	if y.sign == signZero {
		return x
	}

	if x.sign == y.sign {
		am, ap := x.mant, int(x.pow)
		bm, bp := y.mant, int(y.pow)
		for ap < bp {
			am /= base
			ap++
		}
		for bp < ap {
			bm /= base
			bp++
		}
		return finite(x.sign, am+bm, ap)
	}

	// opposite signs: subtract the smaller magnitude from the larger
	// and keep the larger's sign
	cmp := cmpMagnitude(x, y)
	if cmp == 0 {
		return Dfloat{}
	}
	big, small := x, y
	if cmp < 0 {
		big, small = y, x
	}
	am, ap := big.mant, int(big.pow)
	bm, bp := small.mant, int(small.pow)
	// small's exponent cannot exceed big's, so only small shifts
	for bp < ap {
		bm /= base
		bp++
	}
	return finite(big.sign, am-bm, ap)
}

// Sub returns x - y.
func (x Dfloat) Sub(y Dfloat) Dfloat {
	return x.Add(y.Neg())
}

// Mul returns x * y. The mantissa product is computed in 128 bits and
// rescaled by scale, keeping all 18 digits of the result exact before
// truncation.
func (x Dfloat) Mul(y Dfloat) Dfloat {
	if x.sign == signNaN || y.sign == signNaN {
		return NaN()
	}
	if x.sign == signZero || y.sign == signZero {
		return Dfloat{}
	}
	s := signPos
	if x.sign != y.sign {
		s = signNeg
	}
	am, ap := x.parts()
	bm, bp := y.parts()
	// am*bm < (10*scale)**2, so the quotient by scale fits 64 bits
	hi, lo := bits.Mul64(am, bm)
	q, _ := bits.Div64(hi, lo, scale)
	return finite(s, q, ap+bp)
}

// Div returns x / y. Dividing by zero yields NaN, not an error; so
// does exponent overflow. The quotient keeps 18 significant digits,
// truncated, via a 128 bit widened division.
func (x Dfloat) Div(y Dfloat) Dfloat {
	if x.sign == signNaN || y.sign == signNaN {
		return NaN()
	}
	if y.sign == signZero {
		return NaN()
	}
	if x.sign == signZero {
		return Dfloat{}
	}
	s := signPos
	if x.sign != y.sign {
		s = signNeg
	}
	am, ap := x.parts()
	bm, bp := y.parts()
	pow := ap - bp
	if am < bm {
		// keep the quotient mantissa in [1, 10)
		am *= base
		pow--
	}
	hi, lo := bits.Mul64(am, scale)
	q, _ := bits.Div64(hi, lo, bm)
	return finite(s, q, pow)
}

// cmpMagnitude compares |x| and |y|, exponent first. That order is
// valid because normal mantissas share [scale, mantCap) and denormals
// only occur at the minimum exponent. Neither operand may be NaN.
func cmpMagnitude(x, y Dfloat) int {
	switch {
	case x.sign == signZero && y.sign == signZero:
		return 0
	case x.sign == signZero:
		return -1
	case y.sign == signZero:
		return 1
	case x.pow > y.pow:
		return 1
	case x.pow < y.pow:
		return -1
	case x.mant > y.mant:
		return 1
	case x.mant < y.mant:
		return -1
	}
	return 0
}

// cmp returns the ordering of x and y. ok is false when either
// operand is NaN, in which case the values are unordered.
func (x Dfloat) cmp(y Dfloat) (r int, ok bool) {
	if x.sign == signNaN || y.sign == signNaN {
		return 0, false
	}
	switch {
	case x.sign == signZero && y.sign == signZero:
		return 0, true
	case x.sign == signZero:
		return -int(y.sign), true
	case x.sign == signPos && y.sign != signPos:
		return 1, true
	case x.sign == signNeg && y.sign != signNeg:
		return -1, true
	}
	r = cmpMagnitude(x, y)
	if x.sign == signNeg {
		r = -r
	}
	return r, true
}

// Eq reports whether x == y. NaN is not equal to anything, itself
// included.
func (x Dfloat) Eq(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r == 0
}

// Ne reports whether x and y are ordered and different. Like every
// other comparison it is false when either operand is NaN.
func (x Dfloat) Ne(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r != 0
}

// Lt reports whether x < y.
func (x Dfloat) Lt(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r < 0
}

// Gt reports whether x > y.
func (x Dfloat) Gt(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r > 0
}

// Lte reports whether x <= y.
func (x Dfloat) Lte(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r <= 0
}

// Gte reports whether x >= y.
func (x Dfloat) Gte(y Dfloat) bool {
	r, ok := x.cmp(y)
	return ok && r >= 0
}
