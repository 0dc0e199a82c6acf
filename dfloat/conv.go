// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dfloat

import (
	"math"
)

// FromFloat64 returns v as a Dfloat, truncated to 18 significant
// digits. The non-finite float values, +Inf, -Inf and NaN, all map to
// NaN.
func FromFloat64(v float64) Dfloat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NaN()
	}
	if v == 0 {
		return Dfloat{}
	}
	s := signPos
	if v < 0 {
		s, v = signNeg, -v
	}
	pow := 0
	for v < 1 {
		v *= base
		pow--
	}
	for v >= base {
		v /= base
		pow++
	}
	// binary floating point cannot always place v exactly in [1, 10);
	// finite corrects any drift left after scaling
	return finite(s, uint64(v*scale), pow)
}

// Float64 returns the nearest float64 to x. NaN converts to the
// float64 NaN.
func (x Dfloat) Float64() float64 {
	switch x.sign {
	case signNaN:
		return math.NaN()
	case signZero:
		return 0
	}
	res := float64(x.mant) / scale
	for p := int(x.pow); p > 0; p-- {
		res *= base
	}
	for p := int(x.pow); p < 0; p++ {
		res /= base
	}
	if x.sign == signNeg {
		res = -res
	}
	return res
}

// Int64 returns the integer part of x reduced into the int64 range,
// with the fraction truncated. NaN converts to 0.
func (x Dfloat) Int64() int64 {
	u, neg := x.wholeUint64()
	i := int64(u)
	if neg {
		i = -i
	}
	return i
}

// Uint64 returns the integer part of |x| reduced modulo 2**64, negated
// modulo 2**64 when x is negative. NaN converts to 0.
func (x Dfloat) Uint64() uint64 {
	u, neg := x.wholeUint64()
	if neg {
		u = -u
	}
	return u
}

// wholeUint64 returns |trunc(x)| modulo 2**64 and whether x is
// negative.
func (x Dfloat) wholeUint64() (uint64, bool) {
	if x.sign != signPos && x.sign != signNeg {
		return 0, false
	}
	m, p := x.mant, int(x.pow)
	if p < 0 {
		return 0, x.sign == signNeg
	}
	for ; p > scalePow; p-- {
		m *= base // wraps modulo 2**64
	}
	for ; p < scalePow; p++ {
		m /= base
	}
	return m, x.sign == signNeg
}
