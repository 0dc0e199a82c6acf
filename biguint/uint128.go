// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package biguint

// Uint128 is an unsigned integer stored as 4 little-endian 32 bit
// words. The operation set and the modulo 2**128 wrap-around semantics
// match Uint64.
type Uint128 struct {
	w [4]uint32
}

// Uint128From32 returns v zero-extended to a Uint128.
func Uint128From32(v uint32) Uint128 {
	var z Uint128
	z.w[0] = v
	return z
}

// Uint128From64 returns v zero-extended to a Uint128.
func Uint128From64(v uint64) Uint128 {
	var z Uint128
	z.w[0] = uint32(v)
	z.w[1] = uint32(v >> _W)
	return z
}

// Uint32 returns the low word of x, truncating.
func (x Uint128) Uint32() uint32 {
	return x.w[0]
}

// Uint64 returns the low 64 bits of x, truncating.
func (x Uint128) Uint64() uint64 {
	return uint64(x.w[1])<<_W | uint64(x.w[0])
}

func (x Uint128) IsZero() bool {
	return isZeroV(x.w[:])
}

func (x Uint128) Not() Uint128 {
	var z Uint128
	notV(z.w[:], x.w[:])
	return z
}

func (x Uint128) And(y Uint128) Uint128 {
	var z Uint128
	andVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint128) Or(y Uint128) Uint128 {
	var z Uint128
	orVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint128) Xor(y Uint128) Uint128 {
	var z Uint128
	xorVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint128) Lsh(n uint) Uint128 {
	var z Uint128
	shlVU(z.w[:], x.w[:], n)
	return z
}

func (x Uint128) Rsh(n uint) Uint128 {
	var z Uint128
	shrVU(z.w[:], x.w[:], n)
	return z
}

func (x Uint128) Cmp(y Uint128) int {
	return cmpVV(x.w[:], y.w[:])
}

func (x Uint128) Eq(y Uint128) bool  { return x.Cmp(y) == 0 }
func (x Uint128) Lt(y Uint128) bool  { return x.Cmp(y) < 0 }
func (x Uint128) Gt(y Uint128) bool  { return x.Cmp(y) > 0 }
func (x Uint128) Lte(y Uint128) bool { return x.Cmp(y) <= 0 }
func (x Uint128) Gte(y Uint128) bool { return x.Cmp(y) >= 0 }

func (x Uint128) Add(y Uint128) Uint128 {
	var z Uint128
	addVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint128) Sub(y Uint128) Uint128 {
	return x.Add(y.Not().Add(Uint128From32(1)))
}

func (x Uint128) Mul(y Uint128) Uint128 {
	var z Uint128
	mulVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Div returns x / y truncated toward zero, failing with
// ErrDivideByZero when y is 0.
func (x Uint128) Div(y Uint128) (Uint128, error) {
	if y.IsZero() {
		return Uint128{}, ErrDivideByZero
	}
	var q, r Uint128
	divVV(q.w[:], r.w[:], x.w[:], y.w[:])
	return q, nil
}

// Word returns the 32 bit word at index i, failing with ErrWordRange
// when i is out of range.
func (x Uint128) Word(i int) (uint32, error) {
	if i < 0 || i >= len(x.w) {
		return 0, ErrWordRange
	}
	return x.w[i], nil
}

func (x Uint128) String() string {
	return vstring(x.w[:])
}
