// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package biguint

// Uint256 is an unsigned integer stored as 8 little-endian 32 bit
// words, with the same operation set and modulo 2**256 semantics as
// the narrower widths.
type Uint256 struct {
	w [8]uint32
}

// Uint256From32 returns v zero-extended to a Uint256.
func Uint256From32(v uint32) Uint256 {
	var z Uint256
	z.w[0] = v
	return z
}

// Uint256From64 returns v zero-extended to a Uint256.
func Uint256From64(v uint64) Uint256 {
	var z Uint256
	z.w[0] = uint32(v)
	z.w[1] = uint32(v >> _W)
	return z
}

// Uint32 returns the low word of x, truncating.
func (x Uint256) Uint32() uint32 {
	return x.w[0]
}

// Uint64 returns the low 64 bits of x, truncating.
func (x Uint256) Uint64() uint64 {
	return uint64(x.w[1])<<_W | uint64(x.w[0])
}

func (x Uint256) IsZero() bool {
	return isZeroV(x.w[:])
}

func (x Uint256) Not() Uint256 {
	var z Uint256
	notV(z.w[:], x.w[:])
	return z
}

func (x Uint256) And(y Uint256) Uint256 {
	var z Uint256
	andVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint256) Or(y Uint256) Uint256 {
	var z Uint256
	orVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint256) Xor(y Uint256) Uint256 {
	var z Uint256
	xorVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint256) Lsh(n uint) Uint256 {
	var z Uint256
	shlVU(z.w[:], x.w[:], n)
	return z
}

func (x Uint256) Rsh(n uint) Uint256 {
	var z Uint256
	shrVU(z.w[:], x.w[:], n)
	return z
}

func (x Uint256) Cmp(y Uint256) int {
	return cmpVV(x.w[:], y.w[:])
}

func (x Uint256) Eq(y Uint256) bool  { return x.Cmp(y) == 0 }
func (x Uint256) Lt(y Uint256) bool  { return x.Cmp(y) < 0 }
func (x Uint256) Gt(y Uint256) bool  { return x.Cmp(y) > 0 }
func (x Uint256) Lte(y Uint256) bool { return x.Cmp(y) <= 0 }
func (x Uint256) Gte(y Uint256) bool { return x.Cmp(y) >= 0 }

func (x Uint256) Add(y Uint256) Uint256 {
	var z Uint256
	addVV(z.w[:], x.w[:], y.w[:])
	return z
}

func (x Uint256) Sub(y Uint256) Uint256 {
	return x.Add(y.Not().Add(Uint256From32(1)))
}

func (x Uint256) Mul(y Uint256) Uint256 {
	var z Uint256
	mulVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Div returns x / y truncated toward zero, failing with
// ErrDivideByZero when y is 0.
func (x Uint256) Div(y Uint256) (Uint256, error) {
	if y.IsZero() {
		return Uint256{}, ErrDivideByZero
	}
	var q, r Uint256
	divVV(q.w[:], r.w[:], x.w[:], y.w[:])
	return q, nil
}

// Word returns the 32 bit word at index i, failing with ErrWordRange
// when i is out of range.
func (x Uint256) Word(i int) (uint32, error) {
	if i < 0 || i >= len(x.w) {
		return 0, ErrWordRange
	}
	return x.w[i], nil
}

func (x Uint256) String() string {
	return vstring(x.w[:])
}
