// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package biguint

import (
	"github.com/zeebo/errs"
)

// Error is the class of all biguint errors.
var Error = errs.Class("biguint")

// Errors returned by the checked operations. Everything else wraps
// silently.
var (
	ErrDivideByZero = Error.New("divide by zero")
	ErrWordRange    = Error.New("word index out of range")
)

// Uint64 is an unsigned integer stored as 2 little-endian 32 bit
// words. All operations are performed modulo 2**64, so callers may
// rely on wrap-around semantics; overflow is never an error. The zero
// value is 0 and ready to use.
//
// Uint64 is a value type: operations read their operands and return a
// new value, so distinct values may be used concurrently without
// locking.
type Uint64 struct {
	w [2]uint32
}

// Uint64From32 returns v zero-extended to a Uint64.
func Uint64From32(v uint32) Uint64 {
	var z Uint64
	z.w[0] = v
	return z
}

// Uint64From64 returns v as a Uint64.
func Uint64From64(v uint64) Uint64 {
	var z Uint64
	z.w[0] = uint32(v)
	z.w[1] = uint32(v >> _W)
	return z
}

// Uint32 returns the low word of x, truncating.
func (x Uint64) Uint32() uint32 {
	return x.w[0]
}

// Uint64 returns the low 64 bits of x.
func (x Uint64) Uint64() uint64 {
	return uint64(x.w[1])<<_W | uint64(x.w[0])
}

// IsZero reports whether x is 0.
func (x Uint64) IsZero() bool {
	return isZeroV(x.w[:])
}

// Not returns the bitwise complement of x.
func (x Uint64) Not() Uint64 {
	var z Uint64
	notV(z.w[:], x.w[:])
	return z
}

// And returns x & y.
func (x Uint64) And(y Uint64) Uint64 {
	var z Uint64
	andVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Or returns x | y.
func (x Uint64) Or(y Uint64) Uint64 {
	var z Uint64
	orVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Xor returns x ^ y.
func (x Uint64) Xor(y Uint64) Uint64 {
	var z Uint64
	xorVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Lsh returns x << n with zero fill. Shifting by the full bit width or
// more yields 0.
func (x Uint64) Lsh(n uint) Uint64 {
	var z Uint64
	shlVU(z.w[:], x.w[:], n)
	return z
}

// Rsh returns x >> n with zero fill. There is no sign extension.
func (x Uint64) Rsh(n uint) Uint64 {
	var z Uint64
	shrVU(z.w[:], x.w[:], n)
	return z
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint64) Cmp(y Uint64) int {
	return cmpVV(x.w[:], y.w[:])
}

// Eq reports whether x == y.
func (x Uint64) Eq(y Uint64) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y.
func (x Uint64) Lt(y Uint64) bool { return x.Cmp(y) < 0 }

// Gt reports whether x > y.
func (x Uint64) Gt(y Uint64) bool { return x.Cmp(y) > 0 }

// Lte reports whether x <= y.
func (x Uint64) Lte(y Uint64) bool { return x.Cmp(y) <= 0 }

// Gte reports whether x >= y.
func (x Uint64) Gte(y Uint64) bool { return x.Cmp(y) >= 0 }

// Add returns x + y modulo 2**64.
func (x Uint64) Add(y Uint64) Uint64 {
	var z Uint64
	addVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Sub returns x - y modulo 2**64, computed as the sum of x and the
// two's complement of y. Going below zero wraps; it is not an error.
func (x Uint64) Sub(y Uint64) Uint64 {
	return x.Add(y.Not().Add(Uint64From32(1)))
}

// Mul returns x * y modulo 2**64.
func (x Uint64) Mul(y Uint64) Uint64 {
	var z Uint64
	mulVV(z.w[:], x.w[:], y.w[:])
	return z
}

// Div returns x / y truncated toward zero. It fails with
// ErrDivideByZero when y is 0.
func (x Uint64) Div(y Uint64) (Uint64, error) {
	if y.IsZero() {
		return Uint64{}, ErrDivideByZero
	}
	var q, r Uint64
	divVV(q.w[:], r.w[:], x.w[:], y.w[:])
	return q, nil
}

// Word returns the 32 bit word at index i, index 0 being least
// significant. It fails with ErrWordRange when i is out of range.
func (x Uint64) Word(i int) (uint32, error) {
	if i < 0 || i >= len(x.w) {
		return 0, ErrWordRange
	}
	return x.w[i], nil
}

// String returns x in hexadecimal.
func (x Uint64) String() string {
	return vstring(x.w[:])
}
