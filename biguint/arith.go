// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package biguint

import (
	"fmt"
	"strings"
)

// Arithmetic primitives operating on little-endian vectors of 32 bit
// words. All vectors passed to a primitive have the same fixed length;
// results are reduced modulo 2**(32*len(z)).

const _W = 32 // word size in bits

// addWWW returns the word sum x+y+c and the outgoing carry. A wrapped
// partial sum is detected by comparing the truncated result against an
// addend; the carry out is 0, 1 or 2 since both partial sums can wrap
// when a carry-in is present.
func addWWW(x, y, c uint32) (s, carry uint32) {
	s = x + y
	if s < y {
		carry++
	}
	s += c
	if s < c {
		carry++
	}
	return s, carry
}

// addVV sets z = x + y and returns the carry out of the top word.
func addVV(z, x, y []uint32) (c uint32) {
	for i := range z {
		z[i], c = addWWW(x[i], y[i], c)
	}
	return c
}

// addVW adds the single word y into z at word index k, rippling the
// carry through the remaining words. Carry past the top word is
// dropped.
func addVW(z []uint32, y uint32, k int) {
	c := y
	for i := k; i < len(z) && c != 0; i++ {
		s := z[i] + c
		if s < c {
			c = 1
		} else {
			c = 0
		}
		z[i] = s
	}
}

// subVV sets z = x - y and returns the borrow out of the top word. An
// underflow wraps.
func subVV(z, x, y []uint32) uint32 {
	var b uint64
	for i := range z {
		d := uint64(x[i]) - uint64(y[i]) - b
		z[i] = uint32(d)
		b = d >> _W & 1
	}
	return uint32(b)
}

func notV(z, x []uint32) {
	for i := range z {
		z[i] = ^x[i]
	}
}

func andVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func orVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xorVV(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

// cmpVV compares x and y most significant word first.
func cmpVV(x, y []uint32) int {
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

func isZeroV(x []uint32) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

func clearV(z []uint32) {
	for i := range z {
		z[i] = 0
	}
}

// shlVU sets z = x << s with zero fill. Shifting by the full vector
// width or more clears z. z may alias x.
func shlVU(z, x []uint32, s uint) {
	n := len(z)
	if s >= uint(n)*_W {
		clearV(z)
		return
	}
	w, b := int(s/_W), s%_W
	if b == 0 {
		for i := n - 1; i >= w; i-- {
			z[i] = x[i-w]
		}
	} else {
		for i := n - 1; i > w; i-- {
			z[i] = x[i-w]<<b | x[i-w-1]>>(_W-b)
		}
		z[w] = x[0] << b
	}
	for i := 0; i < w; i++ {
		z[i] = 0
	}
}

// shrVU sets z = x >> s with zero fill (logical shift, no sign
// extension). z may alias x.
func shrVU(z, x []uint32, s uint) {
	n := len(z)
	if s >= uint(n)*_W {
		clearV(z)
		return
	}
	w, b := int(s/_W), s%_W
	if b == 0 {
		for i := 0; i < n-w; i++ {
			z[i] = x[i+w]
		}
	} else {
		for i := 0; i < n-w-1; i++ {
			z[i] = x[i+w]>>b | x[i+w+1]<<(_W-b)
		}
		z[n-w-1] = x[n-1] >> b
	}
	for i := n - w; i < n; i++ {
		z[i] = 0
	}
}

// mulVV sets z = x * y by schoolbook long multiplication: every 32x32
// partial product is split into halves, the low half accumulated at
// word index i+j and the high half at i+j+1, both with full carry
// propagation. Partial products whose index falls past the top word
// are dropped, truncating the result to the vector width. z must be
// zero on entry and must not alias x or y.
func mulVV(z, x, y []uint32) {
	n := len(z)
	for i := 0; i < n; i++ {
		a := uint64(x[i])
		if a == 0 {
			continue
		}
		for j := 0; i+j < n; j++ {
			b := uint64(y[j])
			if b == 0 {
				continue
			}
			p := a * b
			addVW(z, uint32(p), i+j)
			if i+j+1 < n {
				addVW(z, uint32(p>>_W), i+j+1)
			}
		}
	}
}

// divVV sets q = x / y and r = x % y by binary long division, most
// significant dividend bit first: the running remainder is shifted
// left one bit, the next dividend bit pulled in, and the divisor
// subtracted whenever the remainder reaches it. The quotient is
// truncated toward zero. y must be nonzero; q and r must be zero on
// entry and must not alias x or y.
func divVV(q, r, x, y []uint32) {
	for at := len(x)*_W - 1; at >= 0; at-- {
		shlVU(r, r, 1)
		r[0] |= bitAt(x, uint(at))
		if cmpVV(r, y) >= 0 {
			subVV(r, r, y)
			setBitAt(q, uint(at))
		}
	}
}

// bitAt returns bit i of x. There is no bounds check: callers keep i
// within the vector.
func bitAt(x []uint32, i uint) uint32 {
	return x[i/_W] >> (i % _W) & 1
}

// setBitAt sets bit i of x. No bounds check, as for bitAt.
func setBitAt(x []uint32, i uint) {
	x[i/_W] |= 1 << (i % _W)
}

// vstring formats x in hexadecimal with leading zero words elided.
func vstring(x []uint32) string {
	var b strings.Builder
	b.WriteString("0x")
	i := len(x) - 1
	for i > 0 && x[i] == 0 {
		i--
	}
	fmt.Fprintf(&b, "%x", x[i])
	for i--; i >= 0; i-- {
		fmt.Fprintf(&b, "%08x", x[i])
	}
	return b.String()
}
