// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package biguint implements fixed-width unsigned integer arithmetic on
little-endian arrays of 32 bit words.

Three widths are provided, Uint64, Uint128 and Uint256, sharing one set
of word-vector primitives. The width is part of the type: values never
resize and never allocate, and every arithmetic, bitwise and shift
operation is reduced modulo 2**(32*W) with silent wrap-around, exactly
like the native unsigned types. The two exceptions are division by
zero and an out-of-range word index, which fail with a distinguishable
error:

	q, err := x.Div(y)
	if errors.Is(err, biguint.ErrDivideByZero) {
		...
	}

All values are immutable: operations read their operands and return a
new value.
*/
package biguint
