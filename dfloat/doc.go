// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package dfloat implements a fixed-capacity decimal floating point
// type.
//
// A Dfloat holds a sign, an 18 decimal digit mantissa and a power of
// ten in [-100, 100]. Finite nonzero values keep the mantissa
// normalized in [10**17, 10**18), except at the very bottom of the
// exponent range where values go denormal and lose digits gracefully
// instead of jumping straight to zero.
//
// Dfloat values are immutable and operations never fail: anything
// that cannot be represented, including overflow past the exponent
// range, division by zero, and malformed input to Parse, results in
// the NaN sentinel. NaN propagates through arithmetic and compares
// unequal to everything, itself included.
package dfloat
