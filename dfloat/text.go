// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dfloat

import (
	"strconv"
	"strings"
)

// defaultExpThresh is the exponent magnitude at which String switches
// to scientific notation.
const defaultExpThresh = 10

// maxParseExp caps the scanned exponent magnitude. Anything past it is
// already far outside [MinPow, MaxPow] with every digit still to come,
// and capping keeps the accumulator from overflowing.
const maxParseExp = 9999

// scanState enumerates the scanner states of Parse. Transitions
// consume exactly one input byte.
type scanState int

const (
	scanStart     scanState = iota // nothing consumed yet
	scanSign                       // consumed a leading + or -
	scanZeros                      // consumed only zeros so far
	scanWhole                      // inside the whole part, nonzero seen
	scanPoint                      // just consumed the decimal point
	scanFrac                       // inside the fraction digits
	scanExpMark                    // just consumed e or E
	scanExpSign                    // consumed the exponent sign
	scanExpDigits                  // inside the exponent digits
)

// Parse converts s to a Dfloat. Parse is total: it never fails with an
// error. Malformed input, input cut short (ending right after a sign,
// decimal point or exponent marker), and values whose exponent falls
// outside [MinPow, MaxPow] all yield NaN.
//
// The accepted form is an optional + or -, digits with at most one
// decimal point (the point needs a digit on both sides), and an
// optional e or E exponent, itself optionally signed. Leading zeros
// are skipped. Digits beyond the mantissa capacity only move the
// exponent when above the decimal point and are dropped entirely below
// it.
func Parse(s string) Dfloat {
	var (
		neg    bool
		mant   uint64
		pow    = scalePow
		zeros  int
		exp    int
		expNeg bool
	)

	state := scanStart
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case scanStart:
			switch {
			case c == '+':
				state = scanSign
			case c == '-':
				neg = true
				state = scanSign
			case c == '0':
				state = scanZeros
			case '1' <= c && c <= '9':
				mant = uint64(c - '0')
				state = scanWhole
			default:
				return NaN()
			}

		case scanSign:
			switch {
			case c == '0':
				state = scanZeros
			case '1' <= c && c <= '9':
				mant = uint64(c - '0')
				state = scanWhole
			default:
				return NaN()
			}

		case scanZeros:
			switch {
			case c == '0':
				// leading zeros carry no significance
			case '1' <= c && c <= '9':
				mant = uint64(c - '0')
				state = scanWhole
			case c == '.':
				state = scanPoint
			case c == 'e' || c == 'E':
				state = scanExpMark
			default:
				return NaN()
			}

		case scanWhole:
			switch {
			case '0' <= c && c <= '9':
				if mant >= scale {
					// mantissa full: surplus whole digits
					// only raise the exponent
					if pow >= MaxPow {
						return NaN()
					}
					pow++
				} else {
					mant = mant*base + uint64(c-'0')
				}
			case c == '.':
				state = scanPoint
			case c == 'e' || c == 'E':
				state = scanExpMark
			default:
				return NaN()
			}

		case scanPoint, scanFrac:
			switch {
			case c == '0' && mant == 0:
				// fraction zeros ahead of the first
				// significant digit are only counted; they
				// weigh on the exponent once such a digit
				// arrives, so a pure zero fraction of any
				// length stays an exact zero
				zeros++
				state = scanFrac
			case '0' <= c && c <= '9':
				for ; zeros > 0; zeros-- {
					if pow <= MinPow {
						return NaN()
					}
					pow--
				}
				if mant < scale {
					if pow <= MinPow {
						return NaN()
					}
					mant = mant*base + uint64(c-'0')
					pow--
				}
				// mantissa full: surplus fraction digits
				// are dropped
				state = scanFrac
			case state == scanFrac && (c == 'e' || c == 'E'):
				state = scanExpMark
			default:
				return NaN()
			}

		case scanExpMark:
			switch {
			case c == '+':
				state = scanExpSign
			case c == '-':
				expNeg = true
				state = scanExpSign
			case '0' <= c && c <= '9':
				exp = int(c - '0')
				state = scanExpDigits
			default:
				return NaN()
			}

		case scanExpSign:
			if c < '0' || c > '9' {
				return NaN()
			}
			exp = int(c - '0')
			state = scanExpDigits

		case scanExpDigits:
			if c < '0' || c > '9' {
				return NaN()
			}
			exp = exp*base + int(c-'0')
			if exp > maxParseExp {
				return NaN()
			}
		}
	}

	// end of input is only acceptable with a complete number scanned
	switch state {
	case scanZeros, scanWhole, scanFrac, scanExpDigits:
	default:
		return NaN()
	}

	if mant == 0 {
		return Dfloat{}
	}
	if expNeg {
		exp = -exp
	}
	pow += exp

	for mant < scale {
		if pow <= MinPow {
			return NaN()
		}
		mant *= base
		pow--
	}
	if pow > MaxPow || pow < MinPow {
		return NaN()
	}

	s2 := signPos
	if neg {
		s2 = signNeg
	}
	return Dfloat{sign: s2, mant: mant, pow: int8(pow)}
}

// String formats x with the default scientific-notation threshold of
// 10.
func (x Dfloat) String() string {
	return x.Text(defaultExpThresh)
}

// Text formats x. Values whose exponent magnitude is expThresh or more
// use scientific notation; the rest use plain decimal notation with
// leading and trailing zeros suppressed. NaN formats as "nan" and zero
// as "0", regardless of the threshold.
func (x Dfloat) Text(expThresh int) string {
	switch x.sign {
	case signNaN:
		return "nan"
	case signZero:
		return "0"
	}
	var b strings.Builder
	if x.sign == signNeg {
		b.WriteByte('-')
	}
	p := int(x.pow)
	if p >= expThresh || -p >= expThresh {
		x.sci(&b)
	} else {
		x.dec(&b)
	}
	return b.String()
}

// digits returns the mantissa as 18 ASCII digits, most significant
// first. Denormals come out with leading zeros.
func (x Dfloat) digits() []byte {
	var d [scalePow + 1]byte
	m := x.mant
	for i := scalePow; i >= 0; i-- {
		d[i] = '0' + byte(m%base)
		m /= base
	}
	return d[:]
}

// sci writes the mantissa as one leading digit, a point and the
// remaining digits with trailing zeros stripped but at least one
// fraction digit kept, then the exponent, signed only when negative.
func (x Dfloat) sci(b *strings.Builder) {
	d := x.digits()
	n := len(d)
	for n > 2 && d[n-1] == '0' {
		n--
	}
	b.WriteByte(d[0])
	b.WriteByte('.')
	b.Write(d[1:n])
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(int(x.pow)))
}

// dec distributes the mantissa digits around the decimal point
// according to the exponent.
func (x Dfloat) dec(b *strings.Builder) {
	d := x.digits()
	p := int(x.pow)
	if p < 0 {
		// no digits above the point
		b.WriteString("0.")
		for i := p + 1; i < 0; i++ {
			b.WriteByte('0')
		}
		n := len(d)
		for n > 1 && d[n-1] == '0' {
			n--
		}
		b.Write(d[:n])
		return
	}
	if p+1 >= len(d) {
		// every mantissa digit above the point
		b.Write(d)
		for i := len(d); i <= p; i++ {
			b.WriteByte('0')
		}
		return
	}
	b.Write(d[:p+1])
	frac := d[p+1:]
	n := len(frac)
	for n > 0 && frac[n-1] == '0' {
		n--
	}
	if n > 0 {
		b.WriteByte('.')
		b.Write(frac[:n])
	}
}
