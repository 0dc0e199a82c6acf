// Copyright 2025 Kevin Xu. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package dfloat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	td := []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000", "0"},
		{"0.000", "0"},
		{"0e5", "0"},
		{"1", "1"},
		{"+1", "1"},
		{"-1", "-1"},
		{"42", "42"},
		{"042", "42"},
		{"1.1e1", "11"},
		{"11e-3", "0.011"},
		{"0.011", "0.011"},
		{"-12.25", "-12.25"},
		{"3.14159", "3.14159"},
		{"1e10", "1.0e10"},
		{"1E10", "1.0e10"},
		{"1e+10", "1.0e10"},
		{"1e-10", "1.0e-10"},
		{"123.456e2", "12345.6"},
		{"123.456e-2", "1.23456"},
		// trailing zeros are not significant
		{"1.500", "1.5"},
		{"10.0", "10"},
		// 18 significant digits survive intact
		{"0.333333333333333333", "0.333333333333333333"},
		{"999999999999999999", "9.99999999999999999e17"},
		// the 19th whole digit raises the exponent instead
		{"1000000000000000009", "1.0e18"},
		// fraction digits past the mantissa capacity are dropped
		{"1.000000000000000009", "1"},
		// exponent range boundaries
		{"1e100", "1.0e100"},
		{"1e-100", "1.0e-100"},
		{"9.99999999999999999e100", "9.99999999999999999e100"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			x := Parse(d.in)
			require.False(t, x.IsNaN(), "Parse(%q)", d.in)
			require.Equal(t, d.out, x.String())
		})
	}
}

func TestParseReject(t *testing.T) {
	td := []string{
		"",
		" ",
		"+",
		"-",
		"--1",
		"+-1",
		".",
		".5",
		"5.",
		"1..2",
		"1.2.3",
		"1 2",
		" 1",
		"1 ",
		"bogus",
		"0x10",
		"1e",
		"1e+",
		"1e-",
		"1e1.5",
		"e5",
		".e5",
		"1.e5",
		"1e5e5",
		"nan",
		"inf",
		// exponent out of range
		"1e101",
		"1e-101",
		"1e99999999999999999999",
		// fraction digits reaching past the exponent range
		"0.0000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001",
	}
	for _, in := range td {
		t.Run(in, func(t *testing.T) {
			require.True(t, Parse(in).IsNaN(), "Parse(%q)", in)
		})
	}
}

func TestParseZeroFraction(t *testing.T) {
	// a pure zero fraction is exactly zero no matter how far it runs
	// past the exponent range
	for _, n := range []int{1, 17, 117, 118, 500} {
		in := "0." + strings.Repeat("0", n)
		x := Parse(in)
		require.False(t, x.IsNaN(), "%d fraction zeros", n)
		require.True(t, x.IsZero(), "%d fraction zeros", n)
		require.True(t, Parse(in+"e5").IsZero(), "%d fraction zeros with exponent", n)
		require.True(t, Parse("-"+in).IsZero(), "%d fraction zeros, negative", n)
	}

	// a significant digit after the zeros still weighs them all in
	require.Equal(t, "1.0e-100", Parse("0."+strings.Repeat("0", 99)+"1").String())
	// ... and past the exponent range that weight underflows to nan
	require.True(t, Parse("0."+strings.Repeat("0", 100)+"1").IsNaN())
	require.True(t, Parse("0."+strings.Repeat("0", 118)+"1").IsNaN())
}

func TestText(t *testing.T) {
	td := []struct {
		in     string
		thresh int
		out    string
	}{
		// the threshold decides where scientific notation starts
		{"1e9", 10, "1000000000"},
		{"1e10", 10, "1.0e10"},
		{"1e-9", 10, "0.000000001"},
		{"1e-10", 10, "1.0e-10"},
		{"1e9", 5, "1.0e9"},
		{"1e9", 20, "1000000000"},
		{"12345", 3, "1.2345e4"},
		{"-12345", 3, "-1.2345e4"},
		// zero and nan ignore the threshold
		{"0", 0, "0"},
		{"1e5", 0, "1.0e5"},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			require.Equal(t, d.out, Parse(d.in).Text(d.thresh))
		})
	}

	require.Equal(t, "nan", NaN().Text(0))
	require.Equal(t, "nan", NaN().String())
}

func TestTextDenormal(t *testing.T) {
	x := Parse("1.1e-100").Sub(Parse("1e-100"))
	require.Equal(t, "0.1e-100", x.String())
	// a deeper denormal keeps only its leading zeros
	y := x.Div(FromInt(100))
	require.Equal(t, "0.001e-100", y.String())
}

func TestRoundTrip(t *testing.T) {
	// String output parses back to the identical value
	for _, in := range []string{
		"0", "1", "-1", "42", "-12.25", "3.14159",
		"1.0e18", "1.0e-18", "9.99999999999999999e100",
		"1.0e-100", "0.333333333333333333",
	} {
		x := Parse(in)
		require.False(t, x.IsNaN(), "Parse(%q)", in)
		require.True(t, Parse(x.String()).Eq(x), "round trip of %q via %q", in, x.String())
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchD = Parse("-12345.6789e-12")
	}
}

func BenchmarkString(b *testing.B) {
	x := Parse("-12345.6789e-12")
	for i := 0; i < b.N; i++ {
		benchS = x.String()
	}
}

var (
	benchD Dfloat
	benchS string
)
