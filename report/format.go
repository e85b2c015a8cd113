// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"strconv"
	"strings"
)

// Decimal notation is used for magnitudes in [plainMin, plainMax).
const (
	plainMin = 1e-3
	plainMax = 1e7
)

// FormatFloat renders v as the shortest decimal that round-trips, always
// with a fractional part, switching to "d.dddE±n" outside [1e-3, 1e7).
//
//	FormatFloat(1)        == "1.0"
//	FormatFloat(-0.0)     == "-0.0"
//	FormatFloat(1.5e-17)  == "1.5E-17"
//	FormatFloat(math.Inf(1)) == "Infinity"
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs >= plainMin && abs < plainMax {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	n, _ := strconv.Atoi(exp) // "+07" → 7, "-17" → -17

	return withFraction(mant) + "E" + strconv.Itoa(n)
}

// FormatFixed renders v with exactly prec fractional digits. Rounding is
// half-up on the shortest round-trip decimal of v, so a tie such as
// 0.0078125 at six digits gives 0.007813. Non-finite values render as
// "NaN", "Infinity" and "-Infinity"; negative values keep their sign even
// when they round to zero.
func FormatFixed(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if prec < 0 {
		prec = 0
	}

	// Shortest digits d1d2...dn with value 0.d1d2...dn × 10^point.
	s := strconv.FormatFloat(math.Abs(v), 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	digits := []byte(strings.Replace(mant, ".", "", 1))
	point := e + 1

	keep := point + prec
	switch {
	case keep < 0:
		digits = digits[:0]
	case keep < len(digits):
		up := digits[keep] >= '5'
		digits = digits[:keep]
		if up {
			digits, point = roundUp(digits, point)
		}
	}

	var intPart, frac string
	if point <= 0 {
		intPart = "0"
		frac = strings.Repeat("0", -point) + string(digits)
	} else {
		for len(digits) < point {
			digits = append(digits, '0')
		}
		intPart, frac = string(digits[:point]), string(digits[point:])
	}
	if len(frac) < prec {
		frac += strings.Repeat("0", prec-len(frac))
	}
	frac = frac[:prec]

	out := intPart
	if prec > 0 {
		out += "." + frac
	}
	if math.Signbit(v) {
		out = "-" + out
	}

	return out
}

// roundUp adds one unit in the last place of digits, growing the integer
// part on a full carry.
func roundUp(digits []byte, point int) ([]byte, int) {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return digits, point
		}
		digits[i] = '0'
	}

	return append([]byte{'1'}, digits...), point + 1
}

// withFraction appends ".0" to an integral decimal string.
func withFraction(s string) string {
	if strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}

// VariableNames returns the display names of n unknowns.
func VariableNames(n int) []string {
	if n <= 3 {
		return []string{"x", "y", "z"}[:n]
	}
	names := make([]string, n)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}

	return names
}
