// SPDX-License-Identifier: MIT

package expression

import (
	"regexp"
	"strings"
	"unicode"
)

// zeroSuffix matches a trailing "= 0" with optional surrounding blanks.
var zeroSuffix = regexp.MustCompile(`\s*=\s*0\s*$`)

// StripZeroSuffix removes a trailing "= 0" from src, if present.
func StripZeroSuffix(src string) string {
	return zeroSuffix.ReplaceAllString(src, "")
}

// token kinds tracked by Normalize.
type tokenKind int

const (
	tokNone tokenKind = iota
	tokNumber
	tokOperand // variable or constant name
	tokFunc    // function name, or a word operator
	tokClose   // ')'
	tokOther
)

// Normalize makes implicit multiplication explicit.
//
// A '*' is inserted before a name, a number or '(' whenever the previous
// significant token is a number, a variable/constant name or ')'. Function
// names keep their call parentheses, and "1e-3" stays a single number.
//
//	Normalize("4x^2 - 2(x+1)") == "4*x^2 - 2*(x+1)"
//	Normalize("log10(x)")      == "log10(x)"
func Normalize(src string) string {
	var (
		sb   strings.Builder
		rs   = []rune(src)
		prev = tokNone
		i    int
	)
	sb.Grow(len(src) + 8)

	// needsStar reports whether an operand starting now follows another operand.
	needsStar := func() bool {
		return prev == tokNumber || prev == tokOperand || prev == tokClose
	}

	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			sb.WriteRune(r)
			i++

		case isDigit(r) || (r == '.' && i+1 < len(rs) && isDigit(rs[i+1])):
			if needsStar() {
				sb.WriteByte('*')
			}
			j := scanNumber(rs, i)
			sb.WriteString(string(rs[i:j]))
			prev, i = tokNumber, j

		case isIdentStart(r):
			j := i + 1
			for j < len(rs) && isIdentPart(rs[j]) {
				j++
			}
			name := string(rs[i:j])
			if isWordOperator(name) {
				sb.WriteString(name)
				prev, i = tokOther, j
				continue
			}
			if needsStar() {
				sb.WriteByte('*')
			}
			sb.WriteString(name)
			if isFunction(name) {
				prev = tokFunc
			} else {
				prev = tokOperand
			}
			i = j

		case r == '(':
			if needsStar() {
				sb.WriteByte('*')
			}
			sb.WriteRune(r)
			prev = tokOther
			i++

		case r == ')':
			sb.WriteRune(r)
			prev = tokClose
			i++

		default:
			sb.WriteRune(r)
			prev = tokOther
			i++
		}
	}

	return sb.String()
}

// scanNumber returns the index just past the numeric literal starting at i.
// An exponent is consumed only when digits follow it, so "2e" is 2 times e.
func scanNumber(rs []rune, i int) int {
	for i < len(rs) && (isDigit(rs[i]) || rs[i] == '.') {
		i++
	}
	if i < len(rs) && (rs[i] == 'e' || rs[i] == 'E') {
		j := i + 1
		if j < len(rs) && (rs[j] == '+' || rs[j] == '-') {
			j++
		}
		if j < len(rs) && isDigit(rs[j]) {
			for j < len(rs) && isDigit(rs[j]) {
				j++
			}
			return j
		}
	}

	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
