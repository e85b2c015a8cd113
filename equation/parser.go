// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/numeth/matrix"
)

// termPattern splits the left-hand side into signed terms.
var termPattern = regexp.MustCompile(`[+-]?[^+-]+`)

const (
	opParse       = "Parse"
	opParseSystem = "ParseSystem"
)

// parseErrorf wraps err with the operation tag.
func parseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Parser turns equation text into coefficient rows. A Parser is immutable
// and safe for concurrent use.
type Parser struct {
	vars  []rune
	index map[rune]int
}

// NewParser builds a parser for the configured variables (x, y, z by default).
func NewParser(opts ...Option) *Parser {
	o := gatherOptions(opts...)
	p := &Parser{vars: o.vars, index: make(map[rune]int, len(o.vars))}
	for i, r := range o.vars {
		p.index[r] = i
	}

	return p
}

// Variables returns a copy of the variable letters in column order.
func (p *Parser) Variables() []rune {
	out := make([]rune, len(p.vars))
	copy(out, p.vars)

	return out
}

// Parse parses a single equation.
//
// Implementation:
//   - Stage 1: drop whitespace, lower-case, split on the single '='.
//   - Stage 2: parse the right side as a finite float.
//   - Stage 3: split the left side into signed terms; any character not
//     covered by a term is a dangling sign.
//   - Stage 4: per term, locate its one variable and parse the coefficient.
//
// Errors:
//   - ErrMalformedEquation, ErrInvalidNumber, ErrUnknownVariable,
//     ErrAmbiguousTerm, ErrInvalidCoefficient.
func (p *Parser) Parse(text string) (Equation, error) {
	// Stage 1: canonical form.
	s := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))

	sides := strings.Split(s, "=")
	if len(sides) != 2 {
		return Equation{}, parseErrorf(opParse, fmt.Errorf("%q needs exactly one '=': %w", text, ErrMalformedEquation))
	}
	lhs, rhsText := sides[0], sides[1]
	if lhs == "" {
		return Equation{}, parseErrorf(opParse, fmt.Errorf("%q has no left-hand side: %w", text, ErrMalformedEquation))
	}

	// Stage 2: right-hand side.
	rhs, err := parseFinite(rhsText)
	if err != nil {
		return Equation{}, parseErrorf(opParse, fmt.Errorf("right-hand side %q: %w", rhsText, ErrInvalidNumber))
	}

	// Stage 3: terms must tile the left side exactly.
	terms := termPattern.FindAllString(lhs, -1)
	if covered := len(strings.Join(terms, "")); covered != len(lhs) {
		return Equation{}, parseErrorf(opParse, fmt.Errorf("dangling sign in %q: %w", lhs, ErrMalformedEquation))
	}

	// Stage 4: accumulate coefficients.
	eq := Equation{Coeffs: make([]float64, len(p.vars)), RHS: rhs}
	for _, term := range terms {
		col, coeff, err := p.parseTerm(term)
		if err != nil {
			return Equation{}, parseErrorf(opParse, err)
		}
		eq.Coeffs[col] += coeff
	}

	return eq, nil
}

// parseTerm returns the column and coefficient of one signed term.
func (p *Parser) parseTerm(term string) (int, float64, error) {
	var (
		col   = -1
		at    int
		size  int
		found int
	)
	for i, r := range term {
		if c, ok := p.index[r]; ok {
			if found > 0 {
				return 0, 0, fmt.Errorf("term %q: %w", term, ErrAmbiguousTerm)
			}
			col, at, size = c, i, utf8.RuneLen(r)
			found++
		}
	}
	if found == 0 {
		return 0, 0, fmt.Errorf("term %q: %w", term, ErrUnknownVariable)
	}

	rest := term[:at] + term[at+size:]
	rest = strings.TrimSuffix(rest, "*")
	switch rest {
	case "", "+":
		return col, 1, nil
	case "-":
		return col, -1, nil
	}
	coeff, err := parseFinite(rest)
	if err != nil {
		return 0, 0, fmt.Errorf("term %q: %w", term, ErrInvalidCoefficient)
	}

	return col, coeff, nil
}

// ParseSystem parses one equation per line into an n×n system, where n is
// the number of lines. The first n parser variables become the columns, so
// two lines over the default parser use x and y.
//
// Errors:
//   - ErrMalformedEquation when no lines are given.
//   - matrix.ErrDimensionMismatch when there are more lines than variables.
//   - any Parse error, prefixed with the 1-based equation number.
func (p *Parser) ParseSystem(lines ...string) (*matrix.Dense, []float64, error) {
	n := len(lines)
	if n == 0 {
		return nil, nil, parseErrorf(opParseSystem, ErrMalformedEquation)
	}
	if n > len(p.vars) {
		return nil, nil, parseErrorf(opParseSystem, fmt.Errorf("%d equations but only %d variables: %w",
			n, len(p.vars), matrix.ErrDimensionMismatch))
	}

	sub := p
	if n < len(p.vars) {
		sub = NewParser(WithVariables(p.vars[:n]...))
	}

	var (
		rows = make([][]float64, n)
		b    = make([]float64, n)
	)
	for i, line := range lines {
		eq, err := sub.Parse(line)
		if err != nil {
			return nil, nil, parseErrorf(opParseSystem, fmt.Errorf("equation %d: %w", i+1, err))
		}
		rows[i], b[i] = eq.Coeffs, eq.RHS
	}
	a, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, nil, parseErrorf(opParseSystem, err)
	}

	return a, b, nil
}

var defaultParser = NewParser()

// Parse parses text over the default variables x, y, z.
func Parse(text string) (Equation, error) { return defaultParser.Parse(text) }

// ParseSystem parses lines over the default variables x, y, z.
func ParseSystem(lines ...string) (*matrix.Dense, []float64, error) {
	return defaultParser.ParseSystem(lines...)
}

// parseFinite parses s as a float64 and rejects NaN and ±Inf.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}

	return v, nil
}
