// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"unicode"
)

// DefaultVariables are the variable letters used when WithVariables is not given.
var DefaultVariables = []rune{'x', 'y', 'z'}

const (
	panicNoVariables        = "equation: WithVariables: at least one variable is required"
	panicDuplicateVariables = "equation: WithVariables: duplicate variable %q"
	panicVariableNotLetter  = "equation: WithVariables: %q is not a letter"
)

// Equation is one parsed linear equation: Σ Coeffs[i]·vars[i] = RHS.
// len(Coeffs) equals the number of variables of the parser that produced it.
type Equation struct {
	Coeffs []float64
	RHS    float64
}

// Option configures a Parser.
type Option func(*Options)

// Options holds the effective Parser configuration.
type Options struct {
	vars []rune
}

// WithVariables sets the variable letters, in column order.
// Letters are lower-cased. Panics when the list is empty, contains a
// non-letter, or repeats a letter.
func WithVariables(letters ...rune) Option {
	if len(letters) == 0 {
		panic(panicNoVariables)
	}
	vars := make([]rune, len(letters))
	seen := make(map[rune]struct{}, len(letters))
	for i, r := range letters {
		if !unicode.IsLetter(r) {
			panic(fmt.Sprintf(panicVariableNotLetter, r))
		}
		r = unicode.ToLower(r)
		if _, dup := seen[r]; dup {
			panic(fmt.Sprintf(panicDuplicateVariables, r))
		}
		seen[r] = struct{}{}
		vars[i] = r
	}

	return func(o *Options) { o.vars = vars }
}

func gatherOptions(user ...Option) Options {
	o := Options{vars: DefaultVariables}
	for _, set := range user {
		set(&o)
	}

	return o
}
