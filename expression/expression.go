// SPDX-License-Identifier: MIT

package expression

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression is a compiled algebraic expression in x.
// An Expression reuses its environment between calls and is not safe for
// concurrent use.
type Expression struct {
	source  string
	program *vm.Program
	env     map[string]any
}

// Compile prepares src for evaluation.
//
// Implementation:
//   - Stage 1: optionally strip "= 0", then normalise implicit multiplication.
//   - Stage 2: compile with expr against the numeric environment, expecting
//     a float64 result.
//
// Errors:
//   - ErrExpression wrapping the expr compile error (unknown names, syntax,
//     non-numeric result type).
func Compile(src string, opts ...Option) (*Expression, error) {
	o := gatherOptions(opts...)
	if o.stripZeroSuffix {
		src = StripZeroSuffix(src)
	}
	normalized := Normalize(src)

	env := newEnv()
	program, err := expr.Compile(normalized, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpression, err)
	}

	return &Expression{source: normalized, program: program, env: env}, nil
}

// Source returns the normalised text that was compiled.
func (e *Expression) Source() string { return e.source }

// Eval evaluates the expression with x bound to the given value.
//
// Errors:
//   - ErrExpression wrapping a runtime failure or a non-numeric result.
func (e *Expression) Eval(x float64) (float64, error) {
	e.env[Variable] = x
	out, err := expr.Run(e.program, e.env)
	if err != nil {
		return math.NaN(), fmt.Errorf("%w: %v", ErrExpression, err)
	}
	v, ok := out.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("%w: result %v is %T, not a number", ErrExpression, out, out)
	}

	return v, nil
}

// Func returns e.Eval as a plain function value, the shape expected by the
// root finders.
func (e *Expression) Func() func(float64) (float64, error) {
	return e.Eval
}

// Eval compiles src and evaluates it once at x.
func Eval(src string, x float64, opts ...Option) (float64, error) {
	e, err := Compile(src, opts...)
	if err != nil {
		return math.NaN(), err
	}

	return e.Eval(x)
}
