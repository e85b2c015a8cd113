// SPDX-License-Identifier: MIT

package rootfind

import "fmt"

// Operation tags for error wrapping.
const (
	opFixedPoint    = "FixedPoint"
	opNewton        = "Newton"
	opSecant        = "Secant"
	opBisection     = "Bisection"
	opFalsePosition = "FalsePosition"
)

// rootErrorf wraps err with an operation tag.
func rootErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// eval calls f and tags a failure with ErrEvaluation and the argument.
func eval(f Func, x float64) (float64, error) {
	y, err := f(x)
	if err != nil {
		return 0, fmt.Errorf("%w at x=%g: %w", ErrEvaluation, x, err)
	}

	return y, nil
}

// sameSign reports f(a)·f(b) > 0, the invalid-bracket condition.
func sameSign(fa, fb float64) bool { return fa*fb > 0 }
