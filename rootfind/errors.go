// SPDX-License-Identifier: MIT

package rootfind

import "errors"

var (
	// ErrNilFunction is returned when the function argument is nil.
	ErrNilFunction = errors.New("rootfind: nil function")

	// ErrEvaluation wraps a failure of the user function.
	ErrEvaluation = errors.New("rootfind: evaluation failed")

	// ErrDivisionByZero is returned when a secant-style denominator
	// f(x1) - f(x0) is exactly zero.
	ErrDivisionByZero = errors.New("rootfind: division by zero in secant formula")

	// ErrZeroDerivative is the Reason of a Failed Newton result whose
	// numeric derivative is exactly zero.
	ErrZeroDerivative = errors.New("rootfind: derivative is zero")

	// ErrInvalidBracket is the Reason of a Failed bracketing result whose
	// end points do not have opposite signs.
	ErrInvalidBracket = errors.New("rootfind: end points must have opposite signs")

	// ErrMaxIterations is the Reason of a NotConverged result.
	ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")
)
