// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrUnknownMethod indicates a method name outside Methods().
	ErrUnknownMethod = errors.New("problem: unknown method")

	// ErrInvalidParam indicates a parameter value the solvers cannot accept
	// (non-positive tolerance, iteration cap or epsilon).
	ErrInvalidParam = errors.New("problem: invalid parameter")

	// ErrNothingToPlot indicates a method that produces no iteration trace.
	ErrNothingToPlot = errors.New("problem: method has no trace to plot")

	// ErrNoProblems indicates a problem file without entries.
	ErrNoProblems = errors.New("problem: file defines no problems")
)
