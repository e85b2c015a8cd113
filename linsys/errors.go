// SPDX-License-Identifier: MIT

package linsys

import "errors"

var (
	// ErrSingularMatrix is returned when the system has no unique solution:
	// a pivot below PivotTolerance, det(A) == 0, or a singular LU factor.
	ErrSingularMatrix = errors.New("linsys: system has no unique solution")

	// ErrZeroDiagonal is returned by the iterative solvers when some A[i][i] is zero.
	ErrZeroDiagonal = errors.New("linsys: zero diagonal entry")

	// ErrInvalidIterations is returned when a non-positive iteration count is requested.
	ErrInvalidIterations = errors.New("linsys: iteration count must be positive")

	// ErrMaxIterations is the Reason of a Result that stopped on its cap.
	ErrMaxIterations = errors.New("linsys: maximum iterations exceeded")
)
