// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped as "Op: %w") and
// tests match them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a shape is invalid: non-positive
	// dimensions, empty input or ragged rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows and no implicit transpose applies.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidNumber is returned by ParseRows when an entry is not a finite number.
	ErrInvalidNumber = errors.New("matrix: invalid number")
)
