// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra toolkit used by the
// numeth solvers: a row-major Dense type with bounds-checked accessors,
// multiplication, transpose, matrix-vector products, column replacement and
// determinants.
//
// What is inside:
//
//   - Dense: flat row-major storage; At/Set return errors instead of panicking.
//   - Mul: triple-loop product. When the inner dimensions disagree and the
//     right operand is a single row of matching length, that row is treated
//     as a column vector (implicit transpose), so [[5,6,7,8]]×[[1,2,3,4]]
//     yields [[70]].
//   - Det: closed-form cofactor expansion for n ≤ 3 (bit-for-bit identical to
//     the classic 3×3 formula) and an LU-based determinant (gonum) above that.
//   - ReplaceColumn: the A_k construction used by Cramer's rule.
//   - ParseRows: "[5,6,7,8]" or "[1,2;3,4]" text into a Dense.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare, ...)
// wrapped with the operation name; match them with errors.Is.
//
//	a, _ := matrix.ParseRows("[5,6,7,8]")
//	b, _ := matrix.ParseRows("[1,2,3,4]")
//	p, err := matrix.Mul(a, b) // [[70]]
package matrix
