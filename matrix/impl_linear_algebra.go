// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, transpose, matrix-vector products and column replacement.
// All functions perform strict fail-fast validation and return wrapped
// sentinels on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh Dense result.
//   - *Dense operands take a flat-slice fast path; other implementations go
//     through At/Set with the same loop order, so results are identical.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opReplaceColumn = "ReplaceColumn"
	opDet           = "Det"
	opDet3x3        = "Det3x3"
	opParseRows     = "ParseRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate A,B (not nil). If A.Cols != B.Rows and B is a single
//     row with B.Cols == A.Cols, B is replaced by its transpose (a column
//     vector). Any other disagreement is ErrDimensionMismatch.
//   - Stage 2: triple loop i→j→k accumulating into a fresh Dense.
//
// Returns:
//   - Matrix: new Dense C with shape (A.Rows × B.Cols) after the optional transpose.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: validation and the single-row exception.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		if b.Rows() != 1 || b.Cols() != a.Cols() {
			return nil, matrixErrorf(opMul, fmt.Errorf("cannot multiply A (%dx%d) and B (%dx%d): %w",
				a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
		}
		bt, err := Transpose(b)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		b = bt
	}

	// Stage 2: allocate and multiply.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		current float64
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for j = 0; j < bCols; j++ {
					current = ZeroSum
					for k = 0; k < aCols; k++ {
						current += da.data[i*aCols+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = current
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop with the same order.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c) time and space.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    float64
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}
		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		y          = make([]float64, rows)
		i, j       int
		v, sum     float64
		err        error
	)
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// ReplaceColumn returns a copy of m whose column k is replaced by col.
// This is the A_k matrix of Cramer's rule.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(col) != Rows), ErrOutOfRange (bad k).
func ReplaceColumn(m Matrix, col []float64, k int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if err := ValidateVecLen(col, m.Rows()); err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	if k < 0 || k >= m.Cols() {
		return nil, matrixErrorf(opReplaceColumn, fmt.Errorf("column %d: %w", k, ErrOutOfRange))
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReplaceColumn, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j == k {
				v = col[i]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opReplaceColumn, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
