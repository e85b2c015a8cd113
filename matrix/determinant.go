// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - n = 1, 2: direct formulas.
//   - n = 3: Det3x3 cofactor expansion along the first row, so Cramer's rule
//     reproduces the classic 3×3 results exactly.
//   - n > 3: LU factorisation with partial pivoting (gonum mat.Det).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(1) for n ≤ 3, O(n³) otherwise.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	d := asDense(m)
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	case 3:
		return det3(d.data), nil
	}

	// mat.NewDense aliases its backing slice; hand it a private copy.
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.Det(mat.NewDense(d.r, d.c, buf)), nil
}

// Det3x3 computes the determinant of a 3×3 matrix by cofactor expansion
// along the first row.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape when m is not 3×3.
func Det3x3(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet3x3, err)
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		return 0, matrixErrorf(opDet3x3, fmt.Errorf("got %dx%d: %w", m.Rows(), m.Cols(), ErrBadShape))
	}

	return det3(asDense(m).data), nil
}

// det3 evaluates the expansion on a flat row-major 3×3 buffer.
func det3(a []float64) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
// Callers have validated m is non-nil.
func asDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	rows, cols := m.Rows(), m.Cols()
	d := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.data[i*cols+j], _ = m.At(i, j)
		}
	}

	return d
}
