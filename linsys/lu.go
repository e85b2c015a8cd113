// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LU solves the system through gonum's LU factorisation with partial
// pivoting. It is the reference solve the other methods are checked against.
//
// Errors:
//   - ErrSingularMatrix when the factorisation is singular or the solve
//     reports an ill-conditioned matrix.
func LU(sys System) ([]float64, error) {
	n := sys.N()
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row, _ := sys.a.Row(i)
		a.SetRow(i, row)
	}

	var lu mat.LU
	lu.Factorize(a)
	if lu.Det() == 0 {
		return nil, linsysErrorf(opLU, fmt.Errorf("singular factorisation: %w", ErrSingularMatrix))
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, sys.B())); err != nil {
		return nil, linsysErrorf(opLU, fmt.Errorf("%w: %v", ErrSingularMatrix, err))
	}

	return mat.Col(nil, 0, &x), nil
}
