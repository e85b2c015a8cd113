// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/numeth/matrix"
)

// Cramer solves the system by Cramer's rule: x_k = det(A_k) / det(A),
// where A_k is A with column k replaced by b. For 3×3 systems the
// determinants are the closed-form cofactor expansion; larger systems use
// an LU determinant.
//
// Errors:
//   - ErrSingularMatrix when det(A) == 0 exactly.
//
// Complexity: O(n⁴) (n+1 determinants).
func Cramer(sys System) ([]float64, error) {
	det, err := matrix.Det(sys.a)
	if err != nil {
		return nil, linsysErrorf(opCramer, err)
	}
	if det == 0 {
		return nil, linsysErrorf(opCramer, fmt.Errorf("det = 0: %w", ErrSingularMatrix))
	}

	n := sys.N()
	x := make([]float64, n)
	for k := 0; k < n; k++ {
		ak, err := matrix.ReplaceColumn(sys.a, sys.b, k)
		if err != nil {
			return nil, linsysErrorf(opCramer, err)
		}
		dk, err := matrix.Det(ak)
		if err != nil {
			return nil, linsysErrorf(opCramer, err)
		}
		x[k] = dk / det
	}

	return x, nil
}
