// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numeth/linsys"
	"github.com/katalvlaran/numeth/matrix"
)

// Gauss-Seidel summary lines carry four decimals.
const summaryPrecision = 4

// Solution renders a direct solution (Gaussian, Cramer, LU):
//
//	Solution:
//	x = 1.0
//	y = -0.0
//	z = 1.0
func Solution(x []float64) string {
	return "Solution:\n" + assignments(x)
}

// Jacobi renders "After <n> iterations:" with n the requested count,
// followed by one assignment per unknown.
func Jacobi(res linsys.Result) string {
	return fmt.Sprintf("After %d iterations:\n", res.MaxIterations) + assignments(res.X)
}

// GaussSeidel renders every sweep and the rounded final estimate.
//
//	Iteration 1:
//	x = 0.900000, y = -2.290000, z = 3.067000
//
//	...
//	Converged solution:
//	x ≈ 1.0000, y ≈ -2.0000, z ≈ 3.0000
func GaussSeidel(res linsys.Result) string {
	names := VariableNames(len(res.X))

	var sb strings.Builder
	for _, s := range res.Trace {
		fmt.Fprintf(&sb, "Iteration %d:\n", s.Iter)
		for i, v := range s.X {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(names[i] + " = " + FormatFixed(v, tracePrecision))
		}
		sb.WriteString("\n\n")
	}

	if res.Converged {
		sb.WriteString("Converged solution:\n")
	} else {
		fmt.Fprintf(&sb, "Did not converge within %d iterations.\nLast estimate:\n", res.MaxIterations)
	}
	for i, v := range res.X {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(names[i] + " ≈ " + FormatFixed(v, summaryPrecision))
	}

	return sb.String()
}

// assignments renders "name = value" lines without a trailing newline.
func assignments(x []float64) string {
	names := VariableNames(len(x))
	lines := make([]string, len(x))
	for i, v := range x {
		lines[i] = names[i] + " = " + FormatFloat(v)
	}

	return strings.Join(lines, "\n")
}

// FormatMatrix renders one "[a, b, ...]" line per row using FormatFloat.
func FormatMatrix(m matrix.Matrix) string {
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.WriteByte('[')
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v, _ := m.At(i, j)
			sb.WriteString(FormatFloat(v))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Product renders a matrix product under "Product of A and B:".
func Product(m matrix.Matrix) string {
	return "Product of A and B:\n" + FormatMatrix(m)
}
