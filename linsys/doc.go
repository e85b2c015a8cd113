// SPDX-License-Identifier: MIT

// Package linsys solves square linear systems A·x = b.
//
// Direct solvers:
//
//   - Gaussian: elimination with partial pivoting and back substitution.
//   - Cramer:   x_k = det(A_k) / det(A), A_k being A with column k replaced by b.
//   - LU:       gonum's LU factorisation, used as the reference solve.
//
// Iterative solvers (Jacobi, GaussSeidel) return a Result with the final
// estimate and one Sweep per iteration. Both assume a diagonally dominant
// matrix for convergence; divergence is not detected, but every loop is
// bounded by an iteration cap.
//
// A System is built once with NewSystem, which validates shapes and copies
// the inputs. Solvers never mutate the System, so it can be solved
// repeatedly and by several methods:
//
//	sys, _ := linsys.NewSystem(a, b)
//	x, err := linsys.Gaussian(sys)
//	res, err := linsys.GaussSeidel(sys, linsys.WithEpsilon(1e-3))
package linsys
