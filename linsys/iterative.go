// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"log/slog"
	"math"
)

// Jacobi runs exactly `iterations` Jacobi sweeps, stopping early when every
// component changes by less than epsilon:
//
//	x_i ← (b_i - Σ_{j≠i} a_ij·x_j) / a_ii   (all from the previous sweep)
//
// Result.MaxIterations is the requested count. Result.Converged reports an
// early stop; running the full count sets Reason to ErrMaxIterations.
//
// Errors:
//   - ErrInvalidIterations when iterations <= 0.
//   - ErrZeroDiagonal.
//   - matrix.ErrDimensionMismatch for a wrongly sized initial guess.
func Jacobi(sys System, iterations int, opts ...Option) (Result, error) {
	if iterations <= 0 {
		return Result{}, linsysErrorf(opJacobi, ErrInvalidIterations)
	}
	o := gatherOptions(opts...)
	if err := checkDiagonal(sys); err != nil {
		return Result{}, linsysErrorf(opJacobi, err)
	}
	x, err := o.startVector(sys.N())
	if err != nil {
		return Result{}, linsysErrorf(opJacobi, err)
	}

	var (
		n    = sys.N()
		prev = make([]float64, n)
		res  = Result{MaxIterations: iterations}
	)
	for iter := 1; iter <= iterations; iter++ {
		copy(prev, x)
		for i := 0; i < n; i++ {
			x[i] = sys.update(i, prev)
		}

		delta := maxDelta(x, prev)
		res.Trace = append(res.Trace, sweepOf(iter, x, delta))
		o.log.Debug("jacobi sweep", slog.Int("iter", iter), slog.Float64("delta", delta))
		if allBelow(x, prev, o.eps) {
			res.X, res.Iterations, res.Converged = x, iter, true
			return res, nil
		}
	}

	res.X, res.Iterations, res.Reason = x, iterations, ErrMaxIterations

	return res, nil
}

// GaussSeidel sweeps in place, each update using the components already
// refreshed in the same sweep. At least one sweep always runs; the loop
// ends when every component changed by at most epsilon, or when the cap
// (WithMaxIterations, DefaultMaxIterations) is reached, in which case the
// result is not converged and Reason is ErrMaxIterations.
//
// Errors:
//   - ErrZeroDiagonal.
//   - matrix.ErrDimensionMismatch for a wrongly sized initial guess.
func GaussSeidel(sys System, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if err := checkDiagonal(sys); err != nil {
		return Result{}, linsysErrorf(opGaussSeidel, err)
	}
	x, err := o.startVector(sys.N())
	if err != nil {
		return Result{}, linsysErrorf(opGaussSeidel, err)
	}

	var (
		n    = sys.N()
		prev = make([]float64, n)
		res  = Result{MaxIterations: o.maxIter}
	)
	for iter := 1; iter <= o.maxIter; iter++ {
		copy(prev, x)
		for i := 0; i < n; i++ {
			x[i] = sys.update(i, x)
		}

		delta := maxDelta(x, prev)
		res.Trace = append(res.Trace, sweepOf(iter, x, delta))
		o.log.Debug("gauss-seidel sweep", slog.Int("iter", iter), slog.Float64("delta", delta))
		if delta <= o.eps {
			res.X, res.Iterations, res.Converged = x, iter, true
			return res, nil
		}
	}

	res.X, res.Iterations, res.Reason = x, o.maxIter, ErrMaxIterations

	return res, nil
}

// update returns (b_i - Σ_{j≠i} a_ij·x_j) / a_ii, subtracting in column order.
func (s System) update(i int, x []float64) float64 {
	row, _ := s.a.Row(i)
	sum := s.b[i]
	for j := range row {
		if j != i {
			sum -= row[j] * x[j]
		}
	}

	return sum / row[i]
}

// checkDiagonal rejects systems with a zero on the diagonal.
func checkDiagonal(s System) error {
	for i := 0; i < s.N(); i++ {
		if v, _ := s.a.At(i, i); v == 0 {
			return fmt.Errorf("a[%d][%d] = 0: %w", i, i, ErrZeroDiagonal)
		}
	}

	return nil
}

// maxDelta returns max_i |x_i - prev_i|.
func maxDelta(x, prev []float64) float64 {
	var d float64
	for i := range x {
		d = math.Max(d, math.Abs(x[i]-prev[i]))
	}

	return d
}

// allBelow reports whether every |x_i - prev_i| < eps (strict).
func allBelow(x, prev []float64, eps float64) bool {
	for i := range x {
		if !(math.Abs(x[i]-prev[i]) < eps) {
			return false
		}
	}

	return true
}

// sweepOf snapshots x into a Sweep.
func sweepOf(iter int, x []float64, delta float64) Sweep {
	snap := make([]float64, len(x))
	copy(snap, x)

	return Sweep{Iter: iter, X: snap, Delta: delta}
}
