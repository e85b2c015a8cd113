// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
)

// FixedPoint iterates x ← g(x) starting from x0.
//
// Stops when |g(x) - x| < tol (Converged, Root = g(x)) or after
// MaxIterations steps (NotConverged, Reason ErrMaxIterations, Root = last
// value). Step.Iter is 1-based; Step.Lo holds the input of the step.
//
// Errors:
//   - ErrNilFunction, ErrEvaluation.
func FixedPoint(g Func, x0 float64, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, rootErrorf(opFixedPoint, ErrNilFunction)
	}
	o := gatherOptions(opts...)

	var (
		res  = Result{MaxIterations: o.maxIter, Root: math.NaN()}
		prev = x0
	)
	for i := 1; i <= o.maxIter; i++ {
		next, err := eval(g, prev)
		if err != nil {
			return Result{}, rootErrorf(opFixedPoint, err)
		}
		res.Trace = append(res.Trace, Step{Iter: i, Lo: prev, Hi: math.NaN(), X: next, FX: math.NaN()})
		res.Root = next
		if math.Abs(next-prev) < o.tol {
			res.Status, res.Iterations = Converged, i
			return res, nil
		}
		prev = next
	}

	res.Status, res.Iterations, res.Reason = NotConverged, o.maxIter, ErrMaxIterations

	return res, nil
}
