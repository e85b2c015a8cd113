// SPDX-License-Identifier: MIT

package rootfind

import "math"

// FalsePosition runs regula falsi over the bracket [x0, x1].
//
// Implementation:
//   - Stage 1: f(x0)·f(x1) > 0 ends the run as Failed with Reason
//     ErrInvalidBracket.
//   - Stage 2: do-while |f(x2)| > tol, with
//     x2 = x1 - f(x1)·(x1 - x0) / (f(x1) - f(x0)).
//     When f(x0)·f(x2) < 0 the new point replaces x1, otherwise x0.
//   - Stage 3: MaxIterations bounds the loop; reaching it reports the last
//     x2 as NotConverged with Reason ErrMaxIterations.
//
// Step.Iter is 0-based. Step.Lo/Hi are x0 and x1 before the update.
//
// Errors:
//   - ErrNilFunction, ErrEvaluation.
//   - ErrDivisionByZero when f(x1) == f(x0) exactly.
func FalsePosition(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opFalsePosition, ErrNilFunction)
	}
	o := gatherOptions(opts...)

	// Stage 1: bracket check.
	f0, err := eval(f, x0)
	if err != nil {
		return Result{}, rootErrorf(opFalsePosition, err)
	}
	f1, err := eval(f, x1)
	if err != nil {
		return Result{}, rootErrorf(opFalsePosition, err)
	}
	res := Result{MaxIterations: o.maxIter, Root: math.NaN()}
	if sameSign(f0, f1) {
		res.Status, res.Reason = Failed, ErrInvalidBracket
		return res, nil
	}

	// Stage 2: at least one step always runs.
	for iter := 0; iter < o.maxIter; iter++ {
		if f1-f0 == 0 {
			return Result{}, rootErrorf(opFalsePosition, ErrDivisionByZero)
		}
		x2 := x1 - (f1*(x1-x0))/(f1-f0)
		f2, err := eval(f, x2)
		if err != nil {
			return Result{}, rootErrorf(opFalsePosition, err)
		}
		res.Trace = append(res.Trace, Step{Iter: iter, Lo: x0, Hi: x1, X: x2, FX: f2})
		res.Root = x2

		if f0*f2 < 0 {
			x1, f1 = x2, f2
		} else {
			x0, f0 = x2, f2
		}
		if math.Abs(f2) <= o.tol {
			res.Status, res.Iterations = Converged, iter+1
			return res, nil
		}
	}

	// Stage 3: cap reached.
	res.Status, res.Iterations, res.Reason = NotConverged, o.maxIter, ErrMaxIterations

	return res, nil
}
