// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Secant runs the secant method from the estimates x0 and x1:
//
//	x2 = x1 - f(x1)·(x1 - x0) / (f(x1) - f(x0))
//
// Stops when |x2 - x1| < tol. Step.Lo and Step.Hi hold x0 and x1 of the
// step; Step.FX is NaN.
//
// Errors:
//   - ErrNilFunction, ErrEvaluation.
//   - ErrDivisionByZero when f(x1) == f(x0) exactly.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opSecant, ErrNilFunction)
	}
	o := gatherOptions(opts...)

	f0, err := eval(f, x0)
	if err != nil {
		return Result{}, rootErrorf(opSecant, err)
	}
	f1, err := eval(f, x1)
	if err != nil {
		return Result{}, rootErrorf(opSecant, err)
	}

	res := Result{MaxIterations: o.maxIter, Root: math.NaN()}
	for i := 1; i <= o.maxIter; i++ {
		if f1-f0 == 0 {
			return Result{}, rootErrorf(opSecant, ErrDivisionByZero)
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		res.Trace = append(res.Trace, Step{Iter: i, Lo: x0, Hi: x1, X: x2, FX: math.NaN()})
		res.Root = x2
		if math.Abs(x2-x1) < o.tol {
			res.Status, res.Iterations = Converged, i
			return res, nil
		}

		x0, f0 = x1, f1
		x1 = x2
		if f1, err = eval(f, x1); err != nil {
			return Result{}, rootErrorf(opSecant, err)
		}
	}

	res.Status, res.Iterations, res.Reason = NotConverged, o.maxIter, ErrMaxIterations

	return res, nil
}
