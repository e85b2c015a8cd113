// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Newton runs Newton-Raphson from x0 with the derivative approximated by a
// central difference f'(x) ≈ (f(x+h) - f(x-h)) / 2h.
//
// Each step computes x1 = x - f(x)/f'(x) and stops when |x1 - x| < tol.
// A derivative that is exactly zero ends the run as Failed with Reason
// ErrZeroDerivative; the steps taken so far stay in the trace and Root is
// the point where the derivative vanished. Step.FX holds f(x) at the
// start of the step.
//
// Errors:
//   - ErrNilFunction, ErrEvaluation.
func Newton(f Func, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opNewton, ErrNilFunction)
	}
	o := gatherOptions(opts...)

	var (
		res = Result{MaxIterations: o.maxIter, Root: math.NaN()}
		x   = x0
	)
	for i := 1; i <= o.maxIter; i++ {
		fx, err := eval(f, x)
		if err != nil {
			return Result{}, rootErrorf(opNewton, err)
		}
		dfx, err := derivative(f, x, o.h)
		if err != nil {
			return Result{}, rootErrorf(opNewton, err)
		}
		if dfx == 0 {
			res.Status, res.Reason, res.Root, res.Iterations = Failed, ErrZeroDerivative, x, i-1
			return res, nil
		}

		x1 := x - fx/dfx
		res.Trace = append(res.Trace, Step{Iter: i, Lo: x, Hi: math.NaN(), X: x1, FX: fx})
		res.Root = x1
		if math.Abs(x1-x) < o.tol {
			res.Status, res.Iterations = Converged, i
			return res, nil
		}
		x = x1
	}

	res.Status, res.Iterations, res.Reason = NotConverged, o.maxIter, ErrMaxIterations

	return res, nil
}

// derivative returns the central difference of f at x with step h.
func derivative(f Func, x, h float64) (float64, error) {
	fp, err := eval(f, x+h)
	if err != nil {
		return 0, err
	}
	fm, err := eval(f, x-h)
	if err != nil {
		return 0, err
	}

	return (fp - fm) / (2 * h), nil
}
