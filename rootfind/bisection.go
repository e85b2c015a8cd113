// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Bisection halves the bracket [a, b] until the midpoint is close enough.
//
// Implementation:
//   - Stage 1: f(a)·f(b) > 0 ends the run as Failed with Reason
//     ErrInvalidBracket (no error is returned).
//   - Stage 2: c = (a+b)/2; stop when |f(c)| < tol OR (b-a)/2 < tol;
//     otherwise keep the half where the sign changes: b = c when
//     f(a)·f(c) < 0, else a = c.
//   - Stage 3: after MaxIterations the last midpoint is reported as
//     NotConverged with Reason ErrMaxIterations.
//
// Step.Lo/Hi are a and b before the update, Step.X is c and Step.FX is f(c).
//
// Errors:
//   - ErrNilFunction, ErrEvaluation.
func Bisection(f Func, a, b float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, rootErrorf(opBisection, ErrNilFunction)
	}
	o := gatherOptions(opts...)

	// Stage 1: bracket check.
	fa, err := eval(f, a)
	if err != nil {
		return Result{}, rootErrorf(opBisection, err)
	}
	fb, err := eval(f, b)
	if err != nil {
		return Result{}, rootErrorf(opBisection, err)
	}
	res := Result{MaxIterations: o.maxIter, Root: math.NaN()}
	if sameSign(fa, fb) {
		res.Status, res.Reason = Failed, ErrInvalidBracket
		return res, nil
	}

	// Stage 2: halve.
	for i := 1; i <= o.maxIter; i++ {
		c := (a + b) / 2
		fc, err := eval(f, c)
		if err != nil {
			return Result{}, rootErrorf(opBisection, err)
		}
		res.Trace = append(res.Trace, Step{Iter: i, Lo: a, Hi: b, X: c, FX: fc})
		res.Root = c
		if math.Abs(fc) < o.tol || (b-a)/2 < o.tol {
			res.Status, res.Iterations = Converged, i
			return res, nil
		}
		if fa*fc < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}

	// Stage 3: cap reached.
	res.Status, res.Iterations, res.Reason = NotConverged, o.maxIter, ErrMaxIterations

	return res, nil
}
