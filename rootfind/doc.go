// SPDX-License-Identifier: MIT

// Package rootfind implements the classical one-dimensional root finders:
//
//   - FixedPoint    x ← g(x) until two successive values agree within tol.
//   - Newton        Newton-Raphson with a central-difference derivative.
//   - Secant        two-point secant update.
//   - Bisection     interval halving over a sign-changing bracket.
//   - FalsePosition regula falsi over a sign-changing bracket.
//
// Every finder returns a Result carrying the outcome (Converged,
// NotConverged or Failed), the root or last estimate, and the full
// per-iteration Trace. Soft outcomes that the caller is expected to display
// (cap reached, zero derivative, invalid bracket) live in Result.Reason.
// Hard failures (the function could not be evaluated, a secant denominator
// vanished) are returned as errors.
//
// All loops are iterative and bounded by MaxIterations; no finder keeps
// state between calls, so identical inputs produce identical traces.
//
//	f := func(x float64) (float64, error) { return x*x*x - x - 1, nil }
//	res, err := rootfind.Secant(f, 1.2, 1.4, rootfind.WithTolerance(1e-4))
//	// res.Root ≈ 1.324718
package rootfind
