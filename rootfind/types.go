// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Func is a real function of one variable that may fail to evaluate.
type Func func(x float64) (float64, error)

// Status is the outcome of a root search.
type Status int

const (
	// Converged means the stopping criterion was met; Root is the root.
	Converged Status = iota
	// NotConverged means MaxIterations ran out; Root is the last estimate.
	NotConverged
	// Failed means the method could not proceed; see Result.Reason.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case NotConverged:
		return "not converged"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Step is one iteration snapshot.
//
//   - Iter: iteration index as printed (1-based, 0-based for FalsePosition).
//   - Lo, Hi: the bracket (Bisection, FalsePosition), the previous two
//     estimates (Secant), or the previous estimate in Lo (FixedPoint, Newton).
//   - X: the new estimate produced by this step.
//   - FX: the function value the method computed in this step, NaN if none.
type Step struct {
	Iter   int
	Lo, Hi float64
	X      float64
	FX     float64
}

// Trace is the ordered list of steps of one run.
type Trace []Step

// Estimates returns the X column of the trace.
func (t Trace) Estimates() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.X
	}

	return out
}

// Result is the outcome of a root search.
type Result struct {
	Status        Status
	Root          float64 // root, last estimate, or NaN when no step ran
	Iterations    int     // number of steps executed (len(Trace))
	MaxIterations int     // effective cap of this run
	Reason        error   // nil when Converged
	Trace         Trace
}

// Converged reports whether the run met its stopping criterion.
func (r Result) Converged() bool { return r.Status == Converged }

// ---------- Options ----------

const (
	// DefaultTolerance is the stopping tolerance.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds every loop.
	DefaultMaxIterations = 100

	// DefaultStep is the central-difference step h used by Newton.
	DefaultStep = 1e-6
)

const (
	panicToleranceInvalid     = "rootfind: WithTolerance: tol must be finite and > 0"
	panicMaxIterationsInvalid = "rootfind: WithMaxIterations: n must be > 0"
	panicStepInvalid          = "rootfind: WithStep: h must be finite and > 0"
)

// Option configures a root finder.
type Option func(*Options)

// Options holds the effective configuration of one call.
type Options struct {
	tol     float64
	maxIter int
	h       float64
}

// WithTolerance sets the stopping tolerance. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration cap. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithStep sets the central-difference step used by Newton.
// Panics unless h is finite and > 0.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.h = h }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
		h:       DefaultStep,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
