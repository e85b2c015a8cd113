// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/numeth/internal/logging"
	"github.com/katalvlaran/numeth/matrix"
)

// Operation tags for error wrapping.
const (
	opNewSystem   = "NewSystem"
	opGaussian    = "Gaussian"
	opCramer      = "Cramer"
	opJacobi      = "Jacobi"
	opGaussSeidel = "GaussSeidel"
	opLU          = "LU"
)

// linsysErrorf wraps err with an operation tag.
func linsysErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// System is a validated square linear system A·x = b.
type System struct {
	a *matrix.Dense
	b []float64
}

// NewSystem validates and copies A and b.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrDimensionMismatch when len(b) != A.Rows().
func NewSystem(a matrix.Matrix, b []float64) (System, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return System{}, linsysErrorf(opNewSystem, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return System{}, linsysErrorf(opNewSystem, err)
	}

	n := a.Rows()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j], _ = a.At(i, j)
		}
	}
	dense, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return System{}, linsysErrorf(opNewSystem, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	return System{a: dense, b: rhs}, nil
}

// N returns the number of unknowns.
func (s System) N() int { return len(s.b) }

// A returns a copy of the coefficient matrix.
func (s System) A() *matrix.Dense { return s.a.Clone().(*matrix.Dense) }

// B returns a copy of the right-hand side.
func (s System) B() []float64 {
	out := make([]float64, len(s.b))
	copy(out, s.b)

	return out
}

// Residual returns max_i |(A·x - b)_i|.
func (s System) Residual(x []float64) (float64, error) {
	ax, err := matrix.MatVec(s.a, x)
	if err != nil {
		return 0, err
	}
	var worst float64
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-s.b[i]))
	}

	return worst, nil
}

// Sweep is the state after one iteration of an iterative solver.
type Sweep struct {
	Iter  int       // 1-based
	X     []float64 // estimate after the sweep
	Delta float64   // max_i |x_i - previous x_i|
}

// Trace is the ordered list of sweeps of one run.
type Trace []Sweep

// Component returns the estimates of unknown i across the trace.
func (t Trace) Component(i int) []float64 {
	out := make([]float64, len(t))
	for k, s := range t {
		out[k] = s.X[i]
	}

	return out
}

// Result is the outcome of an iterative solver.
type Result struct {
	X             []float64 // final estimate
	Iterations    int       // sweeps executed
	MaxIterations int       // cap in effect (the requested count for Jacobi)
	Converged     bool      // every |Δ| met the epsilon test
	Reason        error     // ErrMaxIterations when the cap stopped the run
	Trace         Trace
}

// ---------- Options ----------

const (
	// DefaultEpsilon is the per-component change tolerance of the iterative solvers.
	DefaultEpsilon = 1e-3

	// DefaultMaxIterations is the Gauss-Seidel safety cap.
	DefaultMaxIterations = 10000

	// PivotTolerance is the smallest pivot magnitude Gaussian accepts.
	PivotTolerance = 1e-10
)

const (
	panicEpsilonInvalid       = "linsys: WithEpsilon: eps must be finite and >= 0"
	panicMaxIterationsInvalid = "linsys: WithMaxIterations: n must be > 0"
	panicNilLogger            = "linsys: WithLogger: nil logger"
)

// Option configures a solver.
type Option func(*Options)

// Options holds the effective configuration of one solve.
type Options struct {
	eps     float64
	maxIter int
	guess   []float64
	log     *slog.Logger
}

// WithEpsilon sets the convergence tolerance of the iterative solvers.
// Panics unless eps is finite and >= 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations sets the Gauss-Seidel safety cap. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithInitialGuess sets the starting estimate of the iterative solvers
// (zeros by default). Its length is checked against the system at solve time.
func WithInitialGuess(x0 []float64) Option {
	guess := make([]float64, len(x0))
	copy(guess, x0)

	return func(o *Options) { o.guess = guess }
}

// WithLogger enables debug records for pivot steps and sweeps.
func WithLogger(log *slog.Logger) Option {
	if log == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.log = log }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
		log:     logging.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// startVector returns the initial guess for an n-unknown system.
func (o Options) startVector(n int) ([]float64, error) {
	x := make([]float64, n)
	if o.guess == nil {
		return x, nil
	}
	if err := matrix.ValidateVecLen(o.guess, n); err != nil {
		return nil, fmt.Errorf("initial guess has %d entries, want %d: %w", len(o.guess), n, err)
	}
	copy(x, o.guess)

	return x, nil
}
