// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/numeth/equation"
	"github.com/katalvlaran/numeth/expression"
	"github.com/katalvlaran/numeth/internal/logging"
	"github.com/katalvlaran/numeth/linsys"
	"github.com/katalvlaran/numeth/matrix"
	"github.com/katalvlaran/numeth/report"
	"github.com/katalvlaran/numeth/rootfind"
)

// Outcome is the rendered result of one run plus the trace behind it.
type Outcome struct {
	Method Method
	Report string

	// At most one of the traces is set.
	Steps  rootfind.Trace
	Sweeps linsys.Trace
}

// Plot writes a convergence chart of the run to w in the given image
// format ("png", "svg", ...).
//
// Errors:
//   - ErrNothingToPlot for methods without an iteration trace.
//   - report.ErrEmptyTrace when the run stopped before its first step.
func (o Outcome) Plot(w io.Writer, format string) error {
	title := string(o.Method)
	switch {
	case o.Method.IsRootFinder():
		return report.PlotRoot(w, title, o.Steps, format)
	case o.Method == Jacobi || o.Method == GaussSeidel:
		return report.PlotSweeps(w, title, o.Sweeps, format)
	}

	return fmt.Errorf("%s: %w", o.Method, ErrNothingToPlot)
}

// Run executes p. log receives debug records from the solvers that
// support them; nil disables logging.
//
// Soft outcomes (no convergence, invalid bracket, zero derivative) are part
// of the report. Errors are reserved for unusable input and evaluation
// failures.
func (p Problem) Run(log *slog.Logger) (Outcome, error) {
	if log == nil {
		log = logging.NewNop()
	}
	if err := p.Params.validate(p.Method); err != nil {
		return Outcome{}, err
	}
	log.Debug("running problem", "name", p.Name, "method", string(p.Method))

	switch {
	case p.Method.IsRootFinder():
		return p.runRoot()
	case p.Method.IsLinear():
		return p.runLinear(log)
	case p.Method == Multiply:
		return p.runMultiply()
	case p.Method == Eval:
		return p.runEval()
	}

	return Outcome{}, fmt.Errorf("%q: %w", p.Method, ErrUnknownMethod)
}

func (p Problem) compileOptions() []expression.Option {
	if p.Params.StripZero {
		return []expression.Option{expression.WithStripZeroSuffix()}
	}

	return nil
}

func (p Problem) runRoot() (Outcome, error) {
	e, err := expression.Compile(p.Params.Expr, p.compileOptions()...)
	if err != nil {
		return Outcome{}, err
	}

	var (
		f    = rootfind.Func(e.Func())
		opts = []rootfind.Option{
			rootfind.WithTolerance(p.Params.Tol),
			rootfind.WithMaxIterations(p.Params.MaxIter),
		}
		res  rootfind.Result
		text func(rootfind.Result) string
	)
	switch p.Method {
	case FixedPoint:
		res, err = rootfind.FixedPoint(f, p.Params.X0, opts...)
		text = report.FixedPoint
	case Newton:
		res, err = rootfind.Newton(f, p.Params.X0, opts...)
		text = report.Newton
	case Secant:
		res, err = rootfind.Secant(f, p.Params.X0, p.Params.X1, opts...)
		text = report.Secant
	case Bisection:
		res, err = rootfind.Bisection(f, p.Params.A, p.Params.B, opts...)
		text = report.Bisection
	case FalsePosition:
		res, err = rootfind.FalsePosition(f, p.Params.A, p.Params.B, opts...)
		text = report.FalsePosition
	}
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Method: p.Method, Report: text(res), Steps: res.Trace}, nil
}

func (p Problem) runLinear(log *slog.Logger) (Outcome, error) {
	a, b, err := equation.ParseSystem(p.Params.Equations...)
	if err != nil {
		return Outcome{}, err
	}
	sys, err := linsys.NewSystem(a, b)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Method: p.Method}
	var x []float64
	switch p.Method {
	case Gauss:
		x, err = linsys.Gaussian(sys, linsys.WithLogger(log))
	case Cramer:
		x, err = linsys.Cramer(sys)
	case LU:
		x, err = linsys.LU(sys)
	case Jacobi:
		var res linsys.Result
		res, err = linsys.Jacobi(sys, p.Params.Iterations, p.iterativeOptions(log)...)
		x, out.Report, out.Sweeps = res.X, report.Jacobi(res), res.Trace
	case GaussSeidel:
		opts := append(p.iterativeOptions(log), linsys.WithMaxIterations(p.Params.MaxIter))
		var res linsys.Result
		res, err = linsys.GaussSeidel(sys, opts...)
		x, out.Report, out.Sweeps = res.X, report.GaussSeidel(res), res.Trace
	}
	if err != nil {
		return Outcome{}, err
	}
	if out.Report == "" {
		out.Report = report.Solution(x)
	}
	if r, rerr := sys.Residual(x); rerr == nil {
		log.Debug("linear solve", "method", string(p.Method), "residual", r)
	}

	return out, nil
}

func (p Problem) iterativeOptions(log *slog.Logger) []linsys.Option {
	opts := []linsys.Option{linsys.WithEpsilon(p.Params.Eps), linsys.WithLogger(log)}
	if len(p.Params.Guess) > 0 {
		opts = append(opts, linsys.WithInitialGuess(p.Params.Guess))
	}

	return opts
}

func (p Problem) runMultiply() (Outcome, error) {
	a, err := matrix.ParseRows(p.Params.MatrixA)
	if err != nil {
		return Outcome{}, fmt.Errorf("matrix A: %w", err)
	}
	b, err := matrix.ParseRows(p.Params.MatrixB)
	if err != nil {
		return Outcome{}, fmt.Errorf("matrix B: %w", err)
	}
	c, err := matrix.Mul(a, b)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Method: Multiply, Report: report.Product(c)}, nil
}

func (p Problem) runEval() (Outcome, error) {
	y, err := expression.Eval(p.Params.Expr, p.Params.X, p.compileOptions()...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Method: Eval, Report: report.Evaluation(p.Params.X, y)}, nil
}
