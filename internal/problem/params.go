// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/numeth/linsys"
)

// Method names a solver.
type Method string

// Supported methods.
const (
	FixedPoint    Method = "fixed-point"
	Newton        Method = "newton"
	Secant        Method = "secant"
	Bisection     Method = "bisection"
	FalsePosition Method = "false-position"
	Gauss         Method = "gauss"
	Cramer        Method = "cramer"
	LU            Method = "lu"
	Jacobi        Method = "jacobi"
	GaussSeidel   Method = "gauss-seidel"
	Multiply      Method = "multiply"
	Eval          Method = "eval"
)

// Methods lists every supported method in catalogue order.
func Methods() []Method {
	return []Method{
		FixedPoint, Newton, Secant, Bisection, FalsePosition,
		Gauss, Cramer, LU, Jacobi, GaussSeidel,
		Multiply, Eval,
	}
}

// ParseMethod resolves a method name, ignoring case and surrounding space.
// "gaussian" and "gauss-elimination" are accepted for Gauss.
func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case "gaussian", "gauss-elimination":
		return Gauss, nil
	}
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}

	return "", fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

var descriptions = map[Method]string{
	FixedPoint:    "fixed-point iteration x = g(x)",
	Newton:        "Newton-Raphson with a central-difference derivative",
	Secant:        "secant method from two starting points",
	Bisection:     "bisection of a sign-changing bracket [a, b]",
	FalsePosition: "false position (regula falsi) on a bracket",
	Gauss:         "Gaussian elimination with partial pivoting",
	Cramer:        "Cramer's rule with determinants",
	LU:            "LU factorisation with partial pivoting",
	Jacobi:        "Jacobi iteration for a fixed number of sweeps",
	GaussSeidel:   "Gauss-Seidel iteration until every change is within eps",
	Multiply:      "matrix product A × B",
	Eval:          "evaluate an expression in x",
}

// Description returns a one-line summary of m.
func (m Method) Description() string { return descriptions[m] }

// IsRootFinder reports whether m solves f(x) = 0 (or g(x) = x).
func (m Method) IsRootFinder() bool {
	switch m {
	case FixedPoint, Newton, Secant, Bisection, FalsePosition:
		return true
	}

	return false
}

// IsLinear reports whether m solves a linear system.
func (m Method) IsLinear() bool {
	switch m {
	case Gauss, Cramer, LU, Jacobi, GaussSeidel:
		return true
	}

	return false
}

// Params holds the inputs of every method; each method reads only the
// fields it needs.
type Params struct {
	// Root finders.
	Expr      string  `mapstructure:"expr"`
	X0        float64 `mapstructure:"x0"`
	X1        float64 `mapstructure:"x1"`
	A         float64 `mapstructure:"a"`
	B         float64 `mapstructure:"b"`
	Tol       float64 `mapstructure:"tol"`
	MaxIter   int     `mapstructure:"max_iter"`
	StripZero bool    `mapstructure:"strip_zero"`

	// Linear systems.
	Equations  []string  `mapstructure:"equations"`
	Iterations int       `mapstructure:"iterations"`
	Eps        float64   `mapstructure:"eps"`
	Guess      []float64 `mapstructure:"guess"`

	// Matrix product.
	MatrixA string `mapstructure:"matrix_a"`
	MatrixB string `mapstructure:"matrix_b"`

	// Evaluation point.
	X float64 `mapstructure:"x"`
}

// Root-finder iteration cap shared by every default.
const defaultRootMaxIter = 100

// Defaults returns the starting inputs of m: a worked example that runs
// as-is, with the tolerances the methods are usually taught with.
func Defaults(m Method) Params {
	p := Params{StripZero: true, MaxIter: defaultRootMaxIter}
	switch m {
	case FixedPoint:
		p.Expr, p.X0, p.Tol = "e^-x = 0", 0, 0.001
	case Newton:
		p.Expr, p.X0, p.Tol = "2^x - 5*x + 2 = 0", 0, 0.0001
	case Secant:
		p.Expr, p.X0, p.X1, p.Tol = "x^3 - x - 1 = 0", 1.2, 1.4, 0.0001
	case Bisection:
		p.Expr, p.A, p.B, p.Tol = "x^3 + 4x^2 - 10 = 0", 1, 2, 0.0001
	case FalsePosition:
		p.Expr, p.A, p.B, p.Tol = "x^3 - 4cos(x) = 0", 1, 2, 0.001
	case Gauss, LU:
		p.Equations = []string{"2x - y + 3z = 5", "x + 4y - 2z = 1", "3x + y + 5z = 2"}
	case Cramer:
		p.Equations = []string{"2x + y - z = 1", "3x - y + z = 4", "2x + 3y + z = 3"}
	case Jacobi:
		p.Equations = []string{"4x + 22y - 13z = -128", "19x - 13y + 4z = 111", "8x + 8y + 17z = 10"}
		p.Iterations, p.Eps = 5, linsys.DefaultEpsilon
	case GaussSeidel:
		p.Equations = []string{"10x + 2y + z = 9", "2x + 20y - 2z = -44", "-2x + 3y + 10z = 22"}
		p.Eps, p.MaxIter = linsys.DefaultEpsilon, linsys.DefaultMaxIterations
	case Multiply:
		p.MatrixA, p.MatrixB = "[5,6,7,8]", "[1,2,3,4]"
	case Eval:
		p.Expr, p.X = "x^2 + 2*x + 1", 1.0
	}

	return p
}

// validate rejects values that the solver option constructors treat as
// programmer errors.
func (p Params) validate(m Method) error {
	switch {
	case m.IsRootFinder() && !(p.Tol > 0 && !math.IsInf(p.Tol, 1)):
		return fmt.Errorf("tol %g must be finite and > 0: %w", p.Tol, ErrInvalidParam)
	case (m.IsRootFinder() || m == GaussSeidel) && p.MaxIter <= 0:
		return fmt.Errorf("max_iter %d must be > 0: %w", p.MaxIter, ErrInvalidParam)
	case (m == Jacobi || m == GaussSeidel) && !(p.Eps >= 0 && !math.IsInf(p.Eps, 1)):
		return fmt.Errorf("eps %g must be finite and >= 0: %w", p.Eps, ErrInvalidParam)
	}

	return nil
}
