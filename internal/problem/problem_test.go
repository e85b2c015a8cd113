package problem_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numeth/expression"
	"github.com/katalvlaran/numeth/internal/logging"
	"github.com/katalvlaran/numeth/internal/problem"
	"github.com/katalvlaran/numeth/linsys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, p problem.Problem) problem.Outcome {
	t.Helper()
	out, err := p.Run(nil)
	require.NoError(t, err)
	return out
}

func TestParseMethod(t *testing.T) {
	m, err := problem.ParseMethod("  Gauss-Seidel ")
	require.NoError(t, err)
	assert.Equal(t, problem.GaussSeidel, m)

	m, err = problem.ParseMethod("gaussian")
	require.NoError(t, err)
	assert.Equal(t, problem.Gauss, m)

	_, err = problem.ParseMethod("simplex")
	require.ErrorIs(t, err, problem.ErrUnknownMethod)
}

func TestDefaultsRun(t *testing.T) {
	for _, m := range problem.Methods() {
		t.Run(string(m), func(t *testing.T) {
			out := run(t, problem.New("default", m))
			assert.NotEmpty(t, out.Report)
			assert.Equal(t, m, out.Method)
		})
	}
}

func TestRun_DefaultReports(t *testing.T) {
	out := run(t, problem.New("", problem.Bisection))
	assert.True(t, strings.HasSuffix(out.Report, "\nRoot ≈ 1.365234375"))
	assert.Len(t, out.Steps, 9)

	out = run(t, problem.New("", problem.Cramer))
	assert.Equal(t, "Solution:\nx = 1.0\ny = -0.0\nz = 1.0", out.Report)

	out = run(t, problem.New("", problem.Multiply))
	assert.Equal(t, "Product of A and B:\n[70.0]\n", out.Report)

	out = run(t, problem.New("", problem.Eval))
	assert.Equal(t, "Result at x = 1.0:\n4.0", out.Report)

	out = run(t, problem.New("", problem.Jacobi))
	assert.True(t, strings.HasPrefix(out.Report, "After 5 iterations:\nx = "))
	assert.Len(t, out.Sweeps, 5)

	out = run(t, problem.New("", problem.GaussSeidel))
	assert.True(t, strings.HasSuffix(out.Report, "Converged solution:\nx ≈ 1.0000, y ≈ -2.0000, z ≈ 3.0000"))
	assert.Len(t, out.Sweeps, 5)

	out = run(t, problem.New("", problem.Newton))
	assert.Equal(t, "Iter 1: x = 0.696564\nIter 2: x = 0.732115\nIter 3: x = 0.732244\n"+
		"Iter 4: x = 0.732244\nConverged to root: 0.732244", out.Report)
}

func TestRun_LogsResidual(t *testing.T) {
	var buf bytes.Buffer
	_, err := problem.New("", problem.Cramer).Run(logging.NewWriter(&buf, slog.LevelDebug))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=\"linear solve\" method=cramer residual=")

	buf.Reset()
	_, err = problem.New("", problem.Jacobi).Run(logging.NewWriter(&buf, slog.LevelDebug))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "method=jacobi residual=")
}

func TestRun_FixedPointStripZero(t *testing.T) {
	p := problem.New("", problem.FixedPoint)
	out := run(t, p)
	assert.Contains(t, out.Report, "Converged to root: 0.56")

	p.Params.StripZero = false
	_, err := p.Run(nil)
	require.ErrorIs(t, err, expression.ErrExpression)
}

func TestRun_Errors(t *testing.T) {
	p := problem.New("", problem.Secant)
	p.Params.Tol = 0
	_, err := p.Run(nil)
	require.ErrorIs(t, err, problem.ErrInvalidParam)

	p = problem.New("", problem.GaussSeidel)
	p.Params.Eps = -1
	_, err = p.Run(nil)
	require.ErrorIs(t, err, problem.ErrInvalidParam)

	p = problem.New("", problem.Gauss)
	p.Params.Equations = []string{"x + y = 1", "2x + 2y = 2"}
	_, err = p.Run(nil)
	require.ErrorIs(t, err, linsys.ErrSingularMatrix)

	p = problem.New("", problem.Jacobi)
	p.Params.Iterations = 0
	_, err = p.Run(nil)
	require.ErrorIs(t, err, linsys.ErrInvalidIterations)

	p = problem.Problem{Method: problem.Method("simplex")}
	_, err = p.Run(nil)
	require.ErrorIs(t, err, problem.ErrUnknownMethod)
}

const sampleFile = `
problems:
  - name: cubic
    method: Bisection
    params:
      expr: "x^3 + 4x^2 - 10 = 0"
      a: 1
      b: "2"
      tol: "1e-4"
  - method: gauss
    params:
      equations:
        - "x + y = 3"
        - "x - y = 1"
  - name: single
    method: eval
    params:
      expr: "sin(pi/2)"
      x: 0
`

func TestDecode(t *testing.T) {
	problems, err := problem.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, problems, 3)

	assert.Equal(t, "cubic", problems[0].Name)
	assert.Equal(t, problem.Bisection, problems[0].Method)
	assert.Equal(t, 2.0, problems[0].Params.B)
	assert.Equal(t, 1e-4, problems[0].Params.Tol)
	assert.Equal(t, 100, problems[0].Params.MaxIter)

	assert.Equal(t, "problem 2", problems[1].Name)
	assert.Equal(t, []string{"x + y = 3", "x - y = 1"}, problems[1].Params.Equations)
	out := run(t, problems[1])
	assert.Equal(t, "Solution:\nx = 2.0\ny = 1.0", out.Report)

	out = run(t, problems[2])
	assert.Equal(t, "Result at x = 0.0:\n1.0", out.Report)
}

func TestDecode_Errors(t *testing.T) {
	_, err := problem.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, problem.ErrNoProblems)

	_, err = problem.Decode(strings.NewReader("problems:\n  - method: simplex\n"))
	require.ErrorIs(t, err, problem.ErrUnknownMethod)
	assert.Contains(t, err.Error(), "problem 1")

	_, err = problem.Decode(strings.NewReader("problems:\n  - method: newton\n    params:\n      tolerance: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tolerance")

	_, err = problem.Decode(strings.NewReader("problems: [\n"))
	require.Error(t, err)
}

func TestDecodeParams_SingleEquationString(t *testing.T) {
	p, err := problem.DecodeParams(problem.Gauss, map[string]any{"equations": "2x = 4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2x = 4"}, p.Equations)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	problems, err := problem.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, problems, 3)

	_, err = problem.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOutcomePlot(t *testing.T) {
	var buf bytes.Buffer
	out := run(t, problem.New("", problem.Secant))
	require.NoError(t, out.Plot(&buf, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	out = run(t, problem.New("", problem.GaussSeidel))
	require.NoError(t, out.Plot(&buf, "png"))
	assert.NotZero(t, buf.Len())

	out = run(t, problem.New("", problem.Cramer))
	require.ErrorIs(t, out.Plot(&buf, "png"), problem.ErrNothingToPlot)
}
