package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestBisectionDefaults(t *testing.T) {
	code, out, errOut := runCLI(t, "bisection")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "Iter\t a\t b\t c\t f(c)\n1\t 1.000000\t 2.000000\t 1.500000\t 2.375000\n"))
	assert.True(t, strings.HasSuffix(out, "\nRoot ≈ 1.365234375\n"))
}

func TestSecantFlags(t *testing.T) {
	code, out, _ := runCLI(t, "secant", "--expr", "x^3 - x - 1", "--x0", "1.2", "--x1", "1.4", "--tol", "1e-4")
	require.Equal(t, 0, code)
	assert.Equal(t, "Secant Method:\nIter 1: x = 1.315686\nIter 2: x = 1.324112\n"+
		"Iter 3: x = 1.324723\nIter 4: x = 1.324718\nConverged to root: 1.324718\n", out)
}

func TestGaussSeidelDefaults(t *testing.T) {
	code, out, _ := runCLI(t, "gauss-seidel")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Iteration 1:\nx = 0.900000, y = -2.290000, z = 3.067000\n\n"))
	assert.True(t, strings.HasSuffix(out, "Converged solution:\nx ≈ 1.0000, y ≈ -2.0000, z ≈ 3.0000\n"))
}

func TestCramerEquations(t *testing.T) {
	code, out, _ := runCLI(t, "cramer", "--eq", "x + y = 3", "--eq", "x - y = 1")
	require.Equal(t, 0, code)
	assert.Equal(t, "Solution:\nx = 2.0\ny = 1.0\n", out)
}

func TestMultiplyAndEval(t *testing.T) {
	code, out, _ := runCLI(t, "multiply")
	require.Equal(t, 0, code)
	assert.Equal(t, "Product of A and B:\n[70.0]\n\n", out)

	code, out, _ = runCLI(t, "eval", "--expr", "x^2 + 2*x + 1", "--x", "2")
	require.Equal(t, 0, code)
	assert.Equal(t, "Result at x = 2.0:\n9.0\n", out)
}

func TestErrorsGoToStderr(t *testing.T) {
	code, out, errOut := runCLI(t, "gauss", "--eq", "x + y = 1", "--eq", "2x + 2y = 2")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(errOut, "Error: "))
	assert.Contains(t, errOut, "no unique solution")

	code, _, errOut = runCLI(t, "newton", "--tol", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: ")

	code, _, errOut = runCLI(t, "eval", "--expr", "x +* 2")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error: expression: invalid expression")
}

func TestPlotFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bisection.svg")
	code, _, errOut := runCLI(t, "bisection", "--plot", path)
	require.Equal(t, 0, code, errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	code, _, errOut = runCLI(t, "cramer", "--plot", filepath.Join(t.TempDir(), "cramer.png"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no trace to plot")
}

func TestLogLevel(t *testing.T) {
	code, _, errOut := runCLI(t, "gauss", "--log-level", "debug")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "gaussian pivot step")
	assert.Contains(t, errOut, "residual=")

	code, _, errOut = runCLI(t, "gauss-seidel", "--log-level", "error")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)

	code, _, errOut = runCLI(t, "gauss")
	require.Equal(t, 0, code)
	assert.Empty(t, errOut)
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problems:
  - name: product
    method: multiply
  - name: broken
    method: cramer
    params:
      equations: ["x + y = 1", "2x + 2y = 2"]
  - name: cubic
    method: bisection
`), 0o600))

	plots := filepath.Join(dir, "plots")
	code, out, errOut := runCLI(t, "solve", path, "--plot", plots)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "1 of 3")
	assert.Contains(t, out, "== product (multiply) ==\nProduct of A and B:\n[70.0]\n")
	assert.Contains(t, out, "== broken (cramer) ==\nError: ")
	assert.Contains(t, out, "Root ≈ 1.365234375")

	_, err := os.Stat(filepath.Join(plots, "03-bisection.png"))
	require.NoError(t, err)
}

func TestSolveMissingFile(t *testing.T) {
	code, _, errOut := runCLI(t, "solve", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "open problem file")
}

func TestMethodsAndVersion(t *testing.T) {
	code, out, _ := runCLI(t, "methods")
	require.Equal(t, 0, code)
	for _, name := range []string{"fixed-point", "false-position", "gauss-seidel", "multiply"} {
		assert.Contains(t, out, name)
	}

	code, out, _ = runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "numeth version 0.1.0\n", out)
}
