package expression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numeth/expression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		want float64
	}{
		{"polynomial", "x^3 + 4x^2 - 10", 1.5, 2.375},
		{"power of two", "2^x - 5x + 2", 0, 3},
		{"double star", "x**2", 3, 9},
		{"cosine", "cos(x)", 0, 1},
		{"product of groups", "(x+1)(x-1)", 3, 8},
		{"integer result", "2+3", 0, 5},
		{"builtins", "abs(x) + floor(x)", -1.5, -0.5},
		{"signum", "signum(x) * 4", -0.25, -4},
		{"sqrt", "sqrt(x)", 16, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expression.Eval(tc.src, tc.x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestEval_Constants(t *testing.T) {
	got, err := expression.Eval("2e", 0)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.E, got, 1e-12)

	got, err = expression.Eval("sin(pi/2)", 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = expression.Eval("log(e) + log10(x)", 100)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

func TestCompile_ReusedAcrossCalls(t *testing.T) {
	e, err := expression.Compile("x^2 - 2 = 0", expression.WithStripZeroSuffix())
	require.NoError(t, err)
	assert.Equal(t, "x^2 - 2", e.Source())

	f := e.Func()
	for _, x := range []float64{0, 1, 2, -3} {
		got, err := f(x)
		require.NoError(t, err)
		assert.Equal(t, x*x-2, got)
	}
}

func TestCompile_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"unknown variable", "y + 1"},
		{"dangling operator", "x +"},
		{"unbalanced", "sin(x"},
		{"empty", ""},
		{"equation kept literally", "cos(x) = 0"},
		{"string result", `"abc"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := expression.Compile(tc.src)
			require.ErrorIs(t, err, expression.ErrExpression)
		})
	}
}

func TestStripOption(t *testing.T) {
	_, err := expression.Compile("cos(x) = 0")
	require.ErrorIs(t, err, expression.ErrExpression)

	got, err := expression.Eval("cos(x) = 0", 0, expression.WithStripZeroSuffix())
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}
