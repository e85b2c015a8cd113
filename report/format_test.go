package report_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numeth/report"
	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1.365234375, "1.365234375"},
		{-1.9992699999999999, "-1.9992699999999999"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{3.0278809762504273e-17, "3.0278809762504273E-17"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{-1.5e20, "-1.5E20"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, report.FormatFloat(tc.in))
		})
	}
}

func TestVariableNames(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, report.VariableNames(2))
	assert.Equal(t, []string{"x", "y", "z"}, report.VariableNames(3))
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, report.VariableNames(4))
}

func TestFormatFixed(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want string
	}{
		{2.375, 6, "2.375000"},
		{0.0078125, 6, "0.007813"},
		{1.3671875, 6, "1.367188"},
		{0.0008124999999999999, 6, "0.000812"},
		{-1.796875, 6, "-1.796875"},
		{0.9999996, 6, "1.000000"},
		{5e-7, 6, "0.000001"},
		{2.5e-7, 6, "0.000000"},
		{-1e-9, 6, "-0.000000"},
		{0, 6, "0.000000"},
		{1.00005, 4, "1.0001"},
		{-2.0000030187, 4, "-2.0000"},
		{3814279.1047601975, 6, "3814279.104760"},
		{1234.5, 0, "1235"},
		{math.NaN(), 6, "NaN"},
		{math.Inf(1), 6, "Infinity"},
		{math.Inf(-1), 4, "-Infinity"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, report.FormatFixed(tc.in, tc.prec), "FormatFixed(%v, %d)", tc.in, tc.prec)
	}
}
