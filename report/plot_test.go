package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/numeth/linsys"
	"github.com/katalvlaran/numeth/report"
	"github.com/katalvlaran/numeth/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestPlotRoot(t *testing.T) {
	trace := rootfind.Trace{{Iter: 1, X: 1.5}, {Iter: 2, X: 1.25}, {Iter: 3, X: 1.375}}

	var buf bytes.Buffer
	require.NoError(t, report.PlotRoot(&buf, "Bisection", trace, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, report.PlotRoot(&buf, "Bisection", trace, "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestPlotSweeps(t *testing.T) {
	trace := linsys.Trace{
		{Iter: 1, X: []float64{0.9, -2.29, 3.067}},
		{Iter: 2, X: []float64{1.0513, -1.99843, 3.009789}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.PlotSweeps(&buf, "Gauss-Seidel", trace, "png"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestPlotErrors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, report.PlotRoot(&buf, "empty", nil, "png"), report.ErrEmptyTrace)
	require.ErrorIs(t, report.PlotSweeps(&buf, "empty", nil, "png"), report.ErrEmptyTrace)

	err := report.PlotRoot(&buf, "bad", rootfind.Trace{{Iter: 1, X: 1}}, "bmp-ish")
	require.Error(t, err)
}
