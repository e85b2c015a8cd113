// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/numeth/linsys"
	"github.com/katalvlaran/numeth/rootfind"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart size.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// ErrEmptyTrace is returned when there is nothing to plot.
var ErrEmptyTrace = errors.New("report: empty trace")

// PlotRoot draws the estimate of every iteration of a root search and
// writes the chart to w. format is any gonum/plot image format ("png",
// "svg", "pdf", ...).
func PlotRoot(w io.Writer, title string, trace rootfind.Trace, format string) error {
	if len(trace) == 0 {
		return ErrEmptyTrace
	}
	pts := make(plotter.XYs, len(trace))
	for i, s := range trace {
		pts[i].X, pts[i].Y = float64(s.Iter), s.X
	}

	p := newPlot(title, "estimate")
	if err := plotutil.AddLinePoints(p, "x", pts); err != nil {
		return fmt.Errorf("PlotRoot: %w", err)
	}

	return save(w, p, format)
}

// PlotSweeps draws one line per unknown across the sweeps of an iterative
// linear solve.
func PlotSweeps(w io.Writer, title string, trace linsys.Trace, format string) error {
	if len(trace) == 0 {
		return ErrEmptyTrace
	}
	p := newPlot(title, "value")
	names := VariableNames(len(trace[0].X))
	for i, name := range names {
		pts := make(plotter.XYs, len(trace))
		for k, v := range trace.Component(i) {
			pts[k].X, pts[k].Y = float64(trace[k].Iter), v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("PlotSweeps: %w", err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	return save(w, p, format)
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	return p
}

func save(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(plotWidth, plotHeight, format)
	if err != nil {
		return fmt.Errorf("plot format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}

	return nil
}
