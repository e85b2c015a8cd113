// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/numeth/internal/problem"
	"github.com/katalvlaran/numeth/report"
	"github.com/muesli/termenv"
)

// ANSI palette indices.
const (
	colorError  = "1"
	colorHeader = "4"
)

// printError writes "Error: <message>", in red when w is a colour terminal.
func printError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String(report.Error(err)).Foreground(out.Color(colorError)))
}

// printHeader writes a bold section title for batch runs.
func printHeader(w io.Writer, title string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("== "+title+" ==").Bold().Foreground(out.Color(colorHeader)))
}

// savePlot writes the chart of o to path, choosing the image format from
// the file extension.
func savePlot(path string, o problem.Outcome) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	if err = o.Plot(f, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}
