// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/numeth/internal/problem"
	"github.com/spf13/cobra"
)

// errBatchFailed reports that at least one problem of a batch failed.
var errBatchFailed = errors.New("some problems failed")

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <problems.yaml>",
		Short: "Run every problem of a YAML problem file",
		Long: `Runs the problems of a YAML file in order and prints one report per problem.
A failing problem is reported and the batch continues. With --plot DIR, a chart is
written to DIR for every problem with an iteration trace.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := problem.LoadFile(args[0])
			if err != nil {
				return err
			}
			plotDir, _ := cmd.Flags().GetString(flagPlot)
			if plotDir != "" {
				if err = os.MkdirAll(plotDir, 0o755); err != nil {
					return fmt.Errorf("plot directory: %w", err)
				}
			}

			var (
				log    = loggerFor(cmd)
				stdout = cmd.OutOrStdout()
				failed int
			)
			for i, p := range problems {
				if i > 0 {
					fmt.Fprintln(stdout)
				}
				printHeader(stdout, fmt.Sprintf("%s (%s)", p.Name, p.Method))

				out, err := p.Run(log)
				if err != nil {
					printError(stdout, err)
					failed++
					continue
				}
				fmt.Fprintln(stdout, out.Report)

				if plotDir == "" || len(out.Steps)+len(out.Sweeps) == 0 {
					continue
				}
				path := filepath.Join(plotDir, fmt.Sprintf("%02d-%s.png", i+1, p.Method))
				if err = savePlot(path, out); err != nil {
					printError(stdout, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d: %w", failed, len(problems), errBatchFailed)
			}

			return nil
		},
	}
}
