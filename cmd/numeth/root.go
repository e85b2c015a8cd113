// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/katalvlaran/numeth/internal/logging"
	"github.com/spf13/cobra"
)

// Persistent flag names.
const (
	flagLogLevel = "log-level"
	flagPlot     = "plot"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numeth",
		Short: "numeth runs classical numerical methods",
		Long: `numeth finds roots of f(x) = 0, solves linear systems, multiplies matrices
and evaluates expressions, printing the same step-by-step reports for every run.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String(flagLogLevel, "", "Log to stderr at this level: debug, info, warn or error (off when empty)")
	root.PersistentFlags().String(flagPlot, "", "Write a convergence chart (format from the extension: .png, .svg, .pdf)")

	for _, cmd := range newMethodCmds() {
		root.AddCommand(cmd)
	}
	root.AddCommand(newSolveCmd(), newMethodsCmd(), newVersionCmd())

	return root
}

// loggerFor builds the solver logger from --log-level. Solver steps are
// logged at debug.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	if name, _ := cmd.Flags().GetString(flagLogLevel); name != "" {
		return logging.NewWriter(cmd.ErrOrStderr(), logging.ParseLevel(name))
	}

	return logging.NewNop()
}
