// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/numeth/internal/problem"
	"github.com/spf13/cobra"
)

// binder registers the flags of one method onto fields of p.
type binder func(cmd *cobra.Command, p *problem.Params)

func newMethodCmds() []*cobra.Command {
	binders := map[problem.Method]binder{
		problem.FixedPoint:    bindRoot(false, false),
		problem.Newton:        bindRoot(false, false),
		problem.Secant:        bindRoot(true, false),
		problem.Bisection:     bindRoot(false, true),
		problem.FalsePosition: bindRoot(false, true),
		problem.Gauss:         bindLinear,
		problem.Cramer:        bindLinear,
		problem.LU:            bindLinear,
		problem.Jacobi:        bindJacobi,
		problem.GaussSeidel:   bindGaussSeidel,
		problem.Multiply:      bindMultiply,
		problem.Eval:          bindEval,
	}

	cmds := make([]*cobra.Command, 0, len(binders))
	for _, m := range problem.Methods() {
		cmds = append(cmds, newMethodCmd(m, binders[m]))
	}

	return cmds
}

// newMethodCmd builds the sub-command of m. Flags start from the method
// defaults, so a bare `numeth <method>` runs the worked example.
func newMethodCmd(m problem.Method, bind binder) *cobra.Command {
	p := problem.New(string(m), m)
	cmd := &cobra.Command{
		Use:   string(m),
		Short: m.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := p.Run(loggerFor(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Report)

			if path, _ := cmd.Flags().GetString(flagPlot); path != "" {
				return savePlot(path, out)
			}

			return nil
		},
	}
	bind(cmd, &p.Params)

	return cmd
}

func bindRoot(secant, bracket bool) binder {
	return func(cmd *cobra.Command, p *problem.Params) {
		fs := cmd.Flags()
		fs.StringVarP(&p.Expr, "expr", "e", p.Expr, "Function of x; a trailing \"= 0\" is allowed")
		switch {
		case bracket:
			fs.Float64Var(&p.A, "a", p.A, "Left end of the bracket")
			fs.Float64Var(&p.B, "b", p.B, "Right end of the bracket")
		case secant:
			fs.Float64Var(&p.X0, "x0", p.X0, "First starting point")
			fs.Float64Var(&p.X1, "x1", p.X1, "Second starting point")
		default:
			fs.Float64Var(&p.X0, "x0", p.X0, "Starting point")
		}
		fs.Float64Var(&p.Tol, "tol", p.Tol, "Stopping tolerance")
		fs.IntVar(&p.MaxIter, "max-iter", p.MaxIter, "Iteration cap")
		fs.BoolVar(&p.StripZero, "strip-zero", p.StripZero, "Remove a trailing \"= 0\" from --expr")
	}
}

func bindEquations(cmd *cobra.Command, p *problem.Params) {
	cmd.Flags().StringArrayVar(&p.Equations, "eq", p.Equations, "Linear equation, repeat once per row (\"2x - y + 3z = 5\")")
}

func bindLinear(cmd *cobra.Command, p *problem.Params) {
	bindEquations(cmd, p)
}

func bindIterative(cmd *cobra.Command, p *problem.Params) {
	bindEquations(cmd, p)
	cmd.Flags().Float64Var(&p.Eps, "eps", p.Eps, "Per-component change tolerance")
	cmd.Flags().Float64SliceVar(&p.Guess, "guess", p.Guess, "Initial guess, comma separated (zeros by default)")
}

func bindJacobi(cmd *cobra.Command, p *problem.Params) {
	bindIterative(cmd, p)
	cmd.Flags().IntVarP(&p.Iterations, "iterations", "n", p.Iterations, "Number of sweeps")
}

func bindGaussSeidel(cmd *cobra.Command, p *problem.Params) {
	bindIterative(cmd, p)
	cmd.Flags().IntVar(&p.MaxIter, "max-iter", p.MaxIter, "Sweep cap")
}

func bindMultiply(cmd *cobra.Command, p *problem.Params) {
	cmd.Flags().StringVar(&p.MatrixA, "a", p.MatrixA, "Left matrix, rows separated by ';' (\"[1,2;3,4]\")")
	cmd.Flags().StringVar(&p.MatrixB, "b", p.MatrixB, "Right matrix")
}

func bindEval(cmd *cobra.Command, p *problem.Params) {
	cmd.Flags().StringVarP(&p.Expr, "expr", "e", p.Expr, "Expression in x")
	cmd.Flags().Float64Var(&p.X, "x", p.X, "Value of x")
}
