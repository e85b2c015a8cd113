// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/katalvlaran/numeth/internal/problem"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the available methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRenderer(cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())))
			if err != nil {
				return err
			}
			text, err := r.Render(catalogue())
			if err != nil {
				return fmt.Errorf("render methods: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)

			return nil
		},
	}
}

// newRenderer picks an adaptive style on a terminal and plain text
// otherwise.
func newRenderer(tty bool) (*glamour.TermRenderer, error) {
	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}

	return glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
}

// catalogue renders the method list as markdown.
func catalogue() string {
	var sb strings.Builder
	sb.WriteString("# Methods\n\n## Roots of f(x) = 0\n\n")
	for _, m := range problem.Methods() {
		switch m {
		case problem.Gauss:
			sb.WriteString("\n## Linear systems\n\n")
		case problem.Multiply:
			sb.WriteString("\n## Other\n\n")
		}
		fmt.Fprintf(&sb, "- `%s`: %s\n", m, m.Description())
	}
	sb.WriteString("\nRun `numeth <method> --help` for the inputs of a method.\n")

	return sb.String()
}
