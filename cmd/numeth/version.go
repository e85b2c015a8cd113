// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/numeth"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of numeth",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "numeth version %s\n", numeth.Version)
		},
	}
}
