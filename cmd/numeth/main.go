// SPDX-License-Identifier: MIT

// Command numeth runs the numerical methods of the numeth module from the
// command line. Every method has its own sub-command whose flags default to
// a worked example; `numeth solve file.yaml` runs a batch of problems.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}

	return 0
}
