// SPDX-License-Identifier: MIT

// Package problem describes one numerical task (a method plus its inputs),
// loads batches of tasks from YAML files and runs them through the solver
// packages, producing the text report of each.
//
// A problem file looks like:
//
//	problems:
//	  - name: cubic
//	    method: bisection
//	    params:
//	      expr: "x^3 + 4x^2 - 10 = 0"
//	      a: 1
//	      b: 2
//	      tol: 1e-4
//
// Params are decoded with mapstructure in weakly typed mode, so "1e-4" and
// 1e-4 are equivalent. Keys that are absent keep the defaults of the method
// (see Defaults); unknown keys are rejected.
package problem
