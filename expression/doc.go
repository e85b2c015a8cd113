// SPDX-License-Identifier: MIT

// Package expression compiles algebraic strings in one free variable x into
// callables used by the root finders.
//
// Evaluation is delegated to github.com/expr-lang/expr. This package only
// prepares the text:
//
//   - an optional trailing "= 0" is removed (WithStripZeroSuffix),
//   - implicit multiplication is made explicit: "4x^2" → "4*x^2",
//     "2(x+1)" → "2*(x+1)", "(x+1)(x-1)" → "(x+1)*(x-1)",
//   - the environment binds x, the constants pi and e and the usual
//     elementary functions (sin, cos, tan, asin, acos, atan, sinh, cosh,
//     tanh, exp, log, log10, log2, sqrt, cbrt, signum); abs, ceil and floor
//     are expr builtins.
//
// Both "^" and "**" denote exponentiation. Every failure, at compile time or
// at evaluation time, is reported as ErrExpression wrapping the cause.
//
//	e, err := expression.Compile("x^3 + 4x^2 - 10 = 0", expression.WithStripZeroSuffix())
//	y, err := e.Eval(1.5) // 2.375
package expression
