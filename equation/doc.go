// SPDX-License-Identifier: MIT

// Package equation parses linear equations such as "2x - y + 3z = 5" into a
// coefficient row and a right-hand side, and whole systems into (A, b).
//
// Grammar (after whitespace removal and lower-casing):
//
//	equation = lhs "=" number
//	lhs      = term { term }
//	term     = [ "+" | "-" ] [ coefficient [ "*" ] ] variable
//
// The grammar is strict: every term names exactly one variable exactly once.
// "2xy" and "xx" are rejected with ErrAmbiguousTerm rather than silently
// attributed to whichever letter is checked first. Repeated variables in
// different terms accumulate, so "x + 2x = 3" gives a coefficient of 3.
//
// The variable set defaults to x, y, z and can be changed with WithVariables.
package equation
