// SPDX-License-Identifier: MIT

// Package report renders solver results as the plain-text reports shown to
// users, and draws convergence charts.
//
// Text layouts are fixed; scripts and golden tests compare them byte for
// byte. Two number styles are used:
//
//   - FormatFixed, six decimals in iteration lines and four in Gauss-Seidel
//     summaries, rounded half-up on the shortest decimal of the value, and
//   - FormatFloat, the shortest round-trip decimal that always carries a
//     fractional digit: 1.0, -0.0, 1.365234375, 3.0278809762504273E-17.
//
// Unknowns are named x, y, z for systems of up to three equations and
// x1..xn beyond that.
package report
