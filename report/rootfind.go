// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/numeth/rootfind"
)

// Fixed messages of the root-finder reports.
const (
	msgZeroDerivative    = "Derivative is zero. Method fails."
	msgBisectionBracket  = "f(a) and f(b) must have opposite signs."
	msgFalsePosBracket   = "Error: f(x0) and f(x1) must have opposite signs."
	headerSecant         = "Secant Method:\n"
	headerBisection      = "Iter\t a\t b\t c\t f(c)\n"
	formatBisectionRow   = "%d\t %s\t %s\t %s\t %s\n"
	formatFalsePosHeader = "%-15s %-15s %-20s %-20s %-25s\n"
	formatFalsePosRow    = "%-5d %-15s %-15s %-15s %-15s\n"
	tracePrecision       = 6
)

// FixedPoint renders a fixed-point iteration:
//
//	Iter 1: x = 0.877583
//	...
//	Converged to root: 0.739050
func FixedPoint(res rootfind.Result) string {
	var sb strings.Builder
	writeIterLines(&sb, res)

	return sb.String()
}

// Newton renders a Newton-Raphson run in the FixedPoint layout. A vanishing
// derivative replaces the whole report with "Derivative is zero. Method fails.".
func Newton(res rootfind.Result) string {
	if errors.Is(res.Reason, rootfind.ErrZeroDerivative) {
		return msgZeroDerivative
	}

	return FixedPoint(res)
}

// Secant renders a secant run: the FixedPoint layout under "Secant Method:".
func Secant(res rootfind.Result) string {
	var sb strings.Builder
	sb.WriteString(headerSecant)
	writeIterLines(&sb, res)

	return sb.String()
}

// writeIterLines writes "Iter n: x = ..." lines and the closing line.
func writeIterLines(sb *strings.Builder, res rootfind.Result) {
	for _, s := range res.Trace {
		fmt.Fprintf(sb, "Iter %d: x = %s\n", s.Iter, FormatFixed(s.X, tracePrecision))
	}
	if res.Converged() {
		sb.WriteString("Converged to root: " + FormatFixed(res.Root, tracePrecision))
		return
	}
	fmt.Fprintf(sb, "Did not converge within %d iterations.", res.MaxIterations)
}

// Bisection renders the tab-separated bisection table followed by
// "Root ≈ <c>" or the maximum-iterations line.
func Bisection(res rootfind.Result) string {
	if errors.Is(res.Reason, rootfind.ErrInvalidBracket) {
		return msgBisectionBracket
	}

	var sb strings.Builder
	sb.WriteString(headerBisection)
	for _, s := range res.Trace {
		fmt.Fprintf(&sb, formatBisectionRow, s.Iter, FormatFixed(s.Lo, tracePrecision),
			FormatFixed(s.Hi, tracePrecision), FormatFixed(s.X, tracePrecision), FormatFixed(s.FX, tracePrecision))
	}
	if res.Converged() {
		sb.WriteString("\nRoot ≈ " + FormatFloat(res.Root))
	} else {
		sb.WriteString("\nMaximum iterations reached. Final approximation: " + FormatFloat(res.Root))
	}

	return sb.String()
}

// FalsePosition renders the left-aligned false-position table followed by
// "Approximate Root: <x2>" or the non-convergence line.
func FalsePosition(res rootfind.Result) string {
	if errors.Is(res.Reason, rootfind.ErrInvalidBracket) {
		return msgFalsePosBracket
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, formatFalsePosHeader, "Iter", "x0", "x1", "x2", "f(x2)")
	for _, s := range res.Trace {
		fmt.Fprintf(&sb, formatFalsePosRow, s.Iter, FormatFixed(s.Lo, tracePrecision),
			FormatFixed(s.Hi, tracePrecision), FormatFixed(s.X, tracePrecision), FormatFixed(s.FX, tracePrecision))
	}
	if res.Converged() {
		sb.WriteString("\nApproximate Root: " + FormatFloat(res.Root))
	} else {
		fmt.Fprintf(&sb, "\nDid not converge within %d iterations. Last approximation: %s",
			res.MaxIterations, FormatFloat(res.Root))
	}

	return sb.String()
}
