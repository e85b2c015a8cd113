// SPDX-License-Identifier: MIT

package report

// Evaluation renders a single expression evaluation.
func Evaluation(x, y float64) string {
	return "Result at x = " + FormatFloat(x) + ":\n" + FormatFloat(y)
}

// Error renders err the way every front end reports failures.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return "Error: " + err.Error()
}
