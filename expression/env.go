// SPDX-License-Identifier: MIT

package expression

import "math"

// Variable is the name of the single free variable.
const Variable = "x"

// functions bound in every environment.
var functions = map[string]func(float64) float64{
	"sin":    math.Sin,
	"cos":    math.Cos,
	"tan":    math.Tan,
	"asin":   math.Asin,
	"acos":   math.Acos,
	"atan":   math.Atan,
	"sinh":   math.Sinh,
	"cosh":   math.Cosh,
	"tanh":   math.Tanh,
	"exp":    math.Exp,
	"log":    math.Log,
	"log10":  math.Log10,
	"log2":   math.Log2,
	"sqrt":   math.Sqrt,
	"cbrt":   math.Cbrt,
	"signum": signum,
}

// constants bound in every environment.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// signum returns -1, 0 or 1 with the sign of v; NaN stays NaN.
func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return v
}

// newEnv builds a fresh environment with x bound to zero.
func newEnv() map[string]any {
	env := make(map[string]any, len(functions)+len(constants)+1)
	for name, fn := range functions {
		env[name] = fn
	}
	for name, v := range constants {
		env[name] = v
	}
	env[Variable] = 0.0

	return env
}

// isFunction reports whether name is called with parentheses rather than
// multiplied by them. expr builtins used in numeric code are included.
func isFunction(name string) bool {
	if _, ok := functions[name]; ok {
		return true
	}
	switch name {
	case "abs", "ceil", "floor", "round", "max", "min", "float", "int":
		return true
	}

	return false
}

// isWordOperator reports expr keywords that must never be glued to a
// neighbouring operand with '*'.
func isWordOperator(name string) bool {
	switch name {
	case "and", "or", "not", "in", "matches", "contains", "startsWith", "endsWith":
		return true
	}

	return false
}
