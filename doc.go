// Package numeth collects classical numerical-analysis methods taught in a
// first numerical methods course, with byte-stable text reports.
//
// Subpackages:
//
//	rootfind/   fixed-point iteration, Newton-Raphson, secant, bisection, false position
//	linsys/     Gaussian elimination, Cramer's rule, LU, Jacobi, Gauss-Seidel
//	matrix/     dense row-major matrix, products, determinants, "[a,b;c,d]" literals
//	equation/   "2x - y + 3z = 5" parser building (A, b)
//	expression/ algebraic expressions in x ("x^3 + 4x^2 - 10 = 0")
//	report/     plain-text reports and convergence charts
//
// Quick example:
//
//	e, _ := expression.Compile("x^3 + 4x^2 - 10 = 0", expression.WithStripZeroSuffix())
//	res, _ := rootfind.Bisection(e.Func(), 1, 2, rootfind.WithTolerance(1e-4))
//	fmt.Println(report.Bisection(res))
//
// The numeth command (cmd/numeth) exposes every method on the command line
// and runs batches of problems from YAML files.
package numeth
