package report_test

import (
	"fmt"

	"github.com/katalvlaran/numeth/report"
	"github.com/katalvlaran/numeth/rootfind"
)

func ExampleSecant() {
	f := func(x float64) (float64, error) { return x*x*x - x - 1, nil }
	res, err := rootfind.Secant(f, 1.2, 1.4, rootfind.WithTolerance(1e-4))
	if err != nil {
		fmt.Println(report.Error(err))
		return
	}
	fmt.Println(report.Secant(res))

	// Output:
	// Secant Method:
	// Iter 1: x = 1.315686
	// Iter 2: x = 1.324112
	// Iter 3: x = 1.324723
	// Iter 4: x = 1.324718
	// Converged to root: 1.324718
}

func ExampleFormatFloat() {
	fmt.Println(report.FormatFloat(70))
	fmt.Println(report.FormatFloat(3.0278809762504273e-17))

	// Output:
	// 70.0
	// 3.0278809762504273E-17
}
