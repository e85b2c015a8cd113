package rootfind_test

import (
	"fmt"

	"github.com/katalvlaran/numeth/rootfind"
)

func ExampleBisection() {
	f := func(x float64) (float64, error) { return x*x*x + 4*x*x - 10, nil }

	res, err := rootfind.Bisection(f, 1, 2, rootfind.WithTolerance(1e-4))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(res.Status, res.Iterations, res.Root)

	// Output:
	// converged 9 1.365234375
}

func ExampleSecant() {
	f := func(x float64) (float64, error) { return x*x*x - x - 1, nil }

	res, _ := rootfind.Secant(f, 1.2, 1.4, rootfind.WithTolerance(1e-4))
	for _, s := range res.Trace {
		fmt.Printf("Iter %d: x = %.6f\n", s.Iter, s.X)
	}

	// Output:
	// Iter 1: x = 1.315686
	// Iter 2: x = 1.324112
	// Iter 3: x = 1.324723
	// Iter 4: x = 1.324718
}
