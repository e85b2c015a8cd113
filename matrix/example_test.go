package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numeth/matrix"
)

// ExampleMul shows the single-row exception: B is used as a column vector.
func ExampleMul() {
	a, _ := matrix.ParseRows("[5,6,7,8]")
	b, _ := matrix.ParseRows("[1,2,3,4]")

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Print(p)

	// Output:
	// [70]
}

// ExampleDet computes the determinant used by Cramer's rule.
func ExampleDet() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 1, -1}, {3, -1, 1}, {2, 3, 1}})
	d, _ := matrix.Det(a)
	fmt.Println(d)

	// Output:
	// -20
}
