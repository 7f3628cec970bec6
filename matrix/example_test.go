package matrix_test

import (
	"fmt"

	"github.com/jits/ProgrammingAssignment2/matrix"
)

// ExampleInverse demonstrates inverting a small dense matrix.
func ExampleInverse() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(inv)
	// Output:
	// [-2, 1]
	// [1.5, -0.5]
}

// ExampleMul demonstrates the round-trip M × M⁻¹ = I.
func ExampleMul() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	inv, _ := matrix.Inverse(m)

	prod, _ := matrix.Mul(m, inv)
	I, _ := matrix.IdentityLike(m)
	ok, _ := matrix.AllClose(I, prod, 1e-9)
	fmt.Println("M × M⁻¹ ≈ I:", ok)
	// Output:
	// M × M⁻¹ ≈ I: true
}
