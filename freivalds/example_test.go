// Package freivalds_test contains runnable examples for the verifier.
package freivalds_test

import (
	"fmt"

	"github.com/katalvlaran/randcheck/freivalds"
	"github.com/katalvlaran/randcheck/matrix"
)

// ExampleVerify checks an exact 3×3 product. Because C really equals A·B,
// the verdict is true for every witness vector — the output below holds
// for any seed.
func ExampleVerify() {
	a, _ := matrix.FromRows([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b, _ := matrix.FromRows([][]int64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}})
	c, _ := matrix.FromRows([][]int64{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}})

	ok, err := freivalds.Verify(a, b, c, freivalds.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("A·B = C:", ok)
	// Output:
	// A·B = C: true
}

// ExampleAmplify drives the check through 10 unanimous trials. A true
// product passes all of them deterministically; a wrong product would be
// rejected with probability ≥ 1 − 2⁻¹⁰.
func ExampleAmplify() {
	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})
	c, _ := matrix.Mul(a, b) // exact product as the claim under test

	ok, err := freivalds.Amplify(a, b, c, 10, freivalds.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("verified after 10 trials:", ok)
	// Output:
	// verified after 10 trials: true
}
