// Package matching_test contains runnable examples for the verifier.
package matching_test

import (
	"fmt"

	"github.com/katalvlaran/randcheck/matching"
	"github.com/katalvlaran/randcheck/matrix"
)

// ExampleHasPerfectMatching tests a graph where Hall's condition fails:
// left-vertices 0 and 1 both reach only right-vertex 1. The symbolic
// Edmonds determinant is identically zero, so the verdict is false on
// every call, for any seed — rejection here is deterministic.
func ExampleHasPerfectMatching() {
	adj, _ := matrix.FromRows([][]int64{
		{0, 1, 0},
		{0, 1, 0},
		{1, 0, 1},
	})

	ok, err := matching.HasPerfectMatching(adj, matching.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("perfect matching:", ok)
	// Output:
	// perfect matching: false
}

// ExampleHasPerfectMatchingAmplified tests a graph with the perfect
// matching (0,0), (1,2), (2,1). A single trial misses it with probability
// ≤ 3/p ≈ 3·10⁻⁹; five trials shrink that below 10⁻⁴².
func ExampleHasPerfectMatchingAmplified() {
	adj, _ := matrix.FromRows([][]int64{
		{1, 1, 0},
		{0, 0, 1},
		{0, 1, 1},
	})

	ok, err := matching.HasPerfectMatchingAmplified(adj, 5, matching.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("perfect matching:", ok)
	// Output:
	// perfect matching: true
}
