package permutation_test

import (
	"fmt"

	"github.com/katalvlaran/permindex/permutation"
)

// ExamplePermutation_ExtendLength pads a short permutation with fixed points.
func ExamplePermutation_ExtendLength() {
	p := permutation.Permutation{1, 0}
	q, err := p.ExtendLength(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q)
	_, err = q.ExtendLength(2)
	fmt.Println(err)
	// Output:
	// [1 0 2 3]
	// permutation: target length is shorter than permutation
}

// ExampleApply reorders a deck by a permutation.
func ExampleApply() {
	deck := []string{"ace", "king", "queen", "jack"}
	out, _ := permutation.Apply(permutation.Permutation{2, 0, 3, 1}, deck)
	fmt.Println(out)
	// Output:
	// [queen ace jack king]
}
