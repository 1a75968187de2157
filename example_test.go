package permindex_test

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex"
)

// ExampleFromUint64 shows the round trip between ordinals and permutations.
func ExampleFromUint64() {
	p := permindex.FromUint64(10)
	n, err := permindex.Number(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p, n)
	fixed, _ := p.ExtendLength(6)
	fmt.Println(fixed)
	// Output:
	// [2 0 3 1] 10
	// [2 0 3 1 4 5]
}

// ExampleRange enumerates lazily from an arbitrary start.
func ExampleRange() {
	for n, p := range permindex.Range(uint128.From64(3), 4) {
		fmt.Println(n, p)
	}
	// Output:
	// 3 [1 2 0]
	// 4 [2 0 1]
	// 5 [2 1 0]
	// 6 [0 1 3 2]
}
