package permindex

import (
	"iter"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/factoradic"
	"github.com/katalvlaran/permindex/permutation"
)

// Range yields up to count (ordinal, permutation) pairs starting at start, in
// ascending order. Successive values are produced by stepping the digit
// vector, not by re-dividing the ordinal. The sequence ends early at the
// largest 128-bit ordinal.
//
// Example:
//
//	for n, p := range permindex.Range(uint128.From64(7), 4) {
//		fmt.Println(n, p) // 7 [1 0 3 2], 8 [0 2 3 1], …
//	}
func Range(start uint128.Uint128, count uint64) iter.Seq2[uint128.Uint128, permutation.Permutation] {
	return func(yield func(uint128.Uint128, permutation.Permutation) bool) {
		if count == 0 {
			return
		}
		v := factoradic.New(start)
		n := start
		for i := uint64(0); ; i++ {
			if !yield(n, v.Permutation()) || i+1 == count {
				return
			}
			next, err := v.Next()
			if err != nil {
				return
			}
			v = next
			n = n.AddWrap64(1)
		}
	}
}
