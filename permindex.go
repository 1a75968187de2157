package permindex

import (
	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/factoradic"
	"github.com/katalvlaran/permindex/permutation"
)

// FromNumber returns the permutation with ordinal n.
// The result has factoradic.New(n).Len()+1 elements.
func FromNumber(n uint128.Uint128) permutation.Permutation {
	return factoradic.New(n).Permutation()
}

// FromUint64 is FromNumber for a 64-bit ordinal.
func FromUint64(n uint64) permutation.Permutation {
	return FromNumber(uint128.From64(n))
}

// Number returns the ordinal of p.
//
// Errors: factoradic.ErrEmptyPermutation, factoradic.ErrMalformedPermutation,
// factoradic.ErrOverflow (p is longer than 35 elements with a non-fixed tail
// whose ordinal exceeds 128 bits).
func Number(p permutation.Permutation) (uint128.Uint128, error) {
	v, err := factoradic.FromPermutation(p)
	if err != nil {
		return uint128.Zero, err
	}
	return v.Uint128()
}

// NumberUnchecked returns the ordinal of p without validation.
// p must be a permutation whose ordinal fits in 128 bits.
func NumberUnchecked(p permutation.Permutation) uint128.Uint128 {
	return factoradic.FromPermutationUnchecked(p).Uint128Unchecked()
}
