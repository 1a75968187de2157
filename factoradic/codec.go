package factoradic

import (
	"slices"

	"github.com/katalvlaran/permindex/permutation"
)

// Permutation encodes v as a permutation of Len()+1 elements.
//
// Algorithm:
//  1. Start from the identity [0, 1, …, k].
//  2. For each digit d at index i (lowest first), move the element at
//     position i+1 left by d adjacent swaps.
//
// The zero Vector encodes to [0].
//
// Complexity: O(k²) worst case, k ≤ 34 for uint128 values.
func (v Vector) Permutation() permutation.Permutation {
	p := permutation.Identity(len(v.digits) + 1)
	for i, d := range v.digits {
		for k := 0; k < int(d); k++ {
			j := i + 1 - k
			p[j], p[j-1] = p[j-1], p[j]
		}
	}
	return p
}

// FromPermutation decodes p into a Vector.
//
// Algorithm:
//  1. Drop trailing fixed points (p[j] == j from the top down).
//  2. While elements remain: with n = len-1, find n scanning from the top;
//     record n-idx and remove it. A missing n means p is malformed.
//  3. Drop the last recorded digit (always 0) and reverse.
//
// Trailing fixed points carry no information, so [1 0] and [1 0 2 3] decode
// to the same Vector.
//
// Errors: ErrEmptyPermutation, ErrMalformedPermutation.
//
// Complexity: O(m²), m = len(p).
func FromPermutation(p permutation.Permutation) (Vector, error) {
	if len(p) == 0 {
		return Vector{}, ErrEmptyPermutation
	}
	digits, ok := decode(p, true)
	if !ok {
		return Vector{}, ErrMalformedPermutation
	}
	return vectorOf(digits), nil
}

// FromPermutationUnchecked decodes p without validation.
// p must be a permutation; otherwise the result is unspecified
// (decoding stops at the first missing value).
func FromPermutationUnchecked(p permutation.Permutation) Vector {
	digits, _ := decode(p, false)
	return vectorOf(digits)
}

// decode runs the inverse Lehmer walk over a private copy of p.
// With strict set it reports false as soon as the expected maximum is missing.
func decode(p permutation.Permutation, strict bool) ([]uint8, bool) {
	m := len(p)
	for m > 0 && int(p[m-1]) == m-1 {
		m--
	}
	work := p[:m].Clone()

	digits := make([]uint8, 0, m)
	for len(work) > 0 {
		want := len(work) - 1
		idx := -1
		for j := len(work) - 1; j >= 0; j-- {
			if int(work[j]) == want {
				idx = j
				break
			}
		}
		if idx < 0 {
			if strict {
				return nil, false
			}
			break
		}
		digits = append(digits, uint8(want-idx))
		work = slices.Delete(work, idx, idx+1)
	}
	if len(digits) > 0 {
		digits = digits[:len(digits)-1]
	}
	slices.Reverse(digits)
	return digits, true
}
