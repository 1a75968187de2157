// Package permutation defines the Permutation value type used by the
// factorial number system codec, plus small helpers around it.
//
// What:
//
//   - Permutation is a sequence of n+1 pairwise-distinct uint8 values drawn from 0..n.
//   - Identity builds [0, 1, …, n-1]; Validate checks the bijection contract.
//   - ExtendLength appends a fixed-point suffix (L, L+1, …, n-1).
//   - Apply reorders an arbitrary slice by a permutation; Inverse inverts it.
//   - Parse reads "2,0,3,1", "2 0 3 1" or "[2 0 3 1]".
//
// Why:
//
//   - Deterministic shuffles: reorder items by a permutation derived from a seed.
//   - Compact storage: a permutation is addressed by its ordinal number instead.
//
// Complexity:
//
//   - Identity, Validate, ExtendLength, Apply, Inverse: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrTooShort: ExtendLength target is shorter than the permutation.
//   - ErrNotPermutation: value out of range or duplicated.
//   - ErrLengthMismatch: Apply called with a slice of a different length.
//   - ErrParse: Parse met a token that is not a uint8.
//
// Every function returns a fresh slice; inputs are never mutated.
package permutation
