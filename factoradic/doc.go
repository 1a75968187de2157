// Package factoradic implements the mixed-radix digit vector behind the
// bijection between unsigned 128-bit integers and permutations.
//
// What:
//
//   - Vector holds digits d[0], d[1], … with 0 ≤ d[i] < i+2 (radix i+2) and
//     represents Σ d[i]·(i+1)!. The empty vector represents 0.
//   - New builds a Vector from a uint128 by repeated division by 2, 3, 4, ….
//   - Uint128 / Uint128Unchecked rebuild the integer (overflow-checked / wrapping).
//   - Next / NextUnchecked / Prev step the represented value by exactly one
//     without going through the integer domain.
//   - Permutation encodes a Vector as a permutation of len+1 elements
//     (Lehmer code); FromPermutation / FromPermutationUnchecked decode.
//
// Why:
//
//   - Address permutations by ordinal: shuffles from a seed, compact indices,
//     resumable enumeration (step the Vector, encode on demand).
//
// Canonical form:
//
//	A Vector never ends with a 0 digit, so every value has exactly one Vector.
//	Vectors are immutable; every operation returns a new one.
//
// Complexity:
//
//   - New, Uint128, Uint128Unchecked, Next*, Prev: O(k), k = number of digits (k ≤ 34 for uint128).
//   - Permutation, FromPermutation*: O(k²) adjacent swaps / scans.
//
// Errors:
//
//   - ErrOverflow: checked reconstruction or Next would exceed 128 bits.
//   - ErrNoPredecessor: Prev on the zero Vector.
//   - ErrMalformedPermutation: FromPermutation met a sequence that is not a permutation.
//   - ErrEmptyPermutation: FromPermutation got an empty sequence.
//   - ErrTooLong, ErrDigitOutOfRange, ErrNotCanonical: FromDigits rejected its input.
//
// Unchecked variants never fail. Their precondition (value fits in 128 bits,
// input is a well-formed permutation) is the caller's to uphold; a violation
// yields a wrapped or meaningless result, never a panic.
//
// A Vector never holds more than MaxDigits digits when built by New or
// FromDigits; stepping NextUnchecked past that length is outside the contract.
//
// All functions are pure and safe for concurrent use.
package factoradic
