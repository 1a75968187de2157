// Package permindex maps unsigned 128-bit integers to permutations and back.
//
// What is permindex?
//
//	A small, zero-state library built on the factorial number system
//	(Lehmer code). Every n in [0, 2^128) names exactly one permutation, and
//	every permutation of up to 35 elements (and those of longer length whose
//	tail is fixed) names exactly one n:
//		• FromNumber / Number / NumberUnchecked: the round trip
//		• Range: lazy, ascending enumeration starting anywhere
//		• Shuffle / ShuffleSlice: deterministic shuffles from a seed
//
// Under the hood:
//
//	factoradic/    digit vector: construction, reconstruction, stepping, codec
//	permutation/   Permutation value type: identity, validation, extension, apply
//	cmd/permindex  command-line front end (encode, decode, range, shuffle, verify)
//
// Quick example:
//
//	p := permindex.FromUint64(10)   // [2 0 3 1]
//	n, _ := permindex.Number(p)     // 10
//
// Trailing fixed points carry no information: [1 0] and [1 0 2 3] both map
// to 1. Use Permutation.ExtendLength to pad a result to a fixed length.
//
// All functions are pure and safe for concurrent use.
package permindex
