package permindex

import (
	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/factoradic"
	"github.com/katalvlaran/permindex/permutation"
)

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// splitMix64 is the SplitMix64 finalizer applied to x+golden.
func splitMix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// SeedOrdinal expands a 64-bit seed into a 128-bit ordinal with two
// consecutive SplitMix64 outputs. Neighbouring seeds land far apart.
func SeedOrdinal(seed uint64) uint128.Uint128 {
	return uint128.New(splitMix64(seed), splitMix64(seed+golden))
}

// Shuffle returns a deterministic permutation of n elements derived from seed.
//
// The seed ordinal is reduced modulo n! when n! fits in 128 bits (n ≤ 34),
// encoded, and padded to n with ExtendLength. For n ≥ 35 only a prefix of at
// most 35 positions is moved.
//
// Errors: ErrNegativeLength, permutation.ErrTooLong.
func Shuffle(seed uint64, n int) (permutation.Permutation, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > permutation.MaxLen {
		return nil, permutation.ErrTooLong
	}
	if n == 0 {
		return permutation.Permutation{}, nil
	}
	idx := SeedOrdinal(seed)
	if f, err := factoradic.Factorial(n); err == nil {
		_, idx = idx.QuoRem(f)
	}
	return FromNumber(idx).ExtendLength(n)
}

// ShuffleSlice returns a copy of items reordered by Shuffle(seed, len(items)).
func ShuffleSlice[T any](items []T, seed uint64) ([]T, error) {
	p, err := Shuffle(seed, len(items))
	if err != nil {
		return nil, err
	}
	return permutation.Apply(p, items)
}
