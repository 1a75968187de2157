package permutation

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxLen is the largest permutation length representable with uint8 elements.
const MaxLen = 256

// Permutation is an ordered sequence of distinct values 0..len-1.
type Permutation []uint8

// Identity returns [0, 1, …, n-1]. For n <= 0 it returns an empty permutation.
//
// Complexity: O(n).
func Identity(n int) Permutation {
	if n <= 0 {
		return Permutation{}
	}
	p := make(Permutation, n)
	for i := range p {
		p[i] = uint8(i)
	}
	return p
}

// Validate checks that p is a bijection onto 0..len(p)-1.
//
// Complexity: O(n) time, O(n) space.
func Validate(p Permutation) error {
	if len(p) > MaxLen {
		return ErrTooLong
	}
	seen := make([]bool, len(p))
	for _, v := range p {
		if int(v) >= len(p) || seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	if p == nil {
		return nil
	}
	out := make(Permutation, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q hold the same elements in the same order.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// ExtendLength returns a copy of p padded with the fixed points
// len(p), len(p)+1, …, n-1. It fails with ErrTooShort when n < len(p)
// and with ErrTooLong when n exceeds MaxLen.
//
// Example:
//
//	p, _ := Permutation{1, 0}.ExtendLength(4) // [1 0 2 3]
func (p Permutation) ExtendLength(n int) (Permutation, error) {
	if n < len(p) {
		return nil, ErrTooShort
	}
	if n > MaxLen {
		return nil, ErrTooLong
	}
	out := make(Permutation, n)
	copy(out, p)
	for i := len(p); i < n; i++ {
		out[i] = uint8(i)
	}
	return out, nil
}

// Inverse returns q such that q[p[i]] == i. p must be a valid permutation.
func (p Permutation) Inverse() (Permutation, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = uint8(i)
	}
	return q, nil
}

// String renders p as "[2 0 3 1]".
func (p Permutation) String() string {
	return fmt.Sprint([]uint8(p))
}

// CSV renders p as "2,0,3,1".
func (p Permutation) CSV() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

// Apply returns items reordered so that out[i] = items[p[i]].
// It fails when p is not a valid permutation or the lengths differ.
//
// Complexity: O(n).
func Apply[T any](p Permutation, items []T) ([]T, error) {
	if len(p) != len(items) {
		return nil, ErrLengthMismatch
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, v := range p {
		out[i] = items[v]
	}
	return out, nil
}

// Parse reads a permutation written as comma and/or space separated values,
// optionally wrapped in square brackets. The result is not validated.
func Parse(s string) (Permutation, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	p := make(Permutation, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrParse, f)
		}
		p = append(p, uint8(v))
	}
	return p, nil
}
