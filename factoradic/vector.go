package factoradic

import (
	"fmt"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/permutation"
)

// MaxDigits is the longest Vector whose permutation fits in uint8 elements.
const MaxDigits = permutation.MaxLen - 1

// Vector is a factorial-number-system value. The zero value represents 0.
//
// Digits are stored lowest radix first. A nil slice is the only
// representation of zero, so reflect.DeepEqual and Equal agree.
type Vector struct {
	digits []uint8
}

// vectorOf wraps d, normalising an empty slice to the zero Vector.
func vectorOf(d []uint8) Vector {
	if len(d) == 0 {
		return Vector{}
	}
	return Vector{digits: d}
}

// New returns the Vector representing n.
//
// Algorithm: divide n by 2, 3, 4, … recording each remainder as the next
// digit until the quotient reaches 0.
//
// Complexity: O(k) divisions, k ≤ 34 for any uint128.
func New(n uint128.Uint128) Vector {
	var (
		digits []uint8
		r      uint64
	)
	for radix := uint64(2); !n.IsZero(); radix++ {
		n, r = n.QuoRem64(radix)
		digits = append(digits, uint8(r))
	}
	return vectorOf(digits)
}

// NewFromUint64 is New for a 64-bit input.
func NewFromUint64(n uint64) Vector {
	return New(uint128.From64(n))
}

// FromDigits builds a Vector from raw digits (lowest radix first).
// It rejects more than MaxDigits digits, a digit d[i] ≥ i+2 and a trailing zero.
func FromDigits(d []uint8) (Vector, error) {
	if len(d) > MaxDigits {
		return Vector{}, fmt.Errorf("%w: %d digits", ErrTooLong, len(d))
	}
	for i, x := range d {
		if int(x) >= i+2 {
			return Vector{}, fmt.Errorf("%w: d[%d]=%d, radix %d", ErrDigitOutOfRange, i, x, i+2)
		}
	}
	if len(d) > 0 && d[len(d)-1] == 0 {
		return Vector{}, ErrNotCanonical
	}
	out := make([]uint8, len(d))
	copy(out, d)
	return vectorOf(out), nil
}

// Digits returns a copy of the digits, lowest radix first.
func (v Vector) Digits() []uint8 {
	out := make([]uint8, len(v.digits))
	copy(out, v.digits)
	return out
}

// Len returns the number of digits. The encoded permutation has Len()+1 elements.
func (v Vector) Len() int { return len(v.digits) }

// IsZero reports whether v represents 0.
func (v Vector) IsZero() bool { return len(v.digits) == 0 }

// Equal reports whether v and w represent the same value.
func (v Vector) Equal(w Vector) bool {
	if len(v.digits) != len(w.digits) {
		return false
	}
	for i := range v.digits {
		if v.digits[i] != w.digits[i] {
			return false
		}
	}
	return true
}

// String renders the digits lowest radix first, e.g. "[0 2 1]".
func (v Vector) String() string {
	return fmt.Sprint(v.Digits())
}
