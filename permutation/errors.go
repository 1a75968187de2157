package permutation

import "errors"

var (
	// ErrTooShort indicates an ExtendLength target smaller than the current length.
	ErrTooShort = errors.New("permutation: target length is shorter than permutation")
	// ErrNotPermutation indicates a value out of range or a duplicate value.
	ErrNotPermutation = errors.New("permutation: values must be a bijection onto 0..n-1")
	// ErrLengthMismatch indicates Apply received a slice of a different length.
	ErrLengthMismatch = errors.New("permutation: slice length does not match permutation length")
	// ErrParse indicates Parse could not read an element.
	ErrParse = errors.New("permutation: cannot parse element")
	// ErrTooLong indicates a requested length exceeds what uint8 elements can hold.
	ErrTooLong = errors.New("permutation: length exceeds 256 elements")
)
