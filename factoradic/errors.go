package factoradic

import "errors"

var (
	// ErrOverflow indicates the represented value does not fit in 128 bits.
	ErrOverflow = errors.New("factoradic: value overflows uint128")
	// ErrNoPredecessor indicates Prev was called on the zero vector.
	ErrNoPredecessor = errors.New("factoradic: zero has no predecessor")
	// ErrMalformedPermutation indicates the decoded sequence is not a permutation of 0..n.
	ErrMalformedPermutation = errors.New("factoradic: sequence is not a permutation")
	// ErrEmptyPermutation indicates an empty sequence was given to FromPermutation.
	ErrEmptyPermutation = errors.New("factoradic: permutation must have at least one element")
	// ErrDigitOutOfRange indicates a digit d[i] ≥ i+2.
	ErrDigitOutOfRange = errors.New("factoradic: digit exceeds its radix")
	// ErrTooLong indicates more digits than a uint8 permutation can encode.
	ErrTooLong = errors.New("factoradic: too many digits for a 256-element permutation")
	// ErrNotCanonical indicates a trailing zero digit.
	ErrNotCanonical = errors.New("factoradic: trailing zero digit")
)
