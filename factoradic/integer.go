package factoradic

import "lukechampine.com/uint128"

// Uint128 returns the integer represented by v.
//
// Accumulation runs lowest digit first with every multiplication and addition
// overflow-checked; the first overflow returns ErrOverflow. Weights (i+1)!
// are non-negative and increasing, so an early overflow means the full sum
// overflows too: the check has no false negatives.
//
// Complexity: O(k).
func (v Vector) Uint128() (uint128.Uint128, error) {
	var (
		sum    = uint128.Zero
		weight = uint128.From64(1)
		term   uint128.Uint128
		ok     bool
	)
	for i, d := range v.digits {
		if i > 0 {
			if weight, ok = mulChecked(weight, uint64(i+1)); !ok {
				return uint128.Zero, ErrOverflow
			}
		}
		if term, ok = mulChecked(weight, uint64(d)); !ok {
			return uint128.Zero, ErrOverflow
		}
		if sum, ok = addChecked(sum, term); !ok {
			return uint128.Zero, ErrOverflow
		}
	}
	return sum, nil
}

// Uint128Unchecked is Uint128 with wrapping arithmetic.
// The result is only meaningful when the caller knows the value fits in 128 bits.
func (v Vector) Uint128Unchecked() uint128.Uint128 {
	sum := uint128.Zero
	weight := uint128.From64(1)
	for i, d := range v.digits {
		if i > 0 {
			weight = weight.MulWrap64(uint64(i + 1))
		}
		sum = sum.AddWrap(weight.MulWrap64(uint64(d)))
	}
	return sum
}

// Factorial returns k! or ErrOverflow when it exceeds 128 bits (k > 34).
// For k <= 1 it returns 1.
func Factorial(k int) (uint128.Uint128, error) {
	f := uint128.From64(1)
	var ok bool
	for i := 2; i <= k; i++ {
		if f, ok = mulChecked(f, uint64(i)); !ok {
			return uint128.Zero, ErrOverflow
		}
	}
	return f, nil
}

// mulChecked returns a·b and false if the product exceeds 128 bits.
func mulChecked(a uint128.Uint128, b uint64) (uint128.Uint128, bool) {
	if b == 0 || a.IsZero() {
		return uint128.Zero, true
	}
	if a.Cmp(uint128.Max.Div64(b)) > 0 {
		return uint128.Zero, false
	}
	return a.MulWrap64(b), true
}

// addChecked returns a+b and false on carry out of bit 127.
func addChecked(a, b uint128.Uint128) (uint128.Uint128, bool) {
	s := a.AddWrap(b)
	if s.Cmp(a) < 0 {
		return uint128.Zero, false
	}
	return s, true
}
