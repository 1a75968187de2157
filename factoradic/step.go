package factoradic

// NextUnchecked returns the Vector for v+1.
//
// Digit i (radix i+2) becomes (d[i]+carry) mod (i+2); the carry moves on when
// d[i]+carry reaches the radix. A carry left after the top digit appends a
// new digit 1. No overflow check: the result may represent 2^128.
//
// Complexity: O(k).
func (v Vector) NextUnchecked() Vector {
	out := make([]uint8, 0, len(v.digits)+1)
	carry := 1
	for i, d := range v.digits {
		sum := int(d) + carry
		if radix := i + 2; sum >= radix {
			out = append(out, uint8(sum-radix))
			carry = 1
		} else {
			out = append(out, uint8(sum))
			carry = 0
		}
	}
	if carry == 1 {
		out = append(out, 1)
	}
	return vectorOf(out)
}

// Next returns the Vector for v+1, or ErrOverflow when v+1 does not fit in 128 bits.
func (v Vector) Next() (Vector, error) {
	n := v.NextUnchecked()
	if _, err := n.Uint128(); err != nil {
		return Vector{}, err
	}
	return n, nil
}

// Prev returns the Vector for v-1, or ErrNoPredecessor when v is zero.
//
// A zero digit under a pending borrow becomes radix-1 and the borrow moves
// on; the first non-zero digit absorbs it. A resulting top 0 is dropped.
// Prev is the exact inverse of NextUnchecked.
//
// Complexity: O(k).
func (v Vector) Prev() (Vector, error) {
	if len(v.digits) == 0 {
		return Vector{}, ErrNoPredecessor
	}
	out := make([]uint8, 0, len(v.digits))
	borrow := uint8(1)
	for i, d := range v.digits {
		if d == 0 && borrow == 1 {
			out = append(out, uint8(i+1))
			continue
		}
		out = append(out, d-borrow)
		borrow = 0
	}
	if out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	return vectorOf(out), nil
}
