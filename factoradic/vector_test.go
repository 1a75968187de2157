package factoradic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/permindex/factoradic"
	"github.com/katalvlaran/permindex/permutation"
)

// TestNew_Digits checks the repeated-division digits for small values.
func TestNew_Digits(t *testing.T) {
	cases := []struct {
		n    uint64
		want []uint8
	}{
		{0, []uint8{}},
		{1, []uint8{1}},
		{2, []uint8{0, 1}},
		{5, []uint8{1, 2}},
		{6, []uint8{0, 0, 1}},
		{7, []uint8{1, 0, 1}},
		{10, []uint8{0, 2, 1}},
		{23, []uint8{1, 2, 3}},
		{24, []uint8{0, 0, 0, 1}},
	}
	for _, tc := range cases {
		v := factoradic.NewFromUint64(tc.n)
		assert.Equal(t, tc.want, v.Digits(), "n=%d", tc.n)
		assert.Equal(t, len(tc.want), v.Len(), "n=%d", tc.n)
	}
}

// TestNew_ZeroIsEmpty verifies the canonical zero and its equality semantics.
func TestNew_ZeroIsEmpty(t *testing.T) {
	z := factoradic.New(uint128.Zero)
	assert.True(t, z.IsZero())
	assert.Equal(t, factoradic.Vector{}, z)
	assert.True(t, z.Equal(factoradic.Vector{}))
	assert.Equal(t, "[]", z.String())
}

// TestNew_MaxLength bounds the digit count for the full 128-bit range.
func TestNew_MaxLength(t *testing.T) {
	v := factoradic.New(uint128.Max)
	assert.Equal(t, 34, v.Len())
	d := v.Digits()
	for i, x := range d {
		assert.Less(t, int(x), i+2, "digit %d within radix", i)
	}
	assert.NotZero(t, d[len(d)-1], "canonical form has no trailing zero")
}

// TestDigits_ReturnsCopy makes sure callers cannot mutate a Vector.
func TestDigits_ReturnsCopy(t *testing.T) {
	v := factoradic.NewFromUint64(10)
	d := v.Digits()
	d[0] = 1
	assert.Equal(t, []uint8{0, 2, 1}, v.Digits())
}

// TestFromDigits accepts valid canonical digits and rejects the rest.
func TestFromDigits(t *testing.T) {
	v, err := factoradic.FromDigits([]uint8{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, factoradic.NewFromUint64(10), v)

	v, err = factoradic.FromDigits(nil)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	_, err = factoradic.FromDigits([]uint8{2})
	assert.ErrorIs(t, err, factoradic.ErrDigitOutOfRange)
	_, err = factoradic.FromDigits([]uint8{1, 3})
	assert.ErrorIs(t, err, factoradic.ErrDigitOutOfRange)
	_, err = factoradic.FromDigits([]uint8{1, 0})
	assert.ErrorIs(t, err, factoradic.ErrNotCanonical)
}

// TestEqual compares vectors of equal and differing shape.
func TestEqual(t *testing.T) {
	a := factoradic.NewFromUint64(7)
	assert.True(t, a.Equal(factoradic.NewFromUint64(7)))
	assert.False(t, a.Equal(factoradic.NewFromUint64(8)))
	assert.False(t, a.Equal(factoradic.NewFromUint64(1)))
}

// TestFromDigits_LengthBound accepts MaxDigits digits and rejects one more.
func TestFromDigits_LengthBound(t *testing.T) {
	d := make([]uint8, factoradic.MaxDigits)
	for i := range d {
		d[i] = uint8(i + 1)
	}
	v, err := factoradic.FromDigits(d)
	require.NoError(t, err)

	p := v.Permutation()
	assert.Len(t, p, permutation.MaxLen)
	assert.NoError(t, permutation.Validate(p))

	back, err := factoradic.FromPermutation(p)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	down, err := v.Prev()
	require.NoError(t, err)
	assert.Equal(t, v, down.NextUnchecked(), "stepping stays invertible at the bound")

	long := make([]uint8, factoradic.MaxDigits+1)
	long[factoradic.MaxDigits] = 1
	_, err = factoradic.FromDigits(long)
	assert.ErrorIs(t, err, factoradic.ErrTooLong)
}
