package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permindex/permutation"
)

// TestIdentity checks the identity for small sizes and the empty case.
func TestIdentity(t *testing.T) {
	assert.Equal(t, permutation.Permutation{}, permutation.Identity(0))
	assert.Equal(t, permutation.Permutation{}, permutation.Identity(-3))
	assert.Equal(t, permutation.Permutation{0, 1, 2, 3}, permutation.Identity(4))
}

// TestValidate covers valid inputs, out-of-range values and duplicates.
func TestValidate(t *testing.T) {
	assert.NoError(t, permutation.Validate(permutation.Permutation{}))
	assert.NoError(t, permutation.Validate(permutation.Permutation{2, 0, 3, 1}))
	assert.ErrorIs(t, permutation.Validate(permutation.Permutation{0, 2}), permutation.ErrNotPermutation)
	assert.ErrorIs(t, permutation.Validate(permutation.Permutation{1, 1}), permutation.ErrNotPermutation)
}

// TestExtendLength mirrors the fixed-length contract: pad with the identity,
// reject shorter targets, never touch the receiver.
func TestExtendLength(t *testing.T) {
	p := permutation.Permutation{1, 0}

	q, err := p.ExtendLength(3)
	require.NoError(t, err)
	assert.Equal(t, permutation.Permutation{1, 0, 2}, q)

	q, err = q.ExtendLength(4)
	require.NoError(t, err)
	assert.Equal(t, permutation.Permutation{1, 0, 2, 3}, q)

	same, err := q.ExtendLength(4)
	require.NoError(t, err)
	assert.Equal(t, q, same)

	_, err = q.ExtendLength(3)
	assert.ErrorIs(t, err, permutation.ErrTooShort)
	assert.Equal(t, permutation.Permutation{1, 0}, p, "receiver must stay unchanged")

	_, err = p.ExtendLength(permutation.MaxLen + 1)
	assert.ErrorIs(t, err, permutation.ErrTooLong)
}

// TestExtendLength_Contract checks result length and identity suffix for every target.
func TestExtendLength_Contract(t *testing.T) {
	p := permutation.Permutation{2, 0, 3, 1}
	for n := 0; n < 10; n++ {
		q, err := p.ExtendLength(n)
		if n < len(p) {
			assert.ErrorIs(t, err, permutation.ErrTooShort, "n=%d", n)
			continue
		}
		require.NoError(t, err, "n=%d", n)
		require.Len(t, q, n)
		assert.Equal(t, p, q[:len(p)])
		for i := len(p); i < n; i++ {
			assert.Equal(t, uint8(i), q[i])
		}
	}
}

// TestApplyAndInverse verifies that applying p then its inverse restores the input.
func TestApplyAndInverse(t *testing.T) {
	p := permutation.Permutation{2, 0, 3, 1}
	items := []string{"a", "b", "c", "d"}

	out, err := permutation.Apply(p, items)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "d", "b"}, out)

	inv, err := p.Inverse()
	require.NoError(t, err)
	back, err := permutation.Apply(inv, out)
	require.NoError(t, err)
	assert.Equal(t, items, back)

	_, err = permutation.Apply(p, items[:3])
	assert.ErrorIs(t, err, permutation.ErrLengthMismatch)
	_, err = permutation.Apply(permutation.Permutation{0, 0}, []int{1, 2})
	assert.ErrorIs(t, err, permutation.ErrNotPermutation)
}

// TestParse accepts the common spellings and rejects junk.
func TestParse(t *testing.T) {
	for _, s := range []string{"2,0,3,1", "2 0 3 1", "[2 0 3 1]", " 2, 0, 3, 1 "} {
		p, err := permutation.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, permutation.Permutation{2, 0, 3, 1}, p, s)
	}

	p, err := permutation.Parse("[]")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = permutation.Parse("1,x")
	assert.ErrorIs(t, err, permutation.ErrParse)
	_, err = permutation.Parse("256")
	assert.ErrorIs(t, err, permutation.ErrParse)
}

// TestFormatting covers String, CSV, Clone and Equal.
func TestFormatting(t *testing.T) {
	p := permutation.Permutation{2, 0, 3, 1}
	assert.Equal(t, "[2 0 3 1]", p.String())
	assert.Equal(t, "2,0,3,1", p.CSV())

	c := p.Clone()
	assert.True(t, c.Equal(p))
	c[0] = 9
	assert.False(t, c.Equal(p))
	assert.Equal(t, uint8(2), p[0])
	assert.False(t, p.Equal(p[:2]))
	assert.Nil(t, permutation.Permutation(nil).Clone())
}
