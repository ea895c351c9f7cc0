package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldAdapter(t *testing.T) {
	t.Run("Identities", func(t *testing.T) {
		z := Zero()
		o := One()
		assert.True(t, z.IsZero())
		assert.True(t, o.IsOne())
	})

	t.Run("FromInt64Negative", func(t *testing.T) {
		// -1 is p - 1: adding one wraps to zero.
		got := Add(FromInt64(-1), One())
		assert.True(t, got.IsZero())
	})

	t.Run("SubNegMulInverse", func(t *testing.T) {
		a, err := Random()
		require.NoError(t, err)
		b, err := Random()
		require.NoError(t, err)

		diff := Sub(a, b)
		back := Add(diff, b)
		assert.True(t, back.Equal(&a))

		neg := Add(a, Neg(a))
		assert.True(t, neg.IsZero())

		if !a.IsZero() {
			inv := Mul(a, Inverse(a))
			assert.True(t, inv.IsOne())
		}
	})

	t.Run("Pow", func(t *testing.T) {
		got := Pow(FromUint64(3), 4)
		want := FromUint64(81)
		assert.True(t, got.Equal(&want))
		one := Pow(FromUint64(3), 0)
		assert.True(t, one.IsOne())
	})

	t.Run("StringRoundTrip", func(t *testing.T) {
		a, err := Random()
		require.NoError(t, err)
		back, err := FromString(a.String())
		require.NoError(t, err)
		assert.True(t, back.Equal(&a))
	})

	t.Run("ModulusIsOdd", func(t *testing.T) {
		assert.Equal(t, uint(1), Modulus().Bit(0))
	})
}
