package seed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse32(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		got, err := Parse[uint32]("2538058380")
		require.NoError(t, err)
		assert.Equal(t, uint32(0x9747b28c), got)
	})

	t.Run("trimmed", func(t *testing.T) {
		got, err := Parse[uint32]("  42 ")
		require.NoError(t, err)
		assert.Equal(t, uint32(42), got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Parse[uint32]("4294967296")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Parse[uint32]("-1")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse[uint32]("not-a-seed")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse[uint32]("   ")
		require.ErrorIs(t, err, ErrInvalid)
	})
}

func TestParse64(t *testing.T) {
	got, err := Parse[uint64]("4294967296")
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<32, got)
}

func TestParseBits(t *testing.T) {
	v, err := ParseBits("7", 32)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	_, err = ParseBits("4294967296", 32)
	require.ErrorIs(t, err, ErrInvalid)

	v, err = ParseBits("4294967296", 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<32, v)

	_, err = ParseBits("1", 16)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestRejectsFractions(t *testing.T) {
	for _, s := range []string{"1.9", "1.0", "0.5", ".3"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseBits(s, 32)
			require.ErrorIs(t, err, ErrInvalid)

			_, err = Parse[uint64](s)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestHexSeed(t *testing.T) {
	got, err := Parse[uint32]("0x9747b28c")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x9747b28c), got)
}
