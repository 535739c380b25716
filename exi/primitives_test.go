package exi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNBitUintRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "n")
		v := rapid.Uint32Range(0, uint32(1<<uint(n)-1)).Draw(t, "v")

		buf := make([]byte, 8)
		w := NewWriter(buf)
		require.NoError(t, WriteNBitUint(w, n, v))

		r := NewReader(buf)
		got, err := ReadNBitUint(r, n)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func TestUint32RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint32().Draw(t, "v")

		buf := make([]byte, 8)
		w := NewWriter(buf)
		require.NoError(t, WriteUint32(w, v))

		r := NewReader(w.Bytes())
		got, err := ReadUint32(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func TestInt64RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64Range(-(1<<62), 1<<62).Draw(t, "v")

		buf := make([]byte, 16)
		w := NewWriter(buf)
		require.NoError(t, WriteInt64(w, v))

		r := NewReader(w.Bytes())
		got, err := ReadInt64(r)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func TestReadInt16NegativeZeroRejected(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	require.NoError(t, WriteBoolean(w, true)) // sign bit: negative
	require.NoError(t, vlqWriteGroups(w, 0))  // magnitude 0

	r := NewReader(w.Bytes())
	_, err := ReadInt16(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(ErrIntegerOutOfRange))
}

func TestHexBinaryRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "data")

		buf := make([]byte, 64)
		w := NewWriter(buf)
		require.NoError(t, WriteHexBinary(w, data, 32))

		r := NewReader(w.Bytes())
		got, err := ReadHexBinary(r, 32)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})
}

func TestHexBinaryTooLong(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	err := WriteHexBinary(w, make([]byte, 40), 32)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(ErrInvariantViolation))
}

func TestCharactersRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 16).Draw(t, "n")
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(rapid.IntRange(97, 122).Draw(t, "c"))
		}
		s := string(b)

		buf := make([]byte, 64)
		w := NewWriter(buf)
		require.NoError(t, WriteCharacters(w, s, 16))

		r := NewReader(w.Bytes())
		got, err := ReadCharacters(r, 16)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	})
}

func TestEnumOutOfRange(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	require.NoError(t, WriteNBitUint(w, 3, 5))

	r := NewReader(w.Bytes())
	_, err := ReadEnum(r, 3, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(ErrEnumOutOfRange))
}

func TestSecondLevelBitRejectsDeviant(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	require.NoError(t, w.WriteBits(1, 1))

	r := NewReader(w.Bytes())
	err := ReadSecondLevelBit(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKind(ErrDeviantsNotSupported))
}
