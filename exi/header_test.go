package exi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeaderProducesSingleByte80(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)
	require.NoError(t, WriteHeader(w))
	assert.Equal(t, []byte{0x80}, w.Bytes())
}

func TestReadHeaderAcceptsLiteralS1Byte(t *testing.T) {
	r := NewReader([]byte{0x80})
	require.NoError(t, ReadHeader(r))
	assert.Equal(t, 8, r.PositionBits())
}

func TestReadHeaderRejectsMalformedFirstByte(t *testing.T) {
	r := NewReader([]byte{0x00})
	err := ReadHeader(r)
	assert.ErrorIs(t, err, ErrKind(ErrInvalidHeader))
	assert.LessOrEqual(t, r.PositionBits(), 8)
}

func TestReadHeaderAcceptsOptionalCookie(t *testing.T) {
	buf := []byte{'$', 'E', 'X', 'I', 0x80}
	r := NewReader(buf)
	require.NoError(t, ReadHeader(r))
	assert.Equal(t, 40, r.PositionBits())
}

func TestReadHeaderRejectsOptionsDocument(t *testing.T) {
	w := NewWriter(make([]byte, 1))
	require.NoError(t, w.WriteBits(2, headerDistinguishingBits))
	require.NoError(t, WriteBoolean(w, true)) // options present
	r := NewReader(w.Bytes())
	err := ReadHeader(r)
	require.Error(t, err)
}

func TestReadHeaderRoundTripsThroughWriteHeader(t *testing.T) {
	buf := make([]byte, 1)
	w := NewWriter(buf)
	require.NoError(t, WriteHeader(w))
	r := NewReader(w.Bytes())
	require.NoError(t, ReadHeader(r))
}
