package exi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAttributeStringOmitsTrailingBit(t *testing.T) {
	buf := make([]byte, 16)

	wAttr := NewWriter(buf)
	require.NoError(t, EncodeAttributeString(wAttr, "x", 8))

	wElem := NewWriter(make([]byte, 16))
	require.NoError(t, EncodeSimpleString(wElem, "x", 8))

	assert.Less(t, wAttr.PositionBits(), wElem.PositionBits())
	assert.Equal(t, 1, wElem.PositionBits()-wAttr.PositionBits())
}

func TestDecodeAttributeStringRoundTrips(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	require.NoError(t, EncodeAttributeString(w, "http://example.org/alg", 32))

	r := NewReader(w.Bytes())
	got, err := DecodeAttributeString(r, 32)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/alg", got)
	assert.Equal(t, w.PositionBits(), r.PositionBits())
}
