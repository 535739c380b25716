package xmldsig

import (
	"testing"

	"github.com/go-ev/iso15118exi/exi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSignature() *SignatureType {
	return &SignatureType{
		SignedInfo: SignedInfoType{
			CanonicalizationMethod: CanonicalizationMethodType{Algorithm: "http://www.w3.org/2006/12/xml-c14n11"},
			SignatureMethod:        SignatureMethodType{Algorithm: "http://www.w3.org/2001/04/xmldsig-more#ecdsa-sha256"},
			Reference: [4]ReferenceType{
				{
					URI:          exi.Some("#SignedInfo"),
					Transforms:   exi.None[TransformsType](),
					DigestMethod: DigestMethodType{Algorithm: "http://www.w3.org/2001/04/xmlenc#sha256"},
					DigestValue:  []byte{1, 2, 3, 4},
				},
			},
			ReferenceCount: 1,
		},
		SignatureValue: []byte{9, 9, 9},
		KeyInfo:        exi.None[KeyInfoType](),
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	sig := sampleSignature()

	buf := make([]byte, 512)
	w := exi.NewWriter(buf)
	require.NoError(t, EncodeSignature(w, sig))

	r := exi.NewReader(w.Bytes())
	got, err := DecodeSignature(r)
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestFragmentSignedInfoRoundTrip(t *testing.T) {
	si := sampleSignature().SignedInfo
	frag := &Fragment{SignedInfo: &si}

	buf := make([]byte, 512)
	w := exi.NewWriter(buf)
	require.NoError(t, EncodeFragment(w, frag))

	r := exi.NewReader(w.Bytes())
	got, err := DecodeFragment(r)
	require.NoError(t, err)
	assert.Equal(t, frag, got)
}

func TestFragmentWrongSentinelRejected(t *testing.T) {
	si := sampleSignature().SignedInfo

	buf := make([]byte, 512)
	w := exi.NewWriter(buf)
	require.NoError(t, exi.WriteNBitUint(w, 8, fragmentRootSignedInfo))
	require.NoError(t, EncodeSignedInfo(w, &si))
	require.NoError(t, exi.WriteNBitUint(w, 8, 0xFF)) // wrong sentinel

	r := exi.NewReader(w.Bytes())
	_, err := DecodeFragment(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, exi.ErrKind(exi.ErrIncorrectEndFragmentValue))
}
