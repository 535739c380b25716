// Package xmldsig implements the value-tree types and grammar tables for
// the subset of the W3C XML Digital Signature schema
// (http://www.w3.org/2000/09/xmldsig#) that the ISO 15118-20 DC message set
// imports: a Signature over a SignedInfo referencing a digest, optionally
// carrying key material as an X509 issuer/serial pair. Field and string
// maxima below are the schema's practical bounds for this profile, not
// values pulled from the XSD's unbounded xsd:string/anyURI declarations.
package xmldsig

import "github.com/go-ev/iso15118exi/exi"

const (
	MaxURILen         = 256
	MaxAlgorithmLen   = 128
	MaxDigestValueLen = 64  // SHA-512 digest
	MaxSignatureLen   = 512 // RSA-4096 / ECDSA signature
	MaxCertificateLen = 2048
	MaxIssuerNameLen  = 256
	MaxIDLen          = 64

	MaxTransforms = 4
	MaxReferences = 4
)

// CanonicalizationMethodType carries only the Algorithm attribute; this
// profile's C14N method never has mixed ##other content on the wire.
type CanonicalizationMethodType struct {
	Algorithm string
}

// SignatureMethodType carries only the Algorithm attribute; HMACOutputLength
// is not part of the wired subset.
type SignatureMethodType struct {
	Algorithm string
}

// DigestMethodType carries only the Algorithm attribute.
type DigestMethodType struct {
	Algorithm string
}

// TransformType carries only the Algorithm attribute; transform parameters
// (XPath expressions, ANY content) are out of the wired subset.
type TransformType struct {
	Algorithm string
}

// TransformsType is one-or-more Transform, capped at MaxTransforms.
type TransformsType struct {
	Transform [MaxTransforms]TransformType
	Count     int
}

// ReferenceType is a single signed reference: an optional URI attribute
// (the Id and Type attributes are not part of the wired subset, since they
// add no new grammar shape over URI; see DESIGN.md), an optional Transforms
// chain, and a required DigestMethod/DigestValue pair.
type ReferenceType struct {
	URI          exi.Optional[string]
	Transforms   exi.Optional[TransformsType]
	DigestMethod DigestMethodType
	DigestValue  []byte
}

// SignedInfoType is the canonicalization method, signature method, and one
// or more references that the signature value actually signs.
type SignedInfoType struct {
	CanonicalizationMethod CanonicalizationMethodType
	SignatureMethod        SignatureMethodType
	Reference              [MaxReferences]ReferenceType
	ReferenceCount         int
}

// X509IssuerSerialType identifies a certificate by issuer distinguished
// name and serial number, the nested-recursion example names
// (KeyInfo → X509Data → X509IssuerSerial).
type X509IssuerSerialType struct {
	X509IssuerName   string
	X509SerialNumber int64
}

// X509DataType is simplified from the schema's unbounded choice sequence to
// the two alternatives this profile actually wires: an issuer/serial pair
// and/or a raw certificate, each independently optional (see DESIGN.md for
// why this is not modeled as a strict xsd:choice).
type X509DataType struct {
	X509IssuerSerial exi.Optional[X509IssuerSerialType]
	X509Certificate  exi.Optional[[]byte]
}

// KeyInfoType is simplified from the schema's unbounded choice to the one
// alternative this profile wires: X509Data.
type KeyInfoType struct {
	X509Data exi.Optional[X509DataType]
}

// SignatureType is the document/fragment root: SignedInfo, the raw
// signature bytes over its canonicalized form, and optional key material.
// Signature/Object extension points are out of the wired subset.
type SignatureType struct {
	SignedInfo     SignedInfoType
	SignatureValue []byte
	KeyInfo        exi.Optional[KeyInfoType]
}
