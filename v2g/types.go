// Package v2g implements the value-tree types, grammar tables, and
// document/fragment dispatch for the ISO 15118-20 DC charging message set.
// It is the library's root package: DecodeDocument, EncodeDocument,
// DecodeFragment and EncodeFragment are its four entry points.
package v2g

import (
	"github.com/go-ev/iso15118exi/exi"
	"github.com/go-ev/iso15118exi/xmldsig"
)

const (
	MaxSessionIDLen = 8
	MaxTaxCosts     = 10
)

// MessageHeaderType prefixes every V2G message: a session identifier, a
// timestamp, and an optional detached signature over the message body.
// ExtensionsList is part of the schema but not part of the wired subset;
// the grammar table still reserves a production for it (see headerStates),
// and decoding one yields ErrUnknownEventForDecoding rather than silently
// skipping it.
type MessageHeaderType struct {
	SessionID []byte
	TimeStamp uint64
	Signature exi.Optional[xmldsig.SignatureType]
}

// RationalNumberType is value * 10^exponent, the scaled-integer
// representation every physical-value field in this schema uses on the
// wire. AsDecimal converts to an arbitrary-
// precision decimal via the exi package's apd-backed helper.
type RationalNumberType struct {
	Exponent int8
	Value    int16
}

// AsDecimal returns the rational number as an arbitrary-precision decimal.
func (r RationalNumberType) AsDecimal() *exi.Decimal {
	return exi.RationalToDecimal(int64(r.Value), r.Exponent)
}

// ResponseCodeType is the schema's shared response-code enumeration,
// reduced here to a representative arity of eight values covering the
// "OK family" / "warning family" / "failed family" shape the full schema
// repeats across ~30 values.
type ResponseCodeType int

const (
	ResponseCodeOK ResponseCodeType = iota
	ResponseCodeOKNewSessionEstablished
	ResponseCodeOKCertificateExpiresSoon
	ResponseCodeWarningCertificateRevoked
	ResponseCodeFailed
	ResponseCodeFailedSequenceError
	ResponseCodeFailedUnknownSession
	ResponseCodeFailedContactorError

	responseCodeArity = 8
)

// EVSEProcessingType is the Finished/Ongoing discriminator the response
// messages use to signal whether the EVSE needs another request round.
type EVSEProcessingType int

const (
	EVSEProcessingFinished EVSEProcessingType = iota
	EVSEProcessingOngoing

	evseProcessingArity = 2
)

// ReceiptType exercises the repeated-complex-particle-with-static-max
// shape: zero to MaxTaxCosts TaxCosts entries.
type ReceiptType struct {
	TaxCosts      [MaxTaxCosts]RationalNumberType
	TaxCostsCount int
}

// ScheduledDCParameterType is one of the two wired energy-transfer-mode
// branches (see EnergyTransferMode below).
type ScheduledDCParameterType struct {
	MaximumChargePower RationalNumberType
}

// BPTDCParameterType is the bidirectional-power-transfer branch, adding a
// discharge-power field over ScheduledDCParameterType.
type BPTDCParameterType struct {
	MaximumChargePower    RationalNumberType
	MaximumDischargePower RationalNumberType
}

// EnergyTransferModeBranch discriminates EnergyTransferMode's tagged union.
type EnergyTransferModeBranch int

const (
	EnergyTransferModeScheduled EnergyTransferModeBranch = iota
	EnergyTransferModeBPTScheduled
)

// EnergyTransferMode is the xsd:choice tagged union scenario S3
// exercises, collapsed from the schema's four alternatives
// (Scheduled/BPT_Scheduled/Dynamic/BPT_Dynamic) to the two wired branches
// documented in DESIGN.md.
type EnergyTransferMode struct {
	Branch       EnergyTransferModeBranch
	Scheduled    ScheduledDCParameterType
	BPTScheduled BPTDCParameterType
}

// DC_CableCheckReqType is the plain-sequence-of-one-complex-particle
// shape: a header and nothing else in the wired subset.
type DC_CableCheckReqType struct {
	Header MessageHeaderType
}

// DC_CableCheckResType adds two required simple particles after the header.
type DC_CableCheckResType struct {
	Header         MessageHeaderType
	ResponseCode   ResponseCodeType
	EVSEProcessing EVSEProcessingType
}

// DC_ChargeParameterDiscoveryReqType carries the EV's requested maximum
// charge power alongside the header.
type DC_ChargeParameterDiscoveryReqType struct {
	Header               MessageHeaderType
	EVMaximumChargePower RationalNumberType
}

// DC_ChargeParameterDiscoveryResType wires the tagged-union
// EnergyTransferMode choice.
type DC_ChargeParameterDiscoveryResType struct {
	Header             MessageHeaderType
	ResponseCode       ResponseCodeType
	EnergyTransferMode EnergyTransferMode
}

// DC_ChargeLoopReqType carries the EV's present voltage reading.
type DC_ChargeLoopReqType struct {
	Header           MessageHeaderType
	EVPresentVoltage RationalNumberType
}

// DC_ChargeLoopResType carries the EVSE's present voltage reading.
type DC_ChargeLoopResType struct {
	Header             MessageHeaderType
	EVSEPresentVoltage RationalNumberType
}

// DC_WeldingDetectionReqType is header-only, like DC_CableCheckReqType.
type DC_WeldingDetectionReqType struct {
	Header MessageHeaderType
}

// DC_WeldingDetectionResType reports the EVSE's present voltage alongside
// a response code.
type DC_WeldingDetectionResType struct {
	Header             MessageHeaderType
	ResponseCode       ResponseCodeType
	EVSEPresentVoltage RationalNumberType
}
