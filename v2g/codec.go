package v2g

import (
	"github.com/go-ev/iso15118exi/exi"
	"github.com/go-ev/iso15118exi/xmldsig"
)

// DecodeRationalNumber implements RationalNumberType's plain two-required-
// field sequence: a signed Exponent restricted to
// an int8-sized range, and a signed Value.
func DecodeRationalNumber(bs *exi.Bitstream) (*RationalNumberType, error) {
	v := &RationalNumberType{}
	if _, err := exi.ReadEventCode(bs, rationalNumberStates, rnStart); err != nil {
		return nil, err
	}
	exponent, err := exi.DecodeSimpleInt8(bs)
	if err != nil {
		return nil, err
	}
	v.Exponent = exponent

	if _, err := exi.ReadEventCode(bs, rationalNumberStates, rnAfterExponent); err != nil {
		return nil, err
	}
	value, err := exi.DecodeSimpleInt64(bs)
	if err != nil {
		return nil, err
	}
	if value < -32768 || value > 32767 {
		return nil, exi.NewError(exi.ErrIntegerOutOfRange, "RationalNumberType.Value %d out of int16 range", value)
	}
	v.Value = int16(value)

	if _, err := exi.ReadEventCode(bs, rationalNumberStates, rnAfterValue); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeRationalNumber is the encode-side counterpart.
func EncodeRationalNumber(bs *exi.Bitstream, v *RationalNumberType) error {
	if err := exi.WriteEventCode(bs, rationalNumberStates, rnStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleInt8(bs, v.Exponent); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, rationalNumberStates, rnAfterExponent, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleInt64(bs, int64(v.Value)); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, rationalNumberStates, rnAfterValue, 0)
}

// DecodeMessageHeader implements MessageHeaderType's sequence: SessionID,
// TimeStamp, optional Signature, optional (unimplemented) ExtensionsList.
func DecodeMessageHeader(bs *exi.Bitstream) (*MessageHeaderType, error) {
	v := &MessageHeaderType{}
	if _, err := exi.ReadEventCode(bs, headerStates, hStart); err != nil {
		return nil, err
	}
	sessionID, err := exi.DecodeSimpleHexBinary(bs, MaxSessionIDLen)
	if err != nil {
		return nil, err
	}
	v.SessionID = sessionID

	if _, err := exi.ReadEventCode(bs, headerStates, hAfterSessionID); err != nil {
		return nil, err
	}
	timeStamp, err := exi.DecodeSimpleUint64(bs)
	if err != nil {
		return nil, err
	}
	v.TimeStamp = timeStamp

	prod, err := exi.ReadEventCode(bs, headerStates, hAfterTimeStamp)
	if err != nil {
		return nil, err
	}
	state := prod.Next
	switch prod.Particle {
	case "Signature":
		sig, err := xmldsig.DecodeSignature(bs)
		if err != nil {
			return nil, err
		}
		v.Signature = exi.Some(*sig)
	case "ExtensionsList":
		return nil, exi.NewError(exi.ErrUnknownEventForDecoding, "MessageHeaderType.ExtensionsList is not implemented")
	}
	if state == exi.EndDone {
		return v, nil
	}

	prod, err = exi.ReadEventCode(bs, headerStates, state)
	if err != nil {
		return nil, err
	}
	if prod.Particle == "ExtensionsList" {
		return nil, exi.NewError(exi.ErrUnknownEventForDecoding, "MessageHeaderType.ExtensionsList is not implemented")
	}
	return v, nil
}

// EncodeMessageHeader is the encode-side counterpart. Encoding a header
// with ExtensionsList content is not supported by this wired subset; since
// MessageHeaderType carries no such field, the encoder can never be asked
// to emit one.
func EncodeMessageHeader(bs *exi.Bitstream, v *MessageHeaderType) error {
	if err := exi.WriteEventCode(bs, headerStates, hStart, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleHexBinary(bs, v.SessionID, MaxSessionIDLen); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, headerStates, hAfterSessionID, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleUint64(bs, v.TimeStamp); err != nil {
		return err
	}
	if v.Signature.Set {
		if err := exi.WriteEventCode(bs, headerStates, hAfterTimeStamp, 0); err != nil {
			return err
		}
		sig := v.Signature.Value
		if err := xmldsig.EncodeSignature(bs, &sig); err != nil {
			return err
		}
		return exi.WriteEventCode(bs, headerStates, hAfterSignature, 1)
	}
	return exi.WriteEventCode(bs, headerStates, hAfterTimeStamp, 2)
}

// DecodeReceipt implements ReceiptType's repeated-complex-particle shape:
// zero to MaxTaxCosts TaxCosts entries.
func DecodeReceipt(bs *exi.Bitstream) (*ReceiptType, error) {
	v := &ReceiptType{}
	state := exi.StateID(0)
	for {
		prod, err := exi.ReadEventCode(bs, receiptStates, state)
		if err != nil {
			return nil, err
		}
		if prod.Kind == exi.ProdEndElement {
			return v, nil
		}
		if v.TaxCostsCount >= MaxTaxCosts {
			return nil, exi.NewError(exi.ErrArrayOutOfBounds, "ReceiptType: more than %d TaxCosts", MaxTaxCosts)
		}
		rn, err := DecodeRationalNumber(bs)
		if err != nil {
			return nil, err
		}
		v.TaxCosts[v.TaxCostsCount] = *rn
		v.TaxCostsCount++
		state = prod.Next
	}
}

// EncodeReceipt is the encode-side counterpart.
func EncodeReceipt(bs *exi.Bitstream, v *ReceiptType) error {
	if v.TaxCostsCount < 0 || v.TaxCostsCount > MaxTaxCosts {
		return exi.NewError(exi.ErrInvariantViolation, "ReceiptType.TaxCostsCount %d out of [0,%d]", v.TaxCostsCount, MaxTaxCosts)
	}
	state := exi.StateID(0)
	for i := 0; i < v.TaxCostsCount; i++ {
		if err := exi.WriteEventCode(bs, receiptStates, state, 0); err != nil {
			return err
		}
		if err := EncodeRationalNumber(bs, &v.TaxCosts[i]); err != nil {
			return err
		}
		st, _ := exi.FindState(receiptStates, state)
		state = st.Productions[0].Next
	}
	st, _ := exi.FindState(receiptStates, state)
	endIdx := len(st.Productions) - 1
	return exi.WriteEventCode(bs, receiptStates, state, endIdx)
}

// DecodeScheduledDCParameter implements the Scheduled energy-transfer-mode
// branch: a single required MaximumChargePower.
func DecodeScheduledDCParameter(bs *exi.Bitstream) (*ScheduledDCParameterType, error) {
	v := &ScheduledDCParameterType{}
	if _, err := exi.ReadEventCode(bs, scheduledDCParameterStates, sdStart); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.MaximumChargePower = *rn
	if _, err := exi.ReadEventCode(bs, scheduledDCParameterStates, sdAfterMaxChargePower); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeScheduledDCParameter is the encode-side counterpart.
func EncodeScheduledDCParameter(bs *exi.Bitstream, v *ScheduledDCParameterType) error {
	if err := exi.WriteEventCode(bs, scheduledDCParameterStates, sdStart, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.MaximumChargePower); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, scheduledDCParameterStates, sdAfterMaxChargePower, 0)
}

// DecodeBPTDCParameter implements the bidirectional-power-transfer branch.
func DecodeBPTDCParameter(bs *exi.Bitstream) (*BPTDCParameterType, error) {
	v := &BPTDCParameterType{}
	if _, err := exi.ReadEventCode(bs, bptDCParameterStates, bptStart); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.MaximumChargePower = *rn

	if _, err := exi.ReadEventCode(bs, bptDCParameterStates, bptAfterMaxChargePower); err != nil {
		return nil, err
	}
	rn2, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.MaximumDischargePower = *rn2

	if _, err := exi.ReadEventCode(bs, bptDCParameterStates, bptAfterMaxDischargePower); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeBPTDCParameter is the encode-side counterpart.
func EncodeBPTDCParameter(bs *exi.Bitstream, v *BPTDCParameterType) error {
	if err := exi.WriteEventCode(bs, bptDCParameterStates, bptStart, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.MaximumChargePower); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, bptDCParameterStates, bptAfterMaxChargePower, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.MaximumDischargePower); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, bptDCParameterStates, bptAfterMaxDischargePower, 0)
}

// DecodeCableCheckReq implements the header-only request shape.
func DecodeCableCheckReq(bs *exi.Bitstream) (*DC_CableCheckReqType, error) {
	v := &DC_CableCheckReqType{}
	if _, err := exi.ReadEventCode(bs, cableCheckReqStates, ccqStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h
	if _, err := exi.ReadEventCode(bs, cableCheckReqStates, ccqAfterHeader); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeCableCheckReq is the encode-side counterpart.
func EncodeCableCheckReq(bs *exi.Bitstream, v *DC_CableCheckReqType) error {
	if err := exi.WriteEventCode(bs, cableCheckReqStates, ccqStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, cableCheckReqStates, ccqAfterHeader, 0)
}

// DecodeCableCheckRes implements the header-plus-two-simple-particles shape.
func DecodeCableCheckRes(bs *exi.Bitstream) (*DC_CableCheckResType, error) {
	v := &DC_CableCheckResType{}
	if _, err := exi.ReadEventCode(bs, cableCheckResStates, ccrStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, cableCheckResStates, ccrAfterHeader); err != nil {
		return nil, err
	}
	rc, err := exi.DecodeSimpleEnum(bs, 3, responseCodeArity)
	if err != nil {
		return nil, err
	}
	v.ResponseCode = ResponseCodeType(rc)

	if _, err := exi.ReadEventCode(bs, cableCheckResStates, ccrAfterResponseCode); err != nil {
		return nil, err
	}
	proc, err := exi.DecodeSimpleEnum(bs, 1, evseProcessingArity)
	if err != nil {
		return nil, err
	}
	v.EVSEProcessing = EVSEProcessingType(proc)

	if _, err := exi.ReadEventCode(bs, cableCheckResStates, ccrAfterEVSEProcessing); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeCableCheckRes is the encode-side counterpart.
func EncodeCableCheckRes(bs *exi.Bitstream, v *DC_CableCheckResType) error {
	if err := exi.WriteEventCode(bs, cableCheckResStates, ccrStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, cableCheckResStates, ccrAfterHeader, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleEnum(bs, 3, responseCodeArity, int(v.ResponseCode)); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, cableCheckResStates, ccrAfterResponseCode, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleEnum(bs, 1, evseProcessingArity, int(v.EVSEProcessing)); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, cableCheckResStates, ccrAfterEVSEProcessing, 0)
}

// DecodeChargeParameterDiscoveryReq implements the header-plus-one-
// numeric-particle shape.
func DecodeChargeParameterDiscoveryReq(bs *exi.Bitstream) (*DC_ChargeParameterDiscoveryReqType, error) {
	v := &DC_ChargeParameterDiscoveryReqType{}
	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryReqStates, cpqStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryReqStates, cpqAfterHeader); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.EVMaximumChargePower = *rn

	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryReqStates, cpqAfterMaxChargePower); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeChargeParameterDiscoveryReq is the encode-side counterpart.
func EncodeChargeParameterDiscoveryReq(bs *exi.Bitstream, v *DC_ChargeParameterDiscoveryReqType) error {
	if err := exi.WriteEventCode(bs, chargeParameterDiscoveryReqStates, cpqStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, chargeParameterDiscoveryReqStates, cpqAfterHeader, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.EVMaximumChargePower); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, chargeParameterDiscoveryReqStates, cpqAfterMaxChargePower, 0)
}

// DecodeChargeParameterDiscoveryRes implements the xsd:choice tagged-union
// shape.
func DecodeChargeParameterDiscoveryRes(bs *exi.Bitstream) (*DC_ChargeParameterDiscoveryResType, error) {
	v := &DC_ChargeParameterDiscoveryResType{}
	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryResStates, cprStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryResStates, cprAfterHeader); err != nil {
		return nil, err
	}
	rc, err := exi.DecodeSimpleEnum(bs, 3, responseCodeArity)
	if err != nil {
		return nil, err
	}
	v.ResponseCode = ResponseCodeType(rc)

	prod, err := exi.ReadEventCode(bs, chargeParameterDiscoveryResStates, cprAfterResponseCode)
	if err != nil {
		return nil, err
	}
	switch prod.Particle {
	case "Scheduled":
		s, err := DecodeScheduledDCParameter(bs)
		if err != nil {
			return nil, err
		}
		v.EnergyTransferMode = EnergyTransferMode{Branch: EnergyTransferModeScheduled, Scheduled: *s}
	case "BPTScheduled":
		b, err := DecodeBPTDCParameter(bs)
		if err != nil {
			return nil, err
		}
		v.EnergyTransferMode = EnergyTransferMode{Branch: EnergyTransferModeBPTScheduled, BPTScheduled: *b}
	}

	if _, err := exi.ReadEventCode(bs, chargeParameterDiscoveryResStates, cprAfterEnergyTransferMode); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeChargeParameterDiscoveryRes is the encode-side counterpart. The
// encoder picks the production matching EnergyTransferMode.Branch; there
// is no ambiguity because Branch is a type-level discriminant, not a pair
// of independent presence flags.
func EncodeChargeParameterDiscoveryRes(bs *exi.Bitstream, v *DC_ChargeParameterDiscoveryResType) error {
	if err := exi.WriteEventCode(bs, chargeParameterDiscoveryResStates, cprStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, chargeParameterDiscoveryResStates, cprAfterHeader, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleEnum(bs, 3, responseCodeArity, int(v.ResponseCode)); err != nil {
		return err
	}

	switch v.EnergyTransferMode.Branch {
	case EnergyTransferModeScheduled:
		if err := exi.WriteEventCode(bs, chargeParameterDiscoveryResStates, cprAfterResponseCode, 0); err != nil {
			return err
		}
		if err := EncodeScheduledDCParameter(bs, &v.EnergyTransferMode.Scheduled); err != nil {
			return err
		}
	case EnergyTransferModeBPTScheduled:
		if err := exi.WriteEventCode(bs, chargeParameterDiscoveryResStates, cprAfterResponseCode, 1); err != nil {
			return err
		}
		if err := EncodeBPTDCParameter(bs, &v.EnergyTransferMode.BPTScheduled); err != nil {
			return err
		}
	default:
		return exi.NewError(exi.ErrInvariantViolation, "DC_ChargeParameterDiscoveryResType: unknown EnergyTransferMode branch %d", v.EnergyTransferMode.Branch)
	}

	return exi.WriteEventCode(bs, chargeParameterDiscoveryResStates, cprAfterEnergyTransferMode, 0)
}

// DecodeChargeLoopReq implements the header-plus-voltage shape.
func DecodeChargeLoopReq(bs *exi.Bitstream) (*DC_ChargeLoopReqType, error) {
	v := &DC_ChargeLoopReqType{}
	if _, err := exi.ReadEventCode(bs, chargeLoopReqStates, clqStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, chargeLoopReqStates, clqAfterHeader); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.EVPresentVoltage = *rn

	if _, err := exi.ReadEventCode(bs, chargeLoopReqStates, clqAfterVoltage); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeChargeLoopReq is the encode-side counterpart.
func EncodeChargeLoopReq(bs *exi.Bitstream, v *DC_ChargeLoopReqType) error {
	if err := exi.WriteEventCode(bs, chargeLoopReqStates, clqStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, chargeLoopReqStates, clqAfterHeader, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.EVPresentVoltage); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, chargeLoopReqStates, clqAfterVoltage, 0)
}

// DecodeChargeLoopRes implements the header-plus-voltage shape.
func DecodeChargeLoopRes(bs *exi.Bitstream) (*DC_ChargeLoopResType, error) {
	v := &DC_ChargeLoopResType{}
	if _, err := exi.ReadEventCode(bs, chargeLoopResStates, clrStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, chargeLoopResStates, clrAfterHeader); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.EVSEPresentVoltage = *rn

	if _, err := exi.ReadEventCode(bs, chargeLoopResStates, clrAfterVoltage); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeChargeLoopRes is the encode-side counterpart.
func EncodeChargeLoopRes(bs *exi.Bitstream, v *DC_ChargeLoopResType) error {
	if err := exi.WriteEventCode(bs, chargeLoopResStates, clrStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, chargeLoopResStates, clrAfterHeader, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.EVSEPresentVoltage); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, chargeLoopResStates, clrAfterVoltage, 0)
}

// DecodeWeldingDetectionReq implements the header-only request shape.
func DecodeWeldingDetectionReq(bs *exi.Bitstream) (*DC_WeldingDetectionReqType, error) {
	v := &DC_WeldingDetectionReqType{}
	if _, err := exi.ReadEventCode(bs, weldingDetectionReqStates, wdqStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h
	if _, err := exi.ReadEventCode(bs, weldingDetectionReqStates, wdqAfterHeader); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeWeldingDetectionReq is the encode-side counterpart.
func EncodeWeldingDetectionReq(bs *exi.Bitstream, v *DC_WeldingDetectionReqType) error {
	if err := exi.WriteEventCode(bs, weldingDetectionReqStates, wdqStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, weldingDetectionReqStates, wdqAfterHeader, 0)
}

// DecodeWeldingDetectionRes implements the header-plus-response-code-plus-
// voltage shape.
func DecodeWeldingDetectionRes(bs *exi.Bitstream) (*DC_WeldingDetectionResType, error) {
	v := &DC_WeldingDetectionResType{}
	if _, err := exi.ReadEventCode(bs, weldingDetectionResStates, wdrStart); err != nil {
		return nil, err
	}
	h, err := DecodeMessageHeader(bs)
	if err != nil {
		return nil, err
	}
	v.Header = *h

	if _, err := exi.ReadEventCode(bs, weldingDetectionResStates, wdrAfterHeader); err != nil {
		return nil, err
	}
	rc, err := exi.DecodeSimpleEnum(bs, 3, responseCodeArity)
	if err != nil {
		return nil, err
	}
	v.ResponseCode = ResponseCodeType(rc)

	if _, err := exi.ReadEventCode(bs, weldingDetectionResStates, wdrAfterResponseCode); err != nil {
		return nil, err
	}
	rn, err := DecodeRationalNumber(bs)
	if err != nil {
		return nil, err
	}
	v.EVSEPresentVoltage = *rn

	if _, err := exi.ReadEventCode(bs, weldingDetectionResStates, wdrAfterVoltage); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeWeldingDetectionRes is the encode-side counterpart.
func EncodeWeldingDetectionRes(bs *exi.Bitstream, v *DC_WeldingDetectionResType) error {
	if err := exi.WriteEventCode(bs, weldingDetectionResStates, wdrStart, 0); err != nil {
		return err
	}
	if err := EncodeMessageHeader(bs, &v.Header); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, weldingDetectionResStates, wdrAfterHeader, 0); err != nil {
		return err
	}
	if err := exi.EncodeSimpleEnum(bs, 3, responseCodeArity, int(v.ResponseCode)); err != nil {
		return err
	}
	if err := exi.WriteEventCode(bs, weldingDetectionResStates, wdrAfterResponseCode, 0); err != nil {
		return err
	}
	if err := EncodeRationalNumber(bs, &v.EVSEPresentVoltage); err != nil {
		return err
	}
	return exi.WriteEventCode(bs, weldingDetectionResStates, wdrAfterVoltage, 0)
}
