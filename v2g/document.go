package v2g

import "github.com/go-ev/iso15118exi/exi"

// Document dispatch roots. This profile wires 8 of the DC/common schema's
// roughly 48 top-level elements; the remaining roots (AC charging, WPT
// charging, the rest of the session-setup/discovery exchange, and so on)
// are out of scope here and fall through DecodeDocument's default case as
// ErrUnsupportedSubEvent (see DESIGN.md).
const (
	rootCableCheckReq = iota
	rootCableCheckRes
	rootChargeParameterDiscoveryReq
	rootChargeParameterDiscoveryRes
	rootChargeLoopReq
	rootChargeLoopRes
	rootWeldingDetectionReq
	rootWeldingDetectionRes
)

// documentRootWidth is the event-code width of the full ~48-root schema
// table, kept at 6 bits even though only 8 roots are wired here (8 entries
// alone would need 3). The root code values themselves are this codec's
// own assignment, not the full schema's root-index table (see DESIGN.md).
const documentRootWidth = 6

// Document is the tagged union DecodeDocument/EncodeDocument operate over:
// exactly one field is set, matching the root element actually on the wire.
type Document struct {
	CableCheckReq               *DC_CableCheckReqType
	CableCheckRes               *DC_CableCheckResType
	ChargeParameterDiscoveryReq *DC_ChargeParameterDiscoveryReqType
	ChargeParameterDiscoveryRes *DC_ChargeParameterDiscoveryResType
	ChargeLoopReq               *DC_ChargeLoopReqType
	ChargeLoopRes               *DC_ChargeLoopResType
	WeldingDetectionReq         *DC_WeldingDetectionReqType
	WeldingDetectionRes         *DC_WeldingDetectionResType
}

// DecodeDocument reads the EXI header, then a 6-bit root event code
// dispatching to one of the eight wired message types.
func DecodeDocument(bs *exi.Bitstream) (*Document, error) {
	if err := exi.ReadHeader(bs); err != nil {
		return nil, err
	}
	rootCode, err := exi.ReadNBitUint(bs, documentRootWidth)
	if err != nil {
		return nil, err
	}

	var doc Document
	switch rootCode {
	case rootCableCheckReq:
		v, err := DecodeCableCheckReq(bs)
		if err != nil {
			return nil, err
		}
		doc.CableCheckReq = v
	case rootCableCheckRes:
		v, err := DecodeCableCheckRes(bs)
		if err != nil {
			return nil, err
		}
		doc.CableCheckRes = v
	case rootChargeParameterDiscoveryReq:
		v, err := DecodeChargeParameterDiscoveryReq(bs)
		if err != nil {
			return nil, err
		}
		doc.ChargeParameterDiscoveryReq = v
	case rootChargeParameterDiscoveryRes:
		v, err := DecodeChargeParameterDiscoveryRes(bs)
		if err != nil {
			return nil, err
		}
		doc.ChargeParameterDiscoveryRes = v
	case rootChargeLoopReq:
		v, err := DecodeChargeLoopReq(bs)
		if err != nil {
			return nil, err
		}
		doc.ChargeLoopReq = v
	case rootChargeLoopRes:
		v, err := DecodeChargeLoopRes(bs)
		if err != nil {
			return nil, err
		}
		doc.ChargeLoopRes = v
	case rootWeldingDetectionReq:
		v, err := DecodeWeldingDetectionReq(bs)
		if err != nil {
			return nil, err
		}
		doc.WeldingDetectionReq = v
	case rootWeldingDetectionRes:
		v, err := DecodeWeldingDetectionRes(bs)
		if err != nil {
			return nil, err
		}
		doc.WeldingDetectionRes = v
	default:
		return nil, exi.NewError(exi.ErrUnsupportedSubEvent, "document: unknown root code %d", rootCode)
	}
	return &doc, nil
}

// EncodeDocument is the encode-side counterpart of DecodeDocument.
func EncodeDocument(bs *exi.Bitstream, doc *Document) error {
	if err := exi.WriteHeader(bs); err != nil {
		return err
	}

	switch {
	case doc.CableCheckReq != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootCableCheckReq); err != nil {
			return err
		}
		return EncodeCableCheckReq(bs, doc.CableCheckReq)
	case doc.CableCheckRes != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootCableCheckRes); err != nil {
			return err
		}
		return EncodeCableCheckRes(bs, doc.CableCheckRes)
	case doc.ChargeParameterDiscoveryReq != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootChargeParameterDiscoveryReq); err != nil {
			return err
		}
		return EncodeChargeParameterDiscoveryReq(bs, doc.ChargeParameterDiscoveryReq)
	case doc.ChargeParameterDiscoveryRes != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootChargeParameterDiscoveryRes); err != nil {
			return err
		}
		return EncodeChargeParameterDiscoveryRes(bs, doc.ChargeParameterDiscoveryRes)
	case doc.ChargeLoopReq != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootChargeLoopReq); err != nil {
			return err
		}
		return EncodeChargeLoopReq(bs, doc.ChargeLoopReq)
	case doc.ChargeLoopRes != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootChargeLoopRes); err != nil {
			return err
		}
		return EncodeChargeLoopRes(bs, doc.ChargeLoopRes)
	case doc.WeldingDetectionReq != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootWeldingDetectionReq); err != nil {
			return err
		}
		return EncodeWeldingDetectionReq(bs, doc.WeldingDetectionReq)
	case doc.WeldingDetectionRes != nil:
		if err := exi.WriteNBitUint(bs, documentRootWidth, rootWeldingDetectionRes); err != nil {
			return err
		}
		return EncodeWeldingDetectionRes(bs, doc.WeldingDetectionRes)
	default:
		return exi.NewError(exi.ErrInvariantViolation, "document: no branch set")
	}
}
