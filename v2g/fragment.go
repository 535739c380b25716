package v2g

import "github.com/go-ev/iso15118exi/exi"

// FragmentEndSentinel is the trailing 8-bit code a DC/common schema
// fragment must end with, distinct from xmldsig's sentinel (46) because
// the two schemas are independently generated profiles.
const FragmentEndSentinel = 152

// Fragment dispatch roots. Like document dispatch, this profile wires a
// small subset of the schema's fragment-capable elements: the two
// non-header-carrying leaf types that make sense to exchange standalone
// (a rational number and a receipt), rather than every complex type in
// the schema.
const (
	fragmentRootRationalNumber = iota
	fragmentRootReceipt
)

const fragmentRootWidth = 8

// Fragment is the tagged union DecodeFragment/EncodeFragment operate over.
type Fragment struct {
	RationalNumber *RationalNumberType
	Receipt        *ReceiptType
}

// DecodeFragment reads an 8-bit root event code, dispatches to the
// matching subtree decoder, then checks the trailing 8-bit sentinel.
func DecodeFragment(bs *exi.Bitstream) (*Fragment, error) {
	rootCode, err := exi.ReadNBitUint(bs, fragmentRootWidth)
	if err != nil {
		return nil, err
	}

	var frag Fragment
	switch rootCode {
	case fragmentRootRationalNumber:
		v, err := DecodeRationalNumber(bs)
		if err != nil {
			return nil, err
		}
		frag.RationalNumber = v
	case fragmentRootReceipt:
		v, err := DecodeReceipt(bs)
		if err != nil {
			return nil, err
		}
		frag.Receipt = v
	default:
		return nil, exi.NewError(exi.ErrUnsupportedSubEvent, "v2g fragment: unknown root code %d", rootCode)
	}

	trailer, err := exi.ReadNBitUint(bs, fragmentRootWidth)
	if err != nil {
		return nil, err
	}
	if trailer != FragmentEndSentinel {
		return nil, exi.NewError(exi.ErrIncorrectEndFragmentValue, "v2g fragment: trailer %d != %d", trailer, FragmentEndSentinel)
	}

	return &frag, nil
}

// EncodeFragment is the encode-side counterpart of DecodeFragment.
func EncodeFragment(bs *exi.Bitstream, frag *Fragment) error {
	switch {
	case frag.RationalNumber != nil:
		if err := exi.WriteNBitUint(bs, fragmentRootWidth, fragmentRootRationalNumber); err != nil {
			return err
		}
		if err := EncodeRationalNumber(bs, frag.RationalNumber); err != nil {
			return err
		}
	case frag.Receipt != nil:
		if err := exi.WriteNBitUint(bs, fragmentRootWidth, fragmentRootReceipt); err != nil {
			return err
		}
		if err := EncodeReceipt(bs, frag.Receipt); err != nil {
			return err
		}
	default:
		return exi.NewError(exi.ErrInvariantViolation, "v2g fragment: no branch set")
	}
	return exi.WriteNBitUint(bs, fragmentRootWidth, FragmentEndSentinel)
}
