package xmldsig

import "github.com/go-ev/iso15118exi/exi"

// FragmentEndSentinel is the trailing 8-bit code a signature-schema
// fragment must end with.
const FragmentEndSentinel = 46

// fragmentRootSignedInfo is the one local name this profile wires into the
// xmldsig fragment dispatch table; the schema's other ~45 local names are
// unimplemented root codes here, exactly as the DC/common schema's document
// dispatch leaves ~40 of its ~48 roots unwired (see DESIGN.md).
const fragmentRootSignedInfo = 0

// Fragment is the tagged-union value a xmldsig fragment decode produces.
type Fragment struct {
	SignedInfo *SignedInfoType
}

// DecodeFragment reads an 8-bit root event code, dispatches to the
// matching subtree decoder, then checks the trailing 8-bit sentinel.
func DecodeFragment(bs *exi.Bitstream) (*Fragment, error) {
	rootCode, err := exi.ReadNBitUint(bs, 8)
	if err != nil {
		return nil, err
	}

	var frag Fragment
	switch rootCode {
	case fragmentRootSignedInfo:
		si, err := DecodeSignedInfo(bs)
		if err != nil {
			return nil, err
		}
		frag.SignedInfo = si
	default:
		return nil, exi.NewError(exi.ErrUnsupportedSubEvent, "xmldsig fragment: unknown root code %d", rootCode)
	}

	trailer, err := exi.ReadNBitUint(bs, 8)
	if err != nil {
		return nil, err
	}
	if trailer != FragmentEndSentinel {
		return nil, exi.NewError(exi.ErrIncorrectEndFragmentValue, "xmldsig fragment: trailer %d != %d", trailer, FragmentEndSentinel)
	}

	return &frag, nil
}

// EncodeFragment is the encode-side counterpart of DecodeFragment.
func EncodeFragment(bs *exi.Bitstream, frag *Fragment) error {
	switch {
	case frag.SignedInfo != nil:
		if err := exi.WriteNBitUint(bs, 8, fragmentRootSignedInfo); err != nil {
			return err
		}
		if err := EncodeSignedInfo(bs, frag.SignedInfo); err != nil {
			return err
		}
	default:
		return exi.NewError(exi.ErrInvariantViolation, "xmldsig fragment: no branch set")
	}
	return exi.WriteNBitUint(bs, 8, FragmentEndSentinel)
}
