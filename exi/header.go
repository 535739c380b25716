package exi

// Header is the EXI cookie-and-options preamble this codec reads and
// writes, ported from sderkacs-exi-go's EXIHeaderDecoder/EXIHeaderEncoder
// (core/exi_header.go): distinguishing bits, then the options-presence
// bit, then the format version as a preview bit followed by one or more
// terminated 4-bit groups. Unlike the teacher, this profile never
// negotiates an EXI Options document and always assumes version 0, so a
// present options bit or a nonzero version is a decode failure rather than
// a document to parse.
const (
	headerDistinguishingBits    = 0x2 // core/exi_header.go EXIHeader_DistinguishingBitsValue
	headerFormatVersionContinue = 15  // core/exi_header.go EXIHeader_FormatVersionContinueValue
)

// hasASCIICookie reports whether the next 4 bytes of bs are the optional
// "$EXI" cookie, without consuming them. Only meaningful at a byte
// boundary, which ReadHeader is always called at.
func hasASCIICookie(bs *Bitstream) bool {
	if bs.bitOffset != 0 {
		return false
	}
	if bs.byteIndex+4 > len(bs.buf) {
		return false
	}
	b := bs.buf[bs.byteIndex : bs.byteIndex+4]
	return b[0] == '$' && b[1] == 'E' && b[2] == 'X' && b[3] == 'I'
}

// ReadHeader validates the EXI header: an optional "$EXI" cookie, the
// 2-bit distinguishing value, the options-presence bit (must be 0, since
// this profile never negotiates options), and the format version (a
// preview bit that must be 0 followed by terminated 4-bit groups summing
// to 0). It advances bs past the header and leaves the cursor at the
// start of the body. Any mismatch is ErrInvalidHeader.
func ReadHeader(bs *Bitstream) error {
	if hasASCIICookie(bs) {
		if _, err := bs.ReadByteAligned(4); err != nil {
			return err
		}
	}

	distinguishing, err := bs.ReadBits(2)
	if err != nil {
		return err
	}
	if distinguishing != headerDistinguishingBits {
		return NewError(ErrInvalidHeader, "unexpected distinguishing bits %d", distinguishing)
	}

	hasOptions, err := ReadBoolean(bs)
	if err != nil {
		return err
	}
	if hasOptions {
		return NewError(ErrInvalidHeader, "options document present; unsupported")
	}

	previewVersion, err := ReadBoolean(bs)
	if err != nil {
		return err
	}
	if previewVersion {
		return NewError(ErrInvalidHeader, "preview version of EXI not supported")
	}

	version := 0
	for {
		group, err := bs.ReadBits(4)
		if err != nil {
			return err
		}
		version += int(group)
		if group != headerFormatVersionContinue {
			break
		}
	}
	if version != 0 {
		return NewError(ErrInvalidHeader, "unsupported EXI format version %d", version)
	}

	return nil
}

// WriteHeader emits the fixed header this codec always produces: no
// cookie, distinguishing bits, no options, final version 0 as a single
// terminated 4-bit group. This is exactly the single byte 0x80.
func WriteHeader(bs *Bitstream) error {
	if err := bs.WriteBits(2, headerDistinguishingBits); err != nil {
		return err
	}
	if err := WriteBoolean(bs, false); err != nil {
		return err
	}
	if err := WriteBoolean(bs, false); err != nil {
		return err
	}
	return bs.WriteBits(4, 0)
}
