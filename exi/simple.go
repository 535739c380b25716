package exi

// The functions in this file implement "simple attribute or simple
// element" START handling: a leading second-level bit (must be 0), then
// the typed value via the primitive codec. Simple elements additionally
// read/write a trailing second-level bit that closes the element
// (EndSimple); attributes do not, since an attribute has no separate
// close event. The DecodeSimpleX/EncodeSimpleX pairs below implement the
// element shape; DecodeAttributeX/EncodeAttributeX implement the
// attribute shape.

// DecodeSimpleString reads a complete simple-content string particle:
// leading second-level bit, characters(maxLen), trailing second-level bit.
func DecodeSimpleString(bs *Bitstream, maxLen int) (string, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return "", err
	}
	s, err := ReadCharacters(bs, maxLen)
	if err != nil {
		return "", err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return "", err
	}
	return s, nil
}

// EncodeSimpleString is the encode-side counterpart of DecodeSimpleString.
func EncodeSimpleString(bs *Bitstream, s string, maxLen int) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteCharacters(bs, s, maxLen); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeAttributeString reads a complete attribute-value string particle:
// leading second-level bit, characters(maxLen). Unlike
// DecodeSimpleString, there is no trailing second-level bit; an attribute
// value has no separate close-of-content event.
func DecodeAttributeString(bs *Bitstream, maxLen int) (string, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return "", err
	}
	return ReadCharacters(bs, maxLen)
}

// EncodeAttributeString is the encode-side counterpart of
// DecodeAttributeString.
func EncodeAttributeString(bs *Bitstream, s string, maxLen int) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	return WriteCharacters(bs, s, maxLen)
}

// DecodeSimpleHexBinary reads a complete simple-content hexBinary particle.
func DecodeSimpleHexBinary(bs *Bitstream, maxLen int) ([]byte, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return nil, err
	}
	v, err := ReadHexBinary(bs, maxLen)
	if err != nil {
		return nil, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeSimpleHexBinary is the encode-side counterpart of DecodeSimpleHexBinary.
func EncodeSimpleHexBinary(bs *Bitstream, v []byte, maxLen int) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteHexBinary(bs, v, maxLen); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleBase64Binary reads a complete simple-content base64Binary
// particle, reusing the hexBinary wire primitive.
func DecodeSimpleBase64Binary(bs *Bitstream, maxLen int) ([]byte, error) {
	return DecodeSimpleHexBinary(bs, maxLen)
}

// EncodeSimpleBase64Binary mirrors DecodeSimpleBase64Binary.
func EncodeSimpleBase64Binary(bs *Bitstream, v []byte, maxLen int) error {
	return EncodeSimpleHexBinary(bs, v, maxLen)
}

// DecodeSimpleUint32 reads a complete simple-content unsigned-integer
// particle (uint32 VLQ).
func DecodeSimpleUint32(bs *Bitstream) (uint32, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	v, err := ReadUint32(bs)
	if err != nil {
		return 0, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	return v, nil
}

// EncodeSimpleUint32 is the encode-side counterpart of DecodeSimpleUint32.
func EncodeSimpleUint32(bs *Bitstream, v uint32) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteUint32(bs, v); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleUint64 reads a complete simple-content unsigned-integer
// particle (uint64 VLQ), used for TimeStamp-shaped fields.
func DecodeSimpleUint64(bs *Bitstream) (uint64, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	v, err := ReadUint64(bs)
	if err != nil {
		return 0, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	return v, nil
}

// EncodeSimpleUint64 is the encode-side counterpart of DecodeSimpleUint64.
func EncodeSimpleUint64(bs *Bitstream, v uint64) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteUint64(bs, v); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleInt8 reads a complete simple-content signed-integer particle
// bounded to fit an int8-sized schema range (used by RationalNumberType's
// Exponent, whose static range is [-128, 127]).
func DecodeSimpleInt8(bs *Bitstream) (int8, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	v, err := ReadInt16(bs)
	if err != nil {
		return 0, err
	}
	if v < -128 || v > 127 {
		return 0, NewError(ErrIntegerOutOfRange, "exponent %d out of int8 range", v)
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	return int8(v), nil
}

// EncodeSimpleInt8 is the encode-side counterpart of DecodeSimpleInt8.
func EncodeSimpleInt8(bs *Bitstream, v int8) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteInt16(bs, int16(v)); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleInt64 reads a complete simple-content signed-integer
// particle, used for RationalNumberType.Value.
func DecodeSimpleInt64(bs *Bitstream) (int64, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	v, err := ReadInt64(bs)
	if err != nil {
		return 0, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	return v, nil
}

// EncodeSimpleInt64 is the encode-side counterpart of DecodeSimpleInt64.
func EncodeSimpleInt64(bs *Bitstream, v int64) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteInt64(bs, v); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleBoolean reads a complete simple-content boolean particle.
func DecodeSimpleBoolean(bs *Bitstream) (bool, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return false, err
	}
	v, err := ReadBoolean(bs)
	if err != nil {
		return false, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return false, err
	}
	return v, nil
}

// EncodeSimpleBoolean is the encode-side counterpart of DecodeSimpleBoolean.
func EncodeSimpleBoolean(bs *Bitstream, v bool) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteBoolean(bs, v); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}

// DecodeSimpleEnum reads a complete simple-content enum particle.
func DecodeSimpleEnum(bs *Bitstream, kBits, arity int) (int, error) {
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	v, err := ReadEnum(bs, kBits, arity)
	if err != nil {
		return 0, err
	}
	if err := ReadSecondLevelBit(bs); err != nil {
		return 0, err
	}
	return v, nil
}

// EncodeSimpleEnum is the encode-side counterpart of DecodeSimpleEnum.
func EncodeSimpleEnum(bs *Bitstream, kBits, arity, v int) error {
	if err := WriteSecondLevelBit(bs); err != nil {
		return err
	}
	if err := WriteEnum(bs, kBits, arity, v); err != nil {
		return err
	}
	return WriteSecondLevelBit(bs)
}
