package exi

import (
	textbuilder "github.com/linkdotnet/golang-stringbuilder"
)

// ReadNBitUint reads an n-bit unsigned integer.
func ReadNBitUint(bs *Bitstream, n int) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	return bs.ReadBits(n)
}

// WriteNBitUint writes an n-bit unsigned integer.
func WriteNBitUint(bs *Bitstream, n int, v uint32) error {
	if n == 0 {
		return nil
	}
	return bs.WriteBits(n, v)
}

// ReadBoundedUint reads a schema-restricted integer with ≤4096 possible
// values as an n-bit unsigned value biased by min. n must equal
// genutil.CodingLength(max-min+1).
func ReadBoundedUint(bs *Bitstream, n int, min int64) (int64, error) {
	v, err := ReadNBitUint(bs, n)
	if err != nil {
		return 0, err
	}
	return min + int64(v), nil
}

// WriteBoundedUint is the encode-side counterpart of ReadBoundedUint.
func WriteBoundedUint(bs *Bitstream, n int, min, value int64) error {
	return WriteNBitUint(bs, n, uint32(value-min))
}

// vlqReadGroups decodes the EXI unsigned VLQ: 7 payload bits per octet,
// MSB of the octet is the continuation bit, up to maxGroups octets.
// Ported from sderkacs-exi-go core/channels.go DecodeUnsignedInteger,
// collapsed from arbitrary precision to a fixed-width uint64 accumulator
// with an explicit maxGroups/overflow check.
func vlqReadGroups(bs *Bitstream, maxGroups int) (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxGroups; i++ {
		b, err := bs.ReadBits(8)
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, NewError(ErrIntegerOutOfRange, "vlq exceeds %d groups", maxGroups)
}

func vlqWriteGroups(bs *Bitstream, v uint64) error {
	for {
		b := uint32(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := bs.WriteBits(8, b); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// ReadUint16 decodes an unsigned VLQ of up to 3 groups, rejecting overflow
// above 2^16-1.
func ReadUint16(bs *Bitstream) (uint16, error) {
	v, err := vlqReadGroups(bs, 3)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFF {
		return 0, NewError(ErrIntegerOutOfRange, "uint16 overflow: %d", v)
	}
	return uint16(v), nil
}

// WriteUint16 encodes v as an unsigned VLQ.
func WriteUint16(bs *Bitstream, v uint16) error {
	return vlqWriteGroups(bs, uint64(v))
}

// ReadUint32 decodes an unsigned VLQ of up to 5 groups.
func ReadUint32(bs *Bitstream) (uint32, error) {
	v, err := vlqReadGroups(bs, 5)
	if err != nil {
		return 0, err
	}
	if v > 0xFFFFFFFF {
		return 0, NewError(ErrIntegerOutOfRange, "uint32 overflow: %d", v)
	}
	return uint32(v), nil
}

// WriteUint32 encodes v as an unsigned VLQ.
func WriteUint32(bs *Bitstream, v uint32) error {
	return vlqWriteGroups(bs, uint64(v))
}

// ReadUint64 decodes an unsigned VLQ of up to 10 groups.
func ReadUint64(bs *Bitstream) (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < 10; i++ {
		b, err := bs.ReadBits(8)
		if err != nil {
			return 0, err
		}
		if i == 9 && b&0x7E != 0 {
			// 10th group may only contribute its single remaining bit
			// (63 payload bits fit a uint64's low bits for our wire profile).
			return 0, NewError(ErrIntegerOutOfRange, "uint64 overflow")
		}
		result |= uint64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, nil
		}
	}
	return 0, NewError(ErrIntegerOutOfRange, "uint64 exceeds 10 groups")
}

// WriteUint64 encodes v as an unsigned VLQ.
func WriteUint64(bs *Bitstream, v uint64) error {
	return vlqWriteGroups(bs, v)
}

// ReadInt16 decodes a one-bit sign followed by an unsigned-VLQ magnitude.
// Two's-complement negation on decode; a magnitude of 0 with the sign bit
// set ("-0") is rejected.
func ReadInt16(bs *Bitstream) (int16, error) {
	v, err := readSignedVLQ(bs, 3, 0xFFFF)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func WriteInt16(bs *Bitstream, v int16) error {
	return writeSignedVLQ(bs, int64(v))
}

// ReadInt32 decodes a one-bit sign followed by an unsigned-VLQ magnitude.
func ReadInt32(bs *Bitstream) (int32, error) {
	v, err := readSignedVLQ(bs, 5, 0xFFFFFFFF)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func WriteInt32(bs *Bitstream, v int32) error {
	return writeSignedVLQ(bs, int64(v))
}

// ReadInt64 decodes a one-bit sign followed by an unsigned-VLQ magnitude.
func ReadInt64(bs *Bitstream) (int64, error) {
	return readSignedVLQ(bs, 10, 1<<63-1)
}

func WriteInt64(bs *Bitstream, v int64) error {
	return writeSignedVLQ(bs, v)
}

func readSignedVLQ(bs *Bitstream, maxGroups int, magnitudeMax uint64) (int64, error) {
	negative, err := ReadBoolean(bs)
	if err != nil {
		return 0, err
	}
	magnitude, err := vlqReadGroups(bs, maxGroups)
	if err != nil {
		return 0, err
	}
	if magnitude > magnitudeMax {
		return 0, NewError(ErrIntegerOutOfRange, "signed magnitude overflow: %d", magnitude)
	}
	if negative {
		if magnitude == 0 {
			return 0, NewError(ErrIntegerOutOfRange, "negative zero is not a valid encoding")
		}
		return -int64(magnitude), nil
	}
	return int64(magnitude), nil
}

func writeSignedVLQ(bs *Bitstream, v int64) error {
	if v < 0 {
		if err := WriteBoolean(bs, true); err != nil {
			return err
		}
		return vlqWriteGroups(bs, uint64(-v))
	}
	if err := WriteBoolean(bs, false); err != nil {
		return err
	}
	return vlqWriteGroups(bs, uint64(v))
}

// ReadBoolean decodes a single bit: 0 = false, 1 = true.
func ReadBoolean(bs *Bitstream) (bool, error) {
	v, err := bs.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// WriteBoolean encodes a single bit.
func WriteBoolean(bs *Bitstream, v bool) error {
	b := uint32(0)
	if v {
		b = 1
	}
	return bs.WriteBits(1, b)
}

// ReadHexBinary decodes a length-prefixed VLQ length followed by that many
// byte-aligned raw bytes. A length beyond maxLen is BINARY_TOO_LONG.
func ReadHexBinary(bs *Bitstream, maxLen int) ([]byte, error) {
	length, err := ReadUint32(bs)
	if err != nil {
		return nil, err
	}
	if int(length) > maxLen {
		return nil, NewError(ErrBinaryTooLong, "hexBinary length %d exceeds max %d", length, maxLen)
	}
	return bs.ReadByteAligned(int(length))
}

// WriteHexBinary is the encode-side counterpart of ReadHexBinary.
func WriteHexBinary(bs *Bitstream, data []byte, maxLen int) error {
	if len(data) > maxLen {
		return NewError(ErrInvariantViolation, "hexBinary length %d exceeds max %d", len(data), maxLen)
	}
	if err := WriteUint32(bs, uint32(len(data))); err != nil {
		return err
	}
	return bs.WriteByteAligned(data)
}

// ReadBase64Binary decodes a base64Binary field using the hexBinary wire
// primitive directly (raw bytes, no base64 transform); the two types
// share a representation in this profile's wired subset.
func ReadBase64Binary(bs *Bitstream, maxLen int) ([]byte, error) {
	return ReadHexBinary(bs, maxLen)
}

// WriteBase64Binary mirrors ReadBase64Binary's hexBinary-primitive reuse.
func WriteBase64Binary(bs *Bitstream, data []byte, maxLen int) error {
	return WriteHexBinary(bs, data, maxLen)
}

// ReadCharacters decodes a byte-aligned restricted-character string. The
// raw VLQ length of 0 or 1 signals a string-table reference, which this
// codec deliberately does not support; any other raw value L is decremented by 2 for the true
// character count.
func ReadCharacters(bs *Bitstream, maxLen int) (string, error) {
	raw, err := ReadUint32(bs)
	if err != nil {
		return "", err
	}
	if raw == 0 || raw == 1 {
		return "", NewError(ErrStringValuesNotSupported, "string-table reference (raw length %d)", raw)
	}
	n := int(raw) - 2
	if n > maxLen {
		return "", NewError(ErrStringTooLong, "string length %d exceeds max %d", n, maxLen)
	}

	raw2, err := bs.ReadByteAligned(n)
	if err != nil {
		return "", err
	}

	var sb textbuilder.StringBuilder
	for _, c := range raw2 {
		sb.Append(string(rune(c)))
	}
	return sb.ToString(), nil
}

// WriteCharacters is the encode-side counterpart of ReadCharacters.
func WriteCharacters(bs *Bitstream, s string, maxLen int) error {
	if len(s) > maxLen {
		return NewError(ErrInvariantViolation, "string length %d exceeds max %d", len(s), maxLen)
	}
	if err := WriteUint32(bs, uint32(len(s)+2)); err != nil {
		return err
	}
	return bs.WriteByteAligned([]byte(s))
}

// ReadEnum decodes an enum discriminator in kBits bits, rejecting any value
// at or beyond arity.
func ReadEnum(bs *Bitstream, kBits, arity int) (int, error) {
	v, err := ReadNBitUint(bs, kBits)
	if err != nil {
		return 0, err
	}
	if int(v) >= arity {
		return 0, NewError(ErrEnumOutOfRange, "enum value %d >= arity %d", v, arity)
	}
	return int(v), nil
}

// WriteEnum is the encode-side counterpart of ReadEnum.
func WriteEnum(bs *Bitstream, kBits, arity, value int) error {
	if value >= arity || value < 0 {
		return NewError(ErrInvariantViolation, "enum value %d out of arity %d", value, arity)
	}
	return WriteNBitUint(bs, kBits, uint32(value))
}

// ReadSecondLevelBit reads the one-bit second-level discriminator that
// prefixes every simple-content attribute/element value and trails every
// simple element's content. A nonzero value signals a
// deviation this codec does not implement.
func ReadSecondLevelBit(bs *Bitstream) error {
	v, err := bs.ReadBits(1)
	if err != nil {
		return err
	}
	if v != 0 {
		return NewError(ErrDeviantsNotSupported, "second-level event bit set")
	}
	return nil
}

// WriteSecondLevelBit writes the literal (non-deviant) second-level bit.
func WriteSecondLevelBit(bs *Bitstream) error {
	return bs.WriteBits(1, 0)
}
