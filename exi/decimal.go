package exi

import "github.com/cockroachdb/apd/v3"

// Decimal re-exports apd.Decimal so callers outside this package never need
// to import cockroachdb/apd/v3 directly just to hold a RationalNumberType's
// decimal form.
type Decimal = apd.Decimal

// RationalToDecimal builds an arbitrary-precision decimal from an EXI
// signed value/exponent pair (value * 10^exponent), the representation
// ISO 15118-20's RationalNumberType and every PhysicalValueType-style
// scaled field uses on the wire. Grounded on sderkacs-exi-go's decimal
// handling in core/values.go, which also backs scaled numeric fields with
// github.com/cockroachdb/apd rather than a float64.
func RationalToDecimal(value int64, exponent int8) *apd.Decimal {
	return apd.New(value, int32(exponent))
}

// DecimalToRational extracts the value/exponent pair apd.Decimal.Coeff and
// Exponent provide, erroring if the coefficient does not fit in an int64 or
// the exponent falls outside this schema's restricted int8 range
// ([-128, 127], matching RationalNumberType.Exponent's static bounds).
func DecimalToRational(d *apd.Decimal) (value int64, exponent int8, err error) {
	if !d.Coeff.IsInt64() {
		return 0, 0, NewError(ErrIntegerOutOfRange, "decimal coefficient does not fit in int64: %s", d.Coeff.String())
	}
	if d.Exponent < -128 || d.Exponent > 127 {
		return 0, 0, NewError(ErrIntegerOutOfRange, "decimal exponent %d out of int8 range", d.Exponent)
	}
	v := d.Coeff.Int64()
	if d.Negative {
		v = -v
	}
	return v, int8(d.Exponent), nil
}
