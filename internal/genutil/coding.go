// Package genutil holds the small arithmetic helpers the hand-authored
// grammar tables share. It is grounded on sderkacs-exi-go's utils/misc.go
// GetCodingLength, trimmed to the pieces the fixed ISO 15118-20 grammar
// shapes actually need.
package genutil

import "math"

// CodingLength returns ceil(log2(characteristics)), the number of bits EXI
// uses to encode an event code (or an n-bit unsigned integer range) with the
// given number of distinct values. Matches EXI's "bits(n)" table exactly for
// the small values that dominate this schema's grammars.
func CodingLength(characteristics int) int {
	switch {
	case characteristics == 0 || characteristics == 1:
		return 0
	case characteristics == 2:
		return 1
	case characteristics <= 4:
		return 2
	case characteristics <= 8:
		return 3
	case characteristics <= 16:
		return 4
	case characteristics <= 32:
		return 5
	case characteristics <= 64:
		return 6
	case characteristics <= 128:
		return 7
	case characteristics <= 256:
		return 8
	case characteristics <= 512:
		return 9
	case characteristics <= 1024:
		return 10
	case characteristics <= 2048:
		return 11
	case characteristics <= 4096:
		return 12
	default:
		return int(math.Ceil(math.Log2(float64(characteristics))))
	}
}

// NumberOf7BitBlocksToRepresent32 returns how many 7-bit groups a VLQ
// encoding of v needs, 1..5 for a 32-bit unsigned value.
func NumberOf7BitBlocksToRepresent32(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}
