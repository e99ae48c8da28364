package byteorder

import (
	"math/bits"
	"unsafe"

	"github.com/joshuapare/bytekit/internal/mathtype"
)

// Integer is the set of types accepted by this package: fixed-width signed
// and unsigned integers of 1, 2, 4, or 8 bytes, including named types.
type Integer = mathtype.Integer

// ReverseBytes returns v with its bytes in the opposite order. One-byte
// values are returned unchanged. For signed types the transform is defined
// on the bit pattern: the value is viewed as its same-width unsigned
// counterpart, reversed, and viewed back.
func ReverseBytes[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	case 8:
		return T(bits.ReverseBytes64(uint64(v)))
	default:
		panic("byteorder: unreachable width")
	}
}
