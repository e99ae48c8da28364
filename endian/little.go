package endian

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/bytekit/internal/mathtype"
	"github.com/joshuapare/bytekit/internal/platform"
)

// Unsigned is the set of types accepted by the codec: fixed-width unsigned
// integers of 1, 2, 4, or 8 bytes, including named types.
type Unsigned = mathtype.Unsigned

// FromLittleEndian interprets b as the little-endian encoding of T and
// returns the decoded value. len(b) must equal the byte width of T; any
// other length returns an error wrapping ErrInvalidLength without reading b.
func FromLittleEndian[T Unsigned](b []byte) (T, error) {
	if n := mathtype.Size[T](); len(b) != n {
		return 0, fmt.Errorf("decode: %w (need %d bytes, have %d)", ErrInvalidLength, n, len(b))
	}
	return fromLE[T](b), nil
}

// PutLittleEndian writes the little-endian encoding of v into b. len(b)
// must equal the byte width of T; any other length returns an error
// wrapping ErrInvalidLength and leaves b untouched.
func PutLittleEndian[T Unsigned](b []byte, v T) error {
	if n := mathtype.Size[T](); len(b) != n {
		return fmt.Errorf("encode: %w (need %d bytes, have %d)", ErrInvalidLength, n, len(b))
	}
	putLE(b, v)
	return nil
}

// ToLittleEndian returns the little-endian encoding of v in a newly
// allocated slice of exactly the width of T.
func ToLittleEndian[T Unsigned](v T) []byte {
	b := make([]byte, mathtype.Size[T]())
	putLE(b, v)
	return b
}

// AppendLittleEndian appends the little-endian encoding of v to dst and
// returns the extended slice.
func AppendLittleEndian[T Unsigned](dst []byte, v T) []byte {
	n := mathtype.Size[T]()
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// fromLE decodes without a length check. Callers guarantee len(b) equals
// the width of T. On little-endian targets the encoding is the in-memory
// representation and a byte copy suffices; the branch is a compile-time
// constant.
func fromLE[T Unsigned](b []byte) T {
	var v T
	if platform.LittleEndian {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), len(b)), b)
		return v
	}
	return fromLEShift[T](b)
}

// putLE encodes without a length check. Callers guarantee len(b) equals
// the width of T.
func putLE[T Unsigned](b []byte, v T) {
	if platform.LittleEndian {
		copy(b, unsafe.Slice((*byte)(unsafe.Pointer(&v)), len(b)))
		return
	}
	putLEShift(b, v)
}

// fromLEShift assembles the value least-significant byte first. Every shift
// amount is 8*i with i < len(b), so no shift reaches the bit width of T
// even for one-byte types.
func fromLEShift[T Unsigned](b []byte) T {
	var v T
	for i := range b {
		v |= T(b[i]) << (8 * i)
	}
	return v
}

// putLEShift disassembles the value least-significant byte first, under the
// same shift bound as fromLEShift.
func putLEShift[T Unsigned](b []byte, v T) {
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
}
