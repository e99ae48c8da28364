package endian

// Sized forms fix the encoded width in the type itself, so no length error
// is possible and none is returned. They share the codec paths with the
// generic functions.

// U16FromLE decodes the 2-byte little-endian encoding of a uint16.
func U16FromLE(b [2]byte) uint16 {
	return fromLE[uint16](b[:])
}

// U32FromLE decodes the 4-byte little-endian encoding of a uint32.
func U32FromLE(b [4]byte) uint32 {
	return fromLE[uint32](b[:])
}

// U64FromLE decodes the 8-byte little-endian encoding of a uint64.
func U64FromLE(b [8]byte) uint64 {
	return fromLE[uint64](b[:])
}

// U16ToLE returns the 2-byte little-endian encoding of v.
func U16ToLE(v uint16) [2]byte {
	var b [2]byte
	putLE(b[:], v)
	return b
}

// U32ToLE returns the 4-byte little-endian encoding of v.
func U32ToLE(v uint32) [4]byte {
	var b [4]byte
	putLE(b[:], v)
	return b
}

// U64ToLE returns the 8-byte little-endian encoding of v.
func U64ToLE(v uint64) [8]byte {
	var b [8]byte
	putLE(b[:], v)
	return b
}
