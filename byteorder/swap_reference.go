package byteorder

import "unsafe"

// reverseBytesShift is the portable shift-and-mask implementation of
// ReverseBytes. It has no fast-path dependencies and is the reference the
// public entry point is checked against.
func reverseBytesShift[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		return T(reverse16(uint16(v)))
	case 4:
		return T(reverse32(uint32(v)))
	case 8:
		return T(reverse64(uint64(v)))
	default:
		panic("byteorder: unreachable width")
	}
}

func reverse16(v uint16) uint16 {
	a := (v >> 8) & 0x00ff
	b := (v & 0x00ff) << 8
	return a | b
}

func reverse32(v uint32) uint32 {
	a := (v >> 24) & 0x000000ff
	b := (v >> 8) & 0x0000ff00
	c := (v & 0x0000ff00) << 8
	d := (v & 0x000000ff) << 24
	return a | b | c | d
}

func reverse64(v uint64) uint64 {
	a := (v >> 56) & 0x00000000000000ff
	b := (v >> 40) & 0x000000000000ff00
	c := (v >> 24) & 0x0000000000ff0000
	d := (v >> 8) & 0x00000000ff000000
	e := (v & 0x00000000ff000000) << 8
	f := (v & 0x0000000000ff0000) << 24
	g := (v & 0x000000000000ff00) << 40
	h := (v & 0x00000000000000ff) << 56
	return a | b | c | d | e | f | g | h
}
