// Package mathtype defines the fixed-width integer domain shared by the
// byte-manipulation packages.
package mathtype

import "unsafe"

// Unsigned is the set of fixed-width unsigned integer types: 1, 2, 4, and
// 8 byte widths, including named types over them.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of fixed-width signed integer types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the union of Unsigned and Signed. Platform-width types (int,
// uint, uintptr) are excluded: byte layout must be a property of the type,
// never of the deployment target, so unsupported widths fail to compile
// instead of failing at run time.
type Integer interface {
	Unsigned | Signed
}

// Size returns the byte width of T: 1, 2, 4, or 8. The result is a
// compile-time constant per instantiation.
func Size[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}
