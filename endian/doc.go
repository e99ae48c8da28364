// Package endian converts between unsigned integers and their little-endian
// byte encodings.
//
// # Overview
//
// The encoding is the usual one: byte index 0 holds the least-significant
// byte, byte index w-1 the most-significant, where w is the width of the
// integer type in bytes. The codec covers uint8, uint16, uint32, uint64 and
// named types over them. Signed callers convert through the same-width
// unsigned type; Go defines that conversion to preserve the bit pattern.
//
// # Exact Lengths
//
// The slice-based functions demand exactly w bytes and report anything else
// as an error wrapping ErrInvalidLength. There is no silent truncation and
// no padding:
//
//	v, err := endian.FromLittleEndian[uint32](b)
//	if errors.Is(err, endian.ErrInvalidLength) {
//	    // b was not exactly 4 bytes
//	}
//
// The sized forms (U16FromLE, U32ToLE, ...) move the length contract into
// the type system: a [4]byte cannot be the wrong size, so they return no
// error at all.
//
// # Fast Path
//
// On little-endian targets the encoding of an integer is its in-memory
// representation, and the codec moves bytes with a raw copy. The choice is
// made by a per-architecture compile-time constant; big-endian targets use
// the portable shift assembly, and both produce identical bytes everywhere.
// The portable implementation is compiled on every architecture and the
// tests hold the two paths to bit-for-bit agreement.
package endian
