// Package byteorder reverses the byte order of fixed-width integers.
//
// # Overview
//
// ReverseBytes operates on 1, 2, 4, and 8 byte integers of either
// signedness, including named types. It is a pure value transform: byte i
// of the input occupies byte w-1-i of the output (w being the width in
// bytes), and one-byte values pass through unchanged. Signed values are
// reversed through the same-width unsigned type, so only byte placement
// changes, never bit content.
//
// # Implementation
//
// The public entry point dispatches on the operand width to the math/bits
// byte-reversal primitives, which compile to a single byte-swap instruction
// on architectures that have one. A portable shift-and-mask implementation
// of the same transform is kept alongside and exercised by the tests, which
// require both to agree bit for bit on every input.
//
// # Host and Network Order
//
// HostToNetwork and NetworkToHost convert between the machine's byte order
// and network (big-endian) order. On big-endian targets they are the
// identity; the choice is a compile-time constant, so no byte-order
// detection happens at run time.
package byteorder
