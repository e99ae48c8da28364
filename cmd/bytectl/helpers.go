package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// validWidth reports whether w is a supported operand width in bytes.
func validWidth(w int) bool {
	return w == 1 || w == 2 || w == 4 || w == 8
}

// parseValue parses an unsigned integer in Go literal syntax (decimal, 0x,
// 0o, 0b) and range-checks it against the operand width.
func parseValue(s string, width int) (uint64, error) {
	if !validWidth(width) {
		return 0, fmt.Errorf("unsupported width %d: must be 1, 2, 4, or 8", width)
	}
	v, err := strconv.ParseUint(s, 0, 8*width)
	if err != nil {
		return 0, fmt.Errorf("invalid %d-byte value %q: %w", width, s, err)
	}
	return v, nil
}

// parseHexBytes parses a byte sequence written as hex digits, tolerating
// 0x prefixes, commas, and whitespace between bytes.
func parseHexBytes(s string) ([]byte, error) {
	clean := strings.NewReplacer("0x", "", "0X", "", ",", "", " ", "", "\t", "").Replace(s)
	if clean == "" {
		return nil, fmt.Errorf("no hex digits in %q", s)
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits in %q", s)
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %q: %w", s, err)
	}
	return b, nil
}

// hexLiteral formats v as 0x-prefixed hex padded to the full operand width.
func hexLiteral(v uint64, width int) string {
	return fmt.Sprintf("0x%0*x", 2*width, v)
}

// hexBytes formats b as space-separated two-digit hex bytes.
func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
