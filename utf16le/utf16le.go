// Package utf16le converts between UTF-16LE byte sequences and Go strings.
package utf16le

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/bytekit/endian"
)

// ErrOddLength reports input that cannot be a UTF-16LE sequence because its
// length is not a multiple of the 2-byte code-unit size.
var ErrOddLength = errors.New("utf16le: odd length")

// Decode interprets b as UTF-16LE code units and returns the equivalent
// string. Unpaired surrogates decode as U+FFFD. Odd-length input returns an
// error wrapping ErrOddLength.
func Decode(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("decode: %w (%d bytes)", ErrOddLength, len(b))
	}
	if len(b) == 0 {
		return "", nil
	}

	// Fast path: all ASCII. In UTF-16LE those are [c, 0x00] pairs.
	if s, ok := decodeASCII(b); ok {
		return s, nil
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

// Encode returns the UTF-16LE encoding of s. Runes outside the Basic
// Multilingual Plane become surrogate pairs. Bytes that are not valid UTF-8
// encode as U+FFFD, matching Go's string-to-rune conversion.
func Encode(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2*len(units))
	for _, u := range units {
		out = endian.AppendLittleEndian(out, u)
	}
	return out
}

// decodeASCII extracts an all-ASCII string without the transform machinery.
// ok is false as soon as any unit has a high byte or exceeds 0x7f.
func decodeASCII(b []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(b) / 2)
	for i := 0; i < len(b); i += 2 {
		if b[i+1] != 0 || b[i] > 0x7f {
			return "", false
		}
		sb.WriteByte(b[i])
	}
	return sb.String(), true
}
