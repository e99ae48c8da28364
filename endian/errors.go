package endian

import "errors"

// ErrInvalidLength reports a byte slice whose length does not equal the
// encoded width of the requested integer type. Callers match it with
// errors.Is; the wrapping error carries the widths involved.
var ErrInvalidLength = errors.New("endian: invalid length")
