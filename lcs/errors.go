package lcs

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Every error returned by a Deserializer wraps
// exactly one of these.
var (
	ErrTruncatedInput     = errors.New("lcs: truncated input")
	ErrTrailingData       = errors.New("lcs: trailing data")
	ErrInvalidBool        = errors.New("lcs: invalid boolean byte")
	ErrInvalidOptionTag   = errors.New("lcs: invalid option tag")
	ErrUnknownVariant     = errors.New("lcs: unknown variant")
	ErrNonCanonicalLength = errors.New("lcs: non-canonical uleb128 encoding")
	ErrLengthOverflow     = errors.New("lcs: length overflow")
	ErrInvalidUTF8        = errors.New("lcs: invalid utf-8 string")
	ErrDepthExceeded      = errors.New("lcs: container depth exceeded")
)

// ErrIncompleteValue is returned by MarshalChecked for a value that has
// no encoding, such as a record whose union field is nil.
var ErrIncompleteValue = errors.New("lcs: incomplete value")

// ErrInvalidFixedLength is returned when a fixed-size value is built
// from a byte slice of the wrong length.
var ErrInvalidFixedLength = errors.New("lcs: invalid fixed length")

// DecodeError describes where in the input a decode failed.
type DecodeError struct {
	Err    error
	Offset int
	Detail string
}

// Error reports the failure kind, offset and detail.
func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

// Unwrap returns the failure kind.
func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError creates a DecodeError for the given kind.
func NewDecodeError(kind error, offset int, detail string) *DecodeError {
	return &DecodeError{Err: kind, Offset: offset, Detail: detail}
}

// IsDecodeError checks whether an error is a DecodeError and returns it.
func IsDecodeError(err error) (*DecodeError, bool) {
	var d *DecodeError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
