package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("output buffer can not be allocated")
	ErrCapacityExceeded  = errors.New("destination buffer too small")
	ErrMalformedInput    = errors.New("malformed input")
)

// CorruptInputError reports where and why an encoded input was rejected.
// It matches ErrMalformedInput with errors.Is.
type CorruptInputError struct {
	Codec  string
	Offset int
	Reason string
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d: %s", e.Codec, ErrMalformedInput.Error(), e.Offset, e.Reason)
}

func (e *CorruptInputError) Unwrap() error {
	return ErrMalformedInput
}

func corrupt(codec string, offset int, format string, args ...any) error {
	return &CorruptInputError{Codec: codec, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}
