package rlp

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/rlp/internal/wire"
)

var (
	// normalizer errors (see package normalize)
	ErrUnsupportedInputType = errors.New("rlp: unsupported input type")
	ErrNegativeInteger      = errors.New("rlp: negative integer")

	ErrExtraLeadingZeros       = wire.ErrLeadingZeros
	ErrNonCanonicalSize        = wire.ErrCanonSize
	ErrTruncatedInput          = wire.ErrTruncated
	ErrNonCanonicalSingleByte  = errors.New("rlp: single byte below 0x80 must be self-encoded")
	ErrInvalidListLength       = errors.New("rlp: element is larger than containing list")
	ErrUnexpectedTrailingBytes = errors.New("rlp: input contains more than one value")
	ErrMaxDepthExceeded        = errors.New("rlp: maximum nesting depth exceeded")

	ErrExpectedString = errors.New("rlp: expected String")
	ErrExpectedList   = errors.New("rlp: expected List")
)

// DecodeError reports where in the input decoding stopped.
// Offset is the byte position of the offending element, Depth the number of
// enclosing lists.
type DecodeError struct {
	Offset int
	Depth  int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Depth == 0 {
		return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (offset %d, depth %d)", e.Err, e.Offset, e.Depth)
}

func (e *DecodeError) Unwrap() error { return e.Err }
