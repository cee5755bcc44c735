package rlp

import "github.com/unkn0wn-root/rlp/internal/wire"

// ProbeLength returns the encoded length (header plus payload) of the value at
// the front of b. Only the header is read: the payload is not required to be
// present and nested lists are not inspected. Empty input has length 0.
func ProbeLength(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, nil
	}
	h, err := wire.ReadHeader(b)
	if err != nil {
		return 0, &DecodeError{Err: err}
	}
	return h.Total(), nil
}
