package rlp

import "github.com/unkn0wn-root/rlp/internal/wire"

// Split returns the kind and payload of the first value in b and the bytes
// after it. The payload of a list is its still-encoded content; a self-encoded
// byte is returned as a one byte String payload.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	h, err := readElem(b)
	if err != nil {
		return 0, nil, b, &DecodeError{Err: err}
	}
	end := int(h.Total())
	k = String
	if h.Kind == wire.List {
		k = List
	}
	return k, b[h.HeaderLen:end], b[end:], nil
}

// SplitString splits b into the content of an RLP string and the rest.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k == List {
		return nil, b, ErrExpectedString
	}
	return content, rest, nil
}

// SplitList splits b into the content of a list and the rest.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k != List {
		return nil, b, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues counts the encoded values in b without descending into lists.
func CountValues(b []byte) (int, error) {
	n, pos := 0, 0
	for pos < len(b) {
		h, err := readElem(b[pos:])
		if err != nil {
			return 0, &DecodeError{Offset: pos, Err: err}
		}
		pos += int(h.Total())
		n++
	}
	return n, nil
}
