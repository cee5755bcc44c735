package rlp

import (
	"slices"

	"github.com/unkn0wn-root/rlp/internal/wire"
)

// Encode returns the canonical RLP encoding of v.
func Encode(v Value) []byte {
	return AppendEncode(nil, v)
}

// AppendEncode appends the canonical encoding of v to dst.
// dst grows at most once.
func AppendEncode(dst []byte, v Value) []byte {
	var e encoder
	n := e.measure(v)
	dst = slices.Grow(dst, n)
	return e.write(dst, v)
}

// EncodedSize returns len(Encode(v)) without encoding.
func EncodedSize(v Value) int {
	var e encoder
	return e.measure(v)
}

// encoder sizes lists in one pass and writes in a second one.
// sizes holds list payload sizes in pre-order, next is the write cursor into it.
type encoder struct {
	sizes []int
	next  int
}

func (e *encoder) measure(v Value) int {
	if v.kind != List {
		return stringSize(v.str)
	}
	slot := len(e.sizes)
	e.sizes = append(e.sizes, 0)
	payload := 0
	for _, it := range v.items {
		payload += e.measure(it)
	}
	e.sizes[slot] = payload
	return wire.HeaderSize(uint64(payload)) + payload
}

func (e *encoder) write(dst []byte, v Value) []byte {
	if v.kind != List {
		if selfEncoded(v.str) {
			return append(dst, v.str[0])
		}
		dst = wire.AppendHeader(dst, uint64(len(v.str)), wire.OffsetString)
		return append(dst, v.str...)
	}
	payload := e.sizes[e.next]
	e.next++
	dst = wire.AppendHeader(dst, uint64(payload), wire.OffsetList)
	for _, it := range v.items {
		dst = e.write(dst, it)
	}
	return dst
}

func stringSize(b []byte) int {
	if selfEncoded(b) {
		return 1
	}
	return wire.HeaderSize(uint64(len(b))) + len(b)
}

// selfEncoded reports whether b is a single byte that encodes as itself.
func selfEncoded(b []byte) bool {
	return len(b) == 1 && b[0] < wire.OffsetString
}
