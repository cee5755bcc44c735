// Package wire implements the RLP length prefix: writing a header for a payload
// size and reading one back from the front of a buffer.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
	"math/bits"
)

const (
	OffsetString byte = 0x80
	OffsetList   byte = 0xc0

	// MaxShort is the largest payload size that fits in the prefix byte itself.
	MaxShort = 55
)

// Kind is the shape announced by a prefix byte.
type Kind uint8

const (
	Literal Kind = iota // 0x00-0x7f, the byte is its own encoding
	String
	List
)

var (
	ErrTruncated    = errors.New("rlp: value size exceeds available input length")
	ErrLeadingZeros = errors.New("rlp: extra leading zeros in size information")
	ErrCanonSize    = errors.New("rlp: non-canonical size information")
)

// Header describes the element at the front of a buffer.
//
//	prefix(1) | size(LenOfLen, big endian, long forms only) | payload(Size)
type Header struct {
	Kind      Kind
	LenOfLen  int    // 0 for literal and short forms
	Size      uint64 // payload length
	HeaderLen int    // bytes before the payload (0 for literals)
}

// Total is the full encoded length of the element.
func (h Header) Total() uint64 { return uint64(h.HeaderLen) + h.Size }

// AppendHeader appends the prefix for a payload of the given size.
// offset is OffsetString or OffsetList.
func AppendHeader(dst []byte, size uint64, offset byte) []byte {
	if size <= MaxShort {
		return append(dst, offset+byte(size))
	}
	n := intsize(size)
	dst = append(dst, offset+MaxShort+byte(n))

	var u8 [8]byte
	binary.BigEndian.PutUint64(u8[:], size)
	return append(dst, u8[8-n:]...)
}

// HeaderSize returns the number of bytes AppendHeader writes for size.
func HeaderSize(size uint64) int {
	if size <= MaxShort {
		return 1
	}
	return 1 + intsize(size)
}

// intsize is the length of the minimal big endian form of x.
func intsize(x uint64) int {
	return (bits.Len64(x) + 7) / 8
}

// ReadHeader parses the prefix at b[0]. It only looks at the header bytes;
// whether the payload is actually present is left to the caller.
func ReadHeader(b []byte) (Header, error) {
	if len(b) == 0 {
		return Header{}, ErrTruncated
	}
	switch p := b[0]; {
	case p < OffsetString:
		return Header{Kind: Literal, Size: 1}, nil
	case p <= OffsetString+MaxShort:
		return Header{Kind: String, Size: uint64(p - OffsetString), HeaderLen: 1}, nil
	case p < OffsetList:
		return readLong(b, String, int(p-OffsetString-MaxShort))
	case p <= OffsetList+MaxShort:
		return Header{Kind: List, Size: uint64(p - OffsetList), HeaderLen: 1}, nil
	default:
		return readLong(b, List, int(p-OffsetList-MaxShort))
	}
}

func readLong(b []byte, k Kind, lenOfLen int) (Header, error) {
	if len(b)-1 < lenOfLen {
		return Header{}, ErrTruncated
	}
	sb := b[1 : 1+lenOfLen]
	if sb[0] == 0 {
		return Header{}, ErrLeadingZeros
	}
	var size uint64
	for _, c := range sb {
		size = size<<8 | uint64(c)
	}
	// sizes that fit the short form must use it
	if size <= MaxShort {
		return Header{}, ErrCanonSize
	}
	// no buffer can hold this much, reject before callers do int arithmetic
	if size > uint64(math.MaxInt)-uint64(1+lenOfLen) {
		return Header{}, ErrTruncated
	}
	return Header{Kind: k, LenOfLen: lenOfLen, Size: size, HeaderLen: 1 + lenOfLen}, nil
}
