package rlp

import (
	"bytes"
	"encoding/hex"
	"strings"
)

// Kind is the type of an RLP value.
type Kind uint8

const (
	String Kind = iota
	List
)

func (k Kind) String() string {
	switch k {
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is a byte string or an ordered list of values.
// The zero Value is the empty byte string.
//
// Values are immutable by contract: decoded values share memory with the
// decoded buffer, and constructors keep the slices they are given.
type Value struct {
	kind  Kind
	str   []byte
	items []Value
}

// Bytes returns a byte string value holding b.
func Bytes(b []byte) Value { return Value{kind: String, str: b} }

// Str returns a byte string value holding the bytes of s.
func Str(s string) Value { return Value{kind: String, str: []byte(s)} }

// ListOf returns a list value holding items in order.
func ListOf(items ...Value) Value { return Value{kind: List, items: items} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsList() bool  { return v.kind == List }
func (v Value) Bytes() []byte { return v.str }

// Items returns the elements of a list, nil for strings.
func (v Value) Items() []Value { return v.items }

// Len is the byte length of a string or the element count of a list.
func (v Value) Len() int {
	if v.kind == List {
		return len(v.items)
	}
	return len(v.str)
}

// Equal reports whether v and o are the same logical value.
// A nil and an empty slice compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == String {
		return bytes.Equal(v.str, o.str)
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// String renders v as a bracketed literal with 0x-prefixed hex strings,
// e.g. ["0x646f67", []].
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	if v.kind == String {
		sb.WriteString(`"0x`)
		sb.WriteString(hex.EncodeToString(v.str))
		sb.WriteByte('"')
		return
	}
	sb.WriteByte('[')
	for i, it := range v.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		it.format(sb)
	}
	sb.WriteByte(']')
}
