// Package rlp implements Recursive Length Prefix encoding: a canonical binary
// form for byte strings and arbitrarily nested lists of them.
//
// Every logical value has exactly one valid encoding. The encoder only emits it
// and the decoder rejects anything else (leading zeros in sizes, long forms for
// short payloads, single bytes below 0x80 wrapped in a string header).
//
// Prefix rules:
//
//	0x00-0x7f  the byte itself
//	0x80-0xb7  string, payload 0-55 bytes, size = prefix-0x80
//	0xb8-0xbf  string, size in the next prefix-0xb7 bytes (big endian)
//	0xc0-0xf7  list, payload 0-55 bytes, size = prefix-0xc0
//	0xf8-0xff  list, size in the next prefix-0xf7 bytes (big endian)
//
// A list payload is the concatenation of its items' encodings.
//
// Decoding never copies: decoded strings and the stream remainder are
// sub-slices of the input. Nesting is walked without recursion and bounded by
// Options.MaxDepth.
//
//	b := rlp.Encode(rlp.ListOf(rlp.Str("dog"), rlp.Str("god"), rlp.Str("cat")))
//	v, err := rlp.DecodeValue(b)
//
// Interpreting byte strings (as integers, text, ...) is left to the caller.
// Package normalize converts common Go values into Values.
package rlp
