// Package codec converts rlp.Value trees to and from bytes.
//
// RLP and Raw speak RLP itself. CBOR, Msgpack, JSON and Protobuf transcode
// the same tree into other formats: byte strings become byte strings (CBOR,
// MessagePack) or 0x-prefixed hex text (JSON, protobuf), lists become arrays.
package codec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unkn0wn-root/rlp"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var registry = map[string]func() (Codec[rlp.Value], error){
	"rlp":     func() (Codec[rlp.Value], error) { return RLP{}, nil },
	"cbor":    func() (Codec[rlp.Value], error) { return NewCBOR(true) },
	"msgpack": func() (Codec[rlp.Value], error) { return Msgpack{}, nil },
	"json":    func() (Codec[rlp.Value], error) { return JSON{}, nil },
	"proto":   func() (Codec[rlp.Value], error) { return Protobuf{}, nil },
}

// Names lists the formats accepted by Lookup.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec[rlp.Value], error) {
	mk, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return mk()
}

// Transcode decodes b with from and re-encodes the tree with to.
func Transcode(from, to Codec[rlp.Value], b []byte) ([]byte, error) {
	v, err := from.Decode(b)
	if err != nil {
		return nil, err
	}
	return to.Encode(v)
}
