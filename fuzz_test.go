package rlp

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
)

func addSeeds(f *testing.F) {
	for _, tc := range vectors {
		b, _ := hex.DecodeString(tc.out)
		f.Add(b)
	}
	for _, s := range []string{"8100", "b800", "b837", "c283616263", "f90000", "c0c0", "c2b9ffff", "bf0000000000000001"} {
		b, _ := hex.DecodeString(s)
		f.Add(b)
	}
}

func FuzzDecodeValue(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, b []byte) {
		v, err := DecodeValue(b)
		if err != nil || len(b) == 0 {
			return
		}
		if re := Encode(v); !bytes.Equal(re, b) {
			t.Fatalf("accepted %x but re-encodes to %x", b, re)
		}
		n, err := ProbeLength(b)
		if err != nil || n != uint64(len(b)) {
			t.Fatalf("ProbeLength = %d, %v; want %d", n, err, len(b))
		}
	})
}

func FuzzDecodeStream(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, b []byte) {
		v, rest, err := DecodeStream(b)
		if err != nil {
			if !bytes.Equal(rest, b) {
				t.Fatalf("failed decode must return the input as rest")
			}
			return
		}
		if len(b) == 0 {
			return
		}
		used := len(b) - len(rest)
		if re := Encode(v); !bytes.Equal(re, b[:used]) {
			t.Fatalf("consumed %x but re-encodes to %x", b[:used], re)
		}
	})
}

// FuzzDecodeMatchesGeth checks that both decoders accept the same inputs and
// build the same trees.
func FuzzDecodeMatchesGeth(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, b []byte) {
		if len(b) == 0 {
			return
		}
		v, err := DecodeValue(b)
		if errors.Is(err, ErrMaxDepthExceeded) {
			return
		}
		var x interface{}
		gerr := gethrlp.DecodeBytes(b, &x)
		if (err == nil) != (gerr == nil) {
			t.Fatalf("%x: err = %v, geth err = %v", b, err, gerr)
		}
		if err != nil {
			return
		}
		want, _ := gethrlp.EncodeToBytes(x)
		if got := Encode(v); !bytes.Equal(got, want) {
			t.Fatalf("%x: tree mismatch", b)
		}
	})
}
