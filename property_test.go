package rlp_test

import (
	"bytes"
	"testing"

	"github.com/unkn0wn-root/rlp"
	"pgregory.net/rapid"
)

// genValue draws trees up to depth levels deep, with strings long enough to
// cross the short/long boundary.
func genValue(depth int) *rapid.Generator[rlp.Value] {
	leaf := rapid.Custom(func(t *rapid.T) rlp.Value {
		return rlp.Bytes(rapid.SliceOfN(rapid.Byte(), 0, 120).Draw(t, "bytes"))
	})
	if depth == 0 {
		return leaf
	}
	list := rapid.Custom(func(t *rapid.T) rlp.Value {
		return rlp.ListOf(rapid.SliceOfN(genValue(depth-1), 0, 6).Draw(t, "items")...)
	})
	return rapid.OneOf(leaf, list)
}

func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := genValue(4).Draw(t, "v")
		enc := rlp.Encode(v)

		got, err := rlp.DecodeValue(enc)
		if err != nil {
			t.Fatalf("DecodeValue(Encode(v)): %v", err)
		}
		if !got.Equal(v) {
			t.Fatalf("round trip mismatch: %v != %v", got, v)
		}
		if n := rlp.EncodedSize(v); n != len(enc) {
			t.Fatalf("EncodedSize = %d, len = %d", n, len(enc))
		}
		if !bytes.Equal(rlp.Encode(got), enc) {
			t.Fatalf("re-encoding is not stable")
		}
	})
}

func TestProbeLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		enc := rlp.Encode(genValue(3).Draw(t, "v"))
		cut := rapid.IntRange(1, len(enc)).Draw(t, "cut")
		n, err := rlp.ProbeLength(enc[:cut])
		if cut < len(enc) && err != nil {
			// a cut through the size bytes of a long header is the only failure
			return
		}
		if err != nil || n != uint64(len(enc)) {
			t.Fatalf("ProbeLength = %d, %v; want %d", n, err, len(enc))
		}
	})
}

func TestStreamProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(genValue(2), 1, 5).Draw(t, "vs")
		var buf []byte
		for _, v := range vs {
			buf = rlp.AppendEncode(buf, v)
		}

		rest := buf
		for i, want := range vs {
			got, r, err := rlp.DecodeStream(rest)
			if err != nil {
				t.Fatalf("value %d: %v", i, err)
			}
			if !got.Equal(want) {
				t.Fatalf("value %d = %v, want %v", i, got, want)
			}
			rest = r
		}
		if len(rest) != 0 {
			t.Fatalf("left over %x", rest)
		}

		n, err := rlp.CountValues(buf)
		if err != nil || n != len(vs) {
			t.Fatalf("CountValues = %d, %v; want %d", n, err, len(vs))
		}
		all, err := rlp.DecodeAll(buf)
		if err != nil || len(all) != len(vs) {
			t.Fatalf("DecodeAll = %d values, %v", len(all), err)
		}
	})
}

func TestTruncationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		enc := rlp.Encode(genValue(3).Draw(t, "v"))
		if len(enc) < 2 {
			return
		}
		cut := rapid.IntRange(1, len(enc)-1).Draw(t, "cut")
		if _, err := rlp.DecodeValue(enc[:cut]); err == nil {
			t.Fatalf("prefix %x of %x decoded", enc[:cut], enc)
		}
		if _, rest, err := rlp.DecodeStream(enc[:cut]); err == nil || len(rest) != cut {
			t.Fatalf("DecodeStream accepted a prefix")
		}
	})
}
