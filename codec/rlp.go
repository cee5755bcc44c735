package codec

import "github.com/unkn0wn-root/rlp"

// RLP is the canonical codec for rlp.Value. Decoded values alias the input.
// A nil Decoder uses default options.
type RLP struct {
	Decoder *rlp.Decoder
}

var _ Codec[rlp.Value] = RLP{}

func (RLP) Encode(v rlp.Value) ([]byte, error) { return rlp.Encode(v), nil }

func (c RLP) Decode(b []byte) (rlp.Value, error) {
	if c.Decoder == nil {
		return rlp.DecodeValue(b)
	}
	return c.Decoder.DecodeValue(b)
}
