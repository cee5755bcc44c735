package codec

import "github.com/unkn0wn-root/rlp"

// Raw is a codec for already encoded RLP. Both directions return the input
// unchanged after checking that it holds exactly one canonical value.
type Raw struct {
	Decoder *rlp.Decoder
}

var _ Codec[[]byte] = Raw{}

func (c Raw) Encode(b []byte) ([]byte, error) { return b, c.check(b) }
func (c Raw) Decode(b []byte) ([]byte, error) { return b, c.check(b) }

func (c Raw) check(b []byte) error {
	if len(b) == 0 {
		// the empty input decodes, but it is not an encoding of anything
		return &rlp.DecodeError{Err: rlp.ErrTruncatedInput}
	}
	_, err := RLP{Decoder: c.Decoder}.Decode(b)
	return err
}
