package codec

import (
	"github.com/unkn0wn-root/rlp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf stores rlp.Value trees as google.protobuf.Value messages: strings
// are 0x-prefixed hex StringValues and lists are ListValues.
type Protobuf struct{}

var _ Codec[rlp.Value] = Protobuf{}

func (Protobuf) Encode(v rlp.Value) ([]byte, error) {
	pv, err := structpb.NewValue(toHexTree(v))
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(pv)
}

func (Protobuf) Decode(b []byte) (rlp.Value, error) {
	pv := &structpb.Value{}
	if err := proto.Unmarshal(b, pv); err != nil {
		return rlp.Value{}, err
	}
	return fromTree(pv.AsInterface(), true, 0)
}
