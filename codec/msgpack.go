package codec

import (
	"github.com/unkn0wn-root/rlp"
	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack transcodes rlp.Value trees to MessagePack bin and array values.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec[rlp.Value] = Msgpack{}

func (Msgpack) Encode(v rlp.Value) ([]byte, error) {
	return msgpack.Marshal(toBinTree(v))
}

func (Msgpack) Decode(b []byte) (rlp.Value, error) {
	var x any
	if err := msgpack.Unmarshal(b, &x); err != nil {
		return rlp.Value{}, err
	}
	return fromTree(x, false, 0)
}
