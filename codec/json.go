package codec

import (
	"encoding/json"

	"github.com/unkn0wn-root/rlp"
)

// JSON renders rlp.Value trees as nested arrays of 0x-prefixed hex strings,
// e.g. ["0x646f67",[]].
type JSON struct{}

var _ Codec[rlp.Value] = JSON{}

func (JSON) Encode(v rlp.Value) ([]byte, error) { return json.Marshal(toHexTree(v)) }

func (JSON) Decode(b []byte) (rlp.Value, error) {
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return rlp.Value{}, err
	}
	return fromTree(x, true, 0)
}
