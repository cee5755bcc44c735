package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/rlp"
)

// toBinTree maps v onto []byte / []any for formats with a native byte string.
func toBinTree(v rlp.Value) any {
	if !v.IsList() {
		if b := v.Bytes(); b != nil {
			return b
		}
		return []byte{}
	}
	out := make([]any, len(v.Items()))
	for i, it := range v.Items() {
		out[i] = toBinTree(it)
	}
	return out
}

// toHexTree maps v onto string / []any with 0x-prefixed hex strings.
func toHexTree(v rlp.Value) any {
	if !v.IsList() {
		return "0x" + hex.EncodeToString(v.Bytes())
	}
	out := make([]any, len(v.Items()))
	for i, it := range v.Items() {
		out[i] = toHexTree(it)
	}
	return out
}

// fromTree rebuilds a Value from a decoded foreign tree. When hexText is set,
// strings are 0x-prefixed hex; otherwise they are taken as raw bytes.
func fromTree(x any, hexText bool, depth int) (rlp.Value, error) {
	switch x := x.(type) {
	case nil:
		if hexText {
			break
		}
		return rlp.Value{}, nil
	case []byte:
		if hexText {
			break
		}
		return rlp.Bytes(x), nil
	case string:
		if !hexText {
			return rlp.Str(x), nil
		}
		digits, ok := strings.CutPrefix(x, "0x")
		if !ok {
			return rlp.Value{}, fmt.Errorf("%w: string %q lacks 0x prefix", rlp.ErrUnsupportedInputType, x)
		}
		b, err := hex.DecodeString(digits)
		if err != nil {
			return rlp.Value{}, fmt.Errorf("%w: %v", rlp.ErrUnsupportedInputType, err)
		}
		return rlp.Bytes(b), nil
	case []any:
		if depth >= rlp.DefaultMaxDepth {
			return rlp.Value{}, rlp.ErrMaxDepthExceeded
		}
		items := make([]rlp.Value, len(x))
		for i, it := range x {
			v, err := fromTree(it, hexText, depth+1)
			if err != nil {
				return rlp.Value{}, err
			}
			items[i] = v
		}
		return rlp.ListOf(items...), nil
	}
	return rlp.Value{}, fmt.Errorf("%w: %T", rlp.ErrUnsupportedInputType, x)
}
