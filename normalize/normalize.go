// Package normalize converts ordinary Go values into rlp.Value trees.
//
//	nil                         -> empty string
//	[]byte, rlp.Value           -> as is
//	string                      -> hex bytes when prefixed with 0x, UTF-8 otherwise
//	ints, uints, *big.Int,
//	*uint256.Int, json.Number   -> minimal big endian bytes (0 -> empty string)
//	[]any, []string, [][]byte,
//	[]rlp.Value                 -> list
//
// Negative integers are rejected with rlp.ErrNegativeInteger. Every other type
// is rejected with rlp.ErrUnsupportedInputType.
package normalize

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/unkn0wn-root/rlp"
)

// Encode normalizes x and returns its canonical encoding.
func Encode(x any) ([]byte, error) {
	v, err := Value(x)
	if err != nil {
		return nil, err
	}
	return rlp.Encode(v), nil
}

// Value converts x into an rlp.Value.
func Value(x any) (rlp.Value, error) {
	switch x := x.(type) {
	case nil:
		return rlp.Value{}, nil
	case rlp.Value:
		return x, nil
	case []byte:
		return rlp.Bytes(x), nil
	case string:
		return String(x)

	case uint:
		return uint64Value(uint64(x)), nil
	case uint8:
		return uint64Value(uint64(x)), nil
	case uint16:
		return uint64Value(uint64(x)), nil
	case uint32:
		return uint64Value(uint64(x)), nil
	case uint64:
		return uint64Value(x), nil
	case int:
		return int64Value(int64(x))
	case int8:
		return int64Value(int64(x))
	case int16:
		return int64Value(int64(x))
	case int32:
		return int64Value(int64(x))
	case int64:
		return int64Value(x)

	case *big.Int:
		if x == nil {
			return rlp.Value{}, nil
		}
		return bigValue(x)
	case big.Int:
		return bigValue(&x)
	case *uint256.Int:
		if x == nil {
			return rlp.Value{}, nil
		}
		return rlp.Bytes(x.Bytes()), nil
	case json.Number:
		n, ok := new(big.Int).SetString(string(x), 10)
		if !ok {
			return rlp.Value{}, fmt.Errorf("%w: number %s is not an integer", rlp.ErrUnsupportedInputType, x)
		}
		return bigValue(n)

	case []rlp.Value:
		return rlp.ListOf(x...), nil
	case [][]byte:
		items := make([]rlp.Value, len(x))
		for i, b := range x {
			items[i] = rlp.Bytes(b)
		}
		return rlp.ListOf(items...), nil
	case []string:
		items := make([]rlp.Value, len(x))
		for i, s := range x {
			v, err := String(s)
			if err != nil {
				return rlp.Value{}, fmt.Errorf("item %d: %w", i, err)
			}
			items[i] = v
		}
		return rlp.ListOf(items...), nil
	case []any:
		items := make([]rlp.Value, len(x))
		for i, it := range x {
			v, err := Value(it)
			if err != nil {
				return rlp.Value{}, fmt.Errorf("item %d: %w", i, err)
			}
			items[i] = v
		}
		return rlp.ListOf(items...), nil
	}
	return rlp.Value{}, fmt.Errorf("%w: %T", rlp.ErrUnsupportedInputType, x)
}

// String converts s. A 0x prefix selects hex; an odd digit count is padded
// with a leading zero nibble.
func String(s string) (rlp.Value, error) {
	if !strings.HasPrefix(s, "0x") {
		return rlp.Str(s), nil
	}
	b, err := Hex(s)
	if err != nil {
		return rlp.Value{}, err
	}
	return rlp.Bytes(b), nil
}

// Hex decodes hex text with an optional 0x prefix.
func Hex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rlp.ErrUnsupportedInputType, err)
	}
	return b, nil
}

func uint64Value(x uint64) rlp.Value {
	var u8 [8]byte
	binary.BigEndian.PutUint64(u8[:], x)
	i := 0
	for i < len(u8) && u8[i] == 0 {
		i++
	}
	return rlp.Bytes(u8[i:])
}

func int64Value(x int64) (rlp.Value, error) {
	if x < 0 {
		return rlp.Value{}, fmt.Errorf("%w: %d", rlp.ErrNegativeInteger, x)
	}
	return uint64Value(uint64(x)), nil
}

func bigValue(x *big.Int) (rlp.Value, error) {
	if x.Sign() < 0 {
		return rlp.Value{}, fmt.Errorf("%w: %s", rlp.ErrNegativeInteger, x)
	}
	return rlp.Bytes(x.Bytes()), nil
}
