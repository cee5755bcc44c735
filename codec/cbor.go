package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/unkn0wn-root/rlp"
)

// CBOR transcodes rlp.Value trees to CBOR byte strings and arrays.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic).
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[rlp.Value] = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
//
// Decoding accepts arrays nested as deep as rlp.DefaultMaxDepth.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{MaxNestedLevels: rlp.DefaultMaxDepth}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(v rlp.Value) ([]byte, error) {
	return c.enc.Marshal(toBinTree(v))
}

func (c CBOR) Decode(b []byte) (rlp.Value, error) {
	var x any
	if err := c.dec.Unmarshal(b, &x); err != nil {
		return rlp.Value{}, err
	}
	return fromTree(x, false, 0)
}
