package codec

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/rlp"
)

var samples = []rlp.Value{
	{},
	rlp.Str("a"),
	rlp.Bytes([]byte{0x00}),
	rlp.Str(strings.Repeat("x", 300)),
	rlp.ListOf(),
	rlp.ListOf(rlp.Str("dog"), rlp.Str("god"), rlp.Str("cat")),
	rlp.ListOf(rlp.ListOf(rlp.ListOf(), rlp.ListOf()), rlp.ListOf(), rlp.Bytes(nil)),
}

func allCodecs(t *testing.T) map[string]Codec[rlp.Value] {
	t.Helper()
	out := map[string]Codec[rlp.Value]{}
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)
		out[name] = c
	}
	out["cbor-unsorted"] = MustCBOR(false)
	return out
}

func TestRoundTripAllCodecs(t *testing.T) {
	for name, c := range allCodecs(t) {
		for _, v := range samples {
			b, err := c.Encode(v)
			require.NoError(t, err, name)
			got, err := c.Decode(b)
			require.NoError(t, err, name)
			assert.True(t, got.Equal(v), "%s: %v != %v", name, got, v)
		}
	}
}

func TestKnownForms(t *testing.T) {
	v := rlp.ListOf(rlp.Str("dog"), rlp.ListOf())
	cases := map[string]string{
		"rlp":     "c583646f67c0",
		"cbor":    "8243646f6780",
		"msgpack": "92c403646f6790",
	}
	for name, want := range cases {
		c, err := Lookup(name)
		require.NoError(t, err)
		b, err := c.Encode(v)
		require.NoError(t, err)
		assert.Equal(t, want, hex.EncodeToString(b), name)
	}

	b, err := JSON{}.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, `["0x646f67",[]]`, string(b))
}

func TestTranscode(t *testing.T) {
	in, err := hex.DecodeString("cc83646f6783676f6483636174")
	require.NoError(t, err)
	out, err := Transcode(RLP{}, JSON{}, in)
	require.NoError(t, err)
	assert.Equal(t, `["0x646f67","0x676f64","0x636174"]`, string(out))

	back, err := Transcode(JSON{}, RLP{}, out)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestJSONRejects(t *testing.T) {
	for _, in := range []string{`"dog"`, `["0xzz"]`, `[1]`, `{"a":"0x00"}`, `null`, `[true]`} {
		_, err := JSON{}.Decode([]byte(in))
		assert.ErrorIs(t, err, rlp.ErrUnsupportedInputType, in)
	}
}

func TestFromTreeDepth(t *testing.T) {
	var x any = []any{}
	for i := 0; i < rlp.DefaultMaxDepth; i++ {
		x = []any{x}
	}
	_, err := fromTree(x, false, 0)
	assert.ErrorIs(t, err, rlp.ErrMaxDepthExceeded)
}

func TestRLPDecodeUsesDecoder(t *testing.T) {
	deep := rlp.ListOf(rlp.ListOf(rlp.ListOf()))
	b := rlp.Encode(deep)

	_, err := RLP{}.Decode(b)
	require.NoError(t, err)

	_, err = RLP{Decoder: rlp.NewDecoder(rlp.Options{MaxDepth: 2})}.Decode(b)
	assert.ErrorIs(t, err, rlp.ErrMaxDepthExceeded)
}

func TestRaw(t *testing.T) {
	good := []byte{0xc1, 0x05}
	b, err := Raw{}.Decode(good)
	require.NoError(t, err)
	assert.Equal(t, good, b)

	_, err = Raw{}.Encode([]byte{0x81, 0x05})
	assert.ErrorIs(t, err, rlp.ErrNonCanonicalSingleByte)
	_, err = Raw{}.Decode([]byte{0xc0, 0xc0})
	assert.ErrorIs(t, err, rlp.ErrUnexpectedTrailingBytes)
	_, err = Raw{}.Decode(nil)
	assert.ErrorIs(t, err, rlp.ErrTruncatedInput)
}

func TestLimitCodec(t *testing.T) {
	c := LimitCodec[rlp.Value]{Inner: RLP{}, MaxDecode: 4}
	b, err := c.Encode(rlp.Str("dog"))
	require.NoError(t, err)
	_, err = c.Decode(b)
	require.NoError(t, err)

	_, err = c.Decode(rlp.Encode(rlp.Str("doggo")))
	assert.ErrorIs(t, err, ErrTooLarge)

	unlimited := LimitCodec[rlp.Value]{Inner: RLP{}}
	_, err = unlimited.Decode(rlp.Encode(rlp.Str(strings.Repeat("d", 1000))))
	assert.NoError(t, err)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("yaml")
	assert.Error(t, err)
	c, err := Lookup("CBOR")
	require.NoError(t, err)
	assert.IsType(t, CBOR{}, c)
}
