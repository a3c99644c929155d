package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605"

func TestHashFromString(t *testing.T) {
	h, err := HashFromString(testHash)
	require.NoError(t, err)
	assert.Equal(t, testHash, h.String())
	assert.Equal(t, byte(0xa0), h[0])
	assert.Equal(t, byte(0x05), h[31])

	_, err = HashFromString(testHash[2:])
	require.ErrorIs(t, err, ErrHashSize)

	_, err = HashFromString("zz" + testHash[2:])
	require.Error(t, err)

	assert.Panics(t, func() { MustHashFromString("00") })
}

func TestHash_JSON(t *testing.T) {
	h := MustHashFromString(testHash)
	buf, err := h.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"`+testHash+`"`, string(buf))

	var out Hash
	require.NoError(t, out.UnmarshalJSON(buf))
	assert.Equal(t, h, out)

	require.NoError(t, out.UnmarshalJSON([]byte("null")))
	assert.Equal(t, h, out)

	require.ErrorIs(t, out.UnmarshalJSON([]byte(`"00"`)), ErrHashSize)
}

func TestHash_SQL(t *testing.T) {
	h := MustHashFromString(testHash)
	v, err := h.Value()
	require.NoError(t, err)

	var out Hash
	require.NoError(t, out.Scan(v))
	assert.Equal(t, h, out)

	v, err = ZeroHash.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.ErrorIs(t, out.Scan([]byte{1, 2, 3}), ErrHashSize)
	require.ErrorIs(t, out.Scan("text"), ErrHashType)
}

func TestHash_Compare(t *testing.T) {
	var low, high Hash
	low[0] = 0xff
	high[31] = 0x01

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.Equal(t, uint64(0xff), low.Uint64())
}

func TestBytes_JSON(t *testing.T) {
	b := Bytes("This is a test")
	buf, err := b.MarshalJSON()
	require.NoError(t, err)

	var out Bytes
	require.NoError(t, out.UnmarshalJSON(buf))
	assert.Equal(t, b, out)
	assert.Equal(t, "5468697320697320612074657374", out.String())
}
