package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 247}, EncodeBytes([]byte{}))
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 250}, EncodeBytes([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 251}, EncodeBytes([]byte{1, 2, 3, 0}))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 255, 0, 0, 0, 0, 0, 0, 0, 0, 247},
		EncodeBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, EncodedLen(8), len(EncodeBytes(make([]byte, 8))))

	// Order is preserved and no encoding is a prefix of another.
	assert.True(t, bytes.Compare(EncodeBytes([]byte{42}), EncodeBytes([]byte{42, 0})) < 0)
	assert.True(t, bytes.Compare(EncodeBytes([]byte{42, 255}), EncodeBytes([]byte{43})) < 0)
	assert.False(t, bytes.HasPrefix(EncodeBytes([]byte("ab")), EncodeBytes([]byte("a"))))
}

func TestDecodeBytes(t *testing.T) {
	for _, raw := range [][]byte{{}, {42}, {1, 2, 3, 4, 5, 6, 7, 8}, []byte("a longer row key with bytes")} {
		rest, data, err := DecodeBytes(append(EncodeBytes(raw), 9, 9))
		require.Nil(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, []byte{9, 9}, rest)
	}

	_, _, err := DecodeBytes([]byte{1, 2, 3})
	assert.NotNil(t, err)
	_, _, err = DecodeBytes([]byte{1, 2, 3, 0, 0, 0, 0, 0, 200})
	assert.NotNil(t, err)
	_, _, err = DecodeBytes([]byte{1, 2, 3, 0, 0, 0, 0, 1, 250})
	assert.NotNil(t, err)
}

func TestAppendID(t *testing.T) {
	key := EncodeBytes([]byte{42})
	older := AppendID(append([]byte{}, key...), 10)
	newer := AppendID(append([]byte{}, key...), 20)
	assert.True(t, bytes.Compare(newer, older) < 0)

	rest, id, err := DecodeID(older[len(key):])
	require.Nil(t, err)
	assert.Equal(t, uint64(10), id)
	assert.Len(t, rest, 0)

	_, _, err = DecodeID([]byte{1})
	assert.NotNil(t, err)
}

func TestPrefixNext(t *testing.T) {
	assert.Equal(t, []byte{1, 3}, PrefixNext([]byte{1, 2}))
	assert.Equal(t, []byte{2}, PrefixNext([]byte{1, 255}))
	assert.Nil(t, PrefixNext([]byte{255, 255}))
	key := []byte{7, 7}
	PrefixNext(key)
	assert.Equal(t, []byte{7, 7}, key)
}
