package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyushdaiya/wallet-classifier/internal/codec"
)

func TestDecodeBase58_MatchesReferenceDecoder(t *testing.T) {
	inputs := []string{
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2",
		"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
		"2",
		"z",
		"11z",
	}

	for _, in := range inputs {
		want, err := base58.Decode(in)
		require.NoError(t, err, in)

		got, err := codec.DecodeBase58(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	// 37 byte WIF private key
	_, err := codec.DecodeBase58("5Kd3NBUAdUnhyzenEwVLy9pBKxSwXvE9FMPyR4UKZvpe6E3AgLr")
	assert.ErrorIs(t, err, codec.ErrOverflow)
}

func TestDecodeBase58_LeadingOnes(t *testing.T) {
	got, err := codec.DecodeBase58("111")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0}, got)

	got, err = codec.DecodeBase58("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2")
	require.NoError(t, err)
	require.Len(t, got, 25)
	assert.Equal(t, byte(0x00), got[0])
}

func TestDecodeBase58_Empty(t *testing.T) {
	got, err := codec.DecodeBase58("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeBase58_InvalidCharacter(t *testing.T) {
	for _, in := range []string{"0", "O", "I", "l", "abc0def", "not an address", "bc1é", "+"} {
		_, err := codec.DecodeBase58(in)
		assert.ErrorIs(t, err, codec.ErrInvalidCharacter, in)
	}
}

func TestDecodeBase58_Overflow(t *testing.T) {
	raw := bytes.Repeat([]byte{0xff}, codec.BufferSize+1)
	_, err := codec.DecodeBase58(codec.EncodeBase58(raw))
	assert.ErrorIs(t, err, codec.ErrOverflow)

	// transparent ZCash addresses carry a two byte prefix and do not fit
	zcash := append([]byte{0x1c, 0xb8}, bytes.Repeat([]byte{0x42}, 24)...)
	encoded := codec.EncodeBase58(zcash)
	require.True(t, strings.HasPrefix(encoded, "t1"), encoded)
	_, err = codec.DecodeBase58(encoded)
	assert.ErrorIs(t, err, codec.ErrOverflow)

	_, err = codec.DecodeMoneroBase58("4" + strings.Repeat("A", 94))
	assert.ErrorIs(t, err, codec.ErrOverflow)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		{0x00, 0x01, 0x02},
		append([]byte{0x00}, bytes.Repeat([]byte{0x9a}, 24)...),
		append([]byte{0x05}, bytes.Repeat([]byte{0x11}, 24)...),
		bytes.Repeat([]byte{0xff}, codec.BufferSize),
	}

	for _, p := range payloads {
		got, err := codec.DecodeBase58(codec.EncodeBase58(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
