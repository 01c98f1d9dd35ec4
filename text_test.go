package runebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeText(t *testing.T) {
	p, err := EncodeText("hello")
	require.NoError(t, err)
	assert.Equal(t, []byte{104, 101, 108, 108, 111}, p)

	// characters above ASCII take their single cp1252 byte
	p, err = EncodeText("£5")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa3, '5'}, p)
}

func TestEncodeTextInvalid(t *testing.T) {
	_, err := EncodeText("snow ☃")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestDecodeText(t *testing.T) {
	s, err := DecodeText([]byte{109, 121, 32, 116, 101, 115, 116})
	require.NoError(t, err)
	assert.Equal(t, "my test", s)

	s, err = DecodeText([]byte{0xa3, 0x80})
	require.NoError(t, err)
	assert.Equal(t, "£€", s)

	s, err = DecodeText(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestDecodeTextInvalid(t *testing.T) {
	// 0x81 is one of the five bytes Windows-1252 leaves unmapped
	_, err := DecodeText([]byte{104, 0x81})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidText)
}

func TestTextRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "my test", "Zezima", "l'élite £100"}

	for _, s := range cases {
		p, err := EncodeText(s)
		require.NoError(t, err)

		got, err := DecodeText(p)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
