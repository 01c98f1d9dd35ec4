package stream

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gielinor/runebuf"
	"github.com/gielinor/runebuf/buffer"
)

// brokenWriter fails every write, standing in for a closed socket.
type brokenWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (brokenWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestWriterVectors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteI8Sub(99))
	require.NoError(t, w.WriteI8Add(42))
	require.NoError(t, w.WriteI8Neg(55))
	require.NoError(t, w.WriteI16Add(-9867))
	require.NoError(t, w.WriteI16LEAdd(-12632))
	require.NoError(t, w.WriteI32ME(-98231))
	require.NoError(t, w.WriteI32IME(-98231))
	require.NoError(t, w.WriteU16Smart(986))
	require.NoError(t, w.WriteStringNullTerminated("hello"))
	require.NoError(t, w.WriteBytesReversedAdd([]byte{1, 2, 3}))

	assert.Equal(t, []byte{
		1,
		29, 170, 201,
		217, 245,
		40, 206,
		254, 255, 73, 128,
		128, 73, 255, 254,
		131, 218,
		104, 101, 108, 108, 111, 0,
		131, 130, 129,
	}, buf.Bytes())
}

func TestWriterMatchesBufferSurface(t *testing.T) {
	// both surfaces must emit identical bytes for every encoding
	var sink bytes.Buffer
	w := NewWriter(&sink)

	require.NoError(t, w.WriteBool(false))
	require.NoError(t, w.WriteU8(231))
	require.NoError(t, w.WriteI16(-14632))
	require.NoError(t, w.WriteU16LE(29543))
	require.NoError(t, w.WriteI16Add(-719))
	require.NoError(t, w.WriteI16LEAdd(-719))
	require.NoError(t, w.WriteU16Smart(65))
	require.NoError(t, w.WriteU16Smart(986))
	require.NoError(t, w.WriteI32(-131045))
	require.NoError(t, w.WriteU32LE(26904))
	require.NoError(t, w.WriteI32ME(-98231))
	require.NoError(t, w.WriteI32IME(-98231))
	require.NoError(t, w.WriteU64(8589934592))
	require.NoError(t, w.WriteStringNullTerminated("my test"))

	b := buffer.New(sink.Len())
	b.WriteBool(false)
	b.WriteU8(231)
	b.WriteI16(-14632)
	b.WriteU16LE(29543)
	b.WriteI16Add(-719)
	b.WriteI16LEAdd(-719)
	b.WriteU16Smart(65)
	b.WriteU16Smart(986)
	b.WriteI32(-131045)
	b.WriteU32LE(26904)
	b.WriteI32ME(-98231)
	b.WriteI32IME(-98231)
	b.WriteU64(8589934592)
	b.WriteStringNullTerminated("my test")

	assert.Equal(t, b.Bytes(), sink.Bytes())
	assert.Equal(t, b.WritePos(), sink.Len())
}

func TestWriterSinkFailure(t *testing.T) {
	w := NewWriter(brokenWriter{})

	err := w.WriteU32(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSinkClosed)

	// the same condition that panics on the owned buffer is an ordinary
	// error here
	assert.Error(t, w.WriteBytes([]byte{1, 2, 3}))
	assert.Error(t, w.WriteStringNullTerminated("hello"))
}

func TestWriterSmartOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteU16Smart(32768)
	require.Error(t, err)
	assert.ErrorIs(t, err, runebuf.ErrSmartOutOfRange)
	assert.Zero(t, buf.Len(), "a rejected smart must write nothing")
}

func TestWriterInvalidText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteStringNullTerminated("☃")
	require.Error(t, err)
	assert.ErrorIs(t, err, runebuf.ErrInvalidText)
	assert.Zero(t, buf.Len(), "rejected text must write nothing")
}
