package pool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_ReadFrom(t *testing.T) {
	t.Run("reads small payload", func(t *testing.T) {
		bb := NewByteBuffer(0)
		n, err := bb.ReadFrom(strings.NewReader("a\nb\nc\n"))
		require.NoError(t, err)
		require.Equal(t, int64(6), n)
		require.Equal(t, []byte("a\nb\nc\n"), bb.Bytes())
	})

	t.Run("grows past default size", func(t *testing.T) {
		payload := bytes.Repeat([]byte("token\n"), PayloadBufferDefaultSize)
		bb := NewByteBuffer(16)
		n, err := bb.ReadFrom(bytes.NewReader(payload))
		require.NoError(t, err)
		require.Equal(t, int64(len(payload)), n)
		require.Equal(t, payload, bb.Bytes())
	})

	t.Run("one byte reads", func(t *testing.T) {
		bb := NewByteBuffer(1)
		_, err := bb.ReadFrom(iotest.OneByteReader(strings.NewReader("hello")))
		require.NoError(t, err)
		require.Equal(t, "hello", string(bb.Bytes()))
	})

	t.Run("propagates read errors", func(t *testing.T) {
		bb := NewByteBuffer(8)
		boom := errors.New("boom")
		_, err := bb.ReadFrom(io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(boom)))
		require.ErrorIs(t, err, boom)
		require.Equal(t, "ab", string(bb.Bytes()))
	})
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte("abc"))
	_, _ = bb.Write([]byte("def"))
	require.Equal(t, 6, bb.Len())
	require.Equal(t, "abcdef", string(bb.Bytes()))

	capBefore := cap(bb.B)
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, cap(bb.B))
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.Equal(t, 0, reused.Len())

	// Put tolerates nil and oversized buffers.
	p.Put(nil)
	p.Put(NewByteBuffer(128))

	shared := GetPayloadBuffer()
	require.Equal(t, 0, shared.Len())
	PutPayloadBuffer(shared)
}
