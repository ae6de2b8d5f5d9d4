package pool

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 64, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_ResetKeepsCapacity(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)
	bb.B = append(bb.B, "some data"...)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Append(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)
	bb.B = append(bb.B, []byte{0x00, 0x0e}...)

	bb.Append(func(dst []byte) []byte {
		return binary.BigEndian.AppendUint16(dst, 0x0fa1)
	})

	require.Equal(t, []byte{0x00, 0x0e, 0x0f, 0xa1}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)
	bb.B = append(bb.B, "packed"...)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "packed", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(PackBufferDefaultSize)
	bb.B = append(bb.B, "x"...)

	_, err := bb.WriteTo(failingWriter{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "write failed")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		assert.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		bb.Grow(20)
		assert.Equal(t, PackBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		initial := 8 * PackBufferDefaultSize
		bb := NewByteBuffer(initial)
		bb.B = bb.B[:initial]
		bb.Grow(1)
		assert.Equal(t, initial+initial/4, bb.Cap())
	})

	t.Run("request larger than default growth", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(PackBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, bb.Cap(), PackBufferDefaultSize*3)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(4)
		bb.B = append(bb.B, []byte{1, 2, 3, 4}...)
		bb.Grow(100)
		assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	})
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetPackBuffer(t *testing.T) {
	bb := GetPackBuffer()
	defer PutPackBuffer(bb)

	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 1)
}

func TestPutPackBuffer_NilBuffer(t *testing.T) {
	require.NotPanics(t, func() {
		PutPackBuffer(nil)
	})
}

func TestPool_ResetsClearsData(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	bb := p.Get()
	bb.B = append(bb.B, "stale"...)
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len(), "buffers from the pool should be empty")
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(8, 32)

	large := NewByteBuffer(64)
	require.NotPanics(t, func() { p.Put(large) })

	small := NewByteBuffer(16)
	small.B = append(small.B, "abc"...)
	p.Put(small)
	require.Equal(t, 0, small.Len(), "accepted buffers are reset")
}

func TestPool_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetPackBuffer()
				bb.B = append(bb.B, []byte{byte(id)}...)
				assert.Equal(t, 1, bb.Len())
				PutPackBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
