package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/avroscan/errs"
	"github.com/stretchr/testify/require"
)

// appendVarint appends the zig-zag varint encoding of v.
func appendVarint(dst []byte, v int64) []byte {
	return binary.AppendUvarint(dst, ZigZagEncode(v))
}

func TestZigZag(t *testing.T) {
	tests := []struct {
		signed   int64
		unsigned uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt64, math.MaxUint64 - 1},
		{math.MinInt64, math.MaxUint64},
	}

	for _, tt := range tests {
		require.Equal(t, tt.unsigned, ZigZagEncode(tt.signed), "encode %d", tt.signed)
		require.Equal(t, tt.signed, ZigZagDecode(tt.unsigned), "decode %d", tt.unsigned)
	}
}

func TestCursor_ReadVarint_Law(t *testing.T) {
	values := []int64{
		0, -1, 1, -64, 63, 64, -65, 300, -300,
		math.MaxInt32, math.MinInt32,
		math.MaxInt64, math.MinInt64,
		1530750301,
	}

	for _, v := range values {
		buf := appendVarint(nil, v)
		c := NewCursor(buf)

		got, err := c.ReadVarint()
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), c.Offset())
		require.Equal(t, 0, c.Len())
	}
}

func TestCursor_ReadVarint_Boundaries(t *testing.T) {
	t.Run("MinInt64 takes ten bytes", func(t *testing.T) {
		buf := appendVarint(nil, math.MinInt64)
		require.Len(t, buf, MaxVarintLen)
	})

	t.Run("captured timestamp", func(t *testing.T) {
		c := NewCursor([]byte{186, 149, 235, 179, 11})
		got, err := c.ReadVarint()
		require.NoError(t, err)
		require.Equal(t, int64(1530750301), got)
	})
}

func TestCursor_ReadVarint_Errors(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		c := NewCursor(nil)
		_, err := c.ReadVarint()
		require.ErrorIs(t, err, errs.ErrBufferUnderrun)
	})

	t.Run("no terminating byte", func(t *testing.T) {
		c := NewCursor([]byte{0x80, 0x80, 0x80})
		_, err := c.ReadVarint()
		require.ErrorIs(t, err, errs.ErrTruncatedVarint)
		require.Equal(t, 0, c.Offset(), "failed read must not advance")
	})

	t.Run("longer than ten bytes", func(t *testing.T) {
		buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
		c := NewCursor(buf)
		_, err := c.ReadVarint()
		require.ErrorIs(t, err, errs.ErrTruncatedVarint)
	})

	t.Run("tenth byte overflows", func(t *testing.T) {
		buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x02}
		c := NewCursor(buf)
		_, err := c.ReadUvarint()
		require.ErrorIs(t, err, errs.ErrTruncatedVarint)
	})
}

func TestCursor_ReadFloats(t *testing.T) {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(3.5))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(196.0))

	c := NewCursor(buf)

	f, err := c.ReadFloat32()
	require.NoError(t, err)
	require.InDelta(t, 3.5, f, 0)

	d, err := c.ReadFloat64()
	require.NoError(t, err)
	require.InDelta(t, 196.0, d, 0)
	require.Equal(t, 12, c.Offset())

	_, err = c.ReadFloat32()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestCursor_ReadFloat64_Short(t *testing.T) {
	c := NewCursor(make([]byte, 7))
	_, err := c.ReadFloat64()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
	require.Equal(t, 0, c.Offset())
}

func TestCursor_ReadBytes(t *testing.T) {
	buf := appendVarint(nil, 5)
	buf = append(buf, "an-id"...)
	buf = appendVarint(buf, 0)
	buf = append(buf, 0xAA)

	c := NewCursor(buf)

	b, err := c.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, "an-id", string(b))
	require.Equal(t, 5, cap(b), "capacity must be clipped")

	empty, err := c.ReadString()
	require.NoError(t, err)
	require.Empty(t, empty)
	require.Equal(t, 1, c.Len())
}

func TestCursor_ReadBytes_Aliases(t *testing.T) {
	buf := append(appendVarint(nil, 3), "abc"...)
	c := NewCursor(buf)

	b, err := c.ReadBytes()
	require.NoError(t, err)

	buf[1] = 'x'
	require.Equal(t, "xbc", string(b), "returned slice must alias the input buffer")
}

func TestCursor_ReadBytes_Errors(t *testing.T) {
	t.Run("negative length", func(t *testing.T) {
		c := NewCursor(appendVarint(nil, -3))
		_, err := c.ReadBytes()
		require.ErrorIs(t, err, errs.ErrNegativeLength)
		require.Equal(t, 0, c.Offset())
	})

	t.Run("length beyond buffer", func(t *testing.T) {
		buf := append(appendVarint(nil, 10), "short"...)
		c := NewCursor(buf)
		_, err := c.ReadBytes()
		require.ErrorIs(t, err, errs.ErrBufferUnderrun)
		require.Equal(t, 0, c.Offset())
	})

	t.Run("huge length does not overflow", func(t *testing.T) {
		c := NewCursor(appendVarint(nil, math.MaxInt64))
		_, err := c.ReadBytes()
		require.ErrorIs(t, err, errs.ErrBufferUnderrun)
	})
}

func TestCursor_ReadFixed(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})

	b, err := c.ReadFixed(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)

	_, err = c.ReadFixed(4)
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)

	_, err = c.ReadFixed(-1)
	require.ErrorIs(t, err, errs.ErrNegativeLength)

	b, err = c.ReadFixed(0)
	require.NoError(t, err)
	require.Empty(t, b)
	require.Equal(t, 2, c.Offset())
}

func TestCursor_PeekByte(t *testing.T) {
	c := NewCursor([]byte{0, 7})

	b, err := c.PeekByte()
	require.NoError(t, err)
	require.Equal(t, byte(0), b)
	require.Equal(t, 0, c.Offset(), "peek must not consume")

	require.NoError(t, c.Skip(2))
	_, err = c.PeekByte()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestCursor_ReadBoolean(t *testing.T) {
	c := NewCursor([]byte{0, 1, 2})

	for _, want := range []bool{false, true, true} {
		got, err := c.ReadBoolean()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := c.ReadBoolean()
	require.ErrorIs(t, err, errs.ErrBufferUnderrun)
}

func TestCursor_Skip(t *testing.T) {
	c := NewCursor([]byte{0, 0, 0, 2, 106, 0})

	require.NoError(t, c.Skip(5))
	require.Equal(t, 1, c.Len())

	require.ErrorIs(t, c.Skip(2), errs.ErrBufferUnderrun)
	require.ErrorIs(t, c.Skip(-1), errs.ErrNegativeLength)
	require.Equal(t, 5, c.Offset())
}

func TestCursor_Reset(t *testing.T) {
	var c Cursor
	c.Reset([]byte{4})

	v, err := c.ReadVarint()
	require.NoError(t, err)
	require.Equal(t, int64(2), v)

	c.Reset(append([]byte{8}, make([]byte, 4)...))
	require.Equal(t, 0, c.Offset())
	_, err = c.ReadFloat32()
	require.NoError(t, err)
}
