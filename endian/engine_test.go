package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require := require.New(t)

	require.Equal(binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(binary.BigEndian, GetBigEndianEngine())
}

func TestUint(t *testing.T) {
	engine := GetLittleEndianEngine()

	tests := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"uint8", []byte{0xFF}, 255},
		{"uint16", []byte{0x34, 0x12}, 0x1234},
		{"uint32", []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"uint64", engine.AppendUint64(nil, math.MaxUint64), math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Uint(engine, tt.in)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := Uint(engine, []byte{1, 2, 3})
	require.False(t, ok)
	_, ok = Uint(engine, nil)
	require.False(t, ok)
}

func TestInt(t *testing.T) {
	engine := GetLittleEndianEngine()

	tests := []struct {
		name string
		in   []byte
		want int64
	}{
		{"int8 negative", []byte{0xFF}, -1},
		{"int8 min", []byte{0x80}, math.MinInt8},
		{"int16 negative", []byte{0xFE, 0xFF}, -2},
		{"int32 min", engine.AppendUint32(nil, 0x80000000), math.MinInt32},
		{"int64 max", engine.AppendUint64(nil, math.MaxInt64), math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Int(engine, tt.in)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := Int(engine, make([]byte, 3))
	require.False(t, ok)
}

func TestBigEndianEngine(t *testing.T) {
	got, ok := Uint(GetBigEndianEngine(), []byte{0x12, 0x34})
	require.True(t, ok)
	require.Equal(t, uint64(0x1234), got)
}
