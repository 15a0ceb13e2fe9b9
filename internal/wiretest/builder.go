// Package wiretest builds Avro binary fixtures for tests.
package wiretest

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/avroscan/encoding"
)

// Pair is one map entry written by Builder.Map.
type Pair struct {
	Key   string
	Value string
}

// Builder appends Avro-encoded values to an internal buffer. The zero value is ready
// to use and every method returns the builder for chaining.
type Builder struct {
	buf []byte
}

// New creates a builder whose buffer starts with prefix.
func New(prefix ...byte) *Builder {
	return &Builder{buf: append([]byte(nil), prefix...)}
}

// Long appends a zig-zag varint.
func (b *Builder) Long(v int64) *Builder {
	b.buf = binary.AppendUvarint(b.buf, encoding.ZigZagEncode(v))
	return b
}

// Int appends a zig-zag varint.
func (b *Builder) Int(v int32) *Builder {
	return b.Long(int64(v))
}

// Tag appends a union branch index.
func (b *Builder) Tag(i int) *Builder {
	return b.Long(int64(i))
}

// Block appends a raw map block count.
func (b *Builder) Block(n int64) *Builder {
	return b.Long(n)
}

// Float appends a little-endian float.
func (b *Builder) Float(v float32) *Builder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(v))
	return b
}

// Double appends a little-endian double.
func (b *Builder) Double(v float64) *Builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
	return b
}

// Bool appends a boolean byte.
func (b *Builder) Bool(v bool) *Builder {
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}

	return b
}

// Bytes appends a length-prefixed byte string.
func (b *Builder) Bytes(v []byte) *Builder {
	b.Long(int64(len(v)))
	b.buf = append(b.buf, v...)

	return b
}

// String appends a length-prefixed string.
func (b *Builder) String(v string) *Builder {
	b.Long(int64(len(v)))
	b.buf = append(b.buf, v...)

	return b
}

// Fixed appends raw bytes without a length prefix.
func (b *Builder) Fixed(v ...byte) *Builder {
	b.buf = append(b.buf, v...)
	return b
}

// Uint64 appends 8 little-endian bytes.
func (b *Builder) Uint64(v uint64) *Builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

// Map appends pairs as a single block followed by the zero terminator. An empty
// map is written as the terminator alone.
func (b *Builder) Map(pairs ...Pair) *Builder {
	if len(pairs) > 0 {
		b.Block(int64(len(pairs)))
		for _, p := range pairs {
			b.String(p.Key).String(p.Value)
		}
	}

	return b.Block(0)
}

// Raw appends arbitrary bytes.
func (b *Builder) Raw(v ...byte) *Builder {
	b.buf = append(b.buf, v...)
	return b
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Build returns a copy of the encoded buffer.
func (b *Builder) Build() []byte {
	return append([]byte(nil), b.buf...)
}
