package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/avroscan/endian"
	"github.com/arloliu/avroscan/errs"
)

// MaxVarintLen is the maximum number of bytes a 64-bit varint occupies.
const MaxVarintLen = binary.MaxVarintLen64

// Cursor reads Avro primitives from the front of a borrowed byte slice.
//
// Every read consumes a deterministic number of bytes and advances the offset; the
// offset never moves backwards. Slices returned by ReadBytes, ReadString and
// ReadFixed alias the input buffer and stay valid as long as the caller keeps it.
//
// A failed read leaves the offset unchanged and returns an error wrapping one of
// errs.ErrBufferUnderrun, errs.ErrTruncatedVarint or errs.ErrNegativeLength. No read
// panics on short input.
//
// Note: Cursor is NOT thread-safe.
type Cursor struct {
	buf    []byte
	off    int
	engine endian.EndianEngine
}

// NewCursor creates a cursor positioned at the start of buf.
func NewCursor(buf []byte) Cursor {
	return Cursor{
		buf:    buf,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Reset repositions the cursor at the start of buf.
func (c *Cursor) Reset(buf []byte) {
	c.buf = buf
	c.off = 0
	if c.engine == nil {
		c.engine = endian.GetLittleEndianEngine()
	}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.off
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: skip %d", errs.ErrNegativeLength, n)
	}
	if n > c.Len() {
		return fmt.Errorf("%w: skip %d bytes at offset %d, have %d", errs.ErrBufferUnderrun, n, c.off, c.Len())
	}
	c.off += n

	return nil
}

// ReadUvarint reads a base-128 unsigned varint without zig-zag decoding.
//
// Decoding stops at the first byte whose high bit is clear. A buffer that ends while
// the continuation bit is still set, or a value wider than 64 bits, is reported as
// errs.ErrTruncatedVarint.
func (c *Cursor) ReadUvarint() (uint64, error) {
	if c.off >= len(c.buf) {
		return 0, fmt.Errorf("%w: varint at offset %d", errs.ErrBufferUnderrun, c.off)
	}

	v, n := binary.Uvarint(c.buf[c.off:])
	if n == 0 {
		return 0, fmt.Errorf("%w: no terminating byte at offset %d", errs.ErrTruncatedVarint, c.off)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: overflows 64 bits at offset %d", errs.ErrTruncatedVarint, c.off)
	}
	c.off += n

	return v, nil
}

// ReadVarint reads a zig-zag encoded signed varint, the encoding of every Avro int
// and long and of every union, map and array block count.
func (c *Cursor) ReadVarint() (int64, error) {
	u, err := c.ReadUvarint()
	if err != nil {
		return 0, err
	}

	return ZigZagDecode(u), nil
}

// ReadFloat32 reads a 4-byte little-endian IEEE-754 float.
func (c *Cursor) ReadFloat32() (float32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(c.engine.Uint32(b)), nil
}

// ReadFloat64 reads an 8-byte little-endian IEEE-754 double.
func (c *Cursor) ReadFloat64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(c.engine.Uint64(b)), nil
}

// ReadBoolean reads a single byte; any non-zero value is true.
func (c *Cursor) ReadBoolean() (bool, error) {
	b, err := c.take(1)
	if err != nil {
		return false, err
	}

	return b[0] != 0, nil
}

// ReadBytes reads a varint length n followed by n bytes and returns them without copying.
func (c *Cursor) ReadBytes() ([]byte, error) {
	start := c.off

	n, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		c.off = start
		return nil, fmt.Errorf("%w: length %d at offset %d", errs.ErrNegativeLength, n, start)
	}
	if n > int64(c.Len()) {
		c.off = start
		return nil, fmt.Errorf("%w: length %d at offset %d, have %d", errs.ErrBufferUnderrun, n, start, c.Len())
	}

	b := c.buf[c.off : c.off+int(n) : c.off+int(n)]
	c.off += int(n)

	return b, nil
}

// ReadString reads a length-prefixed string payload. The bytes are returned as-is,
// UTF-8 validity is left to the caller.
func (c *Cursor) ReadString() ([]byte, error) {
	return c.ReadBytes()
}

// ReadFixed returns exactly size bytes without a length prefix.
func (c *Cursor) ReadFixed(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: fixed size %d", errs.ErrNegativeLength, size)
	}

	return c.take(size)
}

// PeekByte returns the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	if c.off >= len(c.buf) {
		return 0, fmt.Errorf("%w: peek at offset %d", errs.ErrBufferUnderrun, c.off)
	}

	return c.buf[c.off], nil
}

// take consumes n bytes and returns them as a capacity-limited sub-slice.
func (c *Cursor) take(n int) ([]byte, error) {
	if n > c.Len() {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrBufferUnderrun, n, c.off, c.Len())
	}

	b := c.buf[c.off : c.off+n : c.off+n]
	c.off += n

	return b, nil
}

// ZigZagDecode maps an unsigned zig-zag value back to its signed form:
// 0 → 0, 1 → -1, 2 → 1, 3 → -2, ...
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}

// ZigZagEncode maps a signed value to its unsigned zig-zag form.
func ZigZagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}
