// Package encoding implements the byte cursor and primitive codec of the Avro binary
// encoding.
//
// The Cursor has no schema knowledge. Each read consumes a fixed or self-describing
// number of bytes from the front of the remaining buffer:
//
//	int, long          zig-zag varint, 1-10 bytes
//	float              4 bytes little-endian IEEE-754
//	double             8 bytes little-endian IEEE-754
//	boolean            1 byte
//	bytes, string      varint length n, then n raw bytes
//	fixed(size)        exactly size raw bytes
//
// # Zero-copy
//
// ReadBytes, ReadString and ReadFixed return sub-slices of the input buffer. Their
// capacity is clipped to their length, so appending to them never overwrites the
// bytes that follow in the record.
//
// # Errors
//
// Short input is always reported as an error (errs.ErrBufferUnderrun,
// errs.ErrTruncatedVarint, errs.ErrNegativeLength) and never as an index panic.
// A failed read does not move the cursor.
//
// # Example
//
//	c := encoding.NewCursor(payload)
//	tag, err := c.ReadVarint()
//	if err != nil {
//	    return err
//	}
//	metric, err := c.ReadString()
package encoding
