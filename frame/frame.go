// Package frame handles the schema registry wire framing that precedes each record
// payload: one magic byte followed by the 4-byte big-endian id of the writer schema.
//
//	+-------+---------------------+------------------+
//	| 0x00  | schema id (uint32)  | Avro payload ... |
//	+-------+---------------------+------------------+
//	  1 B         4 B BE
package frame

import (
	"fmt"

	"github.com/arloliu/avroscan/endian"
	"github.com/arloliu/avroscan/errs"
)

const (
	// Magic is the first byte of every framed message.
	Magic byte = 0x00
	// HeaderSize is the size of the framing header in bytes.
	HeaderSize = 5
)

// Header is the decoded framing header.
type Header struct {
	SchemaID uint32
}

// Parse parses the framing header from the first HeaderSize bytes of data.
//
// Parameters:
//   - data: Byte slice containing at least HeaderSize bytes
//
// Returns:
//   - error: ErrBufferUnderrun if data is too short, ErrInvalidMagic if the first
//     byte is not Magic
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: frame header needs %d bytes, have %d", errs.ErrBufferUnderrun, HeaderSize, len(data))
	}
	if data[0] != Magic {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidMagic, data[0])
	}

	h.SchemaID = endian.GetBigEndianEngine().Uint32(data[1:HeaderSize])

	return nil
}

// Bytes returns the header in wire form.
func (h Header) Bytes() []byte {
	return h.Append(make([]byte, 0, HeaderSize))
}

// Append appends the header in wire form to dst.
func (h Header) Append(dst []byte) []byte {
	dst = append(dst, Magic)
	return endian.GetBigEndianEngine().AppendUint32(dst, h.SchemaID)
}

// Parse splits a framed message into its header and payload. The payload aliases msg.
func Parse(msg []byte) (Header, []byte, error) {
	var h Header
	if err := h.Parse(msg); err != nil {
		return Header{}, nil, err
	}

	return h, msg[HeaderSize:], nil
}
