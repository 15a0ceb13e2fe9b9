// Package endian provides the byte order engine used for fixed-width values.
//
// Avro stores float and double values as little-endian IEEE-754, and the fixed-width
// integer extensions (uint64_t, int64_t and sized fixed types such as uint16_t) are
// read in the same order. Decoders take an EndianEngine rather than hard-coding
// binary.LittleEndian so fixed payloads from big-endian producers can be read by the
// binding layer with the same code.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	v := engine.Uint16(fixed) // fixed is a 2-byte slice from Engine.DecodeFixed
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of the wire format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Uint reads an unsigned integer of width 1, 2, 4 or 8 bytes from b.
// It returns false for any other width.
func Uint(engine EndianEngine, b []byte) (uint64, bool) {
	switch len(b) {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(engine.Uint16(b)), true
	case 4:
		return uint64(engine.Uint32(b)), true
	case 8:
		return engine.Uint64(b), true
	default:
		return 0, false
	}
}

// Int reads a two's complement signed integer of width 1, 2, 4 or 8 bytes from b.
// It returns false for any other width.
func Int(engine EndianEngine, b []byte) (int64, bool) {
	switch len(b) {
	case 1:
		return int64(int8(b[0])), true
	case 2:
		return int64(int16(engine.Uint16(b))), true //nolint:gosec
	case 4:
		return int64(int32(engine.Uint32(b))), true //nolint:gosec
	case 8:
		return int64(engine.Uint64(b)), true //nolint:gosec
	default:
		return 0, false
	}
}
