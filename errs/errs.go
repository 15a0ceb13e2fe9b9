// Package errs defines the sentinel errors returned by avroscan.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to add context, so
// callers should always compare with errors.Is rather than ==.
package errs

import (
	"errors"
	"fmt"
)

// Byte cursor and primitive codec errors.
var (
	// ErrBufferUnderrun is returned when a read needs more bytes than remain in the buffer.
	ErrBufferUnderrun = errors.New("buffer underrun")
	// ErrTruncatedVarint is returned when a varint has no terminating byte or overflows 64 bits.
	ErrTruncatedVarint = errors.New("truncated varint")
	// ErrNegativeLength is returned when a length prefix or fixed size decodes to a negative value.
	ErrNegativeLength = errors.New("negative length")
	// ErrIntOutOfRange is returned when an Avro int does not fit in 32 bits.
	ErrIntOutOfRange = errors.New("int value out of 32-bit range")
	// ErrInvalidUTF8 is returned by string decodes when UTF-8 validation is enabled.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")
)

// Schema errors.
var (
	// ErrSchema is returned for malformed schema text or unknown type tags.
	ErrSchema = errors.New("invalid schema")
	// ErrUnknownSchemaID is returned when a registry lookup misses.
	ErrUnknownSchemaID = errors.New("unknown schema id")
	// ErrSchemaIDConflict is returned when a different schema is registered under a used id.
	ErrSchemaIDConflict = errors.New("schema id already registered")
	// ErrFingerprintCollision is returned when two distinct schemas share a fingerprint.
	ErrFingerprintCollision = errors.New("schema fingerprint collision")
)

// Decode engine errors.
var (
	// ErrFieldCountMismatch is returned when the binding's field count does not match the schema.
	ErrFieldCountMismatch = errors.New("field count mismatch")
	// ErrUnionTagOutOfRange is returned when a union discriminant is outside the declared branches.
	ErrUnionTagOutOfRange = errors.New("union tag out of range")
	// ErrNotAnOptionField is returned when an optional decode targets a union whose arity is not 2.
	ErrNotAnOptionField = errors.New("field is not an option")
	// ErrUnsupportedTypeRequested is returned when the requested decode does not match the schema type.
	ErrUnsupportedTypeRequested = errors.New("unsupported type requested")
	// ErrInvalidState is returned when an engine operation is called out of order.
	ErrInvalidState = errors.New("invalid decoder state")
	// ErrTrailingBytes is returned by strict decodes that leave unread bytes behind.
	ErrTrailingBytes = errors.New("trailing bytes after record")
)

// Framing errors.
var (
	// ErrInvalidMagic is returned when a framed message does not start with the magic byte.
	ErrInvalidMagic = errors.New("invalid magic byte")
)

// UnionTagError describes a union discriminant that does not select a declared branch.
type UnionTagError struct {
	Field string
	Tag   int64
	Max   int
}

func (e *UnionTagError) Error() string {
	return fmt.Sprintf("%s: field %q tag %d, want 0 <= tag < %d", ErrUnionTagOutOfRange, e.Field, e.Tag, e.Max)
}

// Is reports whether target is ErrUnionTagOutOfRange.
func (e *UnionTagError) Is(target error) bool {
	return target == ErrUnionTagOutOfRange
}
