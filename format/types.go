package format

// Kind identifies a schema type: one of the Avro primitives, the two fixed-width
// integer extensions, or one of the modeled complex types.
type Kind uint8

const (
	KindNull    Kind = 0x1 // KindNull represents the null type, no bytes on the wire.
	KindInt     Kind = 0x2 // KindInt represents a 32-bit zig-zag varint.
	KindLong    Kind = 0x3 // KindLong represents a 64-bit zig-zag varint.
	KindFloat   Kind = 0x4 // KindFloat represents a 4-byte little-endian IEEE-754 float.
	KindDouble  Kind = 0x5 // KindDouble represents an 8-byte little-endian IEEE-754 float.
	KindBoolean Kind = 0x6 // KindBoolean represents a single byte boolean.
	KindBytes   Kind = 0x7 // KindBytes represents length-prefixed raw bytes.
	KindString  Kind = 0x8 // KindString represents a length-prefixed UTF-8 string.
	KindUint64  Kind = 0x9 // KindUint64 represents an unsigned 64-bit integer stored as 8 raw bytes.
	KindInt64   Kind = 0xA // KindInt64 represents a signed 64-bit integer stored as 8 raw bytes.

	KindFixed Kind = 0x10 // KindFixed represents a named fixed-size byte array.
	KindMap   Kind = 0x11 // KindMap represents a block-encoded map with string keys.
)

var kindNames = map[Kind]string{
	KindNull:    "null",
	KindInt:     "int",
	KindLong:    "long",
	KindFloat:   "float",
	KindDouble:  "double",
	KindBoolean: "boolean",
	KindBytes:   "bytes",
	KindString:  "string",
	KindUint64:  "uint64_t",
	KindInt64:   "int64_t",
	KindFixed:   "fixed",
	KindMap:     "map",
}

var primitiveKinds = map[string]Kind{
	"null":     KindNull,
	"int":      KindInt,
	"long":     KindLong,
	"float":    KindFloat,
	"double":   KindDouble,
	"boolean":  KindBoolean,
	"bytes":    KindBytes,
	"string":   KindString,
	"uint64_t": KindUint64,
	"int64_t":  KindInt64,
}

// String returns the schema token for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// IsPrimitive reports whether k is one of the primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k >= KindNull && k <= KindInt64
}

// FixedWidth returns the number of raw bytes a primitive kind occupies on the wire,
// or 0 for variable-length kinds.
func (k Kind) FixedWidth() int {
	switch k { //nolint: exhaustive
	case KindFloat:
		return 4
	case KindDouble, KindUint64, KindInt64:
		return 8
	case KindBoolean:
		return 1
	default:
		return 0
	}
}

// ParsePrimitive maps a primitive type token such as "long" or "uint64_t" to its Kind.
func ParsePrimitive(token string) (Kind, bool) {
	k, ok := primitiveKinds[token]
	return k, ok
}
