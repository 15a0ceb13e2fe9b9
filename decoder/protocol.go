package decoder

import (
	"github.com/arloliu/avroscan/internal/pool"
	"github.com/arloliu/avroscan/schema"
)

// Protocol is the decode surface a binding drives: one method per decode shape.
// *Engine implements it.
type Protocol interface {
	EnterRecord(expected int) error
	EnterRecordPrefix(n int) error
	NextFieldName() (string, error)
	CurrentField() (*schema.Field, error)

	DecodeUnionTag() (int, error)
	DecodeOptional() (bool, error)
	DecodeEnumVariant() (int, error)

	DecodeMap() (*MapIter, error)
	DecodeBlockCount() (int, error)
	DecodeSequence(n int) (*SeqIter, error)

	DecodeNull() error
	DecodeInt() (int32, error)
	DecodeLong() (int64, error)
	DecodeFloat() (float32, error)
	DecodeDouble() (float64, error)
	DecodeBoolean() (bool, error)
	DecodeBytes() ([]byte, error)
	DecodeString() ([]byte, error)
	DecodeFixed() ([]byte, error)
	DecodeUint64() (uint64, error)
	DecodeInt64Fixed() (int64, error)
	DecodeValue() (Value, error)

	SkipValue() error
	Offset() int
}

var _ Protocol = (*Engine)(nil)

// Unmarshaler is implemented by targets that decode themselves from a Protocol.
// UnmarshalAvro must enter the record and visit its fields in schema order.
type Unmarshaler interface {
	UnmarshalAvro(p Protocol) error
}

var enginePool = pool.New(
	func() *Engine { return &Engine{} },
	func(e *Engine) { *e = Engine{} },
)

// Acquire returns a pooled engine bound to s and buf. Hand it back with Release once
// no slice obtained from it is needed through the engine anymore.
func Acquire(s *schema.Schema, buf []byte, opts ...Option) (*Engine, error) {
	e := enginePool.Get()
	if err := e.reset(s, buf, opts...); err != nil {
		enginePool.Put(e)
		return nil, err
	}

	return e, nil
}

// Release returns an engine obtained from Acquire to the pool. The engine must not
// be used afterwards. Slices it returned stay valid since they alias the caller's
// buffer.
func Release(e *Engine) {
	if e == nil {
		return
	}
	enginePool.Put(e)
}

// Decode decodes buf into target and checks that the whole record was consumed by
// calling Finish. It returns the offset reached, which locates the failure when an
// error is returned.
func Decode(s *schema.Schema, buf []byte, target Unmarshaler, opts ...Option) (int, error) {
	e, err := Acquire(s, buf, opts...)
	if err != nil {
		return 0, err
	}
	defer Release(e)

	if err := target.UnmarshalAvro(e); err != nil {
		return e.Offset(), err
	}
	if err := e.Finish(); err != nil {
		return e.Offset(), err
	}

	return e.Offset(), nil
}
