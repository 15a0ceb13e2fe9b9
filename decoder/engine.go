package decoder

import (
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/arloliu/avroscan/encoding"
	"github.com/arloliu/avroscan/endian"
	"github.com/arloliu/avroscan/errs"
	"github.com/arloliu/avroscan/format"
	"github.com/arloliu/avroscan/internal/options"
	"github.com/arloliu/avroscan/schema"
)

// pendingValue describes the value the engine expects next for the current field.
type pendingValue struct {
	field    *schema.Field
	typ      schema.FieldType
	active   bool // a value is still owed for the current field
	resolved bool // typ is known: single-type field or union tag already read
	tagRead  bool
}

// drainer is an in-progress map or sequence iteration.
type drainer interface {
	drain() error
	exhausted() bool
}

// Engine decodes one record by walking a schema and a byte buffer in lockstep.
//
// The engine is forward-only: fields are visited in schema order, each decode
// consumes bytes from the cursor and nothing is ever re-read. Every operation
// checks the schema before trusting the bytes, and any failure leaves the engine at
// an indeterminate offset; the only recovery is a fresh decode from the start of the
// buffer.
//
// Byte slices returned by the engine alias the input buffer.
//
// Note: Engine is NOT thread-safe. The schema may be shared between engines.
type Engine struct {
	schema  *schema.Schema
	cur     encoding.Cursor
	cfg     Config
	log     *slog.Logger
	fields  fieldCursor
	entered bool
	pending pendingValue
	iter    drainer
	mapIter MapIter
	seqIter SeqIter
	engine  endian.EndianEngine
}

// New creates an engine bound to s that decodes buf.
//
// Parameters:
//   - s: Schema the buffer was written with, shared read-only
//   - buf: Record bytes; returned slices alias it
//   - opts: Optional configuration (logger, framing skip, validation)
//
// Returns:
//   - *Engine: Engine positioned before the record
//   - error: Invalid option, nil schema, or a skip beyond the buffer
func New(s *schema.Schema, buf []byte, opts ...Option) (*Engine, error) {
	e := &Engine{}
	if err := e.reset(s, buf, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) reset(s *schema.Schema, buf []byte, opts ...Option) error {
	if s == nil {
		return fmt.Errorf("%w: nil schema", errs.ErrSchema)
	}

	e.cfg.reset()
	if err := options.Apply(&e.cfg, opts...); err != nil {
		return err
	}

	e.schema = s
	e.log = e.cfg.logger
	e.cur.Reset(buf)
	e.fields.reset(0)
	e.entered = false
	e.pending = pendingValue{}
	e.iter = nil
	e.engine = endian.GetLittleEndianEngine()

	if e.cfg.skip > 0 {
		if err := e.cur.Skip(e.cfg.skip); err != nil {
			return err
		}
	}

	return nil
}

// Schema returns the schema the engine is bound to.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// Offset returns the number of bytes consumed, including any initial skip.
func (e *Engine) Offset() int {
	return e.cur.Offset()
}

// Remaining returns the number of unread bytes.
func (e *Engine) Remaining() int {
	return e.cur.Len()
}

// Done reports whether every field has been visited and no value is pending.
func (e *Engine) Done() bool {
	return e.entered &&
		e.fields.visited() == e.fields.limit &&
		!e.pending.active &&
		(e.iter == nil || e.iter.exhausted())
}

// EnterRecord starts decoding the record. expected is the number of fields the
// caller's target declares; it must equal the schema's field count.
func (e *Engine) EnterRecord(expected int) error {
	if e.entered {
		return fmt.Errorf("%w: record already entered", errs.ErrInvalidState)
	}
	if n := e.schema.NumFields(); expected != n {
		return fmt.Errorf("%w: target declares %d fields, schema %s has %d",
			errs.ErrFieldCountMismatch, expected, e.schema.FullName(), n)
	}

	return e.enter(expected)
}

// EnterRecordPrefix starts decoding only the first n fields of the record. It is
// meant for diagnostic targets that read a leading subset of the schema.
func (e *Engine) EnterRecordPrefix(n int) error {
	if e.entered {
		return fmt.Errorf("%w: record already entered", errs.ErrInvalidState)
	}
	if total := e.schema.NumFields(); n <= 0 || n > total {
		return fmt.Errorf("%w: prefix of %d fields, schema %s has %d",
			errs.ErrFieldCountMismatch, n, e.schema.FullName(), total)
	}

	return e.enter(n)
}

func (e *Engine) enter(limit int) error {
	e.entered = true
	e.fields.reset(limit)

	if e.log != nil {
		e.log.Debug("enter record", "schema", e.schema.FullName(), "fields", limit, "offset", e.cur.Offset())
	}

	return nil
}

// NextFieldName advances to the next field and returns its name.
//
// A map or sequence iteration left unfinished on the previous field is drained
// first. Advancing past the last field fails with errs.ErrFieldCountMismatch.
func (e *Engine) NextFieldName() (string, error) {
	if !e.entered {
		return "", fmt.Errorf("%w: record not entered", errs.ErrInvalidState)
	}
	if err := e.drainActive(); err != nil {
		return "", err
	}

	idx, ok := e.fields.advance()
	if !ok {
		return "", fmt.Errorf("%w: no field after index %d of %s", errs.ErrFieldCountMismatch, idx, e.schema.FullName())
	}

	f := &e.schema.Fields[idx]
	e.pending = pendingValue{field: f, active: true}
	if !f.IsUnion() {
		e.pending.typ = f.Types[0]
		e.pending.resolved = true
	}

	if e.log != nil {
		e.log.Debug("field", "index", idx, "name", f.Name, "offset", e.cur.Offset())
	}

	return f.Name, nil
}

// CurrentField returns the field being decoded.
func (e *Engine) CurrentField() (*schema.Field, error) {
	if !e.entered {
		return nil, fmt.Errorf("%w: record not entered", errs.ErrInvalidState)
	}

	idx, ok := e.fields.current()
	if !ok {
		return nil, fmt.Errorf("%w: no current field", errs.ErrInvalidState)
	}

	return &e.schema.Fields[idx], nil
}

// DecodeUnionTag reads the branch index of the current field's union and resolves
// the expected type to that branch. A tag outside [0, len(types)) is reported as
// *errs.UnionTagError.
func (e *Engine) DecodeUnionTag() (int, error) {
	if err := e.checkTaggable(); err != nil {
		return 0, err
	}

	f := e.pending.field
	start := e.cur.Offset()

	tag, err := e.cur.ReadVarint()
	if err != nil {
		return 0, err
	}
	if tag < 0 || tag >= int64(len(f.Types)) {
		return 0, &errs.UnionTagError{Field: f.Name, Tag: tag, Max: len(f.Types)}
	}

	e.pending.typ = f.Types[tag]
	e.pending.resolved = true
	e.pending.tagRead = true

	if e.log != nil {
		e.log.Debug("union", "field", f.Name, "tag", tag, "type", e.pending.typ.String(), "offset", start)
	}

	return int(tag), nil
}

// DecodeOptional resolves a two-branch union holding null. It returns false when the
// null branch is selected, in which case the value is complete and nothing else
// may be read for the field. It returns true when the other branch is selected and
// its value must be decoded next.
//
// A field whose union does not have exactly two branches fails with
// errs.ErrNotAnOptionField before any byte is read.
func (e *Engine) DecodeOptional() (bool, error) {
	f, err := e.CurrentField()
	if err != nil {
		return false, err
	}
	if len(f.Types) != 2 {
		return false, fmt.Errorf("%w: field %q has %d types", errs.ErrNotAnOptionField, f.Name, len(f.Types))
	}

	if _, err := e.DecodeUnionTag(); err != nil {
		return false, err
	}
	if e.pending.typ.IsNull() {
		e.consume()
		return false, nil
	}

	return true, nil
}

// DecodeEnumVariant reads a union tag for a target that models the union as a sum
// type. Exactly one decode of the selected branch's type must follow.
func (e *Engine) DecodeEnumVariant() (int, error) {
	return e.DecodeUnionTag()
}

// DecodeNull consumes a pending null value. No bytes are read.
func (e *Engine) DecodeNull() error {
	if _, err := e.expect(format.KindNull); err != nil {
		return err
	}
	e.consume()

	return nil
}

// DecodeInt decodes an int, rejecting values outside the 32-bit range.
func (e *Engine) DecodeInt() (int32, error) {
	if _, err := e.expect(format.KindInt); err != nil {
		return 0, err
	}

	v, err := e.readInt()
	if err != nil {
		return 0, err
	}
	e.consume()

	return v, nil
}

// DecodeLong decodes a long.
func (e *Engine) DecodeLong() (int64, error) {
	if _, err := e.expect(format.KindLong); err != nil {
		return 0, err
	}

	v, err := e.cur.ReadVarint()
	if err != nil {
		return 0, err
	}
	e.consume()

	return v, nil
}

// DecodeFloat decodes a float.
func (e *Engine) DecodeFloat() (float32, error) {
	if _, err := e.expect(format.KindFloat); err != nil {
		return 0, err
	}

	v, err := e.cur.ReadFloat32()
	if err != nil {
		return 0, err
	}
	e.consume()

	return v, nil
}

// DecodeDouble decodes a double.
func (e *Engine) DecodeDouble() (float64, error) {
	if _, err := e.expect(format.KindDouble); err != nil {
		return 0, err
	}

	v, err := e.cur.ReadFloat64()
	if err != nil {
		return 0, err
	}
	e.consume()

	return v, nil
}

// DecodeBoolean decodes a boolean.
func (e *Engine) DecodeBoolean() (bool, error) {
	if _, err := e.expect(format.KindBoolean); err != nil {
		return false, err
	}

	v, err := e.cur.ReadBoolean()
	if err != nil {
		return false, err
	}
	e.consume()

	return v, nil
}

// DecodeBytes decodes a bytes or string value without validating its content.
func (e *Engine) DecodeBytes() ([]byte, error) {
	if _, err := e.expect(format.KindBytes, format.KindString); err != nil {
		return nil, err
	}

	v, err := e.cur.ReadBytes()
	if err != nil {
		return nil, err
	}
	e.consume()

	return v, nil
}

// DecodeString decodes a string value. With WithUTF8Validation, invalid UTF-8 fails
// with errs.ErrInvalidUTF8.
func (e *Engine) DecodeString() ([]byte, error) {
	if _, err := e.expect(format.KindString); err != nil {
		return nil, err
	}

	v, err := e.readString()
	if err != nil {
		return nil, err
	}
	e.consume()

	return v, nil
}

// DecodeFixed returns the raw bytes of a fixed value: the declared size of a fixed
// type, or 8 bytes for uint64_t and int64_t.
func (e *Engine) DecodeFixed() ([]byte, error) {
	typ, err := e.expect(format.KindFixed, format.KindUint64, format.KindInt64)
	if err != nil {
		return nil, err
	}

	v, err := e.cur.ReadFixed(fixedSize(typ))
	if err != nil {
		return nil, err
	}
	e.consume()

	return v, nil
}

// DecodeUint64 decodes an unsigned little-endian integer stored as raw bytes: a
// uint64_t, or a fixed type 1, 2, 4 or 8 bytes wide.
func (e *Engine) DecodeUint64() (uint64, error) {
	b, err := e.fixedInteger(format.KindUint64)
	if err != nil {
		return 0, err
	}

	v, _ := endian.Uint(e.engine, b)
	e.consume()

	return v, nil
}

// DecodeInt64Fixed decodes a signed little-endian integer stored as raw bytes: an
// int64_t, or a fixed type 1, 2, 4 or 8 bytes wide, sign-extended.
func (e *Engine) DecodeInt64Fixed() (int64, error) {
	b, err := e.fixedInteger(format.KindInt64)
	if err != nil {
		return 0, err
	}

	v, _ := endian.Int(e.engine, b)
	e.consume()

	return v, nil
}

// DecodeValue decodes whatever primitive or fixed value is pending. Maps must be
// read with DecodeMap or DecodeSequence.
func (e *Engine) DecodeValue() (Value, error) {
	typ, err := e.expect(
		format.KindNull, format.KindInt, format.KindLong, format.KindFloat, format.KindDouble,
		format.KindBoolean, format.KindBytes, format.KindString,
		format.KindUint64, format.KindInt64, format.KindFixed,
	)
	if err != nil {
		return Value{}, err
	}

	v := Value{Type: typ}

	switch typ.Kind { //nolint: exhaustive
	case format.KindNull:
	case format.KindInt:
		i, err := e.readInt()
		if err != nil {
			return Value{}, err
		}
		v.Int = int64(i)
	case format.KindLong:
		if v.Int, err = e.cur.ReadVarint(); err != nil {
			return Value{}, err
		}
	case format.KindFloat:
		f, err := e.cur.ReadFloat32()
		if err != nil {
			return Value{}, err
		}
		v.Float = float64(f)
	case format.KindDouble:
		if v.Float, err = e.cur.ReadFloat64(); err != nil {
			return Value{}, err
		}
	case format.KindBoolean:
		if v.Bool, err = e.cur.ReadBoolean(); err != nil {
			return Value{}, err
		}
	case format.KindBytes:
		if v.Bytes, err = e.cur.ReadBytes(); err != nil {
			return Value{}, err
		}
	case format.KindString:
		if v.Bytes, err = e.readString(); err != nil {
			return Value{}, err
		}
	default:
		if v.Bytes, err = e.cur.ReadFixed(fixedSize(typ)); err != nil {
			return Value{}, err
		}
		if u, ok := endian.Uint(e.engine, v.Bytes); ok {
			v.Uint = u
			v.Int, _ = endian.Int(e.engine, v.Bytes)
		}
	}

	e.consume()

	return v, nil
}

// SkipValue consumes the pending value of the current field, whatever its type. An
// unresolved union has its tag read first. It is a no-op when nothing is pending.
func (e *Engine) SkipValue() error {
	if !e.entered {
		return fmt.Errorf("%w: record not entered", errs.ErrInvalidState)
	}
	if err := e.drainActive(); err != nil {
		return err
	}
	if !e.pending.active {
		return nil
	}
	if !e.pending.resolved {
		if _, err := e.DecodeUnionTag(); err != nil {
			return err
		}
	}

	typ := e.pending.typ
	switch typ.Kind { //nolint: exhaustive
	case format.KindMap:
		return e.skipMap()
	case format.KindNull:
		e.consume()
		return nil
	case format.KindInt, format.KindLong:
		if _, err := e.cur.ReadVarint(); err != nil {
			return err
		}
	case format.KindBytes, format.KindString:
		if _, err := e.cur.ReadBytes(); err != nil {
			return err
		}
	case format.KindFixed, format.KindUint64, format.KindInt64:
		if err := e.cur.Skip(fixedSize(typ)); err != nil {
			return err
		}
	default:
		if err := e.cur.Skip(typ.Kind.FixedWidth()); err != nil {
			return err
		}
	}

	e.consume()

	return nil
}

// skipMap consumes the rest of a map value. After a known-length sequence only the
// remaining blocks and the terminator are left, which DecodeMap reads the same way.
func (e *Engine) skipMap() error {
	it, err := e.DecodeMap()
	if err != nil {
		return err
	}

	return e.finishIter(it)
}

func (e *Engine) finishIter(it drainer) error {
	if err := it.drain(); err != nil {
		return err
	}
	e.iter = nil

	return nil
}

// Finish ends the record. It drains an unfinished iteration, then fails with
// errs.ErrFieldCountMismatch when fields were left unvisited or a value was left
// undecoded. With WithStrict, unread input fails with errs.ErrTrailingBytes.
func (e *Engine) Finish() error {
	if !e.entered {
		return fmt.Errorf("%w: record not entered", errs.ErrInvalidState)
	}
	if err := e.drainActive(); err != nil {
		return err
	}

	if e.pending.active {
		return fmt.Errorf("%w: value of field %q was not decoded", errs.ErrFieldCountMismatch, e.pending.field.Name)
	}
	if visited := e.fields.visited(); visited != e.fields.limit {
		return fmt.Errorf("%w: decoded %d of %d fields of %s",
			errs.ErrFieldCountMismatch, visited, e.fields.limit, e.schema.FullName())
	}
	if e.cfg.strict && e.cur.Len() > 0 {
		return fmt.Errorf("%w: %d bytes at offset %d", errs.ErrTrailingBytes, e.cur.Len(), e.cur.Offset())
	}

	if e.log != nil {
		e.log.Debug("finish record", "schema", e.schema.FullName(), "offset", e.cur.Offset())
	}

	return nil
}

// expect returns the pending type when its kind is one of kinds.
func (e *Engine) expect(kinds ...format.Kind) (schema.FieldType, error) {
	if !e.entered {
		return schema.FieldType{}, fmt.Errorf("%w: record not entered", errs.ErrInvalidState)
	}
	if e.iter != nil && !e.iter.exhausted() {
		return schema.FieldType{}, fmt.Errorf("%w: map iteration in progress", errs.ErrInvalidState)
	}

	p := &e.pending
	if !p.active {
		return schema.FieldType{}, fmt.Errorf("%w: no pending value", errs.ErrUnsupportedTypeRequested)
	}
	if !p.resolved {
		return schema.FieldType{}, fmt.Errorf("%w: union branch of field %q not resolved",
			errs.ErrUnsupportedTypeRequested, p.field.Name)
	}

	for _, k := range kinds {
		if p.typ.Kind == k {
			return p.typ, nil
		}
	}

	return schema.FieldType{}, fmt.Errorf("%w: field %q requested %s, schema declares %s",
		errs.ErrUnsupportedTypeRequested, p.field.Name, kinds[0], p.typ)
}

// checkTaggable verifies that a union tag may be read for the current field.
func (e *Engine) checkTaggable() error {
	f, err := e.CurrentField()
	if err != nil {
		return err
	}
	if e.iter != nil && !e.iter.exhausted() {
		return fmt.Errorf("%w: map iteration in progress", errs.ErrInvalidState)
	}
	if !e.pending.active || e.pending.tagRead {
		return fmt.Errorf("%w: union tag of field %q already read", errs.ErrInvalidState, f.Name)
	}

	return nil
}

// fixedInteger reads the raw bytes of a fixed-width integer of the given kind.
func (e *Engine) fixedInteger(kind format.Kind) ([]byte, error) {
	typ, err := e.expect(kind, format.KindFixed)
	if err != nil {
		return nil, err
	}
	if typ.Kind == format.KindFixed {
		switch typ.Size {
		case 1, 2, 4, 8:
		default:
			return nil, fmt.Errorf("%w: field %q fixed size %d is not an integer width",
				errs.ErrUnsupportedTypeRequested, e.pending.field.Name, typ.Size)
		}
	}

	return e.cur.ReadFixed(fixedSize(typ))
}

func (e *Engine) readInt() (int32, error) {
	start := e.cur.Offset()

	v, err := e.cur.ReadVarint()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d at offset %d", errs.ErrIntOutOfRange, v, start)
	}

	return int32(v), nil
}

func (e *Engine) readString() ([]byte, error) {
	start := e.cur.Offset()

	v, err := e.cur.ReadString()
	if err != nil {
		return nil, err
	}
	if e.cfg.validateUTF8 && !utf8.Valid(v) {
		return nil, fmt.Errorf("%w: at offset %d", errs.ErrInvalidUTF8, start)
	}

	return v, nil
}

// readBlockCount reads a map block count. A negative count has its sign stripped and,
// with WithBlockByteSize, is followed by a byte size that is read and checked.
func (e *Engine) readBlockCount() (int64, error) {
	start := e.cur.Offset()

	n, err := e.cur.ReadVarint()
	if err != nil {
		return 0, err
	}

	if n < 0 {
		if n == math.MinInt64 {
			return 0, fmt.Errorf("%w: block count %d at offset %d", errs.ErrNegativeLength, n, start)
		}
		n = -n

		if e.cfg.blockByteSize {
			size, err := e.cur.ReadVarint()
			if err != nil {
				return 0, err
			}
			if size < 0 {
				return 0, fmt.Errorf("%w: block size %d at offset %d", errs.ErrNegativeLength, size, start)
			}
			if size > int64(e.cur.Len()) {
				return 0, fmt.Errorf("%w: block size %d at offset %d, have %d",
					errs.ErrBufferUnderrun, size, start, e.cur.Len())
			}
		}
	}

	if e.log != nil {
		e.log.Debug("map block", "field", e.pending.field.Name, "count", n, "offset", start)
	}

	return n, nil
}

// readPair reads one key/value pair of a string or bytes map.
func (e *Engine) readPair() (key, value []byte, err error) {
	if key, err = e.readString(); err != nil {
		return nil, nil, err
	}
	if e.pending.typ.Values == format.KindString {
		value, err = e.readString()
	} else {
		value, err = e.cur.ReadBytes()
	}
	if err != nil {
		return nil, nil, err
	}

	return key, value, nil
}

// mapType checks that the pending value is a map of strings or bytes.
func (e *Engine) mapType() error {
	typ, err := e.expect(format.KindMap)
	if err != nil {
		return err
	}
	if typ.Values != format.KindString && typ.Values != format.KindBytes {
		return fmt.Errorf("%w: field %q map values of type %s", errs.ErrUnsupportedTypeRequested, e.pending.field.Name, typ.Values)
	}

	return nil
}

// drainActive finishes an iteration left open by the caller. A failed iteration
// keeps failing.
func (e *Engine) drainActive() error {
	if e.iter == nil {
		return nil
	}

	return e.finishIter(e.iter)
}

func (e *Engine) consume() {
	e.pending.active = false
}

func fixedSize(typ schema.FieldType) int {
	if typ.Kind == format.KindFixed {
		return typ.Size
	}

	return 8
}
