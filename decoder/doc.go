// Package decoder implements the schema-bound decode engine.
//
// An Engine binds a byte cursor to a parsed schema and keeps the current field and
// the current byte offset in step. A binding drives it field by field in schema
// order and picks, for each field, the decode operation matching the declared
// type: a primitive decode, DecodeOptional for nullable fields, DecodeUnionTag or
// DecodeEnumVariant for unions, DecodeMap or DecodeSequence for maps.
//
//	e, err := decoder.New(s, payload)
//	if err != nil {
//	    return err
//	}
//	if err := e.EnterRecord(2); err != nil {
//	    return err
//	}
//
//	e.NextFieldName()                // "timestamp": ["long", "int"]
//	switch tag, _ := e.DecodeUnionTag(); tag {
//	case 0:
//	    ts, _ := e.DecodeLong()
//	case 1:
//	    ts, _ := e.DecodeInt()
//	}
//
//	e.NextFieldName()                // "tags": ["null", {"type": "map", "values": "string"}]
//	if ok, _ := e.DecodeOptional(); ok {
//	    it, _ := e.DecodeMap()
//	    for key, value := range it.All() {
//	        ...
//	    }
//	}
//	err = e.Finish()
//
// # Type checking
//
// After NextFieldName the engine knows which types the field may hold. For a
// single-type field the value can be decoded at once; for a union the branch must
// first be resolved with DecodeUnionTag, DecodeOptional or DecodeEnumVariant. A
// decode that does not match the resolved type, or that is issued when no value is
// pending, fails with errs.ErrUnsupportedTypeRequested without reading anything.
//
// # Maps
//
// Maps are block-encoded: a zig-zag count, that many key/value pairs, repeated until
// a zero count. A zero byte where a key would start is also taken as the end of the
// map. Map entries are returned in wire order as aliased byte slices; projecting them
// into a Go map is up to the binding.
//
// # Errors
//
// No error is recovered inside the engine. After a failure the offset is
// indeterminate and the record must be decoded again from the start.
package decoder
