// Package schema models the record schemas the decoder is bound to.
//
// Only the subset needed for flat metric records is modeled: a top-level record
// whose fields are primitives, named fixed types, maps with primitive values, or
// unions of those. Two integer extensions are recognized as primitives, uint64_t
// and int64_t, both carried as 8 raw little-endian bytes.
//
//	{
//	  "type": "record", "name": "ut", "namespace": "vnoportal",
//	  "fields": [
//	    {"name": "timestamp", "type": ["long", "int"]},
//	    {"name": "metric",    "type": "string"},
//	    {"name": "tags",      "type": ["null", {"type": "map", "values": "string"}]}
//	  ]
//	}
//
// A parsed *Schema is immutable and may be shared by any number of decoders. The
// Registry maps the 4-byte ids of registry-framed messages to schemas.
package schema
