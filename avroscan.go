// Package avroscan decodes Avro binary records against a writer schema without
// building a generic value tree.
//
// A record is decoded by a binding that walks the schema's fields in order and asks
// the engine for exactly the value each field holds. Decoded strings, bytes and map
// entries alias the input buffer, so decoding a record allocates only what the
// binding itself keeps.
//
// # Core Features
//
//   - Zig-zag varints, length-prefixed bytes and strings, IEEE-754 floats and fixed types
//   - Unions resolved by tag, optional fields, block-encoded maps with early termination
//   - Fixed-width unsigned and signed integer types (uint8_t .. int64_t)
//   - Schema registry framing and an id-to-schema registry
//   - Pooled engines and a parallel batch decoder
//
// # Basic Usage
//
// Decoding a framed metric record:
//
//	import "github.com/arloliu/avroscan"
//
//	reg := schema.NewRegistry()
//	reg.Register(618, metric.Schema)
//
//	r, err := metric.DecodeFramed(reg, msg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(string(r.Metric), avroscan.MetricID(string(r.Metric)) == r.ID())
//
// Driving the engine directly:
//
//	s, _ := avroscan.ParseSchema(schemaText)
//	e, _ := avroscan.NewDecoder(s, payload)
//	e.EnterRecord(s.NumFields())
//	name, _ := e.NextFieldName()
//	v, _ := e.DecodeLong()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the schema, decoder and
// metric packages. For fine-grained control, use those packages directly.
package avroscan

import (
	"github.com/arloliu/avroscan/decoder"
	"github.com/arloliu/avroscan/internal/hash"
	"github.com/arloliu/avroscan/metric"
	"github.com/arloliu/avroscan/schema"
)

// ParseSchema parses schema text in JSON or YAML form.
//
// Parameters:
//   - text: The record schema
//
// Returns:
//   - *schema.Schema: The parsed schema, safe to share between goroutines
//   - error: errs.ErrSchema wrapped with the offending field, if invalid
func ParseSchema(text string) (*schema.Schema, error) {
	return schema.ParseString(text)
}

// NewDecoder creates a decode engine bound to s and buf.
//
// Parameters:
//   - s: Writer schema of the record in buf
//   - buf: Record payload, without registry framing unless decoder.WithSkip is given
//   - opts: Optional configuration functions (see decoder.Option)
//
// Returns:
//   - *decoder.Engine: The engine positioned at the first byte of the record
//   - error: An error if s is nil or an option is invalid
//
// Available options:
//   - decoder.WithLogger(logger)
//   - decoder.WithBlockByteSize(true|false)
//   - decoder.WithUTF8Validation(true|false)
//   - decoder.WithStrict(true|false)
//   - decoder.WithSkip(n)
func NewDecoder(s *schema.Schema, buf []byte, opts ...decoder.Option) (*decoder.Engine, error) {
	return decoder.New(s, buf, opts...)
}

// DecodeMetric decodes an unframed metric record.
//
// The returned record aliases payload.
func DecodeMetric(payload []byte, opts ...decoder.Option) (metric.Record, error) {
	return metric.Decode(payload, opts...)
}

// MetricID computes the xxHash64 id of a metric name. It equals metric.Record.ID for
// a record carrying that name.
func MetricID(name string) uint64 {
	return hash.ID(name)
}
