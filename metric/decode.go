package metric

import (
	"fmt"

	"github.com/arloliu/avroscan/decoder"
	"github.com/arloliu/avroscan/frame"
	"github.com/arloliu/avroscan/schema"
)

// Decode decodes a full metric record from an unframed payload.
//
// The returned record aliases payload.
func Decode(payload []byte, opts ...decoder.Option) (Record, error) {
	var r Record
	if _, err := decoder.Decode(Schema, payload, &r, opts...); err != nil {
		return Record{}, err
	}

	return r, nil
}

// DecodeSafe decodes only the leading fields of a metric record.
//
// Returns:
//   - SafeRecord: The timestamp, metric name and value
//   - int: Offset just past the value field
//   - error: Decode error, if any
func DecodeSafe(payload []byte, opts ...decoder.Option) (SafeRecord, int, error) {
	var r SafeRecord
	off, err := decoder.Decode(Schema, payload, &r, opts...)
	if err != nil {
		return SafeRecord{}, off, err
	}

	return r, off, nil
}

// DecodeFramed decodes a registry-framed message. The schema id in the frame header
// is resolved through reg, and the record is decoded with the registered schema.
//
// Parameters:
//   - reg: Registry holding the writer schemas
//   - msg: Framed message, header included
//   - opts: Engine options
//
// Returns:
//   - Record: The decoded record, aliasing msg
//   - error: Framing, lookup or decode error
func DecodeFramed(reg *schema.Registry, msg []byte, opts ...decoder.Option) (Record, error) {
	h, payload, err := frame.Parse(msg)
	if err != nil {
		return Record{}, err
	}

	s, err := reg.Lookup(h.SchemaID)
	if err != nil {
		return Record{}, err
	}

	var r Record
	if _, err := decoder.Decode(s, payload, &r, opts...); err != nil {
		return Record{}, fmt.Errorf("schema %d: %w", h.SchemaID, err)
	}

	return r, nil
}

// Diagnose decodes payload as a full record and, when that fails, decodes it again
// as a SafeRecord to find how far the well-formed leading fields reach.
//
// Returns:
//   - SafeRecord: Leading fields of the record
//   - int: Offset reached: the end of the record on success, or the end of the
//     leading fields when the full decode failed
//   - error: nil on success; the full decode error when the leading fields decoded
//     cleanly; the safe decode error otherwise
func Diagnose(payload []byte, opts ...decoder.Option) (SafeRecord, int, error) {
	var full Record
	off, fullErr := decoder.Decode(Schema, payload, &full, opts...)
	if fullErr == nil {
		return SafeRecord{Timestamp: full.Timestamp, Metric: full.Metric, Value: full.Value}, off, nil
	}

	safe, off, err := DecodeSafe(payload, append(opts[:len(opts):len(opts)], decoder.WithStrict(false))...)
	if err != nil {
		return SafeRecord{}, off, err
	}

	return safe, off, fullErr
}
