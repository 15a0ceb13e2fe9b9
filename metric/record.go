package metric

import (
	"bytes"
	"fmt"

	"github.com/arloliu/avroscan/decoder"
	"github.com/arloliu/avroscan/errs"
	"github.com/arloliu/avroscan/internal/hash"
)

// number holds a decoded numeric branch. Only the member matching the branch's
// class is set: Int for long, int and signed fixed integers, Uint for unsigned fixed
// integers, Float for float and double.
type number struct {
	Int   int64
	Uint  uint64
	Float float64
}

// Timestamp is the decoded timestamp union.
type Timestamp struct {
	Kind TimestampKind
	number
}

// Int64 returns the timestamp converted to int64, truncating floating point branches.
func (t Timestamp) Int64() int64 {
	return t.asInt64(timestampClasses[t.Kind])
}

// Value is the decoded value union.
type Value struct {
	Kind ValueKind
	number
}

// Float64 returns the value converted to float64.
func (v Value) Float64() float64 {
	return v.asFloat64(valueClasses[v.Kind])
}

func (n number) asInt64(c numClass) int64 {
	switch c {
	case classFloat, classDouble:
		return int64(n.Float)
	case classUnsigned:
		return int64(n.Uint) //nolint: gosec
	default:
		return n.Int
	}
}

func (n number) asFloat64(c numClass) float64 {
	switch c {
	case classFloat, classDouble:
		return n.Float
	case classUnsigned:
		return float64(n.Uint)
	default:
		return float64(n.Int)
	}
}

// Tags is a decoded string map in wire order. It is nil when the union selected null.
type Tags []decoder.Pair

// Len returns the number of entries.
func (t Tags) Len() int {
	return len(t)
}

// Get returns the value stored under key. When a key repeats, the last entry wins.
func (t Tags) Get(key string) ([]byte, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if string(t[i].Key) == key {
			return t[i].Value, true
		}
	}

	return nil, false
}

// Map projects the entries into a Go map. It returns nil for nil Tags.
func (t Tags) Map() map[string]string {
	if t == nil {
		return nil
	}

	m := make(map[string]string, len(t))
	for _, p := range t {
		m[string(p.Key)] = string(p.Value)
	}

	return m
}

func (t Tags) clone() Tags {
	if t == nil {
		return nil
	}

	out := make(Tags, len(t))
	for i, p := range t {
		out[i] = decoder.Pair{Key: bytes.Clone(p.Key), Value: bytes.Clone(p.Value)}
	}

	return out
}

// Record is a decoded metric record.
//
// Metric and the entries of Tags and Metadata alias the decoded buffer. Use Clone
// to keep a record beyond the buffer's lifetime.
type Record struct {
	Timestamp Timestamp
	Metric    []byte
	Value     Value
	Tags      Tags
	Metadata  Tags
}

// ID returns the xxHash64 of the metric name.
func (r *Record) ID() uint64 {
	return hash.Sum(r.Metric)
}

// Clone returns a deep copy of r that shares no memory with the decoded buffer.
func (r *Record) Clone() Record {
	return Record{
		Timestamp: r.Timestamp,
		Metric:    bytes.Clone(r.Metric),
		Value:     r.Value,
		Tags:      r.Tags.clone(),
		Metadata:  r.Metadata.clone(),
	}
}

// UnmarshalAvro decodes all five fields of a metric record.
func (r *Record) UnmarshalAvro(d decoder.Protocol) error {
	if err := d.EnterRecord(NumFields); err != nil {
		return err
	}

	var err error
	if r.Timestamp, r.Metric, r.Value, err = decodeHead(d); err != nil {
		return err
	}
	if r.Tags, err = decodeTags(d); err != nil {
		return err
	}
	r.Metadata, err = decodeTags(d)

	return err
}

// SafeRecord holds the leading fields of a metric record, which every producer
// writes the same way. It is used to locate where a full decode went wrong.
type SafeRecord struct {
	Timestamp Timestamp
	Metric    []byte
	Value     Value
}

// UnmarshalAvro decodes the first three fields of a metric record and ignores the rest.
func (r *SafeRecord) UnmarshalAvro(d decoder.Protocol) error {
	if err := d.EnterRecordPrefix(NumSafeFields); err != nil {
		return err
	}

	var err error
	r.Timestamp, r.Metric, r.Value, err = decodeHead(d)

	return err
}

func decodeHead(d decoder.Protocol) (ts Timestamp, metric []byte, v Value, err error) {
	if _, err = d.NextFieldName(); err != nil {
		return ts, nil, v, err
	}
	tag, err := d.DecodeUnionTag()
	if err != nil {
		return ts, nil, v, err
	}
	if tag >= len(timestampClasses) {
		return ts, nil, v, &errs.UnionTagError{Field: "timestamp", Tag: int64(tag), Max: len(timestampClasses)}
	}
	ts.Kind = TimestampKind(tag)
	if ts.number, err = decodeNumber(d, timestampClasses[tag]); err != nil {
		return ts, nil, v, err
	}

	if _, err = d.NextFieldName(); err != nil {
		return ts, nil, v, err
	}
	if metric, err = d.DecodeString(); err != nil {
		return ts, nil, v, err
	}

	if _, err = d.NextFieldName(); err != nil {
		return ts, metric, v, err
	}
	if tag, err = d.DecodeUnionTag(); err != nil {
		return ts, metric, v, err
	}
	if tag >= len(valueClasses) {
		return ts, metric, v, &errs.UnionTagError{Field: "value", Tag: int64(tag), Max: len(valueClasses)}
	}
	v.Kind = ValueKind(tag)
	v.number, err = decodeNumber(d, valueClasses[tag])

	return ts, metric, v, err
}

func decodeNumber(d decoder.Protocol, c numClass) (number, error) {
	var (
		n   number
		err error
	)

	switch c {
	case classLong:
		n.Int, err = d.DecodeLong()
	case classInt:
		var i int32
		i, err = d.DecodeInt()
		n.Int = int64(i)
	case classFloat:
		var f float32
		f, err = d.DecodeFloat()
		n.Float = float64(f)
	case classDouble:
		n.Float, err = d.DecodeDouble()
	case classUnsigned:
		n.Uint, err = d.DecodeUint64()
	case classSigned:
		n.Int, err = d.DecodeInt64Fixed()
	default:
		err = fmt.Errorf("%w: numeric class %d", errs.ErrUnsupportedTypeRequested, c)
	}

	return n, err
}

func decodeTags(d decoder.Protocol) (Tags, error) {
	if _, err := d.NextFieldName(); err != nil {
		return nil, err
	}

	ok, err := d.DecodeOptional()
	if err != nil || !ok {
		return nil, err
	}

	it, err := d.DecodeMap()
	if err != nil {
		return nil, err
	}
	pairs, err := it.Collect()
	if err != nil {
		return nil, err
	}

	return Tags(pairs), nil
}
