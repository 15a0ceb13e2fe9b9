// Package metric decodes vnoportal.ut metric records.
//
// A metric record carries a timestamp and a value, each a union of numeric
// encodings, a metric name and two optional string maps:
//
//	r, err := metric.Decode(payload)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(string(r.Metric), r.Timestamp.Int64(), r.Value.Float64())
//	for _, tag := range r.Tags {
//	    fmt.Printf("%s=%s\n", tag.Key, tag.Value)
//	}
//
// Messages read from a topic carry the schema registry framing; DecodeFramed strips
// it and resolves the writer schema through a schema.Registry.
//
// When some producer writes a malformed record, Diagnose reports how far the leading
// fields decode so the bad bytes can be located.
package metric
