package metric

import "github.com/arloliu/avroscan/schema"

// SchemaText is the writer schema of metric records.
const SchemaText = `{
  "type": "record",
  "name": "ut",
  "namespace": "vnoportal",
  "fields": [
    {
      "name": "timestamp",
      "type": [
        "long",
        "int",
        "float",
        "double",
        {"type": "fixed", "name": "uint64_t", "size": 8},
        {"type": "fixed", "name": "int64_t", "size": 8}
      ]
    },
    {
      "name": "metric",
      "type": "string"
    },
    {
      "name": "value",
      "type": [
        "long",
        "int",
        "float",
        "double",
        {"type": "fixed", "name": "uint8_t", "size": 1},
        {"type": "fixed", "name": "uint16_t", "size": 2},
        {"type": "fixed", "name": "uint32_t", "size": 4},
        "uint64_t",
        {"type": "fixed", "name": "int8_t", "size": 1},
        {"type": "fixed", "name": "int16_t", "size": 2},
        {"type": "fixed", "name": "int32_t", "size": 4},
        "int64_t"
      ]
    },
    {
      "name": "tags",
      "type": ["null", {"type": "map", "values": "string"}]
    },
    {
      "name": "metadata",
      "type": ["null", {"type": "map", "values": "string"}]
    }
  ]
}`

const (
	// NumFields is the number of fields in a full metric record.
	NumFields = 5
	// NumSafeFields is the number of leading fields decoded by SafeRecord.
	NumSafeFields = 3
)

// Schema is the parsed SchemaText.
var Schema = schema.MustParse(SchemaText)
