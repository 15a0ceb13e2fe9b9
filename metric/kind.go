package metric

// numClass groups union branches by the decode operation that reads them.
type numClass uint8

const (
	classLong numClass = iota
	classInt
	classFloat
	classDouble
	classUnsigned
	classSigned
)

// TimestampKind identifies the timestamp union branch. Its value is the branch index.
type TimestampKind uint8

const (
	TimestampLong TimestampKind = iota
	TimestampInt
	TimestampFloat
	TimestampDouble
	TimestampUint64
	TimestampInt64
)

var timestampClasses = [...]numClass{
	TimestampLong:   classLong,
	TimestampInt:    classInt,
	TimestampFloat:  classFloat,
	TimestampDouble: classDouble,
	TimestampUint64: classUnsigned,
	TimestampInt64:  classSigned,
}

var timestampNames = [...]string{
	TimestampLong:   "long",
	TimestampInt:    "int",
	TimestampFloat:  "float",
	TimestampDouble: "double",
	TimestampUint64: "uint64_t",
	TimestampInt64:  "int64_t",
}

func (k TimestampKind) String() string {
	if int(k) < len(timestampNames) {
		return timestampNames[k]
	}

	return "unknown"
}

// ValueKind identifies the value union branch. Its value is the branch index.
type ValueKind uint8

const (
	ValueLong ValueKind = iota
	ValueInt
	ValueFloat
	ValueDouble
	ValueUint8
	ValueUint16
	ValueUint32
	ValueUint64
	ValueInt8
	ValueInt16
	ValueInt32
	ValueInt64
)

var valueClasses = [...]numClass{
	ValueLong:   classLong,
	ValueInt:    classInt,
	ValueFloat:  classFloat,
	ValueDouble: classDouble,
	ValueUint8:  classUnsigned,
	ValueUint16: classUnsigned,
	ValueUint32: classUnsigned,
	ValueUint64: classUnsigned,
	ValueInt8:   classSigned,
	ValueInt16:  classSigned,
	ValueInt32:  classSigned,
	ValueInt64:  classSigned,
}

var valueNames = [...]string{
	ValueLong:   "long",
	ValueInt:    "int",
	ValueFloat:  "float",
	ValueDouble: "double",
	ValueUint8:  "uint8_t",
	ValueUint16: "uint16_t",
	ValueUint32: "uint32_t",
	ValueUint64: "uint64_t",
	ValueInt8:   "int8_t",
	ValueInt16:  "int16_t",
	ValueInt32:  "int32_t",
	ValueInt64:  "int64_t",
}

func (k ValueKind) String() string {
	if int(k) < len(valueNames) {
		return valueNames[k]
	}

	return "unknown"
}
