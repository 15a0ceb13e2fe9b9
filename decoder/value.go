package decoder

import (
	"github.com/arloliu/avroscan/format"
	"github.com/arloliu/avroscan/schema"
)

// Value is a decoded primitive or fixed value tagged with its schema type.
//
// Only the members matching Type are set:
//   - int, long: Int
//   - float, double: Float
//   - boolean: Bool
//   - bytes, string: Bytes
//   - uint64_t, int64_t, fixed: Bytes, plus Uint and the sign-extended Int for
//     widths 1, 2, 4 and 8
type Value struct {
	Type  schema.FieldType
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Bytes []byte
}

// IsNull reports whether the value is the null branch.
func (v Value) IsNull() bool {
	return v.Type.Kind == format.KindNull
}
