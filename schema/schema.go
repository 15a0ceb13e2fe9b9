package schema

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/avroscan/format"
	"github.com/arloliu/avroscan/internal/hash"
)

// FieldType is one candidate type of a field: a primitive, a named fixed, or a map.
//
// FieldType is comparable; two types are equal when all their members are equal,
// so the null branch of an optional field is found with t == Primitive(format.KindNull).
type FieldType struct {
	// Kind is the schema type.
	Kind format.Kind
	// Name is the declared name of a fixed type, empty otherwise.
	Name string
	// Size is the byte width of a fixed type, zero otherwise.
	Size int
	// Values is the value kind of a map type, zero otherwise.
	Values format.Kind
}

// Primitive returns the FieldType for a primitive kind.
func Primitive(kind format.Kind) FieldType {
	return FieldType{Kind: kind}
}

// Fixed returns the FieldType for a named fixed type of size bytes.
func Fixed(name string, size int) FieldType {
	return FieldType{Kind: format.KindFixed, Name: name, Size: size}
}

// Map returns the FieldType for a map whose values have the given kind.
func Map(values format.Kind) FieldType {
	return FieldType{Kind: format.KindMap, Values: values}
}

// Equal reports whether t and other are structurally equal.
func (t FieldType) Equal(other FieldType) bool {
	return t == other
}

// IsNull reports whether t is the null primitive.
func (t FieldType) IsNull() bool {
	return t == Primitive(format.KindNull)
}

// String returns a compact description such as "long", "fixed(uint16_t,2)" or "map<string>".
func (t FieldType) String() string {
	switch t.Kind { //nolint: exhaustive
	case format.KindFixed:
		return fmt.Sprintf("fixed(%s,%d)", t.Name, t.Size)
	case format.KindMap:
		return fmt.Sprintf("map<%s>", t.Values)
	default:
		return t.Kind.String()
	}
}

// MarshalJSON writes t in schema text form.
func (t FieldType) MarshalJSON() ([]byte, error) {
	switch t.Kind { //nolint: exhaustive
	case format.KindFixed:
		return json.Marshal(struct {
			Type string `json:"type"`
			Name string `json:"name"`
			Size int    `json:"size"`
		}{"fixed", t.Name, t.Size})
	case format.KindMap:
		return json.Marshal(struct {
			Type   string `json:"type"`
			Values string `json:"values"`
		}{"map", t.Values.String()})
	default:
		return json.Marshal(t.Kind.String())
	}
}

// Field is one record field. Types holds the candidate types in declaration order
// and always has at least one element; a field with several types is a union whose
// wire discriminant indexes Types.
type Field struct {
	Name  string
	Types []FieldType
}

// IsUnion reports whether the field declares more than one type.
func (f *Field) IsUnion() bool {
	return len(f.Types) > 1
}

// IsOptional reports whether the field is a two-branch union with a null branch.
func (f *Field) IsOptional() bool {
	return f.NullIndex() >= 0 && len(f.Types) == 2
}

// NullIndex returns the index of the null branch, or -1 when there is none.
func (f *Field) NullIndex() int {
	for i, t := range f.Types {
		if t.IsNull() {
			return i
		}
	}

	return -1
}

// MarshalJSON writes f in schema text form, a plain type for single-type fields and
// an array for unions.
func (f Field) MarshalJSON() ([]byte, error) {
	var typ any = f.Types
	if len(f.Types) == 1 {
		typ = f.Types[0]
	}

	return json.Marshal(struct {
		Name string `json:"name"`
		Type any    `json:"type"`
	}{f.Name, typ})
}

// Schema is a parsed record schema.
//
// A Schema is immutable once returned by Parse: decoders on many goroutines may
// share one *Schema without synchronization. Callers must not modify its fields.
type Schema struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Namespace string  `json:"namespace,omitempty"`
	Fields    []Field `json:"fields"`
}

// FullName returns the namespace-qualified record name.
func (s *Schema) FullName() string {
	if s.Namespace == "" {
		return s.Name
	}

	return s.Namespace + "." + s.Name
}

// NumFields returns the number of declared fields.
func (s *Schema) NumFields() int {
	return len(s.Fields)
}

// Field returns the field at position i.
func (s *Schema) Field(i int) (*Field, bool) {
	if i < 0 || i >= len(s.Fields) {
		return nil, false
	}

	return &s.Fields[i], true
}

// FieldIndex returns the position of the field called name, or -1.
func (s *Schema) FieldIndex(name string) int {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return i
		}
	}

	return -1
}

// Canonical returns the schema re-serialized as compact JSON. Formatting, key order
// and unmodeled attributes of the source text do not affect it.
func (s *Schema) Canonical() string {
	b, err := json.Marshal(s)
	if err != nil {
		// Every member has a deterministic JSON form; this cannot fail.
		panic(fmt.Sprintf("schema: canonical form of %s: %v", s.FullName(), err))
	}

	return string(b)
}

// Fingerprint returns the xxHash64 of the canonical form.
func (s *Schema) Fingerprint() uint64 {
	return hash.ID(s.Canonical())
}
