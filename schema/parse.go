package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/arloliu/avroscan/errs"
	"github.com/arloliu/avroscan/format"
)

type rawSchema struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Namespace string     `json:"namespace"`
	Fields    []rawField `json:"fields"`
}

type rawField struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

type rawType struct {
	Type   string          `json:"type"`
	Name   string          `json:"name"`
	Size   *int            `json:"size"`
	Values json.RawMessage `json:"values"`
}

// Parse parses a record schema from JSON text. YAML is accepted as well since every
// JSON document is valid YAML.
//
// The top-level type must be "record" with a name and a non-empty field list. A
// field type is a primitive token, an object (fixed, map, or the object form of a
// primitive), or an array of those declaring a union. Any other construct is
// rejected with an error wrapping errs.ErrSchema.
func Parse(text []byte) (*Schema, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(text, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSchema, err)
	}

	if raw.Type != "record" {
		return nil, fmt.Errorf("%w: top-level type must be \"record\", got %q", errs.ErrSchema, raw.Type)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("%w: record name is required", errs.ErrSchema)
	}
	if len(raw.Fields) == 0 {
		return nil, fmt.Errorf("%w: record %q has no fields", errs.ErrSchema, raw.Name)
	}

	s := &Schema{
		Type:      raw.Type,
		Name:      raw.Name,
		Namespace: raw.Namespace,
		Fields:    make([]Field, 0, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for i, rf := range raw.Fields {
		if rf.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", errs.ErrSchema, i)
		}
		if _, dup := seen[rf.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", errs.ErrSchema, rf.Name)
		}
		seen[rf.Name] = struct{}{}

		types, err := parseFieldTypes(rf.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", errs.ErrSchema, rf.Name, err)
		}

		s.Fields = append(s.Fields, Field{Name: rf.Name, Types: types})
	}

	return s, nil
}

// ParseString is Parse for a string.
func ParseString(text string) (*Schema, error) {
	return Parse([]byte(text))
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// MustParse is like ParseString but panics on error. It is meant for package-level
// schema variables.
func MustParse(text string) *Schema {
	s, err := ParseString(text)
	if err != nil {
		panic(err)
	}

	return s
}

// parseFieldTypes collapses the one-or-many form of a field type into a list.
func parseFieldTypes(msg json.RawMessage) ([]FieldType, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || bytes.Equal(msg, []byte("null")) {
		return nil, errors.New("missing type")
	}

	if msg[0] != '[' {
		t, err := parseType(msg)
		if err != nil {
			return nil, err
		}

		return []FieldType{t}, nil
	}

	var branches []json.RawMessage
	if err := json.Unmarshal(msg, &branches); err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, errors.New("empty union")
	}

	types := make([]FieldType, 0, len(branches))
	for i, b := range branches {
		if bytes.HasPrefix(bytes.TrimSpace(b), []byte("[")) {
			return nil, fmt.Errorf("branch %d: nested union", i)
		}

		t, err := parseType(b)
		if err != nil {
			return nil, fmt.Errorf("branch %d: %w", i, err)
		}
		types = append(types, t)
	}

	return types, nil
}

// parseType parses a single type token or object.
func parseType(msg json.RawMessage) (FieldType, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return FieldType{}, errors.New("missing type")
	}

	switch msg[0] {
	case '"':
		var token string
		if err := json.Unmarshal(msg, &token); err != nil {
			return FieldType{}, err
		}

		return parseToken(token)
	case '{':
		var obj rawType
		if err := json.Unmarshal(msg, &obj); err != nil {
			return FieldType{}, err
		}

		return parseObject(obj)
	default:
		return FieldType{}, fmt.Errorf("unsupported type %s", msg)
	}
}

func parseToken(token string) (FieldType, error) {
	kind, ok := format.ParsePrimitive(token)
	if !ok {
		return FieldType{}, fmt.Errorf("unknown type %q", token)
	}

	return Primitive(kind), nil
}

func parseObject(obj rawType) (FieldType, error) {
	switch obj.Type {
	case "fixed":
		if obj.Name == "" {
			return FieldType{}, errors.New("fixed type has no name")
		}
		if obj.Size == nil || *obj.Size <= 0 {
			return FieldType{}, fmt.Errorf("fixed %q needs a positive size", obj.Name)
		}

		return Fixed(obj.Name, *obj.Size), nil
	case "map":
		if len(obj.Values) == 0 {
			return FieldType{}, errors.New("map type has no values")
		}

		values, err := parseType(obj.Values)
		if err != nil {
			return FieldType{}, fmt.Errorf("map values: %w", err)
		}
		if !values.Kind.IsPrimitive() {
			return FieldType{}, fmt.Errorf("map values must be primitive, got %s", values)
		}

		return Map(values.Kind), nil
	case "record", "array", "enum", "union":
		return FieldType{}, fmt.Errorf("type %q is not supported", obj.Type)
	default:
		return parseToken(obj.Type)
	}
}
