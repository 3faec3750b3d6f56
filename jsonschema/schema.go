package jsonschema

import "fmt"

// Schema is a typed form of the JSON Schema subset the generator reads.
// Callers can hand it to mockskema.Generate instead of a decoded map.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`

	// Literals. A nil Const is omitted, so const:null needs the map form.
	Enum  []any `json:"enum,omitempty"`
	Const any   `json:"const,omitempty"`

	// Number
	Minimum    *float64 `json:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty"`
	MultipleOf *float64 `json:"multipleOf,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"` // bool or *Schema

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`
}

// ToMap converts s into the decoded-JSON form the generator walks. Enum and
// Const values are kept as given; numbers become float64 or int.
func (s *Schema) ToMap() (map[string]any, error) {
	return s.toMap("")
}

func (s *Schema) toMap(path string) (map[string]any, error) {
	if s == nil {
		return map[string]any{}, nil
	}
	m := map[string]any{}
	setString(m, "type", s.Type)
	setString(m, "format", s.Format)
	setString(m, "description", s.Description)
	setString(m, "$ref", s.Ref)
	setString(m, "pattern", s.Pattern)

	if len(s.Enum) > 0 {
		m["enum"] = append([]any(nil), s.Enum...)
	}
	if s.Const != nil {
		m["const"] = s.Const
	}

	setFloat(m, "minimum", s.Minimum)
	setFloat(m, "maximum", s.Maximum)
	setFloat(m, "multipleOf", s.MultipleOf)
	setInt(m, "minLength", s.MinLength)
	setInt(m, "maxLength", s.MaxLength)
	setInt(m, "minItems", s.MinItems)
	setInt(m, "maxItems", s.MaxItems)

	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, ps := range s.Properties {
			pm, err := ps.toMap(path + "/properties/" + name)
			if err != nil {
				return nil, err
			}
			props[name] = pm
		}
		m["properties"] = props
	}
	if len(s.Required) > 0 {
		req := make([]any, len(s.Required))
		for i, r := range s.Required {
			req[i] = r
		}
		m["required"] = req
	}

	switch ap := s.AdditionalProperties.(type) {
	case nil:
	case bool:
		m["additionalProperties"] = ap
	case *Schema:
		am, err := ap.toMap(path + "/additionalProperties")
		if err != nil {
			return nil, err
		}
		m["additionalProperties"] = am
	case Schema:
		am, err := ap.toMap(path + "/additionalProperties")
		if err != nil {
			return nil, err
		}
		m["additionalProperties"] = am
	case map[string]any:
		m["additionalProperties"] = ap
	default:
		return nil, fmt.Errorf("jsonschema: additionalProperties at %s must be bool or *Schema, got %T", pointer(path), ap)
	}

	if s.Items != nil {
		im, err := s.Items.toMap(path + "/items")
		if err != nil {
			return nil, err
		}
		m["items"] = im
	}

	for _, c := range []struct {
		key  string
		list []*Schema
	}{{"anyOf", s.AnyOf}, {"oneOf", s.OneOf}, {"allOf", s.AllOf}} {
		if len(c.list) == 0 {
			continue
		}
		out := make([]any, len(c.list))
		for i, sub := range c.list {
			sm, err := sub.toMap(fmt.Sprintf("%s/%s/%d", path, c.key, i))
			if err != nil {
				return nil, err
			}
			out[i] = sm
		}
		m[c.key] = out
	}
	return m, nil
}

func setString(m map[string]any, key, v string) {
	if v != "" {
		m[key] = v
	}
}

func setFloat(m map[string]any, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

func setInt(m map[string]any, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func String() *Schema  { return &Schema{Type: "string"} }
func Integer() *Schema { return &Schema{Type: "integer"} }
func Number() *Schema  { return &Schema{Type: "number"} }
func Boolean() *Schema { return &Schema{Type: "boolean"} }
func Null() *Schema    { return &Schema{Type: "null"} }

// Format returns a string schema with the given format.
func Format(format string) *Schema { return &Schema{Type: "string", Format: format} }

// Range returns a numeric schema of the given type bounded by [min, max].
func Range(typ string, min, max float64) *Schema {
	return &Schema{Type: typ, Minimum: &min, Maximum: &max}
}

// Array returns an array schema with the given item schema.
func Array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Object returns an object schema with the given properties and required names.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: properties, Required: required}
}

// Enum returns a schema with enumerated values.
func Enum(values ...any) *Schema { return &Schema{Enum: values} }

// AnyOf returns a schema selecting one of the given variants.
func AnyOf(variants ...*Schema) *Schema { return &Schema{AnyOf: variants} }

// Ptr returns a pointer to v, for the optional numeric fields.
func Ptr[T any](v T) *T { return &v }
