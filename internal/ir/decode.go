package ir

import "math"

// Decode classifies a raw schema node. Precedence: anyOf, oneOf, allOf, enum,
// const, then the declared or inferred type.
func Decode(raw map[string]any) Node {
	for _, kw := range []string{"anyOf", "oneOf"} {
		if vs := schemaList(raw[kw]); len(vs) > 0 {
			return &Union{Keyword: kw, Variants: vs}
		}
	}
	if parts := schemaList(raw["allOf"]); len(parts) > 0 {
		return &AllOf{Parts: parts}
	}
	if vs, ok := raw["enum"].([]any); ok && len(vs) > 0 {
		return &Enum{Values: vs}
	}
	if v, ok := raw["const"]; ok {
		return &Const{Value: v}
	}

	switch t := raw["type"].(type) {
	case string:
		return decodeTyped(t, raw)
	case []any:
		names := make([]string, 0, len(t))
		for _, n := range t {
			if s, ok := n.(string); ok && s != "" {
				names = append(names, s)
			}
		}
		switch len(names) {
		case 0:
		case 1:
			return decodeTyped(names[0], raw)
		default:
			return &TypeChoice{Types: names, Base: raw}
		}
	}
	return decodeTyped(InferType(raw), raw)
}

// InferType guesses a type for a node without an explicit one.
func InferType(raw map[string]any) string {
	if has(raw, "properties") || has(raw, "additionalProperties") {
		return "object"
	}
	if has(raw, "items") {
		return "array"
	}
	if has(raw, "format") {
		return "string"
	}
	if has(raw, "minimum") || has(raw, "maximum") {
		return "number"
	}
	return "string"
}

func decodeTyped(name string, raw map[string]any) Node {
	switch name {
	case "object":
		return decodeObject(raw)
	case "array":
		return &Array{
			Items:    AsSchema(raw["items"]),
			MinItems: intPtr(raw["minItems"]),
			MaxItems: intPtr(raw["maxItems"]),
		}
	case "null", "boolean", "integer", "number", "string":
	default:
		// unknown type names degrade to string
		name = "string"
	}
	format, _ := raw["format"].(string)
	pattern, _ := raw["pattern"].(string)
	return &Primitive{
		Name:       name,
		Format:     format,
		Minimum:    floatPtr(raw["minimum"]),
		Maximum:    floatPtr(raw["maximum"]),
		MultipleOf: floatPtr(raw["multipleOf"]),
		MinLength:  intPtr(raw["minLength"]),
		MaxLength:  intPtr(raw["maxLength"]),
		Pattern:    pattern,
	}
}

func decodeObject(raw map[string]any) *Object {
	o := &Object{Required: map[string]struct{}{}}
	if pm, ok := raw["properties"].(map[string]any); ok {
		o.Fields = make([]Field, 0, len(pm))
		for name, ps := range pm {
			o.Fields = append(o.Fields, Field{Name: name, Schema: AsSchema(ps)})
		}
		sortFields(o.Fields)
	}
	if req, ok := raw["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				o.Required[s] = struct{}{}
			}
		}
	}
	switch ap := raw["additionalProperties"].(type) {
	case bool:
		if ap {
			o.Additional = AdditionalAny
		}
	case map[string]any:
		o.Additional = AdditionalSchema
		o.AdditionalItem = ap
	}
	return o
}

// AsSchema returns v when it is an object node and an empty schema otherwise.
func AsSchema(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func schemaList(v any) []map[string]any {
	xs, ok := v.([]any)
	if !ok || len(xs) == 0 {
		return nil
	}
	out := make([]map[string]any, len(xs))
	for i, x := range xs {
		out[i] = AsSchema(x)
	}
	return out
}

func has(raw map[string]any, key string) bool {
	_, ok := raw[key]
	return ok
}

func floatPtr(v any) *float64 {
	f, ok := ToFloat(v)
	if !ok {
		return nil
	}
	return &f
}

func intPtr(v any) *int {
	f, ok := ToFloat(v)
	if !ok {
		return nil
	}
	n := int(math.Floor(f))
	return &n
}

// ToFloat extracts a finite float from decoded JSON/YAML numbers.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case interface{ Float64() (float64, error) }: // json.Number
		x, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
