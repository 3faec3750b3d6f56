package jsonschema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap_Object(t *testing.T) {
	s := Object(map[string]*Schema{
		"id":   Range("integer", 1, 5),
		"mail": Format("email"),
		"tags": Array(Enum("a", "b")),
	}, "id")
	s.AdditionalProperties = false

	m, err := s.ToMap()
	require.NoError(t, err)
	assert.Equal(t, "object", m["type"])
	assert.Equal(t, []any{"id"}, m["required"])

	props, ok := m["properties"].(map[string]any)
	require.True(t, ok)
	id, ok := props["id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", fmt.Sprint(id["minimum"]))

	tags := props["tags"].(map[string]any)
	assert.Equal(t, []any{"a", "b"}, tags["items"].(map[string]any)["enum"])
}

func TestToMap_OmitsEmpty(t *testing.T) {
	m, err := String().ToMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, m)
}

func TestToMap_AdditionalSchema(t *testing.T) {
	s := &Schema{Type: "object", AdditionalProperties: Boolean(), MinLength: Ptr(2)}
	m, err := s.ToMap()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "boolean"}, m["additionalProperties"])
	assert.Equal(t, "2", fmt.Sprint(m["minLength"]))
}

func TestToMap_KeepsNestedEnumAndComposition(t *testing.T) {
	s := &Schema{
		Type:  "array",
		Items: Enum("a", "b", "c"),
		AnyOf: []*Schema{{Const: map[string]any{"k": 1}}, {Ref: "#/x"}},
		AllOf: []*Schema{Array(AnyOf(Enum(1, 2), Null()))},
	}
	m, err := s.ToMap()
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b", "c"}, m["items"].(map[string]any)["enum"])
	anyOf := m["anyOf"].([]any)
	require.Len(t, anyOf, 2)
	assert.Equal(t, map[string]any{"k": 1}, anyOf[0].(map[string]any)["const"])
	assert.Equal(t, "#/x", anyOf[1].(map[string]any)["$ref"])

	inner := m["allOf"].([]any)[0].(map[string]any)["items"].(map[string]any)["anyOf"].([]any)
	assert.Equal(t, []any{1, 2}, inner[0].(map[string]any)["enum"])
	assert.Equal(t, map[string]any{"type": "null"}, inner[1])
}

func TestToMap_RejectsBadAdditionalProperties(t *testing.T) {
	s := Object(map[string]*Schema{
		"child": {Type: "object", AdditionalProperties: "yes"},
	})
	_, err := s.ToMap()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/properties/child/additionalProperties")
}
