package source_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/mockskema/source"
)

func TestJSON_Object(t *testing.T) {
	v, err := source.JSON([]byte(`{"type":"object","properties":{"n":{"type":"integer","maximum":12}},"required":["n"],"x":[true,null,"s"]}`))
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", m["type"])
	assert.Equal(t, []any{"n"}, m["required"])
	assert.Equal(t, []any{true, nil, "s"}, m["x"])

	n := m["properties"].(map[string]any)["n"].(map[string]any)
	assert.Equal(t, "12", fmt.Sprint(n["maximum"]))
}

func TestJSON_Scalar(t *testing.T) {
	v, err := source.JSON([]byte(`"not an object"`))
	require.NoError(t, err)
	assert.Equal(t, "not an object", v)
}

func TestJSON_DuplicateKey(t *testing.T) {
	_, err := source.JSON([]byte(`{"properties":{"a":{},"a":{}}}`))
	var dup *source.DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "a", dup.Key)
	assert.Equal(t, "/properties", dup.Path)
}

func TestJSON_Malformed(t *testing.T) {
	for _, in := range []string{``, `{"a":`, `{"a":1} {"b":2}`, `[1,2`} {
		_, err := source.JSON([]byte(in))
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestJSONReader(t *testing.T) {
	v, err := source.JSONReader(strings.NewReader(" [1, {\"a\": []}] \n"))
	require.NoError(t, err)
	arr := v.([]any)
	require.Len(t, arr, 2)
	assert.Equal(t, map[string]any{"a": []any{}}, arr[1])
}

const yamlSchema = `
type: object
properties:
  id: {type: integer, minimum: 1, maximum: 5}
  ratio: {type: number, maximum: 0.5}
  tag:
    enum: [a, b, ~]
required: [id]
additionalProperties: false
`

func TestYAML_Object(t *testing.T) {
	v, err := source.YAML([]byte(yamlSchema))
	require.NoError(t, err)
	m := v.(map[string]any)
	props := m["properties"].(map[string]any)
	assert.Equal(t, int64(5), props["id"].(map[string]any)["maximum"])
	assert.Equal(t, 0.5, props["ratio"].(map[string]any)["maximum"])
	assert.Equal(t, []any{"a", "b", nil}, props["tag"].(map[string]any)["enum"])
	assert.Equal(t, false, m["additionalProperties"])
}

func TestYAML_DuplicateKey(t *testing.T) {
	_, err := source.YAML([]byte("type: object\nproperties:\n  a: {}\n  a: {}\n"))
	var dup *source.DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "a", dup.Key)
	assert.Equal(t, "/properties", dup.Path)
	assert.Equal(t, 3, dup.FirstLine)
	assert.Equal(t, 4, dup.Line)
}

func TestYAML_Anchors(t *testing.T) {
	v, err := source.YAML([]byte("defs: &s {type: string}\nitems: *s\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, v.(map[string]any)["items"])
}

func TestLoad_PicksDecoderByExtension(t *testing.T) {
	v, err := source.Load("schema.YML", []byte("type: string\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "string"}, v)

	_, err = source.Load("schema.json", []byte("type: string\n"))
	assert.Error(t, err)
}
