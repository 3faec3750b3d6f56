package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML decodes the first document of a YAML stream into JSON-like values
// (map[string]any, []any, string, bool, int64, float64, nil). Duplicate
// mapping keys are rejected with *DuplicateKeyError.
func YAML(b []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("source: empty YAML document")
		}
		return nil, fmt.Errorf("source: invalid YAML: %w", err)
	}
	return nodeToValue(&root, nil)
}

func nodeToValue(n *yaml.Node, path []string) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0], path)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		return nodeToValue(n.Alias, path)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{
					Key: key, Path: pointer(path),
					FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column,
				}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := nodeToValue(v, append(path, escape(key)))
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeToValue(c, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(n), nil
	default:
		return nil, nil
	}
}

func scalar(n *yaml.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		// int64 avoids overflow surprises; callers can coerce later
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return i
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return n.Value
}
