package mockskema

import "sort"

// visitFunc is called for every reachable schema node. depth counts the
// properties/items/additionalProperties steps taken from the root. Returning
// false stops descent below node.
type visitFunc func(node map[string]any, p PathRef, depth int) bool

// walkSchema visits node and every sub-schema generation can reach, in a
// stable order. Schemas are assumed to be trees, as decoded JSON/YAML always is.
func walkSchema(node map[string]any, p PathRef, depth int, fn visitFunc) {
	if !fn(node, p, depth) {
		return
	}
	if pm, ok := node["properties"].(map[string]any); ok {
		pp := p.Field("properties")
		for _, name := range sortedKeys(pm) {
			if sub, ok := pm[name].(map[string]any); ok {
				walkSchema(sub, pp.Field(name), depth+1, fn)
			}
		}
	}
	switch it := node["items"].(type) {
	case map[string]any:
		walkSchema(it, p.Field("items"), depth+1, fn)
	case []any:
		ip := p.Field("items")
		for i, x := range it {
			if sub, ok := x.(map[string]any); ok {
				walkSchema(sub, ip.Index(i), depth+1, fn)
			}
		}
	}
	if ap, ok := node["additionalProperties"].(map[string]any); ok {
		walkSchema(ap, p.Field("additionalProperties"), depth+1, fn)
	}
	for _, kw := range []string{"anyOf", "oneOf", "allOf"} {
		xs, ok := node[kw].([]any)
		if !ok {
			continue
		}
		kp := p.Field(kw)
		for i, x := range xs {
			if sub, ok := x.(map[string]any); ok {
				walkSchema(sub, kp.Index(i), depth, fn)
			}
		}
	}
}

// findRef returns the first reachable node declaring $ref.
func findRef(root map[string]any) *UnsupportedFeatureError {
	var found *UnsupportedFeatureError
	walkSchema(root, RootPath(), 0, func(node map[string]any, p PathRef, _ int) bool {
		if found != nil {
			return false
		}
		if _, ok := node["$ref"]; ok {
			found = &UnsupportedFeatureError{Feature: "$ref", Path: p.Pointer()}
			return false
		}
		return true
	})
	return found
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
