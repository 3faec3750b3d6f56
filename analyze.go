package mockskema

import "github.com/reoring/mockskema/internal/ir"

// Stats summarizes a schema for display. Generation does not consume it.
type Stats struct {
	Nodes          int            `json:"nodes" yaml:"nodes"`
	Properties     int            `json:"properties" yaml:"properties"`
	Required       int            `json:"required" yaml:"required"`
	MaxDepth       int            `json:"maxDepth" yaml:"maxDepth"`
	Types          map[string]int `json:"types" yaml:"types"`
	Formats        map[string]int `json:"formats,omitempty" yaml:"formats,omitempty"`
	HasComposition bool           `json:"hasComposition" yaml:"hasComposition"`
	HasRefs        bool           `json:"hasRefs" yaml:"hasRefs"`
}

// Analyze walks every reachable node of schema. Nodes are classified by the
// same precedence Generate uses, so an enum with a type counts as "enum".
func Analyze(schema any) (Stats, error) {
	root, err := asObject(schema)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Types: map[string]int{}, Formats: map[string]int{}}
	walkSchema(root, RootPath(), 0, func(node map[string]any, _ PathRef, depth int) bool {
		st.Nodes++
		st.MaxDepth = max(st.MaxDepth, depth)
		if _, ok := node["$ref"]; ok {
			st.HasRefs = true
		}
		switch n := ir.Decode(node).(type) {
		case *ir.Union:
			st.HasComposition = true
			st.Types[n.Keyword]++
		case *ir.AllOf:
			st.HasComposition = true
			st.Types[n.Kind().String()]++
		case *ir.Enum, *ir.Const, *ir.TypeChoice:
			st.Types[n.Kind().String()]++
		case *ir.Array:
			st.Types["array"]++
		case *ir.Object:
			st.Types["object"]++
			st.Properties += len(n.Fields)
			for _, f := range n.Fields {
				if n.IsRequired(f.Name) {
					st.Required++
				}
			}
		case *ir.Primitive:
			st.Types[n.Name]++
			if n.Format != "" {
				st.Formats[n.Format]++
			}
		}
		return true
	})
	return st, nil
}
