package ir

// Package ir defines the tagged variant a raw schema node is decoded into
// before generation. This package is internal and not part of the public API.

import "sort"

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodeUnion NodeKind = iota
	NodeAllOf
	NodeEnum
	NodeConst
	NodeTypeChoice
	NodePrimitive
	NodeArray
	NodeObject
)

func (k NodeKind) String() string {
	switch k {
	case NodeUnion:
		return "union"
	case NodeAllOf:
		return "allOf"
	case NodeEnum:
		return "enum"
	case NodeConst:
		return "const"
	case NodeTypeChoice:
		return "typeChoice"
	case NodePrimitive:
		return "primitive"
	case NodeArray:
		return "array"
	case NodeObject:
		return "object"
	}
	return "unknown"
}

// Node is the root IR node interface.
type Node interface {
	Kind() NodeKind
}

// Union is anyOf/oneOf: exactly one variant is generated.
type Union struct {
	Keyword  string // "anyOf" or "oneOf"
	Variants []map[string]any
}

func (u *Union) Kind() NodeKind { return NodeUnion }

// AllOf is a list of sub-schemas merged shallowly before generation.
type AllOf struct {
	Parts []map[string]any
}

func (a *AllOf) Kind() NodeKind { return NodeAllOf }

// Merged folds Parts left to right; later keys overwrite earlier ones.
func (a *AllOf) Merged() map[string]any {
	out := make(map[string]any)
	for _, p := range a.Parts {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}

// Enum picks one of Values.
type Enum struct {
	Values []any
}

func (e *Enum) Kind() NodeKind { return NodeEnum }

// Const yields Value verbatim.
type Const struct {
	Value any
}

func (c *Const) Kind() NodeKind { return NodeConst }

// TypeChoice is a node whose "type" lists several names. One is drawn and
// Base is re-decoded with that single type.
type TypeChoice struct {
	Types []string
	Base  map[string]any
}

func (t *TypeChoice) Kind() NodeKind { return NodeTypeChoice }

// With returns a copy of Base whose type is name.
func (t *TypeChoice) With(name string) map[string]any {
	out := make(map[string]any, len(t.Base))
	for k, v := range t.Base {
		out[k] = v
	}
	out["type"] = name
	return out
}

// Primitive covers null/boolean/integer/number/string.
type Primitive struct {
	Name       string // JSON Schema type name
	Format     string
	Minimum    *float64
	Maximum    *float64
	MultipleOf *float64
	MinLength  *int
	MaxLength  *int
	Pattern    string // accepted, never used to shape output
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Array represents an array of items.
type Array struct {
	Items    map[string]any
	MinItems *int
	MaxItems *int
}

func (a *Array) Kind() NodeKind { return NodeArray }

// AdditionalPolicy says what happens beyond declared properties.
type AdditionalPolicy int

const (
	AdditionalNone AdditionalPolicy = iota
	AdditionalAny
	AdditionalSchema
)

// Object represents an object with fields and policies.
type Object struct {
	Fields     []Field // sorted by Name
	Required   map[string]struct{}
	Additional AdditionalPolicy
	// AdditionalItem is set when Additional is AdditionalSchema.
	AdditionalItem map[string]any
}

func (o *Object) Kind() NodeKind { return NodeObject }

// IsRequired reports whether name is listed under required.
func (o *Object) IsRequired(name string) bool {
	_, ok := o.Required[name]
	return ok
}

// Field maps a JSON name to its raw sub-schema.
type Field struct {
	Name   string
	Schema map[string]any
}

func sortFields(fs []Field) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
}
