// Package gen renders generated values as Go source so fixtures can be
// committed next to the tests that use them. This package is internal.
package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"sort"

	"github.com/dave/jennifer/jen"
)

// Fixture describes one rendered file.
type Fixture struct {
	Package string
	Var     string
	Value   any
	// Header is written as a leading comment (e.g. the schema path and seed).
	Header string
}

// RenderFixture returns gofmt'ed source declaring `var <Var> = <Value>`.
func RenderFixture(fx Fixture) ([]byte, error) {
	if !token.IsIdentifier(fx.Package) {
		return nil, fmt.Errorf("gen: invalid package name %q", fx.Package)
	}
	if !token.IsIdentifier(fx.Var) {
		return nil, fmt.Errorf("gen: invalid identifier %q", fx.Var)
	}
	lit, err := literal(fx.Value)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(fx.Package)
	f.HeaderComment("Code generated by mockskema. DO NOT EDIT.")
	if fx.Header != "" {
		f.Comment(fx.Header)
	}
	f.Var().Id(fx.Var).Op("=").Add(lit)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}
	return buf.Bytes(), nil
}

// literal converts a generated JSON value into a jen expression. Maps use
// sorted keys so output is stable.
func literal(v any) (jen.Code, error) {
	switch t := v.(type) {
	case nil:
		return jen.Nil(), nil
	case bool, string, int64, float64:
		return jen.Lit(t), nil
	case int:
		return jen.Lit(int64(t)), nil
	case interface{ String() string }: // json.Number
		return jen.Qual("encoding/json", "Number").Call(jen.Lit(t.String())), nil
	case []any:
		items := make([]jen.Code, 0, len(t))
		for _, x := range t {
			c, err := literal(x)
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
		return jen.Index().Id("any").ValuesFunc(func(g *jen.Group) {
			for _, c := range items {
				g.Line().Add(c)
			}
			if len(items) > 0 {
				g.Line()
			}
		}), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var err error
		code := jen.Map(jen.String()).Id("any").ValuesFunc(func(g *jen.Group) {
			for _, k := range keys {
				c, lerr := literal(t[k])
				if lerr != nil {
					err = lerr
					return
				}
				g.Line().Lit(k).Op(":").Add(c)
			}
			if len(keys) > 0 {
				g.Line()
			}
		})
		if err != nil {
			return nil, err
		}
		return code, nil
	default:
		return nil, fmt.Errorf("gen: unsupported value type %T", v)
	}
}
