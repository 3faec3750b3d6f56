package mockskema

import (
	"fmt"
	"math"

	"github.com/reoring/mockskema/internal/ir"
	"github.com/reoring/mockskema/internal/rng"
)

const (
	defaultMinimum   = 0.0
	defaultMaximum   = 100.0
	defaultMinLength = 1
	defaultMaxLength = 50
	defaultMinItems  = 1
	maxExtraProps    = 2
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generator holds the immutable inputs of one request. The PRNG cursor is
// threaded through every call instead of living here.
type generator struct {
	opts Options
}

// value synthesizes one value for raw. p is the pointer of the value being
// produced; depth counts container levels above it.
func (g *generator) value(r *rng.LCG, raw map[string]any, p PathRef, depth int) (any, error) {
	switch n := ir.Decode(raw).(type) {
	case *ir.Union:
		return g.value(r, n.Variants[r.Intn(len(n.Variants))], p, depth)
	case *ir.AllOf:
		return g.value(r, n.Merged(), p, depth)
	case *ir.Enum:
		return cloneValue(n.Values[r.Intn(len(n.Values))]), nil
	case *ir.Const:
		return cloneValue(n.Value), nil
	case *ir.TypeChoice:
		return g.value(r, n.With(r.Pick(n.Types)), p, depth)
	case *ir.Array:
		return g.array(r, n, p, depth)
	case *ir.Object:
		return g.object(r, n, p, depth)
	case *ir.Primitive:
		return primitive(r, n), nil
	default:
		return nil, fmt.Errorf("mockskema: unexpected node kind %v", n.Kind())
	}
}

// child descends one container level.
func (g *generator) child(r *rng.LCG, raw map[string]any, p PathRef, depth int) (any, error) {
	if g.opts.MaxDepth > 0 && depth+1 > g.opts.MaxDepth {
		return nil, &DepthLimitError{Limit: g.opts.MaxDepth, Path: p.Pointer()}
	}
	return g.value(r, raw, p, depth+1)
}

func (g *generator) array(r *rng.LCG, n *ir.Array, p PathRef, depth int) (any, error) {
	lo := defaultMinItems
	if n.MinItems != nil {
		lo = max(*n.MinItems, 0)
	}
	hi := g.opts.ArrayCount
	if n.MaxItems != nil {
		hi = *n.MaxItems
	}
	count := r.IntRange(lo, hi)
	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		v, err := g.child(r, n.Items, p.Index(i), depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *generator) object(r *rng.LCG, n *ir.Object, p PathRef, depth int) (any, error) {
	out := make(map[string]any, len(n.Fields))
	for _, f := range n.Fields {
		if !n.IsRequired(f.Name) && r.Float64() >= g.opts.OptionalsProbability {
			continue
		}
		v, err := g.child(r, f.Schema, p.Field(f.Name), depth)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	if n.Additional == ir.AdditionalNone {
		return out, nil
	}
	extra := r.Intn(maxExtraProps + 1)
	for i := 0; i < extra; i++ {
		key := fmt.Sprintf("additional_%d", i)
		if n.Additional == ir.AdditionalAny {
			out[key] = looseValue(r)
			continue
		}
		v, err := g.child(r, n.AdditionalItem, p.Field(key), depth)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func primitive(r *rng.LCG, n *ir.Primitive) any {
	switch n.Name {
	case "null":
		return nil
	case "boolean":
		return r.Bool()
	case "integer", "number":
		return number(r, n)
	default:
		return str(r, n)
	}
}

// number draws uniformly between minimum and maximum, floors integers, snaps
// to multipleOf and clamps. The clamp can undo the snap when it lands below
// minimum. The draw is written as a weighted sum so it stays finite when
// maximum-minimum overflows.
func number(r *rng.LCG, n *ir.Primitive) any {
	lo, hi := defaultMinimum, defaultMaximum
	if n.Minimum != nil {
		lo = *n.Minimum
	}
	if n.Maximum != nil {
		hi = *n.Maximum
	}
	integer := n.Name == "integer"

	f := r.Float64()
	v := lo*(1-f) + hi*f
	if integer {
		v = math.Floor(v)
	}
	if n.MultipleOf != nil && *n.MultipleOf > 0 {
		m := *n.MultipleOf
		v = math.Floor(v/m) * m
	}
	v = math.Max(lo, math.Min(hi, v))

	if integer && v == math.Trunc(v) && math.Abs(v) <= 1<<53 {
		return int64(v)
	}
	return v
}

func str(r *rng.LCG, n *ir.Primitive) string {
	if f, ok := formats[n.Format]; ok {
		return f(r)
	}
	lo, hi := defaultMinLength, defaultMaxLength
	if n.MinLength != nil {
		lo = max(*n.MinLength, 0)
	}
	if n.MaxLength != nil {
		hi = *n.MaxLength
	}
	return randomAlphanumeric(r, r.IntRange(lo, hi))
}

func randomAlphanumeric(r *rng.LCG, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[r.Intn(len(alphanumeric))]
	}
	return string(b)
}

// looseValue backs additionalProperties: true.
func looseValue(r *rng.LCG) any {
	switch r.Intn(4) {
	case 0:
		return randomAlphanumeric(r, r.IntRange(5, 20))
	case 1:
		return int64(r.Intn(1000))
	case 2:
		return r.Bool()
	default:
		return nil
	}
}

// cloneValue deep-copies enum/const literals so outputs never alias the schema.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
