package mockskema

import (
	"context"
	"fmt"
	"runtime"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/mockskema/internal/rng"
	js "github.com/reoring/mockskema/jsonschema"
)

// Generate synthesizes one JSON-compatible value conforming to schema.
//
// schema is a decoded JSON object (map[string]any) or a *jsonschema.Schema.
// It fails with *InvalidSchemaError for anything else and with
// *UnsupportedFeatureError when a reachable node declares $ref. The result is
// nil, bool, int64, float64, string, []any or map[string]any, and is fully
// determined by schema and the options (including the seed).
func Generate(schema any, opts ...Option) (any, error) {
	root, err := prepare(schema)
	if err != nil {
		return nil, err
	}
	o := resolveOptions(opts)
	g := &generator{opts: o}
	return g.value(rng.New(o.Seed), root, RootPath(), 0)
}

// GenerateJSON is Generate followed by indented JSON encoding. Object keys
// are emitted in sorted order, so equal inputs give byte-identical output.
func GenerateJSON(schema any, opts ...Option) ([]byte, error) {
	v, err := Generate(schema, opts...)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mockskema: encode: %w", err)
	}
	return b, nil
}

// GenerateMany produces n samples in parallel. Sample i uses seed Seed+i,
// so the batch is as reproducible as a single call. Each sample owns its
// own PRNG cursor.
func GenerateMany(ctx context.Context, schema any, n int, opts ...Option) ([]any, error) {
	root, err := prepare(schema)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []any{}, nil
	}
	o := resolveOptions(opts)
	log := o.logger.With(zap.Int64("seed", o.Seed), zap.Int("count", n))
	log.Debug("batch generation started")

	out := make([]any, n)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g := &generator{opts: o}
			v, err := g.value(rng.New(o.Seed+int64(i)), root, RootPath().Index(i), 0)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Debug("batch generation failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debug("batch generation finished")
	return out, nil
}

// prepare normalises schema and runs the $ref pre-pass.
func prepare(schema any) (map[string]any, error) {
	root, err := asObject(schema)
	if err != nil {
		return nil, err
	}
	if ref := findRef(root); ref != nil {
		return nil, ref
	}
	return root, nil
}

func asObject(schema any) (map[string]any, error) {
	switch s := schema.(type) {
	case map[string]any:
		if s == nil {
			return nil, &InvalidSchemaError{Got: "nil map"}
		}
		return s, nil
	case *js.Schema:
		if s == nil {
			return nil, &InvalidSchemaError{Got: "nil *jsonschema.Schema"}
		}
		m, err := s.ToMap()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
		}
		return m, nil
	case js.Schema:
		return asObject(&s)
	case nil:
		return nil, &InvalidSchemaError{Got: "null"}
	default:
		return nil, &InvalidSchemaError{Got: fmt.Sprintf("%T", schema)}
	}
}
