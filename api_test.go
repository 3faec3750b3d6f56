package mockskema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/mockskema"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var userSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "integer", "minimum": 1, "maximum": 1000},
		"email":   map[string]any{"type": "string", "format": "email"},
		"created": map[string]any{"type": "string", "format": "date-time"},
		"roles": map[string]any{
			"type":  "array",
			"items": map[string]any{"enum": []any{"admin", "editor", "viewer"}},
		},
		"score": map[string]any{"type": "number", "multipleOf": 0.5},
	},
	"required": []any{"id", "email"},
}

func TestGenerateJSON_ByteIdentical(t *testing.T) {
	a, err := mockskema.GenerateJSON(userSchema, mockskema.WithSeed(99))
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	for i := 0; i < 10; i++ {
		b, err := mockskema.GenerateJSON(userSchema, mockskema.WithSeed(99))
		if err != nil {
			t.Fatalf("GenerateJSON: %v", err)
		}
		if string(a) != string(b) {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", a, b)
		}
	}
	c, err := mockskema.GenerateJSON(userSchema, mockskema.WithSeed(100))
	if err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if string(a) == string(c) {
		t.Fatalf("different seeds produced identical output:\n%s", a)
	}
}

func TestGenerateJSON_PropagatesErrors(t *testing.T) {
	_, err := mockskema.GenerateJSON("nope")
	if !errors.Is(err, mockskema.ErrInvalidSchema) {
		t.Fatalf("want ErrInvalidSchema, got %v", err)
	}
}

func TestWithOptions_ReplacesFields(t *testing.T) {
	o := mockskema.DefaultOptions()
	o.Seed = 12
	o.ArrayCount = 1
	a, err := mockskema.Generate(userSchema, mockskema.WithOptions(o))
	if err != nil {
		t.Fatal(err)
	}
	b, err := mockskema.Generate(userSchema, mockskema.WithSeed(12), mockskema.WithArrayCount(1))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("WithOptions mismatch (-opts +individual):\n%s", diff)
	}
}

func TestGenerateMany_MatchesSequentialSeeds(t *testing.T) {
	const n = 16
	got, err := mockskema.GenerateMany(context.Background(), userSchema, n, mockskema.WithSeed(500))
	if err != nil {
		t.Fatalf("GenerateMany: %v", err)
	}
	if len(got) != n {
		t.Fatalf("want %d samples, got %d", n, len(got))
	}
	for i := range got {
		want, err := mockskema.Generate(userSchema, mockskema.WithSeed(500+int64(i)))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Fatalf("sample %d differs (-sequential +batch):\n%s", i, diff)
		}
	}
}

func TestGenerateMany_EdgeCases(t *testing.T) {
	ctx := context.Background()

	got, err := mockskema.GenerateMany(ctx, userSchema, 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("n=0: got %v, %v", got, err)
	}

	_, err = mockskema.GenerateMany(ctx, []any{1}, 3)
	var ise *mockskema.InvalidSchemaError
	if !errors.As(err, &ise) {
		t.Fatalf("want InvalidSchemaError, got %v", err)
	}

	_, err = mockskema.GenerateMany(ctx, map[string]any{"items": map[string]any{"$ref": "#"}}, 3)
	if !errors.Is(err, mockskema.ErrUnsupportedFeature) {
		t.Fatalf("want ErrUnsupportedFeature, got %v", err)
	}

	deep := map[string]any{"properties": map[string]any{
		"a": map[string]any{"properties": map[string]any{"b": map[string]any{}}, "required": []any{"b"}},
	}, "required": []any{"a"}}
	_, err = mockskema.GenerateMany(ctx, deep, 4, mockskema.WithMaxDepth(1))
	var dle *mockskema.DepthLimitError
	if !errors.As(err, &dle) {
		t.Fatalf("want DepthLimitError, got %v", err)
	}
}

func TestGenerateMany_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mockskema.GenerateMany(ctx, userSchema, 64, mockskema.WithSeed(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestGenerateMany_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := mockskema.GenerateMany(context.Background(), userSchema, 3,
		mockskema.WithSeed(7), mockskema.WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	if n := logs.FilterMessage("batch generation finished").Len(); n != 1 {
		t.Fatalf("want one completion entry, got %d", n)
	}
	entry := logs.FilterMessage("batch generation started").All()[0]
	if entry.ContextMap()["seed"] != int64(7) {
		t.Fatalf("seed field missing: %v", entry.ContextMap())
	}
}
