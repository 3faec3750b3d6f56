package mockskema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/mockskema"
)

func TestAnalyze(t *testing.T) {
	got, err := mockskema.Analyze(userSchema)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := mockskema.Stats{
		Nodes:      7,
		Properties: 5,
		Required:   2,
		MaxDepth:   2,
		Types: map[string]int{
			"object":  1,
			"integer": 1,
			"string":  2,
			"array":   1,
			"enum":    1,
			"number":  1,
		},
		Formats: map[string]int{"email": 1, "date-time": 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_CompositionAndRefs(t *testing.T) {
	got, err := mockskema.Analyze(map[string]any{
		"anyOf": []any{
			map[string]any{"$ref": "#/x"},
			map[string]any{"type": []any{"string", "null"}},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !got.HasComposition || !got.HasRefs {
		t.Fatalf("want composition and refs flagged, got %+v", got)
	}
	if got.Types["anyOf"] != 1 || got.Types["typeChoice"] != 1 {
		t.Fatalf("want anyOf and typeChoice labels, got %v", got.Types)
	}
	if got.Nodes != 3 || got.MaxDepth != 0 {
		t.Fatalf("unexpected counts %+v", got)
	}
}

func TestAnalyze_RejectsNonObject(t *testing.T) {
	if _, err := mockskema.Analyze(true); err == nil {
		t.Fatal("want error for boolean schema")
	}
}

func TestAnalyze_LabelsUnionByKeyword(t *testing.T) {
	got, err := mockskema.Analyze(map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"oneOf": []any{map[string]any{"type": "null"}}},
			"b": map[string]any{"allOf": []any{map[string]any{"type": "null"}}},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, label := range []string{"oneOf", "allOf"} {
		if got.Types[label] != 1 {
			t.Fatalf("want one %s node, got %v", label, got.Types)
		}
	}
}
