package jparse_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/creachadair/jparse"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			v, err := jparse.Parse(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			v.Release()
		}
	})

	b.Run("Combine", func(b *testing.B) {
		opts := jparse.Options{CombineSurrogates: true}
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			v, err := opts.Parse(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			v.Release()
		}
	})
}

func TestBenchInput(t *testing.T) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	v, err := jparse.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer v.Release()

	// Cross-check the shape of the tree against the standard library.
	var std map[string]any
	if err := json.Unmarshal(input, &std); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	items := v.Find("items")
	if items == nil {
		t.Fatal(`Key "items" not found`)
	}
	if got, want := items.Value.Len(), len(std["items"].([]any)); got != want {
		t.Errorf("Number of items: got %d, want %d", got, want)
	}
	for i, elt := range items.Value.Elems() {
		want := std["items"].([]any)[i].(map[string]any)
		if got := elt.Find("note").Value.Text(); got != want["note"] {
			t.Errorf("Item %d note: got %q, want %q", i, got, want["note"])
		}
		if got := elt.Find("score").Value.Float64(); got != want["score"] {
			t.Errorf("Item %d score: got %v, want %v", i, got, want["score"])
		}
	}
}
