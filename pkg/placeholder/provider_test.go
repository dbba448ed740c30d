package placeholder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSnapshot_Formats(t *testing.T) {
	want := []Descriptor{
		{ID: "1:2", Name: "Title", Characters: "Hello", X: 4, Y: 8, Width: 100, Height: 20},
	}

	cases := map[string]string{
		"json list":    `[{"id":"1:2","name":"Title","characters":"Hello","x":4,"y":8,"width":100,"height":20}]`,
		"json wrapped": `{"placeholders":[{"id":"1:2","name":"Title","characters":"Hello","x":4,"y":8,"width":100,"height":20}]}`,
		"yaml list": `
- id: "1:2"
  name: Title
  characters: Hello
  x: 4
  y: 8
  width: 100
  height: 20
`,
		"yaml wrapped": `
placeholders:
  - id: "1:2"
    name: Title
    characters: Hello
    x: 4
    y: 8
    width: 100
    height: 20
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSnapshot([]byte(doc), name)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSnapshot_Invalid(t *testing.T) {
	if _, err := ParseSnapshot([]byte("{not: [valid"), "broken"); err == nil {
		t.Fatalf("expected parse error")
	}
	got, err := ParseSnapshot([]byte("   "), "blank")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %v, %v", got, err)
	}
}

func TestFileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`[{"id":"a","name":"n"}]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	provider := NewFileProvider(path)
	got, err := provider.Descriptors(context.Background())
	if err != nil {
		t.Fatalf("descriptors: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("unexpected descriptors %+v", got)
	}

	if _, err := NewFileProvider(filepath.Join(t.TempDir(), "missing.json")).Descriptors(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStatic_ReturnsCopies(t *testing.T) {
	provider := Static(Descriptor{ID: "a"})
	first, _ := provider.Descriptors(context.Background())
	first[0].ID = "mutated"

	second, _ := provider.Descriptors(context.Background())
	if second[0].ID != "a" {
		t.Fatalf("static provider leaked mutation: %+v", second)
	}
}
