package orchestrator

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/output"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
	"github.com/goliatone/go-mockfill/pkg/testsupport"
)

func TestGenerate_MenuGolden(t *testing.T) {
	descriptors := testsupport.LoadSnapshot(t, filepath.Join("..", "testsupport", "testdata", "menu_snapshot.yaml"))

	var buf bytes.Buffer
	text, err := output.NewText(&buf, "")
	if err != nil {
		t.Fatalf("new text sink: %v", err)
	}
	registry := output.NewRegistry()
	registry.MustRegister(text)

	orch := New(WithRegistry(registry))
	_, err = orch.Generate(context.Background(), Request{
		Provider: placeholder.Static(descriptors...),
		Grouping: placeholder.KindPositionX,
		GroupKey: "24",
		Configs: confirmed(
			&content.CustomString{Text: "Soup "},
			&content.NumberRange{Min: 1, Max: 1, DecimalPlaces: 1},
		),
		Sink: "text",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	golden := filepath.Join("testdata", "menu_dishes.golden")
	if testsupport.WriteMaybeGolden(t, golden, buf.Bytes()) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text output mismatch (-want +got):\n%s", diff)
	}
}
