package testsupport

import (
	"path/filepath"
	"testing"
)

func TestLoadSnapshot(t *testing.T) {
	descriptors := LoadSnapshot(t, filepath.Join("testdata", "menu_snapshot.yaml"))
	if len(descriptors) != 6 {
		t.Fatalf("expected 6 descriptors, got %d", len(descriptors))
	}
	if descriptors[3].ID != "10:4" || descriptors[3].Characters != "$9.50" {
		t.Fatalf("unexpected descriptor %+v", descriptors[3])
	}

	if _, err := LoadSnapshotFromPath(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestWriteMaybeGolden_SkipsWithoutEnv(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	path := filepath.Join(t.TempDir(), "out.golden")
	if WriteMaybeGolden(t, path, []byte("x")) {
		t.Fatalf("golden should not be written without %s", UpdateEnv)
	}
}
