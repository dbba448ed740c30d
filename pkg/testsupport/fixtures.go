// Package testsupport holds fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

// UpdateEnv enables rewriting golden files instead of comparing them.
const UpdateEnv = "UPDATE_GOLDENS"

// LoadSnapshot reads a JSON or YAML placeholder snapshot fixture.
func LoadSnapshot(t *testing.T, path string) []placeholder.Descriptor {
	t.Helper()

	descriptors, err := LoadSnapshotFromPath(path)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return descriptors
}

// LoadSnapshotFromPath returns the fixture without requiring testing.T, so
// callers can load fixtures in setup functions.
func LoadSnapshotFromPath(path string) ([]placeholder.Descriptor, error) {
	if path == "" {
		return nil, errors.New("testsupport: snapshot path is required")
	}
	descriptors, err := placeholder.NewFileProvider(path).Descriptors(context.Background())
	if err != nil {
		return nil, fmt.Errorf("testsupport: %w", err)
	}
	return descriptors, nil
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateEnv) == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}
