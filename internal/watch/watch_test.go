package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var calls atomic.Int32
	changed := make(chan struct{}, 4)
	w, err := New(path, func(context.Context) {
		calls.Add(1)
		changed <- struct{}{}
	}, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`[{"id":"a"}]`), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600); err != nil {
		t.Fatalf("write other: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change callback")
	}

	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one debounced callback, got %d", got)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	w, err := New(path, func(context.Context) {})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("second start: %v", err)
	}
	w.Stop()
	w.Stop()
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", func(context.Context) {}); err == nil {
		t.Fatalf("expected path error")
	}
	if _, err := New("x.json", nil); err == nil {
		t.Fatalf("expected callback error")
	}
}
