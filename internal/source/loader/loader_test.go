package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-mockfill/pkg/source"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roasts.txt")
	if err := os.WriteFile(path, []byte("dark\nlight\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := New(source.NewLoaderOptions())
	doc, err := l.Load(context.Background(), source.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != "dark\nlight\n" {
		t.Fatalf("unexpected content %q", doc.Text())
	}
}

func TestLoad_EmptyFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := New(source.NewLoaderOptions())
	if _, err := l.Load(context.Background(), source.SourceFromFile(path)); !errors.Is(err, source.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestLoad_FS(t *testing.T) {
	files := fstest.MapFS{"lists/beans.txt": {Data: []byte("arabica")}}
	l := New(source.NewLoaderOptions(source.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), source.SourceFromFS("lists/beans.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != "arabica" {
		t.Fatalf("unexpected content %q", doc.Text())
	}
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.txt":
			_, _ = w.Write([]byte("one\ntwo"))
		case "/big.txt":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := New(source.NewLoaderOptions(source.WithHTTPFallback(time.Second), source.WithMaxBytes(32)))

	doc, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/ok.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != "one\ntwo" {
		t.Fatalf("unexpected content %q", doc.Text())
	}

	if _, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/missing.txt")); err == nil {
		t.Fatalf("expected error for 404")
	}
	if _, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/big.txt")); err == nil {
		t.Fatalf("expected size limit error")
	}
}

func TestLoad_InjectedHTTPClient(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("espresso"))
	}))
	defer srv.Close()

	l := New(source.NewLoaderOptions(source.WithHTTPClient(srv.Client()), source.WithMaxBytes(64)))
	doc, err := l.Load(context.Background(), source.SourceFromURL(srv.URL+"/drinks.txt"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Text() != "espresso" || hits != 1 {
		t.Fatalf("unexpected content %q after %d requests", doc.Text(), hits)
	}
}

func TestLoad_HTTPDisabled(t *testing.T) {
	l := New(source.NewLoaderOptions())
	if _, err := l.Load(context.Background(), source.SourceFromURL("https://example.com/a.txt")); err == nil {
		t.Fatalf("expected http to be disabled by default")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(source.NewLoaderOptions())
	if _, err := l.Load(ctx, source.SourceFromFile("whatever.txt")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
