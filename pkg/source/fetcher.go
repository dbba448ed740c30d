package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// TextFetcher adapts a Loader into the text fetch collaborator used by
// content resolution and catalog loading.
type TextFetcher struct {
	Loader Loader
}

// NewTextFetcher wraps loader.
func NewTextFetcher(loader Loader) *TextFetcher {
	return &TextFetcher{Loader: loader}
}

// FetchText loads location and returns its contents as text.
func (f *TextFetcher) FetchText(ctx context.Context, location string) (string, error) {
	if f == nil || f.Loader == nil {
		return "", errors.New("source: fetcher has no loader")
	}
	src, err := Parse(location)
	if err != nil {
		return "", err
	}
	doc, err := f.Loader.Load(ctx, src)
	if err != nil {
		return "", fmt.Errorf("source: load %s: %w", location, err)
	}
	text := doc.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("source: load %s: %w", doc.Location(), ErrEmptyDocument)
	}
	return text, nil
}
