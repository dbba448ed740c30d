package placeholder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider supplies the current placeholder snapshot. Hosts implement it on
// top of their own selection model.
type Provider interface {
	Descriptors(ctx context.Context) ([]Descriptor, error)
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func(ctx context.Context) ([]Descriptor, error)

// Descriptors calls f.
func (f ProviderFunc) Descriptors(ctx context.Context) ([]Descriptor, error) {
	return f(ctx)
}

// Static returns a Provider that always reports a copy of descriptors.
func Static(descriptors ...Descriptor) Provider {
	snapshot := slices.Clone(descriptors)
	return ProviderFunc(func(context.Context) ([]Descriptor, error) {
		return slices.Clone(snapshot), nil
	})
}

// FileProvider reads a snapshot from a JSON or YAML file on every call, so
// edits to the file behave like a new selection.
type FileProvider struct {
	Path string
}

// NewFileProvider returns a FileProvider for path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Descriptors loads and parses the snapshot file.
func (p *FileProvider) Descriptors(ctx context.Context) ([]Descriptor, error) {
	if p == nil || strings.TrimSpace(p.Path) == "" {
		return nil, errors.New("placeholder: snapshot path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("placeholder: read snapshot: %w", err)
	}
	return ParseSnapshot(data, p.Path)
}

type snapshotFile struct {
	Placeholders []Descriptor `json:"placeholders" yaml:"placeholders"`
}

// ParseSnapshot decodes either a bare list of descriptors or an object with
// a "placeholders" list, in JSON or YAML. An empty document is an empty
// snapshot.
func ParseSnapshot(data []byte, source string) ([]Descriptor, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Descriptor{}, nil
	}

	var list []Descriptor
	if err := json.Unmarshal(data, &list); err == nil {
		return nonNil(list), nil
	}
	var wrapped snapshotFile
	if err := json.Unmarshal(data, &wrapped); err == nil {
		return nonNil(wrapped.Placeholders), nil
	}

	if err := yaml.Unmarshal(data, &list); err == nil {
		return nonNil(list), nil
	}
	wrapped = snapshotFile{}
	if err := yaml.Unmarshal(data, &wrapped); err == nil {
		return nonNil(wrapped.Placeholders), nil
	}

	return nil, fmt.Errorf("placeholder: parse %s: invalid JSON or YAML snapshot", source)
}

func nonNil(in []Descriptor) []Descriptor {
	if in == nil {
		return []Descriptor{}
	}
	return in
}
