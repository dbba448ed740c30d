package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// JSON writes each batch as an indented array of rows.
type JSON struct {
	mu sync.Mutex
	w  io.Writer
}

// NewJSON writes to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (s *JSON) Name() string { return "json" }

func (s *JSON) Apply(ctx context.Context, values map[string]string, order []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(values, order)); err != nil {
		return fmt.Errorf("output: encode json: %w", err)
	}
	return nil
}

// YAML writes each batch as a YAML sequence of rows.
type YAML struct {
	mu sync.Mutex
	w  io.Writer
}

// NewYAML writes to w.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (s *YAML) Name() string { return "yaml" }

func (s *YAML) Apply(ctx context.Context, values map[string]string, order []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(Rows(values, order)); err != nil {
		return fmt.Errorf("output: encode yaml: %w", err)
	}
	return enc.Close()
}
