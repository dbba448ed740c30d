package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// DefaultTextTemplate prints one "id<TAB>text" line per placeholder.
const DefaultTextTemplate = "{% for row in rows %}{{ row.id|safe }}\t{{ row.text|safe }}\n{% endfor %}"

// Text renders each batch through a pongo2 template. The template sees
// "rows" (a list of {id, text}) and "count".
type Text struct {
	mu   sync.Mutex
	w    io.Writer
	tmpl *pongo2.Template
}

// NewText compiles source, or DefaultTextTemplate when source is empty.
func NewText(w io.Writer, source string) (*Text, error) {
	if w == nil {
		return nil, errors.New("output: text writer is required")
	}
	if source == "" {
		source = DefaultTextTemplate
	}
	tmpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("output: parse text template: %w", err)
	}
	return &Text{w: w, tmpl: tmpl}, nil
}

func (s *Text) Name() string { return "text" }

func (s *Text) Apply(ctx context.Context, values map[string]string, order []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := Rows(values, order)
	data := make([]map[string]any, len(rows))
	for i, row := range rows {
		data[i] = map[string]any{"id": row.ID, "text": row.Text}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tmpl.ExecuteWriter(pongo2.Context{"rows": data, "count": len(rows)}, s.w); err != nil {
		return fmt.Errorf("output: execute text template: %w", err)
	}
	return nil
}
