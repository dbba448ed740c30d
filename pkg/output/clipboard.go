package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard copies the generated texts, one per line in order, to the
// system clipboard.
type Clipboard struct {
	write  func(string) error
	system bool
}

// ClipboardOption configures a Clipboard sink.
type ClipboardOption func(*Clipboard)

// WithClipboardWriter replaces the system clipboard, mostly for tests.
func WithClipboardWriter(write func(string) error) ClipboardOption {
	return func(c *Clipboard) {
		if write != nil {
			c.write = write
			c.system = false
		}
	}
}

// NewClipboard returns a sink writing to the system clipboard.
func NewClipboard(options ...ClipboardOption) *Clipboard {
	c := &Clipboard{write: clipboard.WriteAll, system: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

func (c *Clipboard) Name() string { return "clipboard" }

func (c *Clipboard) Apply(ctx context.Context, values map[string]string, order []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.system && clipboard.Unsupported {
		return fmt.Errorf("output: clipboard is not available on this system")
	}

	rows := Rows(values, order)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = row.Text
	}
	if err := c.write(strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("output: write clipboard: %w", err)
	}
	return nil
}
