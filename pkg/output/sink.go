// Package output delivers generated text to its destination: a file or
// terminal stream, the clipboard, or an in-memory collector.
package output

import (
	"context"
	"slices"
	"sync"
)

// Sink receives the text generated for one group. values maps placeholder id
// to text; order lists the ids in the order the host enumerated them.
type Sink interface {
	Name() string
	Apply(ctx context.Context, values map[string]string, order []string) error
}

// Row is one placeholder assignment in output order.
type Row struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Rows flattens values into order. Ids in order without a value are skipped;
// values whose id is missing from order follow in id order.
func Rows(values map[string]string, order []string) []Row {
	rows := make([]Row, 0, len(values))
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		text, ok := values[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, Row{ID: id, Text: text})
	}

	var rest []string
	for id := range values {
		if _, ok := seen[id]; !ok {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	for _, id := range rest {
		rows = append(rows, Row{ID: id, Text: values[id]})
	}
	return rows
}

// Collector keeps every applied batch in memory. Hosts embedding the engine
// read the assignments back instead of writing them anywhere.
type Collector struct {
	mu      sync.Mutex
	batches [][]Row
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Name() string { return "collect" }

// Apply records the batch.
func (c *Collector) Apply(ctx context.Context, values map[string]string, order []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, Rows(values, order))
	return nil
}

// Last returns the most recent batch, or nil when nothing was applied.
func (c *Collector) Last() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.batches) == 0 {
		return nil
	}
	return slices.Clone(c.batches[len(c.batches)-1])
}

// Len reports how many batches were applied.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}
