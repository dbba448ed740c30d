package orchestrator

import "context"

// Transformer rewrites a composed Result before write-back, for example to
// prefix every text or drop placeholders the host cannot edit.
type Transformer interface {
	Transform(ctx context.Context, result *Result) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, result *Result) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, result *Result) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, result)
}
