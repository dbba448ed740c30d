// Package mockfill fills groups of text placeholders with generated or
// fetched content. The root package re-exports the common entry points; the
// building blocks live under pkg/.
package mockfill

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/orchestrator"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
	"github.com/goliatone/go-mockfill/pkg/source"
)

// Request aliases orchestrator.Request for callers using the root package.
type Request = orchestrator.Request

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// Descriptor aliases placeholder.Descriptor.
type Descriptor = placeholder.Descriptor

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate fills the group keyed groupKey (grouped by kind) in descriptors
// with the composed output of cfgs. Empty groupKey picks the largest group.
func Generate(ctx context.Context, descriptors []Descriptor, kind placeholder.Kind, groupKey string, cfgs []content.Config, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Placeholders: descriptors,
		Grouping:     kind,
		GroupKey:     groupKey,
		Configs:      cfgs,
	})
}

// FetchCatalog loads the given list indexes over HTTP (or from disk for
// file paths), defaulting to the public index when none are given.
func FetchCatalog(ctx context.Context, logger *zap.Logger, indexURLs []string, options ...source.LoaderOption) (*catalog.Catalog, error) {
	if len(indexURLs) == 0 {
		indexURLs = []string{catalog.DefaultIndexURL}
	}
	opts := append([]source.LoaderOption{source.WithDefaultSources()}, options...)
	return catalog.Fetch(ctx, NewFetcher(opts...), indexURLs, logger)
}
