package mockfill

import (
	internalLoader "github.com/goliatone/go-mockfill/internal/source/loader"
	"github.com/goliatone/go-mockfill/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewFetcher returns a text fetcher over a loader built from options. It
// satisfies content.Fetcher, so it can feed both the resolver and catalog
// loading.
func NewFetcher(options ...source.LoaderOption) *source.TextFetcher {
	return source.NewTextFetcher(NewLoader(options...))
}
