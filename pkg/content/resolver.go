package content

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves raw newline-delimited text for a list URL.
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a function into a Fetcher.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// FetchText calls f.
func (f FetcherFunc) FetchText(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// ListLookup resolves a catalog list id into the URL holding its lines.
type ListLookup interface {
	URLFor(listID string) (string, bool)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFetcher sets the collaborator used to download list content.
func WithFetcher(fetcher Fetcher) Option {
	return func(r *Resolver) {
		r.fetcher = fetcher
	}
}

// WithListLookup resolves StringList configurations that carry a list id but
// no URL.
func WithListLookup(lookup ListLookup) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// WithRand pins the random source, mostly for reproducible tests.
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) {
		r.rng = rng
	}
}

// WithLogger attaches a logger. Fetch failures are reported at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSanitizer strips markup from fetched list lines before casing.
func WithSanitizer(enabled bool) Option {
	return func(r *Resolver) {
		r.sanitize = enabled
	}
}

// WithLocation sets the zone used to render sampled dates.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithConcurrency lets ResolveAll resolve up to n configurations at once.
// Values below 2 keep resolution sequential.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		r.concurrency = n
	}
}

// Resolver turns input configurations into candidate value sequences. It
// holds no per-request state; the mutex only serialises access to the
// random source.
type Resolver struct {
	fetcher     Fetcher
	lookup      ListLookup
	logger      *zap.Logger
	sanitize    bool
	location    *time.Location
	concurrency int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver constructs a Resolver. Without a fetcher every StringList
// resolves to an empty sequence.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{
		logger:   zap.NewNop(),
		location: time.UTC,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve produces the value sequence for one configuration. outputCount is
// the number of placeholders being filled; generated kinds return exactly
// that many values. Fetch and parse failures degrade to an empty sequence.
func (r *Resolver) Resolve(ctx context.Context, cfg Config, outputCount int) []string {
	if outputCount < 0 {
		outputCount = 0
	}

	switch c := cfg.(type) {
	case *CustomString:
		return []string{c.Text}
	case *StringList:
		return r.resolveList(ctx, c)
	case *NumberRange:
		values := make([]string, outputCount)
		r.withRand(func(rng *rand.Rand) {
			for i := range values {
				values[i] = randomNumber(rng, c.Min, c.Max, c.DecimalPlaces)
			}
		})
		return r.sort(values, c.Sort)
	case *DateRange:
		format := c.Format
		if format == "" {
			format = DefaultDateFormat
		}
		values := make([]string, outputCount)
		r.withRand(func(rng *rand.Rand) {
			for i := range values {
				instant := randomInstant(rng, c.Earliest, c.Latest)
				values[i] = RenderDate(instant.In(r.location), format)
			}
		})
		// Rendered strings are sorted, not instants.
		return r.sort(values, c.Sort)
	default:
		r.logger.Warn("unsupported input configuration", zap.Any("config", cfg))
		return []string{}
	}
}

// ResolveAll resolves cfgs and returns their sequences in configuration
// order. The only error is a cancelled context.
func (r *Resolver) ResolveAll(ctx context.Context, cfgs []Config, outputCount int) ([][]string, error) {
	sequences := make([][]string, len(cfgs))

	if r.concurrency < 2 {
		for i, cfg := range cfgs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sequences[i] = r.Resolve(ctx, cfg, outputCount)
		}
		return sequences, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, cfg := range cfgs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sequences[i] = r.Resolve(gctx, cfg, outputCount)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sequences, nil
}

func (r *Resolver) resolveList(ctx context.Context, cfg *StringList) []string {
	url := strings.TrimSpace(cfg.SourceURL)
	if url == "" && r.lookup != nil && cfg.SourceListID != "" {
		if found, ok := r.lookup.URLFor(cfg.SourceListID); ok {
			url = found
		}
	}

	lines, err := r.fetchLines(ctx, url)
	if err != nil {
		r.logger.Warn("list content unavailable",
			zap.String("list", cfg.SourceListID),
			zap.String("url", url),
			zap.Error(err),
		)
		return []string{}
	}

	for i, line := range lines {
		lines[i] = Cased(line, cfg.Casing)
	}
	return r.sort(lines, cfg.Sort)
}

func (r *Resolver) fetchLines(ctx context.Context, url string) ([]string, error) {
	if url == "" {
		return nil, &FetchError{URL: url, Err: errors.New("list url is empty")}
	}
	if r.fetcher == nil {
		return nil, &FetchError{URL: url, Err: errors.New("no fetcher configured")}
	}

	raw, err := r.fetcher.FetchText(ctx, url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	lines := SplitLines(raw)
	if r.sanitize {
		cleaned := lines[:0]
		for _, line := range lines {
			if s := SanitizeLine(line); s != "" {
				cleaned = append(cleaned, s)
			}
		}
		lines = cleaned
	}
	if len(lines) == 0 {
		return nil, &FetchError{URL: url, Err: ErrEmptyContent}
	}

	r.logger.Debug("fetched list content", zap.String("url", url), zap.Int("lines", len(lines)))
	return lines, nil
}

func (r *Resolver) sort(values []string, rule SortRule) []string {
	if rule != SortRandom {
		return SortWith(nil, values, rule)
	}
	var out []string
	r.withRand(func(rng *rand.Rand) {
		out = SortWith(rng, values, rule)
	})
	return out
}

// withRand runs fn holding the random source lock. A nil source falls back
// to the goroutine-safe package-level functions.
func (r *Resolver) withRand(fn func(*rand.Rand)) {
	if r.rng == nil {
		fn(nil)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.rng)
}
