package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/pkg/content"
	"github.com/goliatone/go-mockfill/pkg/output"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

// ErrGroupNotFound is returned when the requested group key matches none of
// the groups derived from the current snapshot.
var ErrGroupNotFound = errors.New("orchestrator: group not found")

// ErrNoConfigs is returned when a request carries no input configurations.
var ErrNoConfigs = errors.New("orchestrator: at least one input configuration is required")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithResolver injects a fully configured resolver. Fetcher, lookup,
// logger and concurrency options then only affect the orchestrator itself.
func WithResolver(resolver *content.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithFetcher sets the fetcher used by the default resolver.
func WithFetcher(fetcher content.Fetcher) Option {
	return func(o *Orchestrator) {
		o.fetcher = fetcher
	}
}

// WithListLookup resolves list ids for the default resolver.
func WithListLookup(lookup content.ListLookup) Option {
	return func(o *Orchestrator) {
		o.lookup = lookup
	}
}

// WithResolverOptions forwards extra options to the default resolver.
func WithResolverOptions(options ...content.Option) Option {
	return func(o *Orchestrator) {
		o.resolverOptions = append(o.resolverOptions, options...)
	}
}

// WithConcurrency lets the default resolver fetch up to n lists at once.
func WithConcurrency(n int) Option {
	return func(o *Orchestrator) {
		o.concurrency = n
	}
}

// WithLogger attaches a logger shared with the default resolver.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRegistry injects the sink registry requests pick from by name.
func WithRegistry(registry *output.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultSink names the sink used when a request omits Sink.
func WithDefaultSink(name string) Option {
	return func(o *Orchestrator) {
		o.defaultSink = name
	}
}

// WithTransformer registers a hook that can rewrite the composed result
// before it is written back.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// Orchestrator coordinates the pipeline from placeholder snapshot to
// written-back text. Missing collaborators are initialised with built-in
// defaults so callers can start with a single constructor call.
type Orchestrator struct {
	resolver        *content.Resolver
	fetcher         content.Fetcher
	lookup          content.ListLookup
	resolverOptions []content.Option
	concurrency     int
	logger          *zap.Logger
	registry        *output.Registry
	defaultSink     string
	transformer     Transformer
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.resolver == nil {
		opts := []content.Option{
			content.WithFetcher(o.fetcher),
			content.WithListLookup(o.lookup),
			content.WithLogger(o.logger),
			content.WithConcurrency(o.concurrency),
		}
		o.resolver = content.NewResolver(append(opts, o.resolverOptions...)...)
	}
	if o.registry == nil {
		o.registry = output.NewRegistry()
	}
}

// Request describes one generation pass.
type Request struct {
	// Placeholders is the snapshot to group. When nil, Provider is asked.
	Placeholders []placeholder.Descriptor

	// Provider supplies the snapshot when Placeholders is nil.
	Provider placeholder.Provider

	// Grouping selects the attribute placeholders are grouped by. Defaults
	// to placeholder.KindName.
	Grouping placeholder.Kind

	// GroupKey picks the group to fill. Empty selects the largest group.
	GroupKey string

	// Configs are the ordered input configurations. Their Confirmed flags
	// gate the request.
	Configs []content.Config

	// Sink names a registered sink to write to. Empty falls back to the
	// default sink; no default means the result is only returned.
	Sink string
}

// Result carries everything one pass produced.
type Result struct {
	GroupKey string
	Grouping placeholder.Kind
	// Order lists the filled placeholder ids in encounter order.
	Order []string
	// Sequences holds the resolved values per configuration.
	Sequences [][]string
	// Texts holds the composed text per placeholder, aligned with Order.
	Texts []string
	// Values maps placeholder id to composed text.
	Values map[string]string
}

// Generate groups the snapshot, resolves every configuration for the chosen
// group, composes one text per member and hands the result to the sink.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	descriptors, err := o.descriptors(ctx, req)
	if err != nil {
		return Result{}, err
	}

	kind := req.Grouping
	if kind == "" {
		kind = placeholder.KindName
	}
	group, err := selectGroup(placeholder.GroupBy(descriptors, kind), req.GroupKey)
	if err != nil {
		return Result{}, err
	}

	if len(req.Configs) == 0 {
		return Result{}, ErrNoConfigs
	}
	if !content.CanGenerate(req.Configs, group.Empty()) {
		if err := content.Validate(req.Configs); err != nil {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("orchestrator: group %q has no members", group.Key)
	}

	sequences, err := o.resolver.ResolveAll(ctx, req.Configs, group.Count)
	if err != nil {
		return Result{}, err
	}

	order := group.IDs()
	texts := content.Compose(sequences, len(order))
	values := make(map[string]string, len(order))
	for i, id := range order {
		values[id] = texts[i]
	}

	result := Result{
		GroupKey:  group.Key,
		Grouping:  kind,
		Order:     order,
		Sequences: sequences,
		Texts:     texts,
		Values:    values,
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &result); err != nil {
			return Result{}, fmt.Errorf("orchestrator: transform result: %w", err)
		}
	}

	o.logger.Debug("generated content",
		zap.String("grouping", string(kind)),
		zap.String("group", group.Key),
		zap.Int("placeholders", len(order)),
		zap.Int("configs", len(req.Configs)),
	)

	if err := o.writeBack(ctx, req.Sink, result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (o *Orchestrator) descriptors(ctx context.Context, req Request) ([]placeholder.Descriptor, error) {
	if req.Placeholders != nil {
		return req.Placeholders, nil
	}
	if req.Provider == nil {
		return nil, errors.New("orchestrator: placeholders or provider is required")
	}
	descriptors, err := req.Provider.Descriptors(ctx)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load placeholders: %w", err)
	}
	return descriptors, nil
}

func selectGroup(groups []placeholder.Group, key string) (placeholder.Group, error) {
	if key == "" {
		if len(groups) == 0 {
			return placeholder.Group{}, fmt.Errorf("%w: snapshot has no placeholders", ErrGroupNotFound)
		}
		return groups[0], nil
	}
	group, ok := placeholder.Find(groups, key)
	if !ok {
		return placeholder.Group{}, fmt.Errorf("%w: %q", ErrGroupNotFound, key)
	}
	return group, nil
}

func (o *Orchestrator) writeBack(ctx context.Context, name string, result Result) error {
	target := name
	if target == "" {
		target = o.defaultSink
	}
	if target == "" {
		return nil
	}

	sink, err := o.registry.Get(target)
	if err != nil {
		return fmt.Errorf("orchestrator: sink %q: %w", target, err)
	}
	if err := sink.Apply(ctx, result.Values, result.Order); err != nil {
		return fmt.Errorf("orchestrator: write back: %w", err)
	}
	return nil
}
