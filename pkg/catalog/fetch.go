package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-mockfill/pkg/content"
)

// Fetch loads every index in order and returns a catalog of the groups that
// loaded. Blank URLs are skipped silently; unreachable or malformed indexes
// are logged, recorded in Failures and skipped. Only a cancelled context is
// returned as an error.
func Fetch(ctx context.Context, fetcher content.Fetcher, indexURLs []string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fetcher == nil {
		return nil, errors.New("catalog: fetcher is required")
	}
	cat := New()

	for _, raw := range indexURLs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		indexURL := strings.TrimSpace(raw)
		if indexURL == "" {
			continue
		}

		group, err := load(ctx, fetcher, indexURL)
		if err != nil {
			logger.Warn("skipping list index", zap.String("index", indexURL), zap.Error(err))
			cat.RecordFailure(indexURL, err)
			continue
		}

		logger.Debug("loaded list index",
			zap.String("index", indexURL),
			zap.String("group", group.Name),
			zap.Int("lists", len(group.Lists)),
		)
		cat.Add(group)
	}
	return cat, nil
}

func load(ctx context.Context, fetcher content.Fetcher, indexURL string) (Group, error) {
	raw, err := fetcher.FetchText(ctx, indexURL)
	if err != nil {
		return Group{}, &content.FetchError{URL: indexURL, Err: err}
	}
	return Parse(indexURL, []byte(raw))
}
