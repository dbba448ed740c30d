package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-mockfill/pkg/source"
)

// Loader implements source.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level mockfill package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

// Ensure the implementation satisfies the public interface.
var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options source.LoaderOptions) source.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = source.DefaultMaxBytes
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  maxBytes,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src source.Source) (source.Document, error) {
	if src == nil {
		return source.Document{}, errors.New("source loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case source.SourceKindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case source.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxBytes)
	case source.SourceKindURL:
		if !l.allowHTTP {
			return source.Document{}, errors.New("source loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = errors.New("source loader: unsupported source kind")
	}
	if err != nil {
		return source.Document{}, err
	}

	return source.NewDocument(src, data)
}
