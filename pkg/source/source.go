package source

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// urlSource references an HTTP/HTTPS endpoint.
type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	src, err := urlSourceFrom(raw)
	if err != nil {
		panic(err.Error())
	}
	return src
}

func urlSourceFrom(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("source: empty URL")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %v", raw, err)
	}
	return urlSource{raw: raw}, nil
}

// Parse classifies a location string: http(s) URLs become URL sources,
// "file://" URLs and bare paths become file sources, and "fs:" prefixed
// names address the loader's fs.FS.
func Parse(raw string) (Source, error) {
	location := strings.TrimSpace(raw)
	lower := strings.ToLower(location)
	switch {
	case location == "":
		return nil, errors.New("source: location is required")
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return urlSourceFrom(location)
	case strings.HasPrefix(lower, "file://"):
		parsed, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("source: invalid file URL %q: %v", location, err)
		}
		return SourceFromFile(parsed.Path), nil
	case strings.HasPrefix(location, "fs:"):
		return SourceFromFS(strings.TrimPrefix(location, "fs:")), nil
	case strings.Contains(location, "://"):
		return nil, fmt.Errorf("source: unsupported scheme in %q", location)
	default:
		return SourceFromFile(location), nil
	}
}
