package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mockfill/pkg/content"
)

// ErrInvalidEntry reports an index entry that names neither or both of path
// and url.
var ErrInvalidEntry = errors.New("catalog: entry must set exactly one of path or url")

type indexFile struct {
	Name  string      `json:"name" yaml:"name"`
	Lists []entryFile `json:"lists" yaml:"lists"`
}

type entryFile struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	URL  string `json:"url" yaml:"url"`
	Type string `json:"type" yaml:"type"`
}

// Parse decodes an index document fetched from indexURL. JSON is tried
// first, then YAML. Relative entry paths resolve against BaseURL(indexURL).
func Parse(indexURL string, data []byte) (Group, error) {
	doc, err := parseDocument(data, indexURL)
	if err != nil {
		return Group{}, err
	}

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return Group{}, &content.ParseError{Input: indexURL, Err: errors.New("index name is required")}
	}

	group := Group{
		Name:     name,
		IndexURL: indexURL,
		BaseURL:  BaseURL(indexURL),
		Lists:    make([]List, 0, len(doc.Lists)),
	}
	for i, entry := range doc.Lists {
		list, err := normaliseEntry(group, entry)
		if err != nil {
			return Group{}, &content.ParseError{
				Input: fmt.Sprintf("%s#lists[%d]", indexURL, i),
				Err:   err,
			}
		}
		group.Lists = append(group.Lists, list)
	}
	return group, nil
}

func parseDocument(data []byte, source string) (indexFile, error) {
	var doc indexFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return indexFile{}, &content.ParseError{Input: source, Err: content.ErrEmptyContent}
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = indexFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return indexFile{}, &content.ParseError{Input: source, Err: errors.New("invalid JSON or YAML index")}
}

func normaliseEntry(group Group, entry entryFile) (List, error) {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return List{}, errors.New("list name is required")
	}

	path := strings.TrimSpace(entry.Path)
	link := strings.TrimSpace(entry.URL)
	if (path == "") == (link == "") {
		return List{}, ErrInvalidEntry
	}

	kind, err := content.ParseKind(entry.Type)
	if err != nil {
		return List{}, err
	}

	list := List{
		ID:   ListID(group.Name, name),
		Name: name,
		Path: path,
		URL:  link,
		Kind: kind,
	}
	if list.URL == "" {
		list.URL = joinURL(group.BaseURL, path)
	}
	return list, nil
}

// BaseURL derives the location relative list paths resolve against: the
// index URL without a trailing "/index.json", or without its last path
// segment otherwise.
func BaseURL(indexURL string) string {
	trimmed := strings.TrimSpace(indexURL)
	if strings.HasSuffix(trimmed, "/index.json") {
		return strings.TrimSuffix(trimmed, "/index.json")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Path == "" {
		return strings.TrimSuffix(trimmed, "/")
	}
	if idx := strings.LastIndex(parsed.Path, "/"); idx >= 0 {
		parsed.Path = parsed.Path[:idx]
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

func joinURL(base, path string) string {
	if base == "" {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
