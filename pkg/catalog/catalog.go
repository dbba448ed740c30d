// Package catalog loads the index documents that name the list sources
// StringList configurations draw from.
package catalog

import (
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-mockfill/pkg/content"
)

// DefaultIndexURL is the public index of community maintained lists.
const DefaultIndexURL = "https://raw.githubusercontent.com/naftalibeder/figma-mock-content/main/index.json"

// List is one selectable content source.
type List struct {
	ID   string       `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	Path string       `json:"path,omitempty" yaml:"path,omitempty"`
	URL  string       `json:"url" yaml:"url"`
	Kind content.Kind `json:"type" yaml:"type"`
}

// Group is the set of lists published by one index document.
type Group struct {
	Name     string `json:"name" yaml:"name"`
	IndexURL string `json:"indexUrl" yaml:"indexUrl"`
	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
	Lists    []List `json:"lists" yaml:"lists"`
}

// Failure records an index that could not be loaded.
type Failure struct {
	IndexURL string
	Err      error
}

// Catalog is a read-mostly registry of list groups keyed by list id. It is
// safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	groups   []Group
	lists    map[string]List
	failures []Failure
}

// New builds a catalog from groups. When two lists share an id the first
// one wins.
func New(groups ...Group) *Catalog {
	c := &Catalog{lists: make(map[string]List)}
	for _, g := range groups {
		c.add(g)
	}
	return c
}

func (c *Catalog) add(g Group) {
	g.Lists = slices.Clone(g.Lists)
	c.groups = append(c.groups, g)
	for _, list := range g.Lists {
		if _, exists := c.lists[list.ID]; exists {
			continue
		}
		c.lists[list.ID] = list
	}
}

// Add registers another group.
func (c *Catalog) Add(g Group) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lists == nil {
		c.lists = make(map[string]List)
	}
	c.add(g)
}

// RecordFailure notes an index that could not be loaded.
func (c *Catalog) RecordFailure(indexURL string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, Failure{IndexURL: indexURL, Err: err})
}

// Groups returns the loaded groups in load order.
func (c *Catalog) Groups() []Group {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		g.Lists = slices.Clone(g.Lists)
		out[i] = g
	}
	return out
}

// ListByID returns the list registered under id.
func (c *Catalog) ListByID(id string) (List, bool) {
	if c == nil {
		return List{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.lists[id]
	return list, ok
}

// URLFor resolves a list id into its content URL. Lists without a URL, such
// as the built-in pseudo lists, report false.
func (c *Catalog) URLFor(id string) (string, bool) {
	list, ok := c.ListByID(id)
	if !ok || list.URL == "" {
		return "", false
	}
	return list.URL, true
}

// IDs returns every registered list id sorted alphabetically.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.lists))
	for id := range c.lists {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Failures lists the indexes Fetch skipped.
func (c *Catalog) Failures() []Failure {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.failures)
}

var _ content.ListLookup = (*Catalog)(nil)

// Slug lowercases name and replaces every space with "-". Runs of spaces and
// leading or trailing spaces are kept, so ids stay stable across tools that
// derive them the same way.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// ListID derives the id of a list from its group and list names.
func ListID(group, list string) string {
	return Slug(group) + "-" + Slug(list)
}

// Defaults returns the built-in pseudo lists offered next to fetched ones:
// free text, generated numbers and generated dates.
func Defaults() Group {
	return Group{
		Name: "Built in",
		Lists: []List{
			{ID: "custom-text", Name: "Custom Text", Kind: content.KindCustomString},
			{ID: "numbers", Name: "Numbers", Kind: content.KindNumbers},
			{ID: "dates", Name: "Dates", Kind: content.KindDates},
		},
	}
}
