package content

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies which variant an input configuration holds. The string
// values double as the `type` field of list index documents.
type Kind string

const (
	KindCustomString Kind = "custom-string"
	KindStrings      Kind = "strings"
	KindNumbers      Kind = "numbers"
	KindDates        Kind = "dates"
)

// ParseKind maps a raw type tag onto a Kind. An empty tag defaults to
// KindStrings, matching index documents that omit the type. The legacy
// TextBlock* names are accepted as aliases.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "strings", "string", "textblockstring":
		return KindStrings, nil
	case "numbers", "number", "textblocknumber":
		return KindNumbers, nil
	case "dates", "date", "textblockdate":
		return KindDates, nil
	case "custom-string", "custom", "textblockcustomstring":
		return KindCustomString, nil
	default:
		return "", fmt.Errorf("content: unknown kind %q", raw)
	}
}

// CasingRule selects the casing transform applied to list lines.
type CasingRule string

const (
	CasingOriginal CasingRule = "original"
	CasingSentence CasingRule = "sentence"
	CasingTitle    CasingRule = "title"
	CasingUpper    CasingRule = "upper"
	CasingLower    CasingRule = "lower"
)

// ParseCasing maps a raw casing name onto a CasingRule. Empty and "none"
// both mean CasingOriginal.
func ParseCasing(raw string) (CasingRule, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "original", "none":
		return CasingOriginal, nil
	case "sentence":
		return CasingSentence, nil
	case "title":
		return CasingTitle, nil
	case "upper":
		return CasingUpper, nil
	case "lower":
		return CasingLower, nil
	default:
		return "", fmt.Errorf("content: unknown casing %q", raw)
	}
}

// SortRule selects how a resolved sequence is reordered.
type SortRule string

const (
	SortOriginal   SortRule = "original"
	SortRandom     SortRule = "random"
	SortAscending  SortRule = "ascending"
	SortDescending SortRule = "descending"
)

// ParseSort maps a raw sort name onto a SortRule. Empty means SortOriginal.
func ParseSort(raw string) (SortRule, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "original", "none":
		return SortOriginal, nil
	case "random", "shuffle":
		return SortRandom, nil
	case "ascending", "asc":
		return SortAscending, nil
	case "descending", "desc":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("content: unknown sort %q", raw)
	}
}

// Base carries the fields shared by every input configuration.
type Base struct {
	// ID correlates the configuration with caller-side state. The core never
	// interprets it.
	ID    string
	Title string

	// SourceListID names the catalog list the configuration was created from.
	SourceListID string

	Sort      SortRule
	Confirmed bool
}

func (b *Base) common() *Base { return b }

// Config is an input configuration. The set of implementations is closed:
// CustomString, StringList, NumberRange and DateRange.
type Config interface {
	Kind() Kind
	common() *Base
}

// BaseOf exposes the shared fields of cfg for reading or in-place edits.
func BaseOf(cfg Config) *Base {
	if cfg == nil {
		return nil
	}
	return cfg.common()
}

// CustomString contributes fixed text to every placeholder.
type CustomString struct {
	Base
	Text string
}

func (*CustomString) Kind() Kind { return KindCustomString }

// StringList draws lines from newline-delimited text fetched from SourceURL.
type StringList struct {
	Base
	SourceURL string
	Casing    CasingRule
}

func (*StringList) Kind() Kind { return KindStrings }

// NumberRange generates uniformly sampled numbers in [Min, Max].
type NumberRange struct {
	Base
	Min           float64
	Max           float64
	DecimalPlaces int
}

func (*NumberRange) Kind() Kind { return KindNumbers }

// DateRange generates uniformly sampled instants in [Earliest, Latest]
// rendered through Format (see RenderDate for the token set). A zero
// Earliest or Latest means the bound is missing and leaves the range
// unconfirmed; ParseDate never yields that instant.
type DateRange struct {
	Base
	Earliest time.Time
	Latest   time.Time
	Format   string
}

func (*DateRange) Kind() Kind { return KindDates }

// DefaultDateFormat is used when a date configuration has no format.
const DefaultDateFormat = "mmm DD, YYYY"

// Clone returns a deep copy of cfg so callers can hand configurations to the
// resolver without sharing them with an editing session.
func Clone(cfg Config) Config {
	switch c := cfg.(type) {
	case *CustomString:
		cp := *c
		return &cp
	case *StringList:
		cp := *c
		return &cp
	case *NumberRange:
		cp := *c
		return &cp
	case *DateRange:
		cp := *c
		return &cp
	default:
		return nil
	}
}
