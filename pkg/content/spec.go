package content

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Spec is the flat, serialisable form of a Config used by request files and
// session snapshots. Only the fields relevant to Type are read.
type Spec struct {
	Type   string `json:"type" yaml:"type"`
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	ListID string `json:"listId,omitempty" yaml:"listId,omitempty"`
	Sort   string `json:"sort,omitempty" yaml:"sort,omitempty"`

	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Casing string `json:"casing,omitempty" yaml:"casing,omitempty"`

	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Decimals *int     `json:"decimals,omitempty" yaml:"decimals,omitempty"`

	Earliest string `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest   string `json:"latest,omitempty" yaml:"latest,omitempty"`
	Format   string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Config converts s into a Config and computes its confirmation
// state. Unknown type, sort or casing names are errors; missing or
// malformed bounds are not, they leave the result unconfirmed so Validate
// can explain what is wrong.
func (s Spec) Config() (Config, error) {
	kind, err := ParseKind(s.Type)
	if err != nil {
		return nil, err
	}
	sortRule, err := ParseSort(s.Sort)
	if err != nil {
		return nil, err
	}

	base := Base{
		ID:           s.ID,
		Title:        s.Title,
		SourceListID: s.ListID,
		Sort:         sortRule,
	}

	var cfg Config
	switch kind {
	case KindCustomString:
		cfg = &CustomString{Base: base, Text: s.Text}
	case KindStrings:
		casing, err := ParseCasing(s.Casing)
		if err != nil {
			return nil, err
		}
		cfg = &StringList{Base: base, SourceURL: s.URL, Casing: casing}
	case KindNumbers:
		n := &NumberRange{Base: base, Min: math.NaN(), Max: math.NaN()}
		if s.Min != nil {
			n.Min = *s.Min
		}
		if s.Max != nil {
			n.Max = *s.Max
		}
		if s.Decimals != nil {
			n.DecimalPlaces = *s.Decimals
		}
		cfg = n
	case KindDates:
		d := &DateRange{Base: base, Format: s.Format}
		if d.Format == "" {
			d.Format = DefaultDateFormat
		}
		d.Earliest, _ = ParseDate(s.Earliest, time.UTC)
		d.Latest, _ = ParseDate(s.Latest, time.UTC)
		cfg = d
	default:
		return nil, fmt.Errorf("content: unsupported kind %q", kind)
	}

	Confirm(cfg)
	return cfg, nil
}

// SpecFor converts cfg back into its serialisable form.
func SpecFor(cfg Config) (Spec, error) {
	base := BaseOf(cfg)
	if base == nil {
		return Spec{}, errors.New("content: config is nil")
	}
	spec := Spec{
		Type:   string(cfg.Kind()),
		ID:     base.ID,
		Title:  base.Title,
		ListID: base.SourceListID,
		Sort:   string(base.Sort),
	}

	switch c := cfg.(type) {
	case *CustomString:
		spec.Text = c.Text
	case *StringList:
		spec.URL = c.SourceURL
		spec.Casing = string(c.Casing)
	case *NumberRange:
		min, max, decimals := c.Min, c.Max, c.DecimalPlaces
		if finite(min) {
			spec.Min = &min
		}
		if finite(max) {
			spec.Max = &max
		}
		spec.Decimals = &decimals
	case *DateRange:
		if !c.Earliest.IsZero() {
			spec.Earliest = c.Earliest.Format(time.RFC3339)
		}
		if !c.Latest.IsZero() {
			spec.Latest = c.Latest.Format(time.RFC3339)
		}
		spec.Format = c.Format
	}
	return spec, nil
}

// Configs converts a list of specs, stopping at the first invalid one.
func Configs(specs []Spec) ([]Config, error) {
	out := make([]Config, 0, len(specs))
	for i, spec := range specs {
		cfg, err := spec.Config()
		if err != nil {
			return nil, fmt.Errorf("content: config %d: %w", i, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}
