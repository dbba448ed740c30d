package content

import (
	"math"
	"strings"
)

// maxDecimalPlaces mirrors the upper bound accepted by fixed-point number
// formatting in the host UI.
const maxDecimalPlaces = 100

// IsConfirmed reports whether cfg has a usable source.
func IsConfirmed(cfg Config) bool {
	return unconfirmedReason(cfg) == ""
}

// Confirm recomputes cfg.Confirmed and returns the new value. Callers invoke
// it after every edit.
func Confirm(cfg Config) bool {
	base := BaseOf(cfg)
	if base == nil {
		return false
	}
	base.Confirmed = IsConfirmed(cfg)
	return base.Confirmed
}

// CanGenerate gates a generation request: the selected group must have
// members, at least one configuration must be present and every
// configuration must be confirmed.
func CanGenerate(cfgs []Config, groupIsEmpty bool) bool {
	if groupIsEmpty || len(cfgs) == 0 {
		return false
	}
	for _, cfg := range cfgs {
		base := BaseOf(cfg)
		if base == nil || !base.Confirmed {
			return false
		}
	}
	return true
}

// Validate returns a *ValidationError describing every configuration that
// is not confirmed, or nil when all of them are usable.
func Validate(cfgs []Config) error {
	var issues []Issue
	for i, cfg := range cfgs {
		base := BaseOf(cfg)
		if base == nil {
			issues = append(issues, Issue{Index: i, Reason: "configuration is nil"})
			continue
		}
		reason := unconfirmedReason(cfg)
		if reason == "" && !base.Confirmed {
			reason = "configuration is not confirmed"
		}
		if reason != "" {
			issues = append(issues, Issue{Index: i, ID: base.ID, Kind: cfg.Kind(), Reason: reason})
		}
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func unconfirmedReason(cfg Config) string {
	switch c := cfg.(type) {
	case *CustomString:
		if c.Text == "" {
			return "custom text is empty"
		}
	case *StringList:
		if strings.TrimSpace(c.SourceURL) == "" && strings.TrimSpace(c.SourceListID) == "" {
			return "list has no source"
		}
	case *NumberRange:
		if !finite(c.Min) || !finite(c.Max) {
			return "number bounds must be finite"
		}
		if c.Min > c.Max {
			return "minimum is greater than maximum"
		}
		if c.DecimalPlaces < 0 || c.DecimalPlaces > maxDecimalPlaces {
			return "decimal places out of range"
		}
	case *DateRange:
		// The zero time marks an unset bound.
		if c.Earliest.IsZero() || c.Latest.IsZero() {
			return "date bounds are missing or do not parse"
		}
		if c.Earliest.After(c.Latest) {
			return "earliest date is after latest date"
		}
	default:
		return "unsupported configuration"
	}
	return ""
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
