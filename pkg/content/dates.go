package content

import (
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// dateLayouts lists the accepted date bound spellings, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseDate parses a date bound. Values without a zone are read in loc
// (UTC when loc is nil). The zero instant, 0001-01-01T00:00:00Z, is rejected
// because DateRange uses it to mark a missing bound.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, &ParseError{Input: raw, Err: errors.New("date is empty")}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			if t.IsZero() {
				return time.Time{}, &ParseError{Input: raw, Err: errors.New("zero instant is reserved for a missing bound")}
			}
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Input: raw, Err: errors.New("unrecognised date layout")}
}

// RenderDate substitutes the format tokens with parts of t:
//
//	DD    day of month (1-31)
//	dddd  full weekday name
//	ddd   abbreviated weekday name
//	mmmm  full month name
//	mmm   abbreviated month name
//	MM    month number (1-12)
//	YYYY  four digit year
//
// Each token is replaced once, and longer tokens are applied before the
// shorter tokens they contain.
func RenderDate(t time.Time, format string) string {
	weekday := t.Weekday().String()
	month := t.Month().String()

	out := format
	out = strings.Replace(out, "DD", strconv.Itoa(t.Day()), 1)
	out = strings.Replace(out, "dddd", weekday, 1)
	out = strings.Replace(out, "ddd", weekday[:3], 1)
	out = strings.Replace(out, "mmmm", month, 1)
	out = strings.Replace(out, "mmm", month[:3], 1)
	out = strings.Replace(out, "MM", strconv.Itoa(int(t.Month())), 1)
	out = strings.Replace(out, "YYYY", strconv.Itoa(t.Year()), 1)
	return out
}

// randomInstant samples uniformly from the closed interval [earliest, latest].
func randomInstant(rng *rand.Rand, earliest, latest time.Time) time.Time {
	if !latest.After(earliest) {
		return earliest
	}
	if span := latest.Sub(earliest); span < math.MaxInt64 {
		return earliest.Add(time.Duration(int64N(rng, int64(span)+1)))
	}

	// Sub saturates for spans over ~292 years: pick a whole second, then the
	// nanosecond within it.
	seconds := latest.Unix() - earliest.Unix()
	offset := int64N(rng, seconds+1)
	nanos := int64(earliest.Nanosecond()) + int64N(rng, int64(time.Second))
	instant := time.Unix(earliest.Unix()+offset, nanos).In(earliest.Location())
	if instant.After(latest) {
		return latest
	}
	return instant
}
