package content

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestRenderDate_Tokens(t *testing.T) {
	// Wednesday 5 March 2025
	at := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		format string
		want   string
	}{
		{format: "DD/MM/YYYY", want: "5/3/2025"},
		{format: "dddd, mmmm DD", want: "Wednesday, March 5"},
		{format: "ddd mmm DD YYYY", want: "Wed Mar 5 2025"},
		{format: "mmm DD, YYYY", want: "Mar 5, 2025"},
		{format: "no tokens", want: "no tokens"},
		{format: "DD DD", want: "5 DD"},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			if got := RenderDate(at, tc.format); got != tc.want {
				t.Fatalf("RenderDate(%q) = %q, want %q", tc.format, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29", nil)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}

	if _, err := ParseDate("2024-02-29T10:00:00+02:00", nil); err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}

	_, err = ParseDate("next tuesday", nil)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}

	if _, err := ParseDate("0001-01-01T00:00:00Z", nil); !errors.As(err, &perr) {
		t.Fatalf("expected the zero instant to be rejected, got %v", err)
	}
	if _, err := ParseDate("0001-01-01T00:00:01Z", nil); err != nil {
		t.Fatalf("parse year one: %v", err)
	}
}

func TestRandomInstant_WideSpanReachesBothEnds(t *testing.T) {
	earliest := time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := time.Date(3000, 12, 31, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewPCG(11, 7))

	lowest, highest := 9999, 0
	for i := 0; i < 2000; i++ {
		got := randomInstant(rng, earliest, latest)
		if got.Before(earliest) || got.After(latest) {
			t.Fatalf("instant %v outside [%v, %v]", got, earliest, latest)
		}
		lowest = min(lowest, got.Year())
		highest = max(highest, got.Year())
	}

	if lowest > 1200 || highest < 2800 {
		t.Fatalf("samples cover years %d..%d, want most of 1000..3000", lowest, highest)
	}
}

func TestRandomInstant_StaysInBounds(t *testing.T) {
	earliest := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	latest := earliest.Add(72 * time.Hour)

	for i := 0; i < 500; i++ {
		got := randomInstant(nil, earliest, latest)
		if got.Before(earliest) || got.After(latest) {
			t.Fatalf("instant %v outside [%v, %v]", got, earliest, latest)
		}
	}

	if got := randomInstant(nil, earliest, earliest); !got.Equal(earliest) {
		t.Fatalf("degenerate range should return earliest, got %v", got)
	}
}
