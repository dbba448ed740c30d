package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyContent reports that a list source produced no usable lines.
var ErrEmptyContent = errors.New("content: list has no usable lines")

// FetchError wraps a failure to retrieve list content. The resolver recovers
// from it by contributing an empty sequence.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("content: fetch %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError wraps malformed input such as an unparseable date.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("content: parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Issue describes why one configuration cannot be used for generation.
type Issue struct {
	Index  int
	ID     string
	Kind   Kind
	Reason string
}

// ValidationError lists every configuration rejected by Validate.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "content: validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		label := issue.ID
		if label == "" {
			label = fmt.Sprintf("#%d", issue.Index)
		}
		parts = append(parts, fmt.Sprintf("%s (%s): %s", label, issue.Kind, issue.Reason))
	}
	return "content: validation failed: " + strings.Join(parts, "; ")
}
