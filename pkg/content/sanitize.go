package content

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	linePolicyOnce sync.Once
	linePolicy     *bluemonday.Policy
)

// SanitizeLine strips any markup from a fetched list line and returns plain
// text. Entities escaped by the policy are decoded again so "&" survives.
func SanitizeLine(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := lineSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func lineSanitizer() *bluemonday.Policy {
	linePolicyOnce.Do(func() {
		linePolicy = bluemonday.StrictPolicy()
	})
	return linePolicy
}
