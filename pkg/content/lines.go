package content

import "strings"

// SplitLines turns newline-delimited text into trimmed, non-empty lines.
// Carriage returns from CRLF files are trimmed with the other whitespace.
func SplitLines(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(part)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
