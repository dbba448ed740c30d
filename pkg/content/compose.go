package content

import "strings"

// Compose joins resolved sequences index-wise into one string per
// placeholder. Output i concatenates s[i % len(s)] for every sequence s in
// order; empty sequences contribute nothing. A non-positive count yields an
// empty slice.
func Compose(sequences [][]string, count int) []string {
	if count <= 0 {
		return []string{}
	}

	out := make([]string, count)
	var b strings.Builder
	for i := range out {
		b.Reset()
		for _, seq := range sequences {
			if len(seq) == 0 {
				continue
			}
			b.WriteString(seq[i%len(seq)])
		}
		out[i] = b.String()
	}
	return out
}
