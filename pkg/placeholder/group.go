package placeholder

import (
	"fmt"
	"slices"
)

// Group is the set of descriptors sharing one grouping key.
type Group struct {
	Key     string
	Members map[string]Descriptor
	// Order holds member ids in encounter order.
	Order []string
	// Count is the number of descriptors that produced Key.
	Count int
}

// GroupBy partitions descriptors by the key kind derives. Groups are sorted
// by Count descending; ties keep the order in which their keys were first
// seen. Count grows by one for every descriptor, so counts always sum to
// len(descriptors). A repeated descriptor id replaces the earlier member, so
// Count equals len(Members) only when ids are unique.
func GroupBy(descriptors []Descriptor, kind Kind) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, d := range descriptors {
		key := KeyFor(d, kind)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{
				Key:     key,
				Members: make(map[string]Descriptor),
			})
		}

		g := &groups[pos]
		if _, seen := g.Members[d.ID]; !seen {
			g.Order = append(g.Order, d.ID)
		}
		g.Members[d.ID] = d
		g.Count++
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		return b.Count - a.Count
	})
	return groups
}

// Find returns the group whose key equals key.
func Find(groups []Group, key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// Descriptors returns the members in encounter order.
func (g Group) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(g.Order))
	for _, id := range g.Order {
		if d, ok := g.Members[id]; ok {
			out = append(out, d)
		}
	}
	return out
}

// IDs returns the member ids in encounter order.
func (g Group) IDs() []string {
	return slices.Clone(g.Order)
}

// Empty reports whether the group has no members.
func (g Group) Empty() bool {
	return g.Count == 0
}

// Summary renders the one-line description shown when picking a group: the
// distinct current texts, truncated, followed by the field count.
func (g Group) Summary() string {
	var texts []string
	seen := make(map[string]struct{})
	for _, d := range g.Descriptors() {
		if _, ok := seen[d.Characters]; ok {
			continue
		}
		seen[d.Characters] = struct{}{}
		texts = append(texts, d.Characters)
	}

	count := fmt.Sprintf("(%d fields)", g.Count)
	switch len(texts) {
	case 0:
		return count
	case 1:
		return truncate(texts[0], 30) + " " + count
	default:
		return truncate(texts[0], 12) + ", " + truncate(texts[1], 12) + ", ... " + count
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
