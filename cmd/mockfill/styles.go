package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

func printGroups(w io.Writer, kind placeholder.Kind, groups []placeholder.Group) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Grouped by %s (%d groups)", kind.Label(), len(groups))))
	if len(groups) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no text placeholders in snapshot"))
		return
	}

	width := 0
	for _, g := range groups {
		width = max(width, lipgloss.Width(quoteKey(g.Key)))
	}
	for _, g := range groups {
		key := quoteKey(g.Key)
		pad := strings.Repeat(" ", width-lipgloss.Width(key))
		fmt.Fprintf(w, "  %s%s  %s  %s\n",
			keyStyle.Render(key), pad,
			countStyle.Render(fmt.Sprintf("x%d", g.Count)),
			dimStyle.Render(g.Summary()),
		)
	}
}

func printCatalog(w io.Writer, cat *catalog.Catalog) {
	for _, g := range cat.Groups() {
		fmt.Fprintln(w, titleStyle.Render(g.Name))
		if g.IndexURL != "" {
			fmt.Fprintln(w, dimStyle.Render("  "+g.IndexURL))
		}
		for _, l := range g.Lists {
			fmt.Fprintf(w, "  %s  %s  %s\n", keyStyle.Render(l.ID), countStyle.Render(string(l.Kind)), dimStyle.Render(l.Name))
		}
	}
	for _, f := range cat.Failures() {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("skipped %s: %v", f.IndexURL, f.Err)))
	}
}

func quoteKey(key string) string {
	if key == "" {
		return `""`
	}
	return key
}
