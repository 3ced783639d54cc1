package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alnah/go-daybook/internal/config"
)

// maxNameColumn caps the journal-name column so one long name doesn't
// push every path off screen.
const maxNameColumn = 20

// listJournals formats the configured journals as an aligned list,
// sorted by name.
func listJournals(cfg *config.Config) string {
	if len(cfg.Journals) == 0 {
		return "No journals configured.\n"
	}

	names := make([]string, 0, len(cfg.Journals))
	width := 0
	for name := range cfg.Journals {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)
	if width > maxNameColumn {
		width = maxNameColumn
	}

	var b strings.Builder
	b.WriteString("Journals:\n")
	for _, name := range names {
		fmt.Fprintf(&b, " * %-*s -> %s\n", width, name, cfg.Journals[name].Path)
	}
	return b.String()
}
