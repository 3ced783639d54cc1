package daybook

import (
	"fmt"
	"strings"
)

// fallbackTitle labels entries whose text produced an empty title.
const fallbackTitle = "Untitled"

// entriesToMarkdown renders entries as a single Markdown document: one
// second-level heading per entry, the body verbatim, and an emphasized
// tag line when the entry has tags.
func entriesToMarkdown(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		title := e.Title
		if title == "" {
			title = fallbackTitle
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		if e.Body != "" {
			b.WriteString(e.Body)
			b.WriteString("\n")
		}
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "\n*tags: %s*\n", strings.Join(e.Tags, ", "))
		}
	}
	return b.String()
}
