// Package daybook renders and segments journal entry text for terminal
// display.
//
// # Quick Start
//
// Split a freeform entry into a title (first sentence) and a body, then
// colorize inline tags for the terminal:
//
//	title, body := daybook.SplitTitle(raw)
//
//	ctx := daybook.DefaultRenderContext()
//	ctx.TagSymbols = "@#"
//	fmt.Println(daybook.Highlight(title, ctx.ForTitle()))
//	fmt.Println(daybook.Highlight(body, ctx))
//
// All text operations are pure functions over Unicode strings: they
// never fail, never touch the filesystem, and are safe to call from
// multiple goroutines.
//
// # Rendering Pipeline
//
// Highlight splits text into alternating plain and tag fragments, colors
// each fragment (tags bold in the tag color, prose in the base color),
// and reassembles them with corrected word spacing. Concatenating the
// fragments of a split always reconstructs the input exactly; spacing
// correction happens only during reassembly.
//
// Color names ("red", "brightcyan", ...) resolve to ANSI escapes through
// an explicit termenv profile carried by the RenderContext. Unknown
// names and the "NONE" sentinel degrade to uncolored text instead of
// failing; validate configuration up front with ValidColor.
//
// # Export
//
// Exporter converts entries to Markdown, standalone HTML (Goldmark with
// syntax highlighting), or PDF (headless Chrome via go-rod):
//
//	exp := daybook.NewExporter()
//	defer exp.Close()
//
//	out, err := exp.Export(ctx, entries, daybook.FormatHTML)
//
// PDF generation requires Chrome/Chromium; go-rod downloads a managed
// Chromium on first run. Set ROD_BROWSER_BIN to use a preinstalled
// binary, and ROD_NO_SANDBOX=1 in containers.
package daybook
