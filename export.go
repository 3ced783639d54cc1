package daybook

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Format selects the export output type.
type Format string

// Supported export formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ParseFormat resolves a user-supplied format name (case-insensitive,
// "md" accepted as shorthand).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout     time.Duration
	syntaxStyle string
}

// defaultExportTimeout bounds PDF rendering when the caller's context
// carries no deadline.
const defaultExportTimeout = 30 * time.Second

// ExportOption configures an Exporter.
type ExportOption func(*Exporter)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) ExportOption {
	if d <= 0 {
		panic("daybook: WithTimeout duration must be positive")
	}
	return func(x *Exporter) {
		x.cfg.timeout = d
	}
}

// WithSyntaxStyle sets the chroma style for fenced code blocks in entry
// bodies. Unknown names fall back to the default style.
func WithSyntaxStyle(name string) ExportOption {
	return func(x *Exporter) {
		x.cfg.syntaxStyle = name
	}
}

// Exporter converts entries to Markdown, HTML, or PDF. The zero value
// is not usable; create one with NewExporter and Close it when done to
// release the headless browser (only ever launched for PDF output).
type Exporter struct {
	cfg  exporterConfig
	html htmlConverter
	pdf  pdfRenderer
}

// NewExporter creates an Exporter with default configuration.
func NewExporter(opts ...ExportOption) *Exporter {
	x := &Exporter{
		cfg: exporterConfig{
			timeout:     defaultExportTimeout,
			syntaxStyle: defaultSyntaxStyle,
		},
	}
	for _, opt := range opts {
		opt(x)
	}

	x.html = newGoldmarkConverter(x.cfg.syntaxStyle)
	// Create the PDF renderer if not injected (e.g., by tests).
	if x.pdf == nil {
		x.pdf = newRodRenderer(x.cfg.timeout)
	}
	return x
}

// Export renders entries in the requested format. The context is used
// for cancellation and timeout.
func (x *Exporter) Export(ctx context.Context, entries []Entry, format Format) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	md := entriesToMarkdown(entries)
	if format == FormatMarkdown {
		return []byte(md), nil
	}

	htmlContent, err := x.html.ToHTML(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	switch format {
	case FormatHTML:
		return []byte(htmlContent), nil
	case FormatPDF:
		pdfBytes, err := x.pdf.RenderHTML(ctx, htmlContent)
		if err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
		return pdfBytes, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Close releases resources (the headless Chrome browser, if started).
func (x *Exporter) Close() error {
	if x.pdf != nil {
		return x.pdf.Close()
	}
	return nil
}
