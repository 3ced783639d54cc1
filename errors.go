package daybook

import "errors"

// Sentinel errors for export operations. The text functions (SplitTitle,
// Highlight, Slugify, Tags) are total and have no error cases.
var (
	ErrNoEntries      = errors.New("no entries to export")
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
