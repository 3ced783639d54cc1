//go:build integration

package daybook

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// Requires Chrome/Chromium; run with: go test -tags integration
func TestExportPDFIntegration(t *testing.T) {
	x := NewExporter(WithTimeout(2 * time.Minute))
	defer func() { _ = x.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out, err := x.Export(ctx, testEntries(), FormatPDF)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic bytes: %q", out[:min(len(out), 8)])
	}
}
