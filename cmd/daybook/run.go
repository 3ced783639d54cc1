package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	daybook "github.com/alnah/go-daybook"
	"github.com/alnah/go-daybook/internal/config"
	"github.com/alnah/go-daybook/internal/editor"
)

// Sentinel errors for CLI operations.
var (
	ErrNoText = errors.New("no entry text provided")
)

// exporter is the interface run needs from the export service.
type exporter interface {
	Export(ctx context.Context, entries []daybook.Entry, format daybook.Format) ([]byte, error)
	Close() error
}

// run executes one CLI invocation. exp may be nil, in which case a real
// Exporter is created on demand; tests inject a fake.
func run(flags *cliFlags, args []string, stdin io.Reader, stdout, stderr io.Writer, exp exporter) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	for _, warn := range cfg.Verify() {
		fmt.Fprintf(stderr, "[warning] %v\n", warn)
	}

	if flags.list {
		fmt.Fprint(stdout, listJournals(cfg))
		return nil
	}

	scoped, err := cfg.Scope(flags.journal)
	if err != nil {
		return err
	}
	if flags.noColor {
		scoped.Highlight = false
	}

	raw, err := entryText(args, scoped, stdin, flags.verbose, stderr)
	if err != nil {
		return err
	}
	entry := daybook.NewEntry(raw, scoped.TagSymbols)

	if flags.export != "" {
		return exportEntry(entry, flags, stdout, exp)
	}

	fmt.Fprintln(stdout, daybook.Highlight(entry.Title, scoped.TitleContext()))
	if !flags.titleOnly && entry.Body != "" {
		fmt.Fprintln(stdout, daybook.Highlight(entry.Body, scoped.BodyContext()))
	}
	return nil
}

// loadConfig reads the flag-specified config, or the one at the default
// location. A missing default file falls back to built-in defaults; a
// missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	defPath, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	cfg, err := config.Load(defPath)
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// entryText resolves the raw entry: positional arguments win, then the
// configured editor, then piped stdin.
func entryText(args []string, cfg *config.Config, stdin io.Reader, verbose bool, stderr io.Writer) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if cfg.Editor != "" {
		if verbose {
			fmt.Fprintf(stderr, "Opening editor: %s\n", cfg.Editor)
		}
		raw, err := editor.New(cfg.Editor).Compose(context.Background(), "")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(raw) == "" {
			return "", fmt.Errorf("%w: nothing saved in editor", ErrNoText)
		}
		return raw, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrNoText
	}
	return string(data), nil
}

// exportEntry renders the entry in the requested format and writes it
// to --out, defaulting to a slug-derived filename.
func exportEntry(entry daybook.Entry, flags *cliFlags, stdout io.Writer, exp exporter) error {
	format, err := daybook.ParseFormat(flags.export)
	if err != nil {
		return err
	}

	if exp == nil {
		exp = daybook.NewExporter()
	}
	defer func() { _ = exp.Close() }()

	out, err := exp.Export(context.Background(), []daybook.Entry{entry}, format)
	if err != nil {
		return err
	}

	path := flags.out
	if path == "" {
		slug := entry.Slug()
		if slug == "" {
			slug = "entry"
		}
		path = slug + "." + format.Ext()
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "Created %s\n", path)
	return nil
}
