package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	daybook "github.com/alnah/go-daybook"
	"github.com/alnah/go-daybook/internal/config"
)

// fakeExporter records export calls without touching a browser.
type fakeExporter struct {
	out    []byte
	err    error
	format daybook.Format
	closed bool
}

func (f *fakeExporter) Export(_ context.Context, _ []daybook.Entry, format daybook.Format) ([]byte, error) {
	f.format = format
	return f.out, f.err
}

func (f *fakeExporter) Close() error {
	f.closed = true
	return nil
}

// writeConfig stores a config file in a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daybook.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// plainConfig turns highlighting off so output assertions stay free of
// escape sequences.
const plainConfig = `
tagsymbols: "@#"
highlight: false
journals:
  default: ~/journal.txt
  work: ~/work.txt
`

func TestRunPrintsTitleAndBody(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig)}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"Big", "day.", "Met", "@bob."}, strings.NewReader(""), &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Big day.\nMet @bob.\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunTitleOnly(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig), titleOnly: true}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"Big day. Met @bob."}, strings.NewReader(""), &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stdout.String() != "Big day.\n" {
		t.Errorf("stdout = %q, want title only", stdout.String())
	}
}

func TestRunReadsStdin(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig)}
	var stdout, stderr bytes.Buffer

	err := run(flags, nil, strings.NewReader("From a pipe\nwith a body"), &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "From a pipe\nwith a body\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunNoText(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig)}
	var stdout, stderr bytes.Buffer

	err := run(flags, nil, strings.NewReader("   \n"), &stdout, &stderr, nil)
	if !errors.Is(err, ErrNoText) {
		t.Errorf("run error = %v, want ErrNoText", err)
	}
}

func TestRunNoColorOverridesConfig(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
tagsymbols: "@"
highlight: true
colors:
  body: none
  title: cyan
  tags: yellow
`)
	flags := &cliFlags{config: cfgPath, noColor: true}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"met @bob"}, strings.NewReader(""), &stdout, &stderr, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(stdout.String(), "\x1b[") {
		t.Errorf("stdout contains escape sequences despite --no-color: %q", stdout.String())
	}
}

func TestRunWarnsOnInvalidColors(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, `
highlight: false
colors:
  body: sparkly
  title: cyan
  tags: yellow
`)
	flags := &cliFlags{config: cfgPath}
	var stdout, stderr bytes.Buffer

	if err := run(flags, []string{"hello"}, strings.NewReader(""), &stdout, &stderr, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr.String(), "sparkly") {
		t.Errorf("stderr = %q, want invalid color warning", stderr.String())
	}
	if stdout.String() != "hello\n" {
		t.Errorf("stdout = %q, want entry despite warning", stdout.String())
	}
}

func TestRunList(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig), list: true}
	var stdout, stderr bytes.Buffer

	if err := run(flags, nil, strings.NewReader(""), &stdout, &stderr, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"default", "work", "~/journal.txt", "~/work.txt"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output %q missing %q", out, want)
		}
	}
}

func TestRunUnknownJournal(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig), journal: "vacation"}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"text"}, strings.NewReader(""), &stdout, &stderr, nil)
	if !errors.Is(err, config.ErrUnknownJournal) {
		t.Errorf("run error = %v, want ErrUnknownJournal", err)
	}
}

func TestRunMissingExplicitConfig(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: filepath.Join(t.TempDir(), "missing.yaml")}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"text"}, strings.NewReader(""), &stdout, &stderr, nil)
	if !errors.Is(err, config.ErrNotFound) {
		t.Errorf("run error = %v, want ErrNotFound", err)
	}
}

func TestRunExport(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "entry.md")
	flags := &cliFlags{
		config: writeConfig(t, plainConfig),
		export: "md",
		out:    outPath,
	}
	fake := &fakeExporter{out: []byte("## Big day.\n")}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"Big day. Details."}, strings.NewReader(""), &stdout, &stderr, fake)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if fake.format != daybook.FormatMarkdown {
		t.Errorf("export format = %q, want markdown", fake.format)
	}
	if !fake.closed {
		t.Error("exporter was not closed")
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "## Big day.\n" {
		t.Errorf("export file = %q, want exporter output", data)
	}
	if !strings.Contains(stdout.String(), "Created "+outPath) {
		t.Errorf("stdout = %q, want Created message", stdout.String())
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{config: writeConfig(t, plainConfig), export: "docx"}
	var stdout, stderr bytes.Buffer

	err := run(flags, []string{"text"}, strings.NewReader(""), &stdout, &stderr, &fakeExporter{})
	if !errors.Is(err, daybook.ErrUnknownFormat) {
		t.Errorf("run error = %v, want ErrUnknownFormat", err)
	}
}

func TestExportEntryDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	entry := daybook.NewEntry("Quiet evening at home.", "@")
	flags := &cliFlags{export: "markdown"}
	var stdout bytes.Buffer

	err := exportEntry(entry, flags, &stdout, &fakeExporter{out: []byte("x")})
	if err != nil {
		t.Fatalf("exportEntry: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "quiet-evening-at-home.md")); err != nil {
		t.Errorf("expected slug-named export file: %v", err)
	}
}
