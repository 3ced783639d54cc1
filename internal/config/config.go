// Package config loads, scopes, and verifies daybook's YAML
// configuration. A config maps journal names to journal files and
// carries the rendering options the core library consumes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	daybook "github.com/alnah/go-daybook"
	"github.com/alnah/go-daybook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrNotFound       = errors.New("config file not found")
	ErrParse          = errors.New("failed to parse config")
	ErrUnknownJournal = errors.New("journal not defined in config")
	ErrInvalidColor   = errors.New("invalid color name")
)

// DefaultJournalKey names the journal used when none is requested.
const DefaultJournalKey = "default"

// Colors holds the color names used when rendering entries. Values are
// palette names understood by daybook.Colorize, or "NONE".
type Colors struct {
	Body  string `yaml:"body"`
	Title string `yaml:"title"`
	Tags  string `yaml:"tags"`
}

// Config is the top-level configuration. Journal entries may override
// any of the rendering fields; see Scope.
type Config struct {
	Journals   map[string]Journal `yaml:"journals"`
	Editor     string             `yaml:"editor"`
	TagSymbols string             `yaml:"tagsymbols"`
	Highlight  bool               `yaml:"highlight"`
	Colors     Colors             `yaml:"colors"`
}

// Journal configures a single journal. In YAML it is either a bare
// string (shorthand for the journal path) or a mapping that may
// override per-journal rendering options.
type Journal struct {
	Path       string  `yaml:"journal"`
	Editor     string  `yaml:"editor"`
	TagSymbols string  `yaml:"tagsymbols"`
	Highlight  *bool   `yaml:"highlight"`
	Colors     *Colors `yaml:"colors"`
}

// UnmarshalYAML accepts the string shorthand form.
func (j *Journal) UnmarshalYAML(data []byte) error {
	var path string
	if err := yaml.Unmarshal(data, &path); err == nil {
		*j = Journal{Path: path}
		return nil
	}
	type plain Journal
	var p plain
	if err := yaml.Unmarshal(data, &p); err != nil {
		return err
	}
	*j = Journal(p)
	return nil
}

// Default returns the configuration used when no config file exists:
// highlighting on, "@" tags, yellow tags, cyan titles.
func Default() *Config {
	return &Config{
		Journals:   map[string]Journal{},
		TagSymbols: daybook.DefaultTagSymbols,
		Highlight:  true,
		Colors: Colors{
			Body:  daybook.ColorNone,
			Title: "cyan",
			Tags:  "yellow",
		},
	}
}

// DefaultPath returns the standard config file location
// (os.UserConfigDir/daybook/daybook.yaml).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "daybook", "daybook.yaml"), nil
}

// Load reads a config file. Missing keys keep their Default values.
// Returns ErrNotFound if the file does not exist (no silent fallback;
// callers decide whether a missing file is acceptable).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag or config dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	cfg := Default()
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return cfg, nil
}

// Scope returns a copy of the config with the named journal's overrides
// applied. An empty name selects DefaultJournalKey when it exists.
// Requesting a journal that is not defined is an error.
func (c *Config) Scope(name string) (*Config, error) {
	scoped := *c
	if name == "" {
		name = DefaultJournalKey
		if _, ok := c.Journals[name]; !ok {
			return &scoped, nil
		}
	}

	j, ok := c.Journals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJournal, name)
	}
	if j.Editor != "" {
		scoped.Editor = j.Editor
	}
	if j.TagSymbols != "" {
		scoped.TagSymbols = j.TagSymbols
	}
	if j.Highlight != nil {
		scoped.Highlight = *j.Highlight
	}
	if j.Colors != nil {
		scoped.Colors = *j.Colors
	}
	return &scoped, nil
}

// Verify checks that every configured color resolves to a display color
// or the NONE sentinel. All problems are reported; rendering itself
// degrades gracefully, so these are warnings for the user, not fatal
// errors.
func (c *Config) Verify() []error {
	var errs []error
	for _, check := range []struct {
		key   string
		value string
	}{
		{"colors.body", c.Colors.Body},
		{"colors.title", c.Colors.Title},
		{"colors.tags", c.Colors.Tags},
	} {
		if !daybook.ValidColor(check.value) {
			errs = append(errs, fmt.Errorf("%w: %s set to %q", ErrInvalidColor, check.key, check.value))
		}
	}
	return errs
}

// BodyContext builds the render context for entry bodies.
func (c *Config) BodyContext() daybook.RenderContext {
	ctx := daybook.DefaultRenderContext()
	ctx.TagSymbols = c.TagSymbols
	ctx.BaseColor = c.Colors.Body
	ctx.TagColor = c.Colors.Tags
	ctx.Highlight = c.Highlight
	return ctx
}

// TitleContext builds the render context for entry titles (title color,
// bold).
func (c *Config) TitleContext() daybook.RenderContext {
	ctx := c.BodyContext()
	ctx.BaseColor = c.Colors.Title
	return ctx.ForTitle()
}
