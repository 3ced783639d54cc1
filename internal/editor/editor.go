// Package editor launches an external editor to compose entry text,
// round-tripping through a temp file the way terminal journaling tools
// traditionally do.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// Sentinel errors for editor operations.
var (
	ErrNoCommand  = errors.New("no editor command configured")
	ErrBadCommand = errors.New("cannot parse editor command")
	ErrRun        = errors.New("editor exited with error")
)

// Editor invokes a shell-style editor command ("vim", "code --wait",
// ...) on a temp file and reads the result back.
type Editor struct {
	command string
}

// New creates an Editor for the given command line.
func New(command string) Editor {
	return Editor{command: command}
}

// Compose writes template to a temp file, runs the editor on it
// attached to the caller's terminal, and returns the file's final
// content. The temp file is always removed.
func (e Editor) Compose(ctx context.Context, template string) (string, error) {
	argv, err := splitCommand(e.command)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "daybook-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(template); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing template: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...) // #nosec G204 -- the command is the user's own editor setting
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrRun, e.command, err)
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- temp file created above
	if err != nil {
		return "", fmt.Errorf("reading composed text: %w", err)
	}
	return string(raw), nil
}

// splitCommand tokenizes the editor command with shell-words rules so
// quoted arguments ("code --user-data-dir 'my dir'") survive.
func splitCommand(command string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, ErrNoCommand
	}
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadCommand, command, err)
	}
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	return argv, nil
}
