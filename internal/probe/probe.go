// Package probe wraps the external "identify this file by content"
// dependency spec.md §6 isolates behind a single interface, grounded
// on phyten-todox's execx.Runner command-wrapper pattern. The default
// implementation shells out to the system `file` command; a
// magic-number classifier could substitute without touching
// internal/detect.
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Prober identifies a file's type by content. Implementations must be
// pure with respect to file content and side-effect-free other than
// reading the file, per spec.md §6.
type Prober interface {
	Probe(ctx context.Context, path string) (string, error)
}

// FileCommandProber shells out to the POSIX `file` utility.
type FileCommandProber struct {
	// Runner allows tests to substitute a fake command runner.
	Runner CommandRunner
}

// CommandRunner runs an external command and captures its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner is the default CommandRunner, backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("probe: running %s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// NewFileCommandProber returns a Prober backed by the real `file`
// binary.
func NewFileCommandProber() *FileCommandProber {
	return &FileCommandProber{Runner: execRunner{}}
}

// Probe runs `file -b <path>` and returns its raw description.
func (p *FileCommandProber) Probe(ctx context.Context, path string) (string, error) {
	out, err := p.Runner.Run(ctx, "file", "-b", path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
