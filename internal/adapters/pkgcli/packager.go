// Package pkgcli provides the packager adapter that drives the pkg CLI.
package pkgcli

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCommand is the packager executable looked up on PATH.
const DefaultCommand = "pkg"

var _ ports.Packager = (*Packager)(nil)

// Packager implements ports.Packager by spawning the pkg CLI as a subprocess.
type Packager struct {
	command string
	logger  ports.Logger
}

// NewPackager creates a new Packager using the default pkg executable.
func NewPackager(logger ports.Logger) *Packager {
	return &Packager{
		command: DefaultCommand,
		logger:  logger,
	}
}

// WithCommand overrides the packager executable. Used for testing.
func (p *Packager) WithCommand(command string) *Packager {
	p.command = command
	return p
}

// Package invokes the packager subprocess and waits for its exit. Stdout and
// stderr are streamed to the logger line by line.
func (p *Packager) Package(ctx context.Context, req domain.PackageRequest) error {
	args := buildArgs(req)

	cmd := exec.CommandContext(ctx, p.command, args...) //nolint:gosec // command is the configured packager
	cmd.Stdout = &logWriter{logger: p.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: p.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrPackageFailed.Error()), "exit_code", exitCode)
		return zerr.With(wrapped, "targets", strings.Join(req.Targets, ","))
	}

	return nil
}

// buildArgs constructs the pkg CLI argument list for a request.
func buildArgs(req domain.PackageRequest) []string {
	args := []string{
		req.Bundle,
		"--targets", strings.Join(req.Targets, ","),
		"--output", req.Output,
	}
	if req.AssetGlob != "" {
		args = append(args, "--assets", req.AssetGlob)
	}
	return args
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write splits the chunk into lines and forwards each to the logger.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
