// Package sandbox wraps commands in an isolated container environment.
package sandbox

import (
	"context"
	"log/slog"
	"path"

	"github.com/taskforge/taskforge/internal/config"
	"github.com/taskforge/taskforge/internal/registry"
	"github.com/taskforge/taskforge/internal/runner"
)

// Launcher is a runner.Runner decorator that rewrites each command into a
// `docker run` invocation against the configured toolchain image. The
// orchestrator stays unaware of the launch mechanism; disabling the
// sandbox in config simply skips this decorator.
type Launcher struct {
	inner      runner.Runner
	image      string
	workdir    string
	projectDir string
	logger     *slog.Logger
}

// New creates a sandbox launcher around inner. projectDir is the host
// directory mounted at cfg.Workdir inside the container.
func New(inner runner.Runner, cfg config.SandboxConfig, projectDir string, logger *slog.Logger) *Launcher {
	return &Launcher{
		inner:      inner,
		image:      cfg.Image,
		workdir:    cfg.Workdir,
		projectDir: projectDir,
		logger:     logger,
	}
}

// Execute wraps cmd and delegates to the inner runner. Exit status and
// output semantics are unchanged: docker propagates the contained
// program's exit code and streams.
func (l *Launcher) Execute(ctx context.Context, cmd registry.Command) (*runner.Result, error) {
	wrapped := l.wrap(cmd)
	l.logger.Debug("sandboxing command", "image", l.image, "program", cmd.Program)
	return l.inner.Execute(ctx, wrapped)
}

// wrap rewrites cmd into its containerized form. A command's relative
// working directory maps to the same path under the container workdir.
func (l *Launcher) wrap(cmd registry.Command) registry.Command {
	containerDir := l.workdir
	if cmd.Dir != "" {
		containerDir = path.Join(l.workdir, cmd.Dir)
	}

	args := []string{
		"run", "--rm",
		"-v", l.projectDir + ":" + l.workdir,
		"-w", containerDir,
		l.image,
		cmd.Program,
	}
	args = append(args, cmd.Args...)

	return registry.Command{
		Program: "docker",
		Args:    args,
		Dir:     l.projectDir,
	}
}
