// Package runner executes a single external command and reports its
// exit status.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/taskforge/taskforge/internal/errors"
	"github.com/taskforge/taskforge/internal/registry"
)

// Result holds the outcome of one command invocation.
type Result struct {
	ExitCode int
}

// Runner launches a command and blocks until it terminates. Implementations
// must stream the command's output rather than buffering it, so the user
// sees tool output in real time.
type Runner interface {
	Execute(ctx context.Context, cmd registry.Command) (*Result, error)
}

// ExecRunner runs commands directly on the host via os/exec.
type ExecRunner struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithStdout redirects command standard output (defaults to os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(r *ExecRunner) { r.stdout = w }
}

// WithStderr redirects command standard error (defaults to os.Stderr).
func WithStderr(w io.Writer) Option {
	return func(r *ExecRunner) { r.stderr = w }
}

// NewExecRunner creates a runner that forwards output to the caller's
// standard streams.
func NewExecRunner(logger *slog.Logger, opts ...Option) *ExecRunner {
	r := &ExecRunner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute runs cmd and blocks until it exits. A start failure is reported
// as LAUNCH_FAILED; a failure exit code is reported as NON_ZERO_EXIT with
// the status carried both on the error and in the Result.
func (r *ExecRunner) Execute(ctx context.Context, cmd registry.Command) (*Result, error) {
	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	r.logger.Debug("running command", "program", cmd.Program, "args", cmd.Args, "dir", cmd.Dir)

	err := c.Run()
	if err != nil {
		// Context cancellation takes priority over the process's own
		// exit status.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run %s: %w", cmd.Program, ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			code := exitErr.ExitCode()
			return &Result{ExitCode: code}, errors.ErrNonZeroExit(cmd.Program, code)
		}
		return nil, errors.ErrLaunchFailed(cmd.Program, err)
	}

	return &Result{ExitCode: 0}, nil
}
