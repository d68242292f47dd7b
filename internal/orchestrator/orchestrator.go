// Package orchestrator executes a resolved plan sequentially with
// fail-fast semantics.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskforge/taskforge/internal/progress"
	"github.com/taskforge/taskforge/internal/registry"
	"github.com/taskforge/taskforge/internal/resolver"
	"github.com/taskforge/taskforge/internal/runner"
)

// CommandFailure reports the first failing command of a run: the task it
// belongs to, the command itself, and the exit status (0 when the command
// never started).
type CommandFailure struct {
	Task     string
	Command  registry.Command
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (f *CommandFailure) Error() string {
	return fmt.Sprintf("task %s: command %q: %v", f.Task, f.Command.String(), f.Err)
}

// Unwrap returns the underlying runner error.
func (f *CommandFailure) Unwrap() error {
	return f.Err
}

// Report summarizes one completed or aborted run.
type Report struct {
	RunID    string
	Root     string
	Executed []string
	Duration time.Duration
}

// Orchestrator walks execution plans and drives the command runner.
type Orchestrator struct {
	reg     *registry.Registry
	run     runner.Runner
	display *progress.Display
	logger  *slog.Logger
}

// New creates an orchestrator over the given registry and runner.
func New(reg *registry.Registry, run runner.Runner, display *progress.Display, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{reg: reg, run: run, display: display, logger: logger}
}

// Run resolves root and executes the plan in order, each task's commands
// in declared order. The first command failure aborts the run: remaining
// commands of the current task and all later tasks are skipped, and the
// returned error is a *CommandFailure naming the failing task, command,
// and exit status. The partial Report is returned alongside the error.
func (o *Orchestrator) Run(ctx context.Context, root string) (*Report, error) {
	plan, err := resolver.Resolve(o.reg, root)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID: uuid.NewString(),
		Root:  root,
	}
	start := time.Now()

	o.logger.Info("run started", "run_id", report.RunID, "root", root, "tasks", len(plan.Tasks))
	o.display.PlanResolved(root, plan.Names())

	for i, t := range plan.Tasks {
		taskStart := time.Now()
		o.display.TaskStart(t.Name, i+1, len(plan.Tasks))

		for _, cmd := range t.Commands {
			o.display.CommandStart(t.Name, cmd)

			res, err := o.run.Execute(ctx, cmd)
			if err != nil {
				failure := &CommandFailure{
					Task:    t.Name,
					Command: cmd,
					Err:     err,
				}
				if res != nil {
					failure.ExitCode = res.ExitCode
				}

				report.Duration = time.Since(start)
				o.logger.Error("run failed",
					"run_id", report.RunID,
					"task", t.Name,
					"command", cmd.String(),
					"exit_code", failure.ExitCode,
				)
				o.display.CommandFailed(t.Name, cmd, err)
				return report, failure
			}
		}

		report.Executed = append(report.Executed, t.Name)
		o.display.TaskComplete(t.Name, time.Since(taskStart))
	}

	report.Duration = time.Since(start)
	o.logger.Info("run completed", "run_id", report.RunID, "root", root, "duration", report.Duration)
	o.display.RunComplete(root, len(report.Executed), report.Duration)
	return report, nil
}
