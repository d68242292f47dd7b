// Package progress provides progress display for taskforge runs.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/taskforge/taskforge/internal/registry"
)

// Display shows run progress to the user.
type Display struct {
	out   io.Writer
	quiet bool
	plain bool
}

// New creates a progress display. quiet suppresses non-essential output;
// plain drops emoji for non-TTY or scripted use.
func New(quiet, plain bool) *Display {
	return &Display{out: os.Stdout, quiet: quiet, plain: plain}
}

// NewWriter creates a display writing to w, for tests.
func NewWriter(w io.Writer, quiet, plain bool) *Display {
	return &Display{out: w, quiet: quiet, plain: plain}
}

// PlanResolved announces the resolved execution plan.
func (d *Display) PlanResolved(root string, names []string) {
	if d.quiet {
		return
	}
	fmt.Fprintf(d.out, "Plan for %s: %d task(s)\n", root, len(names))
}

// TaskStart announces the start of a task.
func (d *Display) TaskStart(name string, position, total int) {
	if d.quiet {
		return
	}
	if d.plain {
		fmt.Fprintf(d.out, "\n[%d/%d] %s\n", position, total, name)
		return
	}
	fmt.Fprintf(d.out, "\n🚀 [%d/%d] %s\n", position, total, name)
}

// CommandStart announces a command invocation within a task.
func (d *Display) CommandStart(task string, cmd registry.Command) {
	if d.quiet {
		return
	}
	fmt.Fprintf(d.out, "   $ %s\n", cmd)
}

// TaskComplete announces task completion.
func (d *Display) TaskComplete(name string, elapsed time.Duration) {
	if d.quiet {
		return
	}
	if d.plain {
		fmt.Fprintf(d.out, "   %s complete (%s)\n", name, formatDuration(elapsed))
		return
	}
	fmt.Fprintf(d.out, "   ✅ %s complete (%s)\n", name, formatDuration(elapsed))
}

// RunComplete announces that all tasks in the plan succeeded.
func (d *Display) RunComplete(root string, tasks int, elapsed time.Duration) {
	if d.quiet {
		return
	}
	if d.plain {
		fmt.Fprintf(d.out, "\n%s completed: %d task(s) in %s\n", root, tasks, formatDuration(elapsed))
		return
	}
	fmt.Fprintf(d.out, "\n🎉 %s completed: %d task(s) in %s\n", root, tasks, formatDuration(elapsed))
}

// CommandFailed announces a failed command. Failures are always shown,
// even in quiet mode, so errors are never silently swallowed.
func (d *Display) CommandFailed(task string, cmd registry.Command, err error) {
	if d.plain {
		fmt.Fprintf(d.out, "\ntask %s failed: command %q: %s\n", task, cmd.String(), err)
		return
	}
	fmt.Fprintf(d.out, "\n💥 task %s failed: command %q: %s\n", task, cmd.String(), err)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
