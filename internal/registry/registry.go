// Package registry holds the static task definitions taskforge runs.
package registry

import (
	"strings"

	"github.com/taskforge/taskforge/internal/errors"
)

// Command is one external invocation a task performs.
type Command struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args,omitempty"`

	// Dir is the working directory for the command. Empty means the
	// orchestrator's project directory.
	Dir string `yaml:"dir,omitempty"`
}

// String renders the command the way a shell would show it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Task is a named unit of work with declared prerequisites and commands.
// Prerequisites run (transitively) before the task's own commands.
type Task struct {
	Name          string    `yaml:"name"`
	Prerequisites []string  `yaml:"prerequisites,omitempty"`
	Commands      []Command `yaml:"commands,omitempty"`
}

// Registry is a write-once mapping from task name to definition.
// Declaration order is preserved; there is no removal or mutation.
type Registry struct {
	tasks map[string]Task
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tasks: make(map[string]Task)}
}

// Define registers a task. Redefining a name fails with DUPLICATE_TASK.
func (r *Registry) Define(t Task) error {
	if t.Name == "" {
		return errors.ErrConfigInvalid("task name", "task name must not be empty")
	}
	if _, exists := r.tasks[t.Name]; exists {
		return errors.ErrDuplicateTask(t.Name)
	}
	r.tasks[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Lookup returns the task definition or fails with UNKNOWN_TASK.
func (r *Registry) Lookup(name string) (Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return Task{}, errors.ErrUnknownTask(name)
	}
	return t, nil
}

// Names returns all task names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	return len(r.order)
}
