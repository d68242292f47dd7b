// Package resolver linearizes a task's prerequisite closure into an
// execution plan.
package resolver

import (
	"github.com/taskforge/taskforge/internal/errors"
	"github.com/taskforge/taskforge/internal/registry"
)

// Plan is the resolved, deduplicated, dependency-ordered sequence of
// tasks to run for one requested root task.
type Plan struct {
	Root  string
	Tasks []registry.Task
}

// Names returns the plan's task names in execution order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.Tasks))
	for i, t := range p.Tasks {
		names[i] = t.Name
	}
	return names
}

// DFS visit marks.
const (
	unvisited = iota
	inProgress
	done
)

// Resolve computes the execution plan for root: a depth-first walk that
// appends each task after its prerequisites, skips tasks already resolved
// (diamond dependencies collapse to one entry), and reports a cycle when
// a task currently on the active path is revisited. Sibling order follows
// the declared prerequisite order, so repeated calls on an unchanged
// registry produce an identical plan.
func Resolve(reg *registry.Registry, root string) (*Plan, error) {
	plan := &Plan{Root: root}
	marks := make(map[string]int)
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch marks[name] {
		case done:
			return nil
		case inProgress:
			// Trim the path to the first occurrence so the report
			// shows only the cycle itself.
			start := 0
			for i, n := range path {
				if n == name {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, path[start:]...), name)
			return errors.ErrCyclicDependency(cycle)
		}

		t, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		marks[name] = inProgress
		path = append(path, name)
		for _, pre := range t.Prerequisites {
			if err := visit(pre); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[name] = done

		plan.Tasks = append(plan.Tasks, t)
		return nil
	}

	if err := visit(root); err != nil {
		return nil, err
	}
	return plan, nil
}
