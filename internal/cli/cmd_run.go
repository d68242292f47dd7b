package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskforge/taskforge/internal/orchestrator"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <task>",
		Short: "Resolve a task's prerequisites and run them in order",
		Long: `Run a task and everything it depends on.

The task's prerequisite closure is resolved into a linear plan
(prerequisites first, each task exactly once), then executed
sequentially. The first failing command aborts the run; later tasks
never start. The process exit code propagates the failing command's
own exit status.

Examples:
  taskforge run test             # full pipeline
  taskforge run unit-test        # just the unit tests
  taskforge run clean            # scrub workspace artifacts
  taskforge run test --no-sandbox`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			reg, err := builtinRegistry(cfg)
			if err != nil {
				return err
			}

			orch, err := buildOrchestrator(cfg, reg)
			if err != nil {
				return err
			}

			_, err = orch.Run(cmd.Context(), args[0])
			if err != nil {
				// The display already reported command failures with
				// the tool's streamed output above; keep cobra's error
				// line for resolution/config failures only.
				if _, ok := err.(*orchestrator.CommandFailure); ok {
					cmd.SilenceErrors = true
				}
				return err
			}
			return nil
		},
	}
}
