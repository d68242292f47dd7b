package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskforge/taskforge/internal/resolver"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <task>",
		Short: "Show the execution plan for a task without running it",
		Long: `Resolve a task's prerequisite closure and print the linear plan.

The plan lists every task that would run, in execution order, with the
commands each task performs. Diamond dependencies appear exactly once.

Examples:
  taskforge plan test
  taskforge plan example-contract`,
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

			plan, err := resolver.Resolve(reg, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Execution plan for %s:\n", plan.Root)
			for i, t := range plan.Tasks {
				fmt.Printf("  %d. %s\n", i+1, t.Name)
				for _, c := range t.Commands {
					fmt.Printf("       $ %s\n", c)
				}
			}
			return nil
		},
	}
}
