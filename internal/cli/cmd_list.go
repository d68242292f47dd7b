package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taskforge/taskforge/internal/registry"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tasks with prerequisites and commands",
		Long: `List the task graph in declaration order.

Examples:
  taskforge list
  taskforge list --format yaml   # machine-readable registry dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			reg, err := builtinRegistry(cfg)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			if format == "yaml" {
				return listYAML(reg)
			}
			return listHuman(reg)
		},
	}

	cmd.Flags().String("format", "table", "output format (table, yaml)")
	return cmd
}

func listHuman(reg *registry.Registry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tPREREQUISITES\tCOMMANDS")
	for _, name := range reg.Names() {
		t, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		prereqs := "-"
		if len(t.Prerequisites) > 0 {
			prereqs = strings.Join(t.Prerequisites, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", t.Name, prereqs, len(t.Commands))
	}
	return w.Flush()
}

func listYAML(reg *registry.Registry) error {
	defs := make([]registry.Task, 0, reg.Len())
	for _, name := range reg.Names() {
		t, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		defs = append(defs, t)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(defs)
}
