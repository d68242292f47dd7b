package cli

import (
	"fmt"
	"testing"

	forgeerrors "github.com/taskforge/taskforge/internal/errors"
	"github.com/taskforge/taskforge/internal/orchestrator"
	"github.com/taskforge/taskforge/internal/registry"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"generic error", fmt.Errorf("boom"), 1},
		{"resolution error", forgeerrors.ErrUnknownTask("deploy"), 1},
		{
			"command failure propagates status",
			&orchestrator.CommandFailure{
				Task:     "example-contract",
				Command:  registry.Command{Program: "compile"},
				ExitCode: 2,
				Err:      forgeerrors.ErrNonZeroExit("compile", 2),
			},
			2,
		},
		{
			"launch failure has no status",
			&orchestrator.CommandFailure{
				Task:    "unit-test",
				Command: registry.Command{Program: "run-tests"},
				Err:     forgeerrors.ErrLaunchFailed("run-tests", fmt.Errorf("not found")),
			},
			1,
		},
		{
			"wrapped command failure still propagates",
			fmt.Errorf("run: %w", &orchestrator.CommandFailure{
				Task:     "evaluation",
				Command:  registry.Command{Program: "run-eval"},
				ExitCode: 7,
				Err:      forgeerrors.ErrNonZeroExit("run-eval", 7),
			}),
			7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
