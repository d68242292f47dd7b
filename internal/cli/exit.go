package cli

import (
	"errors"

	"github.com/taskforge/taskforge/internal/orchestrator"
)

// ExitCode maps an Execute error to the process exit code. A failing
// command's own exit status is propagated when it ran and failed; every
// other failure (launch, resolution, config) exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var failure *orchestrator.CommandFailure
	if errors.As(err, &failure) && failure.ExitCode > 0 {
		return failure.ExitCode
	}
	return 1
}
