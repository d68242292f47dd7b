// Package errors provides structured error types for taskforge.
package errors

import (
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for taskforge.
const (
	// Registry errors
	CodeUnknownTask   Code = "UNKNOWN_TASK"
	CodeDuplicateTask Code = "DUPLICATE_TASK"

	// Resolver errors
	CodeCyclicDependency Code = "CYCLIC_DEPENDENCY"

	// Runner errors
	CodeLaunchFailed Code = "LAUNCH_FAILED"
	CodeNonZeroExit  Code = "NON_ZERO_EXIT"

	// Config errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// ForgeError is the structured error type for taskforge.
type ForgeError struct {
	Code  Code
	What  string
	Why   string
	Fix   string
	Cause error

	// ExitCode carries the numeric status for NON_ZERO_EXIT errors.
	ExitCode int
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *ForgeError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Is reports whether target is a ForgeError with the same code.
func (e *ForgeError) Is(target error) bool {
	t, ok := target.(*ForgeError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// --- Error constructors ---

// ErrUnknownTask returns an error when a task name is not registered.
func ErrUnknownTask(name string) *ForgeError {
	return &ForgeError{
		Code: CodeUnknownTask,
		What: fmt.Sprintf("unknown task %q", name),
		Why:  "No task with this name is registered",
		Fix:  "Run 'taskforge list' to see available tasks",
	}
}

// ErrDuplicateTask returns an error when a task name is registered twice.
func ErrDuplicateTask(name string) *ForgeError {
	return &ForgeError{
		Code: CodeDuplicateTask,
		What: fmt.Sprintf("task %q is already registered", name),
		Why:  "Task names are write-once; the registry rejects redefinition",
		Fix:  "Rename one of the conflicting task definitions",
	}
}

// ErrCyclicDependency returns an error for a prerequisite cycle.
// The cycle slice holds the task names on the cycle, in traversal order.
func ErrCyclicDependency(cycle []string) *ForgeError {
	return &ForgeError{
		Code: CodeCyclicDependency,
		What: fmt.Sprintf("cyclic dependency: %s", strings.Join(cycle, " -> ")),
		Why:  "Following prerequisite edges revisits a task already on the current path",
		Fix:  "Break the cycle by removing one of the prerequisite edges",
	}
}

// ErrLaunchFailed returns an error when a command cannot be started.
func ErrLaunchFailed(program string, cause error) *ForgeError {
	return &ForgeError{
		Code:  CodeLaunchFailed,
		What:  fmt.Sprintf("failed to launch %q", program),
		Why:   "The program could not be started (not found, not executable, or permission denied)",
		Fix:   fmt.Sprintf("Check that %q is installed and on PATH", program),
		Cause: cause,
	}
}

// ErrNonZeroExit returns an error when a command exits with a failure code.
func ErrNonZeroExit(program string, code int) *ForgeError {
	return &ForgeError{
		Code:     CodeNonZeroExit,
		What:     fmt.Sprintf("%q exited with status %d", program, code),
		Why:      "The invoked tool itself failed; its output is shown above",
		ExitCode: code,
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(field, reason string) *ForgeError {
	return &ForgeError{
		Code: CodeConfigInvalid,
		What: fmt.Sprintf("invalid configuration: %s", field),
		Why:  reason,
		Fix:  "Check .taskforge/config.yaml and fix the invalid field",
	}
}

// AsForgeError attempts to convert an error to a ForgeError.
// Returns nil if the error is not a ForgeError anywhere in its chain.
func AsForgeError(err error) *ForgeError {
	for err != nil {
		if fe, ok := err.(*ForgeError); ok {
			return fe
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
