// Package tasks defines the built-in task graph taskforge ships with.
package tasks

import (
	"github.com/taskforge/taskforge/internal/config"
	"github.com/taskforge/taskforge/internal/registry"
)

// Built-in task names.
const (
	UnitTest        = "unit-test"
	ExampleContract = "example-contract"
	Evaluation      = "evaluation"
	Test            = "test"
	Clean           = "clean"
)

// command builds a Command from a configured tool plus extra arguments.
func command(tool config.ToolConfig, extra ...string) registry.Command {
	args := append(append([]string{}, tool.Args...), extra...)
	return registry.Command{Program: tool.Program, Args: args}
}

// Builtin returns the static registry for the development pipeline:
//
//	unit-test         run the toolchain unit tests
//	example-contract  compile the example contract, then generate and
//	                  run a scenario from the build artifacts
//	evaluation        run the evaluation driver
//	test              unit-test + example-contract + evaluation
//	clean             remove untracked/ignored workspace artifacts
//
// Definitions are made once at startup and never mutated.
func Builtin(cfg *config.Config) (*registry.Registry, error) {
	reg := registry.New()

	defs := []registry.Task{
		{
			Name: UnitTest,
			Commands: []registry.Command{
				command(cfg.Tools.UnitTests),
			},
		},
		{
			Name: ExampleContract,
			Commands: []registry.Command{
				command(cfg.Tools.Compiler, "-o", cfg.Paths.BuildDir, cfg.Paths.ExampleContract),
				command(cfg.Tools.ScenarioGenerator, cfg.Paths.BuildDir),
				command(cfg.Tools.ScenarioRunner, cfg.Paths.BuildDir),
			},
		},
		{
			Name: Evaluation,
			Commands: []registry.Command{
				command(cfg.Tools.Evaluation),
			},
		},
		{
			Name:          Test,
			Prerequisites: []string{UnitTest, ExampleContract, Evaluation},
		},
		{
			// git clean is idempotent: repeated runs on a clean
			// workspace have no further effect.
			Name: Clean,
			Commands: []registry.Command{
				{Program: "git", Args: []string{"clean", "-fdx"}},
			},
		},
	}

	for _, t := range defs {
		if err := reg.Define(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
