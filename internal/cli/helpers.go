package cli

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/taskforge/taskforge/internal/config"
	"github.com/taskforge/taskforge/internal/orchestrator"
	"github.com/taskforge/taskforge/internal/progress"
	"github.com/taskforge/taskforge/internal/registry"
	"github.com/taskforge/taskforge/internal/runner"
	"github.com/taskforge/taskforge/internal/sandbox"
	"github.com/taskforge/taskforge/internal/tasks"
)

// loadConfig loads the config file (or defaults) and applies viper
// overrides from environment variables.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if used := viper.ConfigFileUsed(); used != "" {
			path = used
		} else {
			path = config.DefaultPath(".")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyViper(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// builtinRegistry builds the static task registry from config.
func builtinRegistry(cfg *config.Config) (*registry.Registry, error) {
	return tasks.Builtin(cfg)
}

// buildOrchestrator wires runner, optional sandbox, and display.
func buildOrchestrator(cfg *config.Config, reg *registry.Registry) (*orchestrator.Orchestrator, error) {
	logger := slog.Default()

	var run runner.Runner = runner.NewExecRunner(logger)
	if cfg.Sandbox.Enabled && !noSandbox {
		projectDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		run = sandbox.New(run, cfg.Sandbox, projectDir, logger)
	}

	display := progress.New(quiet, plainOutput())
	return orchestrator.New(reg, run, display, logger), nil
}

// plainOutput reports whether emoji-free output should be used.
func plainOutput() bool {
	if plain {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
