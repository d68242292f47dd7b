// Package config provides configuration management for taskforge.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/taskforge/taskforge/internal/errors"
)

const (
	// ConfigFileName is the default config file name
	ConfigFileName = "config.yaml"
	// ForgeDir is the taskforge configuration directory
	ForgeDir = ".taskforge"
)

// SandboxConfig controls the isolated execution environment commands
// run in.
type SandboxConfig struct {
	// Enabled wraps every command in a container run when true.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Image is the container image commands execute in.
	Image string `yaml:"image" mapstructure:"image"`

	// Workdir is the mount point of the project inside the container.
	Workdir string `yaml:"workdir" mapstructure:"workdir"`
}

// ToolConfig is the entry point of one external collaborator.
type ToolConfig struct {
	Program string   `yaml:"program" mapstructure:"program"`
	Args    []string `yaml:"args,omitempty" mapstructure:"args"`
}

// ToolsConfig names the external tools the built-in pipeline drives.
type ToolsConfig struct {
	UnitTests         ToolConfig `yaml:"unit_tests" mapstructure:"unit_tests"`
	Compiler          ToolConfig `yaml:"compiler" mapstructure:"compiler"`
	ScenarioGenerator ToolConfig `yaml:"scenario_generator" mapstructure:"scenario_generator"`
	ScenarioRunner    ToolConfig `yaml:"scenario_runner" mapstructure:"scenario_runner"`
	Evaluation        ToolConfig `yaml:"evaluation" mapstructure:"evaluation"`
}

// PathsConfig locates the inputs and outputs of the pipeline.
type PathsConfig struct {
	// ExampleContract is the contract source compiled by the
	// example-contract task.
	ExampleContract string `yaml:"example_contract" mapstructure:"example_contract"`

	// BuildDir receives compiler and scenario artifacts.
	BuildDir string `yaml:"build_dir" mapstructure:"build_dir"`
}

// Config represents the taskforge configuration.
type Config struct {
	Version int           `yaml:"version" mapstructure:"version"`
	Sandbox SandboxConfig `yaml:"sandbox" mapstructure:"sandbox"`
	Tools   ToolsConfig   `yaml:"tools" mapstructure:"tools"`
	Paths   PathsConfig   `yaml:"paths" mapstructure:"paths"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version: 1,
		Sandbox: SandboxConfig{
			Enabled: false,
			Image:   "taskforge/toolchain:latest",
			Workdir: "/workspace",
		},
		Tools: ToolsConfig{
			UnitTests:         ToolConfig{Program: "scripts/run-tests"},
			Compiler:          ToolConfig{Program: "scripts/compile"},
			ScenarioGenerator: ToolConfig{Program: "scripts/generate-scenario"},
			ScenarioRunner:    ToolConfig{Program: "scripts/run-scenario"},
			Evaluation:        ToolConfig{Program: "scripts/run-eval"},
		},
		Paths: PathsConfig{
			ExampleContract: "examples/demo/contract.ct",
			BuildDir:        "build",
		},
	}
}

// DefaultPath returns the config file path under dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, ForgeDir, ConfigFileName)
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.ErrConfigInvalid(path, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyViper overlays values from v (env vars, flags) onto the config.
// Only keys actually set in v override the loaded values.
func (c *Config) ApplyViper(v *viper.Viper) {
	if v.IsSet("sandbox.enabled") {
		c.Sandbox.Enabled = v.GetBool("sandbox.enabled")
	}
	if v.IsSet("sandbox.image") {
		c.Sandbox.Image = v.GetString("sandbox.image")
	}
	if v.IsSet("sandbox.workdir") {
		c.Sandbox.Workdir = v.GetString("sandbox.workdir")
	}
	if v.IsSet("paths.build_dir") {
		c.Paths.BuildDir = v.GetString("paths.build_dir")
	}
	if v.IsSet("paths.example_contract") {
		c.Paths.ExampleContract = v.GetString("paths.example_contract")
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Sandbox.Enabled && c.Sandbox.Image == "" {
		return errors.ErrConfigInvalid("sandbox.image", "image is required when the sandbox is enabled")
	}
	if c.Sandbox.Enabled && !filepath.IsAbs(c.Sandbox.Workdir) {
		return errors.ErrConfigInvalid("sandbox.workdir", "workdir must be an absolute container path")
	}
	for name, tool := range map[string]ToolConfig{
		"tools.unit_tests":         c.Tools.UnitTests,
		"tools.compiler":           c.Tools.Compiler,
		"tools.scenario_generator": c.Tools.ScenarioGenerator,
		"tools.scenario_runner":    c.Tools.ScenarioRunner,
		"tools.evaluation":         c.Tools.Evaluation,
	} {
		if tool.Program == "" {
			return errors.ErrConfigInvalid(name, "program must not be empty")
		}
	}
	return nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
