package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/taskforge/taskforge/internal/errors"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
version: 1
sandbox:
  enabled: true
  image: toolchain:ci
  workdir: /src
paths:
  build_dir: out
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Sandbox.Enabled)
	assert.Equal(t, "toolchain:ci", cfg.Sandbox.Image)
	assert.Equal(t, "/src", cfg.Sandbox.Workdir)
	assert.Equal(t, "out", cfg.Paths.BuildDir)
	// Untouched sections keep defaults
	assert.Equal(t, Default().Tools, cfg.Tools)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bogus_field: 1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	fe := forgeerrors.AsForgeError(err)
	require.NotNil(t, fe)
	assert.Equal(t, forgeerrors.CodeConfigInvalid, fe.Code)
}

func TestValidateSandboxNeedsImage(t *testing.T) {
	cfg := Default()
	cfg.Sandbox.Enabled = true
	cfg.Sandbox.Image = ""

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateSandboxWorkdirMustBeAbsolute(t *testing.T) {
	cfg := Default()
	cfg.Sandbox.Enabled = true
	cfg.Sandbox.Workdir = "relative/path"

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidateToolProgramRequired(t *testing.T) {
	cfg := Default()
	cfg.Tools.Compiler.Program = ""

	err := cfg.Validate()
	require.Error(t, err)
}

func TestApplyViperOverrides(t *testing.T) {
	v := viper.New()
	v.Set("sandbox.enabled", true)
	v.Set("sandbox.image", "toolchain:nightly")

	cfg := Default()
	cfg.ApplyViper(v)

	assert.True(t, cfg.Sandbox.Enabled)
	assert.Equal(t, "toolchain:nightly", cfg.Sandbox.Image)
	// Unset keys remain untouched
	assert.Equal(t, Default().Sandbox.Workdir, cfg.Sandbox.Workdir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ForgeDir, ConfigFileName)

	cfg := Default()
	cfg.Sandbox.Image = "toolchain:pinned"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
