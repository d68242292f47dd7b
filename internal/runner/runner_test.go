package runner

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/taskforge/taskforge/internal/errors"
	"github.com/taskforge/taskforge/internal/registry"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecuteSuccess(t *testing.T) {
	requireUnix(t)
	r := NewExecRunner(testLogger(), WithStdout(io.Discard), WithStderr(io.Discard))

	res, err := r.Execute(context.Background(), registry.Command{
		Program: "sh", Args: []string{"-c", "exit 0"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
}

func TestExecuteNonZeroExit(t *testing.T) {
	requireUnix(t)
	r := NewExecRunner(testLogger(), WithStdout(io.Discard), WithStderr(io.Discard))

	res, err := r.Execute(context.Background(), registry.Command{
		Program: "sh", Args: []string{"-c", "exit 2"},
	})
	require.Error(t, err)

	fe := forgeerrors.AsForgeError(err)
	require.NotNil(t, fe)
	assert.Equal(t, forgeerrors.CodeNonZeroExit, fe.Code)
	assert.Equal(t, 2, fe.ExitCode)

	require.NotNil(t, res)
	assert.Equal(t, 2, res.ExitCode)
}

func TestExecuteLaunchFailed(t *testing.T) {
	r := NewExecRunner(testLogger(), WithStdout(io.Discard), WithStderr(io.Discard))

	res, err := r.Execute(context.Background(), registry.Command{
		Program: "definitely-not-a-real-program-4191",
	})
	require.Error(t, err)
	assert.Nil(t, res)

	fe := forgeerrors.AsForgeError(err)
	require.NotNil(t, fe)
	assert.Equal(t, forgeerrors.CodeLaunchFailed, fe.Code)
}

func TestExecuteStreamsOutput(t *testing.T) {
	requireUnix(t)
	var stdout, stderr bytes.Buffer
	r := NewExecRunner(testLogger(), WithStdout(&stdout), WithStderr(&stderr))

	_, err := r.Execute(context.Background(), registry.Command{
		Program: "sh", Args: []string{"-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecuteRespectsWorkingDir(t *testing.T) {
	requireUnix(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o644))

	var stdout bytes.Buffer
	r := NewExecRunner(testLogger(), WithStdout(&stdout), WithStderr(io.Discard))

	_, err := r.Execute(context.Background(), registry.Command{
		Program: "ls", Dir: dir,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "marker.txt")
}

func TestExecuteCancelledContext(t *testing.T) {
	requireUnix(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewExecRunner(testLogger(), WithStdout(io.Discard), WithStderr(io.Discard))
	_, err := r.Execute(ctx, registry.Command{
		Program: "sh", Args: []string{"-c", "sleep 10"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
