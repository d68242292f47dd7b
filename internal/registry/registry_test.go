package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/taskforge/taskforge/internal/errors"
)

func TestDefineAndLookup(t *testing.T) {
	reg := New()

	task := Task{
		Name:          "build",
		Prerequisites: []string{"generate"},
		Commands:      []Command{{Program: "make", Args: []string{"build"}}},
	}
	require.NoError(t, reg.Define(task))

	got, err := reg.Lookup("build")
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestDefineDuplicateFails(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Define(Task{Name: "build"}))

	err := reg.Define(Task{Name: "build"})
	require.Error(t, err)

	fe := forgeerrors.AsForgeError(err)
	require.NotNil(t, fe)
	assert.Equal(t, forgeerrors.CodeDuplicateTask, fe.Code)

	// First definition survives
	assert.Equal(t, 1, reg.Len())
}

func TestDefineEmptyNameFails(t *testing.T) {
	reg := New()
	err := reg.Define(Task{})
	require.Error(t, err)
}

func TestLookupUnknownFails(t *testing.T) {
	reg := New()
	_, err := reg.Lookup("missing")
	require.Error(t, err)

	fe := forgeerrors.AsForgeError(err)
	require.NotNil(t, fe)
	assert.Equal(t, forgeerrors.CodeUnknownTask, fe.Code)
}

func TestNamesPreserveDeclarationOrder(t *testing.T) {
	reg := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Define(Task{Name: name}))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "make", Command{Program: "make"}.String())
	assert.Equal(t, "make build -j4", Command{Program: "make", Args: []string{"build", "-j4"}}.String())
}
