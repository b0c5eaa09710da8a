package basepath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/basepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_WorkingDir(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)

	dir, err := basepath.OS{}.Resolve(basepath.WorkingDir)

	require.NoError(t, err)
	assert.Equal(t, wd, dir)
}

func TestResolve_Executable(t *testing.T) {
	t.Parallel()

	exe, err := os.Executable()
	require.NoError(t, err)

	dir, err := basepath.OS{}.Resolve(basepath.Executable)

	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(exe), dir)
}

func TestResolve_Project_WalksUpToManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0o600)
	require.NoError(t, err)

	dir, err := basepath.OS{StartDir: nested}.Resolve(basepath.Project)

	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

func TestResolve_Project_CustomManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	err := os.WriteFile(filepath.Join(root, "Package.swift"), []byte("// manifest\n"), 0o600)
	require.NoError(t, err)

	resolver := basepath.OS{StartDir: nested, Manifest: "Package.swift"}

	dir, err := resolver.Resolve(basepath.Project)

	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

func TestResolve_Project_NoManifest(t *testing.T) {
	t.Parallel()

	resolver := basepath.OS{StartDir: t.TempDir(), Manifest: "definitely-not-present.lock"}

	_, err := resolver.Resolve(basepath.Project)

	require.ErrorIs(t, err, basepath.ErrNoManifest)
}

func TestResolve_Custom(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	resolved, err := basepath.OS{CustomDir: dir}.Resolve(basepath.Custom)

	require.NoError(t, err)
	assert.Equal(t, dir, resolved)
}

func TestResolve_Custom_Unconfigured(t *testing.T) {
	t.Parallel()

	_, err := basepath.OS{}.Resolve(basepath.Custom)

	require.ErrorIs(t, err, basepath.ErrNoCustomDir)
}

func TestResolve_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := basepath.OS{}.Resolve(basepath.Kind(99))

	require.ErrorIs(t, err, basepath.ErrUnknownKind)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "working directory", basepath.WorkingDir.String())
	assert.Equal(t, "executable", basepath.Executable.String())
	assert.Equal(t, "project root", basepath.Project.String())
	assert.Equal(t, "custom", basepath.Custom.String())
}
