package loadenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoot(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		dir := t.TempDir()
		got, err := resolveRoot(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("env var", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(RootEnvVar, dir)
		got, err := resolveRoot("", OSEnv{}.LookupEnv)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("store environment", func(t *testing.T) {
		t.Setenv(RootEnvVar, t.TempDir())
		dir := t.TempDir()
		env := NewMapEnv(map[string]string{RootEnvVar: dir})

		got, err := New(WithEnviron(env), WithoutMetadata()).Root()
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("nearest go.mod", func(t *testing.T) {
		t.Setenv(RootEnvVar, "")
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0o644))
		nested := filepath.Join(root, "cmd", "app")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		prev, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(nested))
		t.Cleanup(func() { _ = os.Chdir(prev) })

		got, err := resolveRoot("", OSEnv{}.LookupEnv)
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		gotReal, err := filepath.EvalSymlinks(got)
		require.NoError(t, err)
		assert.Equal(t, want, gotReal)
	})
}
