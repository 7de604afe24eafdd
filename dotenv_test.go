package loadenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenv_ErrorKinds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notDir := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(notDir, []byte("X=1\n"), 0o644))
	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("BAD-KEY=1\n"), 0o644))

	tests := []struct {
		name      string
		path      string
		loadable  bool
		wantParse bool
	}{
		{name: "missing", path: filepath.Join(dir, "missing.env")},
		{name: "parent is a file", path: filepath.Join(notDir, ".env")},
		{name: "directory", path: dir},
		{name: "malformed", path: bad, loadable: true, wantParse: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewMapEnv(nil)
			keys, err := loadDotenv(env, tt.path)
			require.Error(t, err)
			assert.Empty(t, keys)
			assert.Equal(t, !tt.loadable, errors.Is(err, errNotLoadable))
			assert.Equal(t, tt.wantParse, errors.Is(err, ErrParse))
			assert.Empty(t, env.Snapshot())
		})
	}
}

func TestLoadDotenv_KeepsExistingKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=file\nB=file\n"), 0o644))

	env := NewMapEnv(map[string]string{"A": "process"})
	keys, err := loadDotenv(env, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, keys)
	assert.Equal(t, map[string]string{"A": "process", "B": "file"}, env.Snapshot())
}
