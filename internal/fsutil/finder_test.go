// internal/fsutil/finder_test.go
package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ks", "a.cfg", "notes.txt", "sub/c.ks", "sub/deeper/d.cfg"} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	files, err := FindFilesByExtension(dir, KickstartExtensions...)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.cfg"),
		filepath.Join(dir, "b.ks"),
		filepath.Join(dir, "sub", "c.ks"),
		filepath.Join(dir, "sub", "deeper", "d.cfg"),
	}, files)

	only, err := FindFilesByExtension(filepath.Join(dir, "notes.txt"), ".ks")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, only, "an explicit file is kept whatever its name")

	_, err = FindFilesByExtension(filepath.Join(dir, "absent"), ".ks")
	require.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(dir) })
}
