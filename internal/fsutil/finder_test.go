package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFileByName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "targets", "deeply")
	require.NoError(t, os.MkdirAll(nested, 0700))
	want := filepath.Join(nested, "targets.json")
	require.NoError(t, os.WriteFile(want, []byte("{}"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "other.json"), []byte("{}"), 0600))

	got, err := FindFileByName(root, "targets.json")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindFileByName_NotFound(t *testing.T) {
	t.Parallel()

	_, err := FindFileByName(t.TempDir(), "targets.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets.json")
}

func TestFindFileByName_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_, _ = FindFileByName(t.TempDir(), "")
	})
}
