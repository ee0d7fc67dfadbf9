package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureOutputDir_ExistingDirIsNotAnError(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	require.NoError(t, EnsureOutputDir(dir))
	require.NoError(t, EnsureOutputDir(dir))
}

func TestWriteArtifact_WritesAndOverwrites(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteArtifact(dir, "index.html", "first")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "index.html"), path)

	_, err = WriteArtifact(dir, "index.html", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestWriteArtifact_RejectsEscapingNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"../escape.html", "/abs.html", "nested/page.html", "."} {
		_, err := WriteArtifact(dir, name, "content")
		require.Error(t, err, "name %q should be rejected", name)
	}
}
