package site

import (
	"os"
	"path/filepath"
	"strings"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

// EnsureOutputDir creates the output directory if absent. Creating an
// existing directory is not an error.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return builderrors.WriteFailed(dir, err)
	}
	return nil
}

// WriteArtifact writes one rendered page into the output directory.
//
// The artifact name must be a bare file name: it is derived from recipe
// identities, so a name that would escape the output directory is refused.
// Existing artifacts are overwritten; every build regenerates the site.
func WriteArtifact(outputDir, name, content string) (string, error) {
	clean := filepath.Clean(name)
	if clean != name || filepath.IsAbs(clean) ||
		strings.ContainsRune(clean, os.PathSeparator) || strings.HasPrefix(clean, "..") {
		return "", builderrors.New(builderrors.CategoryFileSystem, builderrors.SeverityFatal,
			"artifact name escapes output directory").WithContext("name", name)
	}

	fullPath := filepath.Join(outputDir, clean)
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return "", builderrors.WriteFailed(fullPath, err)
	}
	return fullPath, nil
}
