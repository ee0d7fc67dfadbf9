// Package authors loads author profiles referenced by recipe documents.
package authors

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

// Author is one profile, keyed in the registry by its file's base name.
type Author struct {
	Name string `yaml:"name"`
	Bio  string `yaml:"bio,omitempty"`
	Link string `yaml:"link,omitempty"`
}

// Registry maps author identity to profile. A nil Registry means no authors
// directory is configured and recipe author fields pass through unresolved.
type Registry map[string]Author

// Load reads every profile document under dir. An empty dir disables
// resolution; a configured but missing dir is a configuration error.
func Load(dir string) (Registry, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, builderrors.Wrap(err, builderrors.CategoryConfig, builderrors.SeverityFatal,
			"unable to read authors directory").WithContext("path", dir)
	}

	registry := make(Registry)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, builderrors.OpenFailed(path, err)
		}

		var author Author
		if err := yaml.Unmarshal(data, &author); err != nil {
			return nil, builderrors.ParseFailed(path, err)
		}

		id := strings.TrimSuffix(entry.Name(), ".yaml")
		if author.Name == "" {
			author.Name = id
		}
		registry[id] = author
	}
	return registry, nil
}

// Resolve looks up a profile. With a nil registry every identity resolves
// to a bare profile carrying just the identity as display name.
func (r Registry) Resolve(id string) (Author, bool) {
	if r == nil {
		return Author{Name: id}, true
	}
	author, ok := r[id]
	return author, ok
}
