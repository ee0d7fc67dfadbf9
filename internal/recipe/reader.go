package recipe

import (
	"path/filepath"
	"sort"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

// Sources enumerates candidate recipe documents in dir matching pattern,
// excluding the designated example document by exact path.
//
// Zero matches is not an error: an empty site is valid output. Paths are
// returned sorted so enumeration is stable, although the build orders
// recipes explicitly before pagination and never depends on this order.
func Sources(dir, pattern, example string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, builderrors.Wrap(err, builderrors.CategoryConfig, builderrors.SeverityFatal,
			"invalid recipe glob pattern").WithContext("pattern", pattern)
	}

	examplePath := filepath.Join(dir, example)
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if example != "" && match == examplePath {
			continue
		}
		paths = append(paths, match)
	}
	sort.Strings(paths)
	return paths, nil
}
