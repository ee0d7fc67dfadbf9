package commands

import (
	"fmt"

	"github.com/cltkitchen/recipebuilder/internal/authors"
	"github.com/cltkitchen/recipebuilder/internal/config"
	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
	"github.com/cltkitchen/recipebuilder/internal/recipe"
)

// ValidateCmd parses and validates every recipe document without writing
// any output. It applies the same rules as a real build, so a clean
// validate run means the next build will not fail on document errors.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	registry, err := authors.Load(cfg.Authors.Directory)
	if err != nil {
		return err
	}

	paths, err := recipe.Sources(cfg.Recipes.Directory, cfg.Recipes.Glob, cfg.Recipes.Example)
	if err != nil {
		return err
	}

	recipes, err := recipe.ParseAll(paths)
	if err != nil {
		return err
	}

	if registry != nil {
		for _, r := range recipes {
			if _, ok := registry.Resolve(r.Author); !ok {
				return builderrors.UnknownAuthor(r.Filename, r.Author)
			}
		}
	}

	fmt.Printf("Validated %d recipe documents\n", len(recipes))
	return nil
}
