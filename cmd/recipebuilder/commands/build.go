package commands

import (
	"context"
	"fmt"

	"github.com/cltkitchen/recipebuilder/internal/config"
	"github.com/cltkitchen/recipebuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Override the configured output directory"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}

	builder, err := site.New(cfg)
	if err != nil {
		return err
	}

	report, err := builder.Build(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Built %d recipes into %s (%d front pages, %d recipe pages)\n",
		report.Recipes, report.OutputDir, report.FrontPages, report.RecipePages)
	return nil
}
