package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cltkitchen/recipebuilder/cmd/recipebuilder/commands"
	"github.com/cltkitchen/recipebuilder/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("recipebuilder"),
		kong.Description("Build a static recipe site from structured recipe documents."),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(&commands.Global{}, cli); err != nil {
		fmt.Fprintf(os.Stderr, "recipebuilder: %v\n", err)
		os.Exit(1)
	}
}
