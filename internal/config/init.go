package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Init creates a new configuration file with example content, plus an
// example recipe document the build will exclude by name.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Site: SiteConfig{
			Title:       "My Recipe Site",
			Description: "Recipes worth keeping",
			BaseURL:     "https://example.com",
		},
		Recipes: RecipesConfig{
			Directory: "./recipes",
			Glob:      "*.yaml",
			Example:   "_example.yaml",
		},
		Authors: AuthorsConfig{
			Directory: "./authors",
		},
		Templates: TemplatesConfig{
			Directory: "./templates",
		},
		Output: OutputConfig{
			Directory: "./site",
			Extension: ".html",
		},
		Build: BuildConfig{
			PageSize:   10,
			DatePolicy: DatePolicyBuildDate,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := writeExampleRecipe(exampleConfig.Recipes); err != nil {
		return err
	}
	return writeExampleAuthor(exampleConfig.Authors)
}

const exampleRecipe = `title: Example Recipe
date_added: 20240101
author: someone
type: dessert
description: A template recipe. Copy this file; the original is never built.
cook_time: 25m
prep_time: 10m
yield: 1 cake
serving_size: 1 slice
ingredients:
  - 2 cups flour
  - 1 cup sugar
  - 3 eggs
directions: |
  Mix the dry ingredients. Beat in the eggs. Bake at 350F until done.
nutrition:
  calories: 310
  total_fat: 12
  protein: 5
`

func writeExampleRecipe(recipes RecipesConfig) error {
	if err := os.MkdirAll(recipes.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}

	examplePath := filepath.Join(recipes.Directory, recipes.Example)
	if _, err := os.Stat(examplePath); err == nil {
		return nil
	}
	if err := os.WriteFile(examplePath, []byte(exampleRecipe), 0o644); err != nil {
		return fmt.Errorf("failed to write example recipe: %w", err)
	}
	return nil
}

const exampleAuthor = `name: Someone
bio: The resident cook.
link: https://example.com/~someone
`

func writeExampleAuthor(authors AuthorsConfig) error {
	if authors.Directory == "" {
		return nil
	}
	if err := os.MkdirAll(authors.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to create authors directory: %w", err)
	}

	profilePath := filepath.Join(authors.Directory, "someone.yaml")
	if _, err := os.Stat(profilePath); err == nil {
		return nil
	}
	if err := os.WriteFile(profilePath, []byte(exampleAuthor), 0o644); err != nil {
		return fmt.Errorf("failed to write example author profile: %w", err)
	}
	return nil
}
