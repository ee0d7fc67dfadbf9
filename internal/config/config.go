// Package config loads the site configuration consumed by the build.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

// DatePolicy controls how date_added is stamped on stored rows.
type DatePolicy string

const (
	// DatePolicyBuildDate stamps every recipe with the build's current date.
	// This matches the historical behavior: declared dates are ignored for
	// ordering within a single run.
	DatePolicyBuildDate DatePolicy = "build_date"
	// DatePolicyDeclared honors each document's declared date_added value.
	DatePolicyDeclared DatePolicy = "declared"
)

// Config represents the application configuration
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Recipes   RecipesConfig   `yaml:"recipes"`
	Authors   AuthorsConfig   `yaml:"authors"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	Build     BuildConfig     `yaml:"build"`
}

// SiteConfig carries site-wide metadata passed to every render context.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
}

// RecipesConfig locates the recipe source documents.
type RecipesConfig struct {
	Directory string `yaml:"directory"`
	Glob      string `yaml:"glob,omitempty"`
	// Example names the template document excluded from the build,
	// matched by exact path inside Directory.
	Example string `yaml:"example,omitempty"`
}

// AuthorsConfig locates author profiles. Optional; when Directory is empty
// recipe author fields are carried through without resolution.
type AuthorsConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// TemplatesConfig locates page templates. Missing templates fall back to
// the embedded builtins.
type TemplatesConfig struct {
	Directory string `yaml:"directory,omitempty"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension,omitempty"`
}

// BuildConfig tunes the pagination and dating behavior.
type BuildConfig struct {
	PageSize   int        `yaml:"page_size,omitempty"`
	DatePolicy DatePolicy `yaml:"date_policy,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; absence is not an error.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, builderrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, builderrors.ConfigInvalid(configPath, err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, builderrors.ConfigInvalid(configPath, err)
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Site.Title == "" {
		config.Site.Title = "Recipes"
	}
	if config.Recipes.Directory == "" {
		config.Recipes.Directory = "./recipes"
	}
	if config.Recipes.Glob == "" {
		config.Recipes.Glob = "*.yaml"
	}
	if config.Recipes.Example == "" {
		config.Recipes.Example = "_example.yaml"
	}
	if config.Templates.Directory == "" {
		config.Templates.Directory = "./templates"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
	}
	if config.Output.Extension == "" {
		config.Output.Extension = ".html"
	}
	if config.Build.PageSize == 0 {
		config.Build.PageSize = 10
	}
	if config.Build.DatePolicy == "" {
		config.Build.DatePolicy = DatePolicyBuildDate
	}
}

func validate(config *Config) error {
	if config.Build.PageSize < 1 {
		return builderrors.New(builderrors.CategoryConfig, builderrors.SeverityFatal,
			fmt.Sprintf("build.page_size must be positive, got %d", config.Build.PageSize))
	}
	switch config.Build.DatePolicy {
	case DatePolicyBuildDate, DatePolicyDeclared:
	default:
		return builderrors.New(builderrors.CategoryConfig, builderrors.SeverityFatal,
			fmt.Sprintf("build.date_policy must be %q or %q, got %q",
				DatePolicyBuildDate, DatePolicyDeclared, config.Build.DatePolicy))
	}
	if strings.ContainsAny(config.Output.Extension, "/\\") {
		return builderrors.New(builderrors.CategoryConfig, builderrors.SeverityFatal,
			"output.extension must not contain path separators")
	}
	return nil
}
