// Package site orchestrates the build pipeline: enumerate and validate
// recipe documents, load them into the store, and render the paginated
// front listing plus one page per recipe.
package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/cltkitchen/recipebuilder/internal/authors"
	"github.com/cltkitchen/recipebuilder/internal/config"
	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
	"github.com/cltkitchen/recipebuilder/internal/logfields"
	"github.com/cltkitchen/recipebuilder/internal/recipe"
	"github.com/cltkitchen/recipebuilder/internal/store"
)

// Builder runs the whole pipeline for one configuration.
type Builder struct {
	cfg      *config.Config
	clock    clockwork.Clock
	renderer Renderer
}

// Option customizes a Builder.
type Option func(*Builder)

// WithClock injects the clock used to stamp date_added under the
// build_date policy. Tests freeze it with clockwork.NewFakeClockAt.
func WithClock(clock clockwork.Clock) Option {
	return func(b *Builder) { b.clock = clock }
}

// WithRenderer replaces the default template renderer.
func WithRenderer(renderer Renderer) Option {
	return func(b *Builder) { b.renderer = renderer }
}

// New creates a Builder for cfg. Without options it uses the wall clock
// and templates from the configured templates directory.
func New(cfg *config.Config, opts ...Option) (*Builder, error) {
	b := &Builder{cfg: cfg, clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(b)
	}
	if b.renderer == nil {
		renderer, err := NewTemplateRenderer(cfg.Templates.Directory)
		if err != nil {
			return nil, err
		}
		b.renderer = renderer
	}
	return b, nil
}

// Report summarizes one completed build.
type Report struct {
	BuildID     string
	Recipes     int
	FrontPages  int
	RecipePages int
	OutputDir   string
	Duration    time.Duration
}

// Build runs the pipeline once. It is fail-fast: the first error aborts
// the run and no further output is written. A validation failure in any
// document aborts before anything is written at all.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := b.clock.Now()
	buildID := uuid.NewString()
	slog.Info("Starting site build",
		logfields.BuildID(buildID),
		logfields.Path(b.cfg.Recipes.Directory))

	registry, err := authors.Load(b.cfg.Authors.Directory)
	if err != nil {
		return nil, err
	}

	st, err := store.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()

	paths, err := recipe.Sources(b.cfg.Recipes.Directory, b.cfg.Recipes.Glob, b.cfg.Recipes.Example)
	if err != nil {
		return nil, err
	}

	recipes, err := recipe.ParseAll(paths)
	if err != nil {
		return nil, err
	}
	slog.Info("Parsed recipe documents", logfields.BuildID(buildID), logfields.Count(len(recipes)))

	if registry != nil {
		for _, r := range recipes {
			if _, ok := registry.Resolve(r.Author); !ok {
				return nil, builderrors.UnknownAuthor(r.Filename, r.Author)
			}
		}
	}

	today := dateStamp(b.clock.Now())
	for _, r := range recipes {
		stamp := today
		if b.cfg.Build.DatePolicy == config.DatePolicyDeclared {
			stamp = r.DateAdded
		}
		if _, err := st.Insert(ctx, r, stamp); err != nil {
			return nil, err
		}
	}

	if err := EnsureOutputDir(b.cfg.Output.Directory); err != nil {
		return nil, err
	}

	frontPages, err := b.writeFrontPages(ctx, st)
	if err != nil {
		return nil, err
	}

	recipePages, err := b.writeRecipePages(ctx, st, registry)
	if err != nil {
		return nil, err
	}

	report := &Report{
		BuildID:     buildID,
		Recipes:     len(recipes),
		FrontPages:  frontPages,
		RecipePages: recipePages,
		OutputDir:   b.cfg.Output.Directory,
		Duration:    b.clock.Now().Sub(start),
	}
	slog.Info("Site build complete",
		logfields.BuildID(buildID),
		logfields.Count(report.Recipes),
		logfields.Pages(report.FrontPages),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

func (b *Builder) writeFrontPages(ctx context.Context, st *store.Store) (int, error) {
	summaries, err := st.Summaries(ctx)
	if err != nil {
		return 0, err
	}

	pages := Paginate(summaries, b.cfg.Build.PageSize)
	for _, page := range pages {
		rendered, err := b.renderer.Render(TemplateIndex, b.frontContext(page))
		if err != nil {
			return 0, err
		}
		name := FrontPageName(page.Number, b.cfg.Output.Extension)
		if _, err := WriteArtifact(b.cfg.Output.Directory, name, rendered); err != nil {
			return 0, err
		}
		slog.Debug("Wrote front page", logfields.Page(page.Number), logfields.Path(name))
	}
	return len(pages), nil
}

func (b *Builder) writeRecipePages(ctx context.Context, st *store.Store, registry authors.Registry) (int, error) {
	details, err := st.Details(ctx)
	if err != nil {
		return 0, err
	}

	for _, detail := range details {
		pageContext, err := b.recipeContext(detail, registry)
		if err != nil {
			return 0, err
		}
		rendered, err := b.renderer.Render(TemplateRecipe, pageContext)
		if err != nil {
			return 0, err
		}
		name := RecipePageName(detail.Filename, b.cfg.Output.Extension)
		if _, err := WriteArtifact(b.cfg.Output.Directory, name, rendered); err != nil {
			return 0, err
		}
		slog.Debug("Wrote recipe page", logfields.Recipe(detail.Filename), logfields.Path(name))
	}
	return len(details), nil
}

func (b *Builder) siteContext() map[string]any {
	return map[string]any{
		"Title":       b.cfg.Site.Title,
		"Description": b.cfg.Site.Description,
		"BaseURL":     b.cfg.Site.BaseURL,
	}
}

func (b *Builder) frontContext(page Page) map[string]any {
	recipes := make([]map[string]any, 0, len(page.Recipes))
	for _, summary := range page.Recipes {
		recipes = append(recipes, map[string]any{
			"Filename":    summary.Filename,
			"Title":       summary.Title,
			"DateAdded":   summary.DateAdded,
			"Author":      summary.Author,
			"Description": summary.Description,
			"Href":        RecipePageName(summary.Filename, b.cfg.Output.Extension),
		})
	}
	return map[string]any{
		"Site":       b.siteContext(),
		"Recipes":    recipes,
		"Page":       page.Number,
		"TotalPages": page.Total,
	}
}

func (b *Builder) recipeContext(detail store.Detail, registry authors.Registry) (map[string]any, error) {
	descriptionHTML, err := markdownToHTML(detail.Description)
	if err != nil {
		return nil, err
	}
	directionsHTML, err := markdownToHTML(detail.Directions)
	if err != nil {
		return nil, err
	}

	author, _ := registry.Resolve(detail.Author)
	return map[string]any{
		"Site": b.siteContext(),
		"Recipe": map[string]any{
			"Filename":        detail.Filename,
			"Title":           detail.Title,
			"DateAdded":       detail.DateAdded,
			"Author":          detail.Author,
			"Type":            detail.Type,
			"Description":     detail.Description,
			"DescriptionHTML": descriptionHTML,
			"Ingredients":     detail.Ingredients,
			"Directions":      detail.Directions,
			"DirectionsHTML":  directionsHTML,
			"CookTime":        detail.CookTime,
			"PrepTime":        detail.PrepTime,
			"Yield":           detail.Yield,
			"ServingSize":     detail.ServingSize,
			"Nutrition":       detail.Nutrition,
		},
		"Author": map[string]any{
			"Name": author.Name,
			"Bio":  author.Bio,
			"Link": author.Link,
		},
	}, nil
}

// dateStamp encodes a time as the integer YYYYMMDD form used for ordering.
func dateStamp(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
