package site

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
	"github.com/cltkitchen/recipebuilder/internal/logfields"
)

// Renderer turns a named template and a render context into page text.
// The builder does not interpret the result beyond writing it to a file.
type Renderer interface {
	Render(templateID string, context map[string]any) (string, error)
}

// Template identifiers the builder renders with.
const (
	TemplateIndex  = "index"
	TemplateRecipe = "recipe"
)

// TemplateRenderer renders with text/template files from a templates
// directory, falling back to the embedded builtins when a template file is
// absent. Templates are parsed once, at construction.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer loads <id>.tmpl files from dir for the known template
// identifiers. dir may be empty or missing; builtins cover the gaps.
func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	renderer := &TemplateRenderer{templates: make(map[string]*template.Template)}

	for id, builtin := range builtinTemplates {
		text := builtin
		if dir != "" {
			path := filepath.Join(dir, id+".tmpl")
			if data, err := os.ReadFile(path); err == nil {
				text = string(data)
				slog.Debug("Loaded template override", logfields.Template(id), logfields.Path(path))
			} else if !os.IsNotExist(err) {
				return nil, builderrors.Wrap(err, builderrors.CategoryConfig, builderrors.SeverityFatal,
					"unable to read template").WithContext("path", path)
			}
		}

		tpl, err := template.New(id).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, builderrors.RenderFailed(id, err)
		}
		renderer.templates[id] = tpl
	}
	return renderer, nil
}

// Render executes the named template against the context.
func (r *TemplateRenderer) Render(templateID string, context map[string]any) (string, error) {
	tpl, ok := r.templates[templateID]
	if !ok {
		return "", builderrors.New(builderrors.CategoryRender, builderrors.SeverityFatal,
			"unknown template").WithContext("template", templateID)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, context); err != nil {
		return "", builderrors.RenderFailed(templateID, err)
	}
	return buf.String(), nil
}
