package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

func testSiteContext() map[string]any {
	return map[string]any{
		"Title":       "Test Kitchen",
		"Description": "",
		"BaseURL":     "",
	}
}

func TestTemplateRenderer_BuiltinFrontPage_Golden(t *testing.T) {
	renderer, err := NewTemplateRenderer("")
	require.NoError(t, err)

	out, err := renderer.Render(TemplateIndex, map[string]any{
		"Site": testSiteContext(),
		"Recipes": []map[string]any{
			{
				"Filename":    "stew",
				"Title":       "Beef Stew",
				"DateAdded":   20240601,
				"Author":      "marge",
				"Description": "Slow simmered.",
				"Href":        "recipe_stew.html",
			},
			{
				"Filename":    "bread",
				"Title":       "Brown Bread",
				"DateAdded":   20240601,
				"Author":      "ines",
				"Description": "Dense and sweet.",
				"Href":        "recipe_bread.html",
			},
		},
		"Page":       1,
		"TotalPages": 1,
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "front_page", []byte(out))
}

func TestTemplateRenderer_BuiltinRecipePage_Golden(t *testing.T) {
	renderer, err := NewTemplateRenderer("")
	require.NoError(t, err)

	out, err := renderer.Render(TemplateRecipe, map[string]any{
		"Site": testSiteContext(),
		"Recipe": map[string]any{
			"Filename":        "stew",
			"Title":           "Beef Stew",
			"DateAdded":       20240601,
			"Author":          "marge",
			"Type":            "dinner",
			"Description":     "Slow simmered.",
			"DescriptionHTML": "<p>Slow simmered.</p>\n",
			"Ingredients":     []any{"beef", "onions"},
			"Directions":      "Brown the beef. Simmer two hours.",
			"DirectionsHTML":  "<p>Brown the beef. Simmer two hours.</p>\n",
			"CookTime":        "45m",
			"PrepTime":        "",
			"Yield":           "",
			"ServingSize":     "",
			"Nutrition":       map[string]any{"calories": 250, "protein": 18},
		},
		"Author": map[string]any{
			"Name": "Marge Holmgren",
			"Bio":  "",
			"Link": "",
		},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "recipe_page", []byte(out))
}

func TestTemplateRenderer_DirectoryOverride_Wins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tmpl"),
		[]byte("OVERRIDE {{.Site.Title}} page {{.Page}}/{{.TotalPages}}"), 0o644))

	renderer, err := NewTemplateRenderer(dir)
	require.NoError(t, err)

	out, err := renderer.Render(TemplateIndex, map[string]any{
		"Site":       testSiteContext(),
		"Recipes":    []map[string]any{},
		"Page":       1,
		"TotalPages": 1,
	})
	require.NoError(t, err)
	require.Equal(t, "OVERRIDE Test Kitchen page 1/1", out)
}

func TestTemplateRenderer_UnknownTemplate_Fails(t *testing.T) {
	renderer, err := NewTemplateRenderer("")
	require.NoError(t, err)

	_, err = renderer.Render("taxonomy", map[string]any{})
	require.Error(t, err)
	require.True(t, builderrors.IsCategory(err, builderrors.CategoryRender))
}

func TestTemplateRenderer_MissingContextKey_Fails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tmpl"),
		[]byte("{{.NoSuchKey}}"), 0o644))

	renderer, err := NewTemplateRenderer(dir)
	require.NoError(t, err)

	_, err = renderer.Render(TemplateIndex, map[string]any{"Site": testSiteContext()})
	require.Error(t, err)
	require.True(t, builderrors.IsCategory(err, builderrors.CategoryRender))
}

func TestMarkdownToHTML_RendersParagraphsAndEmphasis(t *testing.T) {
	out, err := markdownToHTML("Simmer *gently* for two hours.")
	require.NoError(t, err)
	require.Equal(t, "<p>Simmer <em>gently</em> for two hours.</p>\n", out)
}
