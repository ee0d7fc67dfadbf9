package site

import (
	"bytes"

	"github.com/yuin/goldmark"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
)

// markdownToHTML renders free-form recipe text (description, directions)
// to HTML for the page templates.
func markdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", builderrors.Wrap(err, builderrors.CategoryRender, builderrors.SeverityFatal,
			"markdown conversion failed")
	}
	return buf.String(), nil
}
