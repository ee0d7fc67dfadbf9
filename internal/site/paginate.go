package site

import (
	"strconv"

	"github.com/cltkitchen/recipebuilder/internal/recipe"
)

// Page is one fixed-size chunk of the ordered summary listing.
type Page struct {
	// Number is the 1-based page index.
	Number int
	// Total is the page count for the whole listing.
	Total   int
	Recipes []recipe.Summary
}

// Paginate splits ordered summaries into contiguous chunks of size pageSize.
// Every page but possibly the last holds exactly pageSize entries; the last
// may hold as little as one. Zero summaries yields zero pages.
func Paginate(summaries []recipe.Summary, pageSize int) []Page {
	if len(summaries) == 0 {
		return nil
	}

	total := (len(summaries) + pageSize - 1) / pageSize
	pages := make([]Page, 0, total)
	for start := 0; start < len(summaries); start += pageSize {
		end := min(start+pageSize, len(summaries))
		pages = append(pages, Page{
			Number:  len(pages) + 1,
			Total:   total,
			Recipes: summaries[start:end],
		})
	}
	return pages
}

// FrontPageName returns the artifact name for a 1-based page index:
// the first page is canonical ("index"), later pages are numbered.
func FrontPageName(number int, extension string) string {
	if number == 1 {
		return "index" + extension
	}
	return "index" + strconv.Itoa(number) + extension
}

// RecipePageName returns the artifact name for one recipe, derived
// deterministically from its filename identity.
func RecipePageName(filename, extension string) string {
	return "recipe_" + filename + extension
}
