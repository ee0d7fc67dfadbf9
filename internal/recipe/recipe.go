// Package recipe defines the recipe domain model and turns source documents
// into validated Recipe records.
package recipe

// Recipe is the validated in-memory representation of one recipe document.
type Recipe struct {
	// Filename is the identity key: the source document's base name with
	// its extension stripped. It is used verbatim in output file naming.
	Filename string

	Title       string
	DateAdded   int // declared date, normalized to YYYYMMDD
	Author      string
	Type        string
	Description string
	Ingredients []any
	Directions  string

	// Optional attributes; zero values mean the document omitted them.
	CookTime    string
	PrepTime    string
	Yield       string
	ServingSize string
	Nutrition   Nutrition
}

// Nutrition maps a macronutrient name to its declared value. Keys are
// restricted to the fixed vocabulary below; values are carried opaquely.
type Nutrition map[string]any

// RequiredFields lists the fields every recipe document must declare,
// in the order they are checked.
var RequiredFields = []string{
	"title",
	"date_added",
	"author",
	"type",
	"description",
	"ingredients",
	"directions",
}

// MacronutrientFields is the closed vocabulary of recognized nutrition keys.
var MacronutrientFields = map[string]struct{}{
	"calories":            {},
	"total_fat":           {},
	"saturated_fat":       {},
	"trans_fat":           {},
	"cholesterol":         {},
	"sodium":              {},
	"total_carbohydrates": {},
	"fiber":               {},
	"sugars":              {},
	"protein":             {},
	"unsaturated_fat":     {},
}

// Summary is the listing projection used for front pages.
type Summary struct {
	ID          int64
	Filename    string
	Title       string
	DateAdded   int
	Author      string
	Description string
}
