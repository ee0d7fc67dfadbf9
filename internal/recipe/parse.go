package recipe

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	builderrors "github.com/cltkitchen/recipebuilder/internal/errors"
	"github.com/cltkitchen/recipebuilder/internal/logfields"
)

// ParseFile reads one recipe document and returns a validated Recipe.
//
// Validation is fail-fast: the first violation produces an error naming the
// file and the violated rule, and the caller aborts the whole build.
func ParseFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, builderrors.OpenFailed(path, err)
	}

	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return nil, builderrors.ParseFailed(path, err)
	}
	if fields == nil {
		fields = map[string]any{}
	}

	for _, field := range RequiredFields {
		if _, ok := fields[field]; !ok {
			return nil, builderrors.MissingField(path, field)
		}
	}

	nutrition, err := validateNutrition(path, fields)
	if err != nil {
		return nil, err
	}

	ingredients, err := validateIngredients(path, fields["ingredients"])
	if err != nil {
		return nil, err
	}

	dateAdded, err := normalizeDate(fields["date_added"])
	if err != nil {
		return nil, builderrors.New(builderrors.CategoryValidation, builderrors.SeverityFatal,
			fmt.Sprintf("date_added %v in recipe %s", err, path)).
			WithContext("file", path).
			WithContext("field", "date_added")
	}

	return &Recipe{
		Filename:    IdentityFromPath(path),
		Title:       stringify(fields["title"]),
		DateAdded:   dateAdded,
		Author:      stringify(fields["author"]),
		Type:        stringify(fields["type"]),
		Description: stringify(fields["description"]),
		Ingredients: ingredients,
		Directions:  stringify(fields["directions"]),
		CookTime:    optionalString(fields, "cook_time"),
		PrepTime:    optionalString(fields, "prep_time"),
		Yield:       optionalString(fields, "yield"),
		ServingSize: optionalString(fields, "serving_size"),
		Nutrition:   nutrition,
	}, nil
}

// ParseAll parses every document, rejecting duplicate identities. Two
// documents whose base names normalize to the same identity would silently
// overwrite each other's output artifact, so the build refuses them.
func ParseAll(paths []string) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(paths))
	seen := make(map[string]string, len(paths))

	for _, path := range paths {
		parsed, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		key := NormalizeIdentity(parsed.Filename)
		if other, dup := seen[key]; dup {
			return nil, builderrors.DuplicateIdentity(path, other, parsed.Filename)
		}
		seen[key] = path
		recipes = append(recipes, *parsed)
		slog.Debug("Parsed recipe document", logfields.File(path), logfields.Recipe(parsed.Filename))
	}
	return recipes, nil
}

func validateNutrition(path string, fields map[string]any) (Nutrition, error) {
	raw, present := fields["nutrition"]
	if !present {
		return nil, nil
	}

	table, ok := raw.(map[string]any)
	if !ok {
		return nil, builderrors.New(builderrors.CategoryValidation, builderrors.SeverityFatal,
			"nutrition must be a table of macronutrients in recipe "+path).
			WithContext("file", path)
	}

	// Sorted so "first unrecognized key" is deterministic.
	macros := make([]string, 0, len(table))
	for macro := range table {
		macros = append(macros, macro)
	}
	sort.Strings(macros)

	nutrition := make(Nutrition, len(table))
	for _, macro := range macros {
		if _, known := MacronutrientFields[macro]; !known {
			return nil, builderrors.UnknownMacronutrient(path, macro)
		}
		nutrition[macro] = table[macro]
	}
	return nutrition, nil
}

func validateIngredients(path string, raw any) ([]any, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, builderrors.InvalidIngredients(path, "must be a list")
	}
	if len(list) == 0 {
		return nil, builderrors.InvalidIngredients(path, "must not be empty")
	}
	return list, nil
}

// normalizeDate accepts an integer YYYYMMDD or an ISO date string and
// returns the integer encoding used for sorting.
func normalizeDate(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return checkDateEncoding(v)
	case int64:
		return checkDateEncoding(int(v))
	case uint64:
		return checkDateEncoding(int(v))
	case string:
		s := strings.TrimSpace(v)
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return t.Year()*10000 + int(t.Month())*100 + t.Day(), nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return checkDateEncoding(n)
		}
		return 0, fmt.Errorf("value %q is not a date (want YYYYMMDD or YYYY-MM-DD)", v)
	case time.Time:
		return v.Year()*10000 + int(v.Month())*100 + v.Day(), nil
	default:
		return 0, fmt.Errorf("value %v is not a date (want YYYYMMDD or YYYY-MM-DD)", raw)
	}
}

func checkDateEncoding(n int) (int, error) {
	if n < 10000101 || n > 99991231 {
		return 0, fmt.Errorf("value %d is out of range for YYYYMMDD encoding", n)
	}
	month := n / 100 % 100
	day := n % 100
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, fmt.Errorf("value %d is not a valid YYYYMMDD date", n)
	}
	return n, nil
}

func optionalString(fields map[string]any, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	return stringify(raw)
}

func stringify(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", raw)
}
