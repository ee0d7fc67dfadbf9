package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cltkitchen/recipebuilder/internal/recipe"
)

func testRecipe(name string) recipe.Recipe {
	return recipe.Recipe{
		Filename:    name,
		Title:       "Recipe " + name,
		DateAdded:   20240101,
		Author:      "marge",
		Type:        "dinner",
		Description: "A test entry.",
		Ingredients: []any{"1 cup flour", "2 eggs", "a pinch of salt"},
		Directions:  "Combine and cook.",
	}
}

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsert_AssignsIncreasingIdentities(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first, err := s.Insert(ctx, testRecipe("one"), 20240101)
	require.NoError(t, err)
	second, err := s.Insert(ctx, testRecipe("two"), 20240101)
	require.NoError(t, err)

	require.Greater(t, second, first)
}

func TestInsert_DuplicateFilename_Fails(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, testRecipe("chili"), 20240101)
	require.NoError(t, err)
	_, err = s.Insert(ctx, testRecipe("chili"), 20240101)
	require.Error(t, err)
}

func TestDetails_RoundTripsIngredients(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	r := testRecipe("stew")
	r.Nutrition = recipe.Nutrition{"calories": "320", "protein": "18"}
	r.CookTime = "45m"
	_, err := s.Insert(ctx, r, 20240101)
	require.NoError(t, err)

	details, err := s.Details(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)

	got := details[0]
	require.Equal(t, []any{"1 cup flour", "2 eggs", "a pinch of salt"}, got.Ingredients)
	require.Equal(t, "320", got.Nutrition["calories"])
	require.Equal(t, "18", got.Nutrition["protein"])
	require.Equal(t, "45m", got.CookTime)
	require.Equal(t, "stew", got.Filename)
}

func TestDetails_AbsentNutrition_StaysNil(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, testRecipe("plain"), 20240101)
	require.NoError(t, err)

	details, err := s.Details(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Nil(t, details[0].Nutrition)
}

func TestSummaries_OrderedByDateDescThenInsertion(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	// Inserted out of date order on purpose.
	_, err := s.Insert(ctx, testRecipe("old"), 20230101)
	require.NoError(t, err)
	_, err = s.Insert(ctx, testRecipe("new"), 20250101)
	require.NoError(t, err)
	_, err = s.Insert(ctx, testRecipe("mid"), 20240101)
	require.NoError(t, err)

	summaries, err := s.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	require.Equal(t, "new", summaries[0].Filename)
	require.Equal(t, "mid", summaries[1].Filename)
	require.Equal(t, "old", summaries[2].Filename)
}

func TestSummaries_EqualDates_TieBrokenByInsertionOrder(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	names := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("recipe-%d", i)
		names = append(names, name)
		_, err := s.Insert(ctx, testRecipe(name), 20240601)
		require.NoError(t, err)
	}

	summaries, err := s.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 5)
	for i, summary := range summaries {
		require.Equal(t, names[i], summary.Filename)
	}
}

func TestSummaries_EmptyStore_ReturnsNoRows(t *testing.T) {
	s := openStore(t)

	summaries, err := s.Summaries(context.Background())
	require.NoError(t, err)
	require.Empty(t, summaries)
}
