package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

const stewDoc = `title: Beef Stew
date_added: 20240101
author: someone
type: dinner
description: Slow simmered.
ingredients:
  - beef
  - onions
directions: Brown and simmer.
`

func TestInitThenBuild_ProducesSite(t *testing.T) {
	chdir(t, t.TempDir())
	root := &CLI{Config: "config.yaml"}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.NoError(t, os.WriteFile(filepath.Join("recipes", "stew.yaml"), []byte(stewDoc), 0o644))

	require.NoError(t, (&BuildCmd{}).Run(&Global{}, root))

	// One real recipe; the _example.yaml document is excluded from the build.
	index, err := os.ReadFile(filepath.Join("site", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "Beef Stew")
	require.NotContains(t, string(index), "Example Recipe")

	_, err = os.Stat(filepath.Join("site", "recipe_stew.html"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join("site", "index2.html"))
	require.True(t, os.IsNotExist(err))
}

func TestBuildCmd_OutputFlagOverridesConfig(t *testing.T) {
	chdir(t, t.TempDir())
	root := &CLI{Config: "config.yaml"}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.NoError(t, os.WriteFile(filepath.Join("recipes", "stew.yaml"), []byte(stewDoc), 0o644))

	require.NoError(t, (&BuildCmd{Output: "public"}).Run(&Global{}, root))

	_, err := os.Stat(filepath.Join("public", "index.html"))
	require.NoError(t, err)
}

func TestValidateCmd_ReportsDocumentErrors(t *testing.T) {
	chdir(t, t.TempDir())
	root := &CLI{Config: "config.yaml"}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.NoError(t, (&ValidateCmd{}).Run(&Global{}, root))

	// A document missing its directions must fail validation.
	bad := `title: Incomplete
date_added: 20240101
author: someone
type: snack
description: Missing directions.
ingredients:
  - crackers
`
	require.NoError(t, os.WriteFile(filepath.Join("recipes", "incomplete.yaml"), []byte(bad), 0o644))

	err := (&ValidateCmd{}).Run(&Global{}, root)
	require.Error(t, err)
	require.Contains(t, err.Error(), "directions")

	// validate writes nothing.
	_, statErr := os.Stat("site")
	require.True(t, os.IsNotExist(statErr))
}

func TestBuildCmd_MissingConfig_Fails(t *testing.T) {
	chdir(t, t.TempDir())
	root := &CLI{Config: "config.yaml"}

	err := (&BuildCmd{}).Run(&Global{}, root)
	require.Error(t, err)
}
