package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/recipebook/internal/infrastructure/system"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	var out bytes.Buffer
	require.NoError(t, runInit(&initOptions{Path: path}, &out))
	assert.Contains(t, out.String(), "Wrote "+path)

	cfg, err := system.NewConfigLoader().LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, cfg.GoalNames(), "low-carb")

	err = runInit(&initOptions{Path: path}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, os.WriteFile(path, []byte("recipe_file: other.json\n"), 0o600))
	require.NoError(t, runInit(&initOptions{Path: path, Force: true}, &out))

	cfg, err = system.NewConfigLoader().LoadConfig(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "recipes.json", cfg.RecipeFile)
}

func TestRunInit_NoPath(t *testing.T) {
	t.Parallel()

	err := runInit(&initOptions{}, &bytes.Buffer{})
	require.Error(t, err)
}
