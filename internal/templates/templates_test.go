package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/recipebook/internal/infrastructure/system"
)

func TestConfigTemplates_Load(t *testing.T) {
	t.Parallel()

	tmpl, err := ConfigTemplates()

	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup(ConfigTemplateName))
}

// loadRendered writes rendered config to disk and reads it back with the
// system config loader.
func loadRendered(t *testing.T, data ConfigData) *system.Config {
	t.Helper()

	content, err := RenderConfig(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := system.NewConfigLoader().LoadConfig(context.Background(), path)
	require.NoError(t, err)
	return cfg
}

func TestRenderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := loadRendered(t, DefaultConfigData())

	assert.Equal(t, "recipes.json", cfg.RecipeFile)
	assert.Equal(t, "My Recipe", cfg.DefaultRecipeName)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.ColorEnabled())
	assert.Equal(t, []string{"high-protein", "light", "low-carb"}, cfg.GoalNames())
	assert.Equal(t, "carbs < 30", cfg.Goals["low-carb"])
}

func TestRenderConfig_QuotesValues(t *testing.T) {
	t.Parallel()

	cfg := loadRendered(t, ConfigData{
		RecipeFile:        "my recipes/dinner.yaml",
		DefaultRecipeName: "Mom's: \"best\" stew",
		OutputFormat:      "json",
		Color:             false,
		Goals: []Goal{
			{Name: "balanced", Expression: `protein >= 20 && fats < 30 || carbs == 0`},
		},
	})

	assert.Equal(t, "my recipes/dinner.yaml", cfg.RecipeFile)
	assert.Equal(t, "Mom's: \"best\" stew", cfg.DefaultRecipeName)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.ColorEnabled())
	assert.Equal(t, "protein >= 20 && fats < 30 || carbs == 0", cfg.Goals["balanced"])
}

func TestRenderConfig_NoGoals(t *testing.T) {
	t.Parallel()

	data := DefaultConfigData()
	data.Goals = nil

	cfg := loadRendered(t, data)
	assert.Empty(t, cfg.Goals)
}
