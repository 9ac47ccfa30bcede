// Package system provides infrastructure for system-level configuration.
// This covers loading the user config file (~/.recipebook/config.yaml).
package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultRecipeFile is the recipe file used when nothing else is configured.
	DefaultRecipeFile = "recipes.json"

	// DefaultRecipeName names the recipe a new session starts with.
	DefaultRecipeName = "My Recipe"
)

// Config represents the user configuration file (~/.recipebook/config.yaml).
type Config struct {
	Goals             map[string]string `yaml:"goals"`
	RecipeFile        string            `yaml:"recipe_file"`
	DefaultRecipeName string            `yaml:"default_recipe_name"`
	Output            OutputConfig      `yaml:"output"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  *bool  `yaml:"color"`
}

// ColorEnabled returns the configured color setting, defaulting to true.
func (c OutputConfig) ColorEnabled() bool {
	if c.Color == nil {
		return true
	}
	return *c.Color
}

// GoalNames returns the configured goal names in sorted order.
func (c *Config) GoalNames() []string {
	names := make([]string, 0, len(c.Goals))
	for name := range c.Goals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// DefaultConfigPath returns ~/.recipebook/config.yaml, or an empty string
// when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".recipebook", "config.yaml")
}

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Goals:             make(map[string]string),
		RecipeFile:        DefaultRecipeFile,
		DefaultRecipeName: DefaultRecipeName,
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// LoadConfig loads the configuration from path.
// A missing file (or empty path) yields DefaultConfig(). Fields left out of
// the file keep their defaults.
func (l *ConfigLoader) LoadConfig(_ context.Context, path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	//nolint:gosec // G304: path is the user-provided config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}

	if config.Goals == nil {
		config.Goals = make(map[string]string)
	}
	if config.RecipeFile == "" {
		config.RecipeFile = DefaultRecipeFile
	}
	if config.DefaultRecipeName == "" {
		config.DefaultRecipeName = DefaultRecipeName
	}
	if config.Output.Format == "" {
		config.Output.Format = "table"
	}

	return config, nil
}
