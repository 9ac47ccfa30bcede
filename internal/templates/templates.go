// Package templates provides embedded templates for generated files.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"text/template"
)

//go:embed config/*.tmpl
var configTemplates embed.FS

// ConfigTemplateName is the template that renders the user config file.
const ConfigTemplateName = "config.yaml"

// ConfigData contains the data used to render the config template.
type ConfigData struct {
	// RecipeFile is the default recipe file (e.g., "recipes.json")
	RecipeFile string
	// DefaultRecipeName names the recipe a new session starts with (e.g., "My Recipe")
	DefaultRecipeName string
	// OutputFormat is one of table, json, yaml
	OutputFormat string
	Color        bool
	// Goals are written in order
	Goals []Goal
}

// Goal is a named goal expression written to the config file.
type Goal struct {
	Name       string
	Expression string
}

// DefaultConfigData returns the values written by 'recipebook init'.
func DefaultConfigData() ConfigData {
	return ConfigData{
		RecipeFile:        "recipes.json",
		DefaultRecipeName: "My Recipe",
		OutputFormat:      "table",
		Color:             true,
		Goals: []Goal{
			{Name: "high-protein", Expression: "protein >= 20"},
			{Name: "light", Expression: "calories < 500"},
			{Name: "low-carb", Expression: "carbs < 30"},
		},
	}
}

var funcs = template.FuncMap{
	"quote": strconv.Quote,
}

// ConfigTemplates returns the parsed config templates.
func ConfigTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(funcs)

	err := fs.WalkDir(configTemplates, "config", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := configTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		// Use filename without .tmpl as template name
		name := strings.TrimPrefix(path, "config/")
		name = strings.TrimSuffix(name, ".tmpl")

		_, err = tmpl.New(name).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	return tmpl, nil
}

// RenderConfig renders the user config file.
func RenderConfig(data ConfigData) ([]byte, error) {
	tmpl, err := ConfigTemplates()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, ConfigTemplateName, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", ConfigTemplateName, err)
	}
	return buf.Bytes(), nil
}
