package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/recipebook/internal/application/dto"
)

// YAMLFormatter formats recipe reports as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(report *dto.RecipeReport) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2), yaml.IndentSequence(true))

	if err := encoder.Encode(report); err != nil {
		return err
	}

	return encoder.Close()
}
