// Package codec converts recipes to and from their persisted document form.
package codec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/values"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed recipe.schema.json
var recipeSchema []byte

const schemaURL = "recipe.schema.json"

// Format is the text encoding of a recipe file.
type Format string

const (
	// FormatJSON is the default encoding.
	FormatJSON Format = "json"
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the persisted shape of a recipe. Ingredient field order is
// name, quantity, calories, protein, fats, carbs.
type Document struct {
	Name        string                   `json:"name" yaml:"name"`
	Ingredients []values.NutritionalInfo `json:"ingredients" yaml:"ingredients"`
}

// SyntaxError indicates the text could not be parsed as JSON or YAML.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed document: %v", e.Cause)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// StructureError indicates the text parsed but does not match the recipe schema.
type StructureError struct {
	Details []string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("document does not match recipe schema: %s", strings.Join(e.Details, "; "))
}

// Serialize builds the document for a recipe.
func Serialize(recipe *entities.Recipe) Document {
	ingredients := recipe.Ingredients()
	doc := Document{
		Name:        recipe.Name(),
		Ingredients: make([]values.NutritionalInfo, 0, len(ingredients)),
	}
	for _, ing := range ingredients {
		doc.Ingredients = append(doc.Ingredients, ing.NutritionalInfo())
	}
	return doc
}

// Deserialize rebuilds a recipe from a document, keeping ingredient order.
func Deserialize(doc Document) *entities.Recipe {
	recipe := entities.NewRecipe(doc.Name)
	for _, info := range doc.Ingredients {
		recipe.AddIngredient(entities.NewIngredient(
			info.Name,
			info.Quantity,
			info.Calories,
			info.Protein,
			info.Fats,
			info.Carbs,
		))
	}
	return recipe
}

// Codec encodes and decodes recipe documents.
type Codec struct {
	schema *jsonschema.Schema
}

// New compiles the embedded recipe schema and returns a Codec.
func New() (*Codec, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaURL, bytes.NewReader(recipeSchema)); err != nil {
		return nil, fmt.Errorf("failed to add recipe schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile recipe schema: %w", err)
	}

	return &Codec{schema: schema}, nil
}

// Encode renders a document as text. JSON output is indented by two
// spaces and ends with a newline.
func (c *Codec) Encode(doc Document, format Format) ([]byte, error) {
	if doc.Ingredients == nil {
		doc.Ingredients = []values.NutritionalInfo{}
	}

	switch format {
	case FormatYAML:
		yamlDoc, err := toYAMLDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal recipe to YAML: %w", err)
		}
		data, err := yaml.MarshalWithOptions(yamlDoc, yaml.IndentSequence(true))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal recipe to YAML: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal recipe to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown recipe format: %s", format)
	}
}

// Decode parses text into a document.
//
// Unparsable text yields a *SyntaxError. Text that parses but lacks a field
// or has a value of the wrong type yields a *StructureError.
func (c *Codec) Decode(data []byte, format Format) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, &SyntaxError{Cause: errors.New("empty document")}
	}

	raw, err := parseRaw(data, format)
	if err != nil {
		return Document{}, &SyntaxError{Cause: err}
	}

	if err := c.schema.Validate(raw); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return Document{}, &StructureError{Details: collectMessages(validationErr)}
		}
		return Document{}, &StructureError{Details: []string{err.Error()}}
	}

	var doc Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Document{}, &StructureError{Details: []string{err.Error()}}
	}

	return doc, nil
}

// yamlDocument mirrors Document with numbers that read back as numbers.
type yamlDocument struct {
	Name        string           `yaml:"name"`
	Ingredients []yamlIngredient `yaml:"ingredients"`
}

type yamlIngredient struct {
	Name     string     `yaml:"name"`
	Quantity yamlNumber `yaml:"quantity"`
	Calories yamlNumber `yaml:"calories"`
	Protein  yamlNumber `yaml:"protein"`
	Fats     yamlNumber `yaml:"fats"`
	Carbs    yamlNumber `yaml:"carbs"`
}

// yamlNumber is a float64 written in a form the YAML decoder parses back
// to the same bits.
type yamlNumber float64

// MarshalYAML writes the shortest exact representation. The decoder only
// reads text with a dot as a float, and integers must fit in 64 bits, so
// exponent forms like 1e-07 become 1.0e-07.
func (n yamlNumber) MarshalYAML() ([]byte, error) {
	text := strconv.FormatFloat(float64(n), 'g', -1, 64)
	if strings.Contains(text, ".") {
		return []byte(text), nil
	}
	if mantissa, exponent, ok := strings.Cut(text, "e"); ok {
		return []byte(mantissa + ".0e" + exponent), nil
	}
	if text == "-0" {
		return []byte("-0.0"), nil
	}
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return []byte(text + ".0"), nil
	}
	return []byte(text), nil
}

func toYAMLDocument(doc Document) (yamlDocument, error) {
	out := yamlDocument{
		Name:        doc.Name,
		Ingredients: make([]yamlIngredient, 0, len(doc.Ingredients)),
	}
	for _, info := range doc.Ingredients {
		for _, v := range []float64{info.Quantity, info.Calories, info.Protein, info.Fats, info.Carbs} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return yamlDocument{}, fmt.Errorf("ingredient %q: unsupported value %v", info.Name, v)
			}
		}
		out.Ingredients = append(out.Ingredients, yamlIngredient{
			Name:     info.Name,
			Quantity: yamlNumber(info.Quantity),
			Calories: yamlNumber(info.Calories),
			Protein:  yamlNumber(info.Protein),
			Fats:     yamlNumber(info.Fats),
			Carbs:    yamlNumber(info.Carbs),
		})
	}
	return out, nil
}

// parseRaw decodes text into untyped values for schema validation.
func parseRaw(data []byte, format Format) (interface{}, error) {
	var raw interface{}

	if format == FormatYAML {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after recipe document")
	}
	return raw, nil
}

// collectMessages flattens a schema validation error into one line per leaf.
func collectMessages(err *jsonschema.ValidationError) []string {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		messages = append(messages, err.Error())
	}
	return messages
}
