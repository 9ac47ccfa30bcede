// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"errors"
	"io"

	"github.com/reglet-dev/recipebook/internal/application/dto"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
)

// ErrPromptAborted is returned by a Prompter when the user cancels input.
var ErrPromptAborted = errors.New("prompt aborted")

// RecipeRepository stores a single recipe per file.
//
// Load returns *apperrors.NotFoundError when the file does not exist,
// *apperrors.CorruptError when it cannot be parsed and
// *apperrors.InvalidRecipeError when it parses but lacks required fields.
type RecipeRepository interface {
	Save(recipe *entities.Recipe, path string) error
	Load(path string) (*entities.Recipe, error)
}

// Prompter collects input for the interactive session.
type Prompter interface {
	// SelectAction shows the main menu for the named recipe.
	SelectAction(ctx context.Context, recipeName string) (dto.MenuAction, error)

	// PromptIngredient asks for an ingredient name and its numeric fields.
	// Non-numeric entries are rejected and asked again.
	PromptIngredient(ctx context.Context) (dto.IngredientInput, error)

	// PromptRecipeName asks for the name of a new recipe.
	PromptRecipeName(ctx context.Context) (string, error)

	// PromptPath asks for a file path, offering current as the default.
	PromptPath(ctx context.Context, title, current string) (string, error)
}

// FormatterOptions configures output formatters.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatter renders recipe reports.
type OutputFormatter interface {
	Format(report *dto.RecipeReport) error
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
