// Package filesystem stores recipes in local files.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/codec"
)

var _ ports.RecipeRepository = (*RecipeRepository)(nil)

// RecipeRepository keeps one recipe per file. The encoding follows the file
// extension: .yaml and .yml are YAML, anything else JSON.
type RecipeRepository struct {
	codec *codec.Codec
}

// NewRecipeRepository creates a repository using the given codec.
func NewRecipeRepository(c *codec.Codec) *RecipeRepository {
	return &RecipeRepository{codec: c}
}

// Save writes the recipe to path, replacing any previous content.
func (r *RecipeRepository) Save(recipe *entities.Recipe, path string) error {
	data, err := r.codec.Encode(codec.Serialize(recipe), codec.FormatForPath(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		//nolint:gosec // G301: 0o755 is standard for user data directories
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create recipe directory: %w", err)
		}
	}

	//nolint:gosec // G306: recipe files are not sensitive
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}

// Load reads the recipe stored at path.
func (r *RecipeRepository) Load(path string) (*entities.Recipe, error) {
	//nolint:gosec // G304: path is the user-selected recipe file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	doc, err := r.codec.Decode(data, codec.FormatForPath(path))
	if err != nil {
		var structErr *codec.StructureError
		if errors.As(err, &structErr) {
			return nil, apperrors.NewInvalidRecipeError(path, structErr.Details...)
		}
		return nil, apperrors.NewCorruptError(path, err)
	}

	return codec.Deserialize(doc), nil
}
