// Package memory provides in-memory implementations of the recipe repository.
package memory

import (
	"sync"

	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/codec"
)

// Ensure interface compliance
var _ ports.RecipeRepository = (*RecipeRepository)(nil)

// RecipeRepository keeps recipes in memory keyed by path.
// Useful for testing and ephemeral sessions.
type RecipeRepository struct {
	documents map[string]codec.Document
	mu        sync.RWMutex
}

// NewRecipeRepository creates a new in-memory repository.
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		documents: make(map[string]codec.Document),
	}
}

// Save stores a snapshot of recipe under path, replacing any previous one.
// Later changes to recipe do not affect the stored copy.
func (r *RecipeRepository) Save(recipe *entities.Recipe, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.documents[path] = codec.Serialize(recipe)
	return nil
}

// Load returns a fresh recipe built from the snapshot stored under path.
func (r *RecipeRepository) Load(path string) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.documents[path]
	if !ok {
		return nil, apperrors.NewNotFoundError(path)
	}
	return codec.Deserialize(doc), nil
}

// Len returns the number of stored recipes.
func (r *RecipeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.documents)
}
