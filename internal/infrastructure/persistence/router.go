// Package persistence selects the recipe store for a path.
package persistence

import (
	"path/filepath"
	"strings"

	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
)

var _ ports.RecipeRepository = (*Router)(nil)

// Router sends database paths (.db, .sqlite, .sqlite3) to the database
// repository and every other path to the file repository.
type Router struct {
	files    ports.RecipeRepository
	database ports.RecipeRepository
}

// NewRouter creates a router over the two stores.
func NewRouter(files, database ports.RecipeRepository) *Router {
	return &Router{files: files, database: database}
}

// IsDatabasePath reports whether path names a SQLite recipe file.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

func (r *Router) pick(path string) ports.RecipeRepository {
	if IsDatabasePath(path) {
		return r.database
	}
	return r.files
}

// Save writes recipe to the store chosen by path.
func (r *Router) Save(recipe *entities.Recipe, path string) error {
	return r.pick(path).Save(recipe, path)
}

// Load reads the recipe from the store chosen by path.
func (r *Router) Load(path string) (*entities.Recipe, error) {
	return r.pick(path).Load(path)
}
