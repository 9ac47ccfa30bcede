// Package sqlite stores a recipe in a SQLite database file.
package sqlite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
)

var _ ports.RecipeRepository = (*RecipeRepository)(nil)

// RecipeRepository keeps exactly one recipe per database file, the same
// contract as the flat-file repository.
type RecipeRepository struct{}

// NewRecipeRepository creates a SQLite recipe repository.
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{}
}

// open connects to the database at path. The returned func closes it.
func open(path string) (*gorm.DB, func(), error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	return db, func() { _ = sqlDB.Close() }, nil
}

// Save replaces the stored recipe with recipe, creating the file and its
// tables when needed.
func (r *RecipeRepository) Save(recipe *entities.Recipe, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		//nolint:gosec // G301: 0o755 is standard for user data directories
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create recipe directory: %w", err)
		}
	}

	db, closeDB, err := open(path)
	if err != nil {
		return fmt.Errorf("failed to open recipe database: %w", err)
	}
	defer closeDB()

	if err := db.AutoMigrate(&recipeRow{}, &ingredientRow{}); err != nil {
		return fmt.Errorf("failed to prepare recipe database: %w", err)
	}

	row := toRow(recipe)
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ingredientRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&recipeRow{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write recipe database: %w", err)
	}
	return nil
}

// Load reads the recipe stored at path.
//
// A file that SQLite cannot read is corrupt; a readable database without
// the recipe tables or without a recipe row is incomplete.
func (r *RecipeRepository) Load(path string) (*entities.Recipe, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}

	db, closeDB, err := open(path)
	if err != nil {
		return nil, apperrors.NewCorruptError(path, err)
	}
	defer closeDB()

	// gorm opens lazily; the first query tells whether this is a database
	var tables int64
	if err := db.Raw("SELECT count(*) FROM sqlite_master").Scan(&tables).Error; err != nil {
		return nil, apperrors.NewCorruptError(path, err)
	}

	var missing []string
	for _, model := range []interface{ TableName() string }{recipeRow{}, ingredientRow{}} {
		if !db.Migrator().HasTable(model.TableName()) {
			missing = append(missing, fmt.Sprintf("missing table %q", model.TableName()))
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewInvalidRecipeError(path, missing...)
	}

	var row recipeRow
	err = db.Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewInvalidRecipeError(path, "no recipe stored")
	}
	if err != nil {
		return nil, apperrors.NewCorruptError(path, err)
	}

	return fromRow(row), nil
}
