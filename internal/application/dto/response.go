package dto

import (
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/services"
	"github.com/reglet-dev/recipebook/internal/domain/values"
)

// RecipeReport is the display form of a recipe.
type RecipeReport struct {
	Name          string                   `json:"name" yaml:"name"`
	Path          string                   `json:"path,omitempty" yaml:"path,omitempty"`
	Ingredients   []values.NutritionalInfo `json:"ingredients" yaml:"ingredients"`
	Totals        values.Totals            `json:"totals" yaml:"totals"`
	TotalQuantity float64                  `json:"total_quantity" yaml:"total_quantity"`
	Goals         []services.GoalResult    `json:"goals,omitempty" yaml:"goals,omitempty"`
}

// NewRecipeReport builds a report for a recipe.
func NewRecipeReport(recipe *entities.Recipe, path string) *RecipeReport {
	ingredients := recipe.Ingredients()
	report := &RecipeReport{
		Name:          recipe.Name(),
		Path:          path,
		Ingredients:   make([]values.NutritionalInfo, 0, len(ingredients)),
		Totals:        recipe.CalculateNutrition(),
		TotalQuantity: recipe.TotalQuantity(),
	}
	for _, ing := range ingredients {
		report.Ingredients = append(report.Ingredients, ing.NutritionalInfo())
	}
	return report
}

// CheckGoalsResponse contains the outcome of a goal check.
type CheckGoalsResponse struct {
	Report *RecipeReport
	Status values.GoalStatus
}
