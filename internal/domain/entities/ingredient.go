// Package entities holds the recipe aggregate and its ingredients.
package entities

import "github.com/reglet-dev/recipebook/internal/domain/values"

// Ingredient is one food item of a recipe. Quantity is in grams.
//
// Values are stored as given: zero and negative numbers are accepted and
// callers are expected to validate user input before construction.
type Ingredient struct {
	name     string
	quantity float64
	calories float64
	protein  float64
	fats     float64
	carbs    float64
}

// NewIngredient creates an Ingredient.
func NewIngredient(name string, quantity, calories, protein, fats, carbs float64) Ingredient {
	return Ingredient{
		name:     name,
		quantity: quantity,
		calories: calories,
		protein:  protein,
		fats:     fats,
		carbs:    carbs,
	}
}

// Name returns the ingredient name.
func (i Ingredient) Name() string { return i.name }

// Quantity returns the quantity in grams.
func (i Ingredient) Quantity() float64 { return i.quantity }

// Calories returns the energy content.
func (i Ingredient) Calories() float64 { return i.calories }

// Protein returns the protein mass.
func (i Ingredient) Protein() float64 { return i.protein }

// Fats returns the fat mass.
func (i Ingredient) Fats() float64 { return i.fats }

// Carbs returns the carbohydrate mass.
func (i Ingredient) Carbs() float64 { return i.carbs }

// NutritionalInfo returns every field of the ingredient.
func (i Ingredient) NutritionalInfo() values.NutritionalInfo {
	return values.NutritionalInfo{
		Name:     i.name,
		Quantity: i.quantity,
		Calories: i.calories,
		Protein:  i.protein,
		Fats:     i.fats,
		Carbs:    i.carbs,
	}
}
