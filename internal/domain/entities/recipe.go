package entities

import "github.com/reglet-dev/recipebook/internal/domain/values"

// Recipe is a named, ordered collection of ingredients.
// Ingredients are only ever appended; insertion order is preserved.
type Recipe struct {
	name        string
	ingredients []Ingredient
}

// NewRecipe creates an empty recipe.
func NewRecipe(name string) *Recipe {
	return &Recipe{
		name:        name,
		ingredients: make([]Ingredient, 0),
	}
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// AddIngredient appends an ingredient. Duplicates are allowed.
func (r *Recipe) AddIngredient(ingredient Ingredient) {
	r.ingredients = append(r.ingredients, ingredient)
}

// Ingredients returns a copy of the ingredient sequence.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Len returns the number of ingredients.
func (r *Recipe) Len() int {
	return len(r.ingredients)
}

// IsEmpty returns true if no ingredient has been added.
func (r *Recipe) IsEmpty() bool {
	return len(r.ingredients) == 0
}

// CalculateNutrition sums calories, protein, fats and carbs over all
// ingredients in insertion order. An empty recipe yields all zeros.
func (r *Recipe) CalculateNutrition() values.Totals {
	var totals values.Totals
	for _, ing := range r.ingredients {
		totals = totals.Add(ing.NutritionalInfo())
	}
	return totals
}

// TotalQuantity sums ingredient quantities in grams.
func (r *Recipe) TotalQuantity() float64 {
	var total float64
	for _, ing := range r.ingredients {
		total += ing.quantity
	}
	return total
}

// IngredientNames returns ingredient names in insertion order.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		names = append(names, ing.name)
	}
	return names
}
