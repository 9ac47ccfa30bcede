package sqlite

import "github.com/reglet-dev/recipebook/internal/domain/entities"

// recipeRow is the single recipe stored in a database file.
type recipeRow struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Ingredients []ingredientRow `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (recipeRow) TableName() string {
	return "recipes"
}

// ingredientRow is one ingredient; Position keeps insertion order.
type ingredientRow struct {
	ID       uint    `gorm:"primaryKey"`
	RecipeID uint    `gorm:"not null;index"`
	Position int     `gorm:"not null"`
	Name     string  `gorm:"not null"`
	Quantity float64 `gorm:"not null"`
	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Fats     float64 `gorm:"not null"`
	Carbs    float64 `gorm:"not null"`
}

func (ingredientRow) TableName() string {
	return "ingredients"
}

func toRow(recipe *entities.Recipe) recipeRow {
	ingredients := recipe.Ingredients()
	row := recipeRow{
		Name:        recipe.Name(),
		Ingredients: make([]ingredientRow, 0, len(ingredients)),
	}
	for i, ing := range ingredients {
		info := ing.NutritionalInfo()
		row.Ingredients = append(row.Ingredients, ingredientRow{
			Position: i,
			Name:     info.Name,
			Quantity: info.Quantity,
			Calories: info.Calories,
			Protein:  info.Protein,
			Fats:     info.Fats,
			Carbs:    info.Carbs,
		})
	}
	return row
}

func fromRow(row recipeRow) *entities.Recipe {
	recipe := entities.NewRecipe(row.Name)
	for _, ing := range row.Ingredients {
		recipe.AddIngredient(entities.NewIngredient(ing.Name, ing.Quantity, ing.Calories, ing.Protein, ing.Fats, ing.Carbs))
	}
	return recipe
}
