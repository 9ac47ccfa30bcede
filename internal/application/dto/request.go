// Package dto contains data transfer objects for application layer use cases.
package dto

// IngredientInput carries already-validated ingredient fields from a driver.
type IngredientInput struct {
	Name     string
	Quantity float64
	Calories float64
	Protein  float64
	Fats     float64
	Carbs    float64
}

// AddIngredientRequest appends one ingredient to the recipe stored at Path.
type AddIngredientRequest struct {
	Path string

	// RecipeName names the recipe created when Path does not exist yet
	RecipeName string

	Ingredient IngredientInput
}

// CheckGoalsRequest evaluates goals against the recipe stored at Path.
type CheckGoalsRequest struct {
	Path string

	// Expressions are ad-hoc goals given on the command line
	Expressions []string

	// GoalNames reference goals defined in the system config
	GoalNames []string
}

// MenuAction is one entry of the interactive menu.
type MenuAction string

const (
	ActionAddIngredient   MenuAction = "add"
	ActionViewNutrition   MenuAction = "view"
	ActionListIngredients MenuAction = "list"
	ActionSave            MenuAction = "save"
	ActionLoad            MenuAction = "load"
	ActionNew             MenuAction = "new"
	ActionExit            MenuAction = "exit"
)

// MenuActions lists the menu entries in display order.
func MenuActions() []MenuAction {
	return []MenuAction{
		ActionAddIngredient,
		ActionViewNutrition,
		ActionListIngredients,
		ActionSave,
		ActionLoad,
		ActionNew,
		ActionExit,
	}
}

// Label returns the menu text for an action.
func (a MenuAction) Label() string {
	switch a {
	case ActionAddIngredient:
		return "Add ingredient"
	case ActionViewNutrition:
		return "View nutrition"
	case ActionListIngredients:
		return "List ingredients"
	case ActionSave:
		return "Save recipe"
	case ActionLoad:
		return "Load recipe"
	case ActionNew:
		return "New recipe"
	case ActionExit:
		return "Exit"
	default:
		return string(a)
	}
}
