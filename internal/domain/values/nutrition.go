// Package values contains domain value objects for recipes and goals.
package values

// NutritionalInfo is the full field set of one ingredient.
// Field order matches the persisted ingredient record.
type NutritionalInfo struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Fats     float64 `json:"fats" yaml:"fats"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
}

// Totals holds the aggregated nutrient values of a recipe.
type Totals struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Fats     float64 `json:"fats" yaml:"fats"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
}

// Add returns t with the nutrient fields of info added.
func (t Totals) Add(info NutritionalInfo) Totals {
	return Totals{
		Calories: t.Calories + info.Calories,
		Protein:  t.Protein + info.Protein,
		Fats:     t.Fats + info.Fats,
		Carbs:    t.Carbs + info.Carbs,
	}
}

// AsMap returns the totals keyed by nutrient name.
func (t Totals) AsMap() map[string]float64 {
	return map[string]float64{
		"calories": t.Calories,
		"protein":  t.Protein,
		"fats":     t.Fats,
		"carbs":    t.Carbs,
	}
}
