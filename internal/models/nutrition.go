package models

// FoodRecord is one row of the food catalog: an open key/value map whose
// column names vary by data source (English, Korean, abbreviated). All
// nutrient access must go through the extraction functions in
// internal/nutrition, never ad hoc key lookups.
type FoodRecord map[string]string

// FoodIntakeEntry is a user's selection of one food plus a consumed
// quantity in grams. Grams defaults to 100 on selection.
type FoodIntakeEntry struct {
	Food  FoodRecord `json:"food"`
	Grams float64    `json:"grams"`
}

// NutrientTotals is the aggregate intake computed from a list of
// FoodIntakeEntry. Kept as unrounded floating point; rounding happens
// only at the presentation boundary.
type NutrientTotals struct {
	Kcal    float64 `json:"kcal"`
	Carb    float64 `json:"carb"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}
