package nutrition

import (
	"math"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// Aggregate scales each entry's per-100g values by consumed grams and
// sums them into total intake. Pure and order-independent: any
// permutation of entries yields the same totals.
func Aggregate(entries []models.FoodIntakeEntry) models.NutrientTotals {
	var totals models.NutrientTotals
	for _, entry := range entries {
		scale := entry.Grams / 100
		totals.Kcal += Extract(entry.Food, NutrientKcal) * scale
		totals.Carb += Extract(entry.Food, NutrientCarb) * scale
		totals.Protein += Extract(entry.Food, NutrientProtein) * scale
		totals.Fat += Extract(entry.Food, NutrientFat) * scale
	}
	return totals
}

// RoundKcal rounds a kcal value for display. Totals stay unrounded
// internally; rounding before aggregation would compound error.
func RoundKcal(v float64) int {
	return int(math.Round(v))
}

// RoundMacro rounds a gram value to one decimal for display.
func RoundMacro(v float64) float64 {
	return math.Round(v*10) / 10
}
