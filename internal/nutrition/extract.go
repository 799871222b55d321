package nutrition

import (
	"strconv"
	"strings"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// Nutrient identifies one of the four tracked macronutrients.
type Nutrient string

const (
	NutrientKcal    Nutrient = "kcal"
	NutrientCarb    Nutrient = "carb"
	NutrientProtein Nutrient = "protein"
	NutrientFat     Nutrient = "fat"
)

// candidateKeys lists the column names observed across food data sources,
// most canonical first. Upstream catalogs mix Korean nutrition-DB headers
// with English exports, so extraction scans the list in order and takes
// the first parseable value.
var candidateKeys = map[Nutrient][]string{
	NutrientKcal: {
		"에너지(kcal)", "에너지(㎉)", "에너지", "열량(kcal)", "열량",
		"kcal", "calories", "calorie", "energy",
	},
	NutrientCarb: {
		"탄수화물(g)", "탄수화물",
		"carbohydrate(g)", "carbohydrate", "carbs", "carb",
	},
	NutrientProtein: {
		"단백질(g)", "단백질",
		"protein(g)", "protein",
	},
	NutrientFat: {
		"지방(g)", "지방",
		"fat(g)", "fat",
	},
}

// Extract returns the best-effort per-100g value of the target nutrient
// from a food record. Unparseable or missing fields degrade to 0; food
// data is heterogeneous and missing columns are common and non-fatal.
func Extract(record models.FoodRecord, nutrient Nutrient) float64 {
	keys, ok := candidateKeys[nutrient]
	if !ok || len(record) == 0 {
		return 0
	}

	for _, key := range keys {
		raw, found := lookup(record, key)
		if !found {
			continue
		}
		if v, ok := parseNumber(raw); ok {
			return v
		}
		// garbage in a matched field is treated as absent
	}
	return 0
}

// lookup finds a record value by key, ignoring case and surrounding
// whitespace in the record's column names.
func lookup(record models.FoodRecord, key string) (string, bool) {
	if v, ok := record[key]; ok {
		return v, true
	}
	want := strings.ToLower(strings.TrimSpace(key))
	for k, v := range record {
		if strings.ToLower(strings.TrimSpace(k)) == want {
			return v, true
		}
	}
	return "", false
}

// parseNumber cleans thousands separators and stray whitespace before
// parsing. Returns ok=false for anything strconv cannot handle.
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" || cleaned == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
