package nutrition

import (
	"math"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// Classification levels for percent-of-requirement. The 80/120 band is
// the system-wide policy: below 80 deficient, 80-120 inclusive adequate,
// above 120 excess.
const (
	LevelDeficient = "deficient"
	LevelAdequate  = "adequate"
	LevelExcess    = "excess"
)

// NutrientStat is the per-nutrient intake-vs-requirement statistic.
type NutrientStat struct {
	Required float64 `json:"required"`
	Intake   float64 `json:"intake"`
	Percent  int     `json:"percent"`
	Level    string  `json:"level"`
}

// Comparison holds the stats for all four tracked nutrients.
type Comparison struct {
	Kcal    NutrientStat `json:"kcal"`
	Carb    NutrientStat `json:"carb"`
	Protein NutrientStat `json:"protein"`
	Fat     NutrientStat `json:"fat"`
}

// Compare produces percent-of-requirement statistics per nutrient.
// Percent is 0 when the requirement side is not positive.
func Compare(required, intake models.NutrientTotals) Comparison {
	return Comparison{
		Kcal:    compareOne(required.Kcal, intake.Kcal),
		Carb:    compareOne(required.Carb, intake.Carb),
		Protein: compareOne(required.Protein, intake.Protein),
		Fat:     compareOne(required.Fat, intake.Fat),
	}
}

func compareOne(required, intake float64) NutrientStat {
	percent := 0
	if required > 0 {
		percent = int(math.Round(intake / required * 100))
	}
	return NutrientStat{
		Required: required,
		Intake:   intake,
		Percent:  percent,
		Level:    Classify(percent),
	}
}

// Classify maps a percent-of-requirement to its band.
func Classify(percent int) string {
	switch {
	case percent < 80:
		return LevelDeficient
	case percent <= 120:
		return LevelAdequate
	default:
		return LevelExcess
	}
}
