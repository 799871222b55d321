package nutrition

import (
	"math"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
)

// activityFactors maps activity levels to their TDEE multiplier. Unknown
// or unset levels fall back to sedentary.
var activityFactors = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// Flat daily fallbacks (kcal) used when the profile cannot support the
// Mifflin-St Jeor formula.
const (
	fallbackKcalFemale  = 1800
	fallbackKcalMale    = 2200
	fallbackKcalUnknown = 2000
)

// Requirement is the estimated daily caloric need. Exactly one of the
// two paths is taken: formula (BasalMetabolicRate set, FallbackKcal nil)
// or fallback (FallbackKcal set, BasalMetabolicRate nil).
type Requirement struct {
	RecommendedKcal    int      `json:"recommended_kcal"`
	BasalMetabolicRate *float64 `json:"basal_metabolic_rate,omitempty"`
	ActivityFactor     float64  `json:"activity_factor"`
	Rationale          string   `json:"rationale"`
	FallbackKcal       *int     `json:"fallback_kcal,omitempty"`
}

// ActivityFactor returns the multiplier for an activity level, defaulting
// to the sedentary factor for unknown or empty levels.
func ActivityFactor(level string) float64 {
	if f, ok := activityFactors[level]; ok {
		return f
	}
	return activityFactors[models.ActivitySedentary]
}

// EstimateRequirement computes the daily caloric requirement from an
// optional profile. With a complete profile it applies Mifflin-St Jeor
// scaled by the activity factor; otherwise it degrades to a sex-based
// flat fallback. Never fails.
func EstimateRequirement(profile *models.UserProfile) Requirement {
	if profile == nil {
		return fallbackRequirement("", ActivityFactor(""), "no profile saved; using flat default")
	}

	factor := ActivityFactor(profile.ActivityLevel)

	// An unknown sex cannot feed the formula's sex adjustment, so it is
	// treated as missing; "other" is valid and gets no adjustment.
	if profile.Age == nil || profile.HeightCm == nil || profile.WeightKg == nil ||
		profile.Sex == "" || profile.Sex == models.SexUnknown {
		return fallbackRequirement(profile.Sex, factor, "profile incomplete; using flat default")
	}

	// Mifflin-St Jeor
	bmr := 10**profile.WeightKg + 6.25**profile.HeightCm - 5*float64(*profile.Age)
	switch profile.Sex {
	case models.SexMale:
		bmr += 5
	case models.SexFemale:
		bmr -= 161
	}

	recommended := int(math.Round(bmr * factor))
	return Requirement{
		RecommendedKcal:    recommended,
		BasalMetabolicRate: &bmr,
		ActivityFactor:     factor,
		Rationale:          "Mifflin-St Jeor basal rate scaled by activity factor",
	}
}

// RequiredTotals expands a kcal requirement into per-nutrient gram
// targets using a 55/15/30 carb/protein/fat energy split at 4/4/9 kcal
// per gram.
func RequiredTotals(req Requirement) models.NutrientTotals {
	kcal := float64(req.RecommendedKcal)
	return models.NutrientTotals{
		Kcal:    kcal,
		Carb:    kcal * 0.55 / 4,
		Protein: kcal * 0.15 / 4,
		Fat:     kcal * 0.30 / 9,
	}
}

func fallbackRequirement(sex string, factor float64, rationale string) Requirement {
	kcal := fallbackKcalUnknown
	switch sex {
	case models.SexFemale:
		kcal = fallbackKcalFemale
	case models.SexMale:
		kcal = fallbackKcalMale
	}
	fallback := kcal
	return Requirement{
		RecommendedKcal: kcal,
		ActivityFactor:  factor,
		Rationale:       rationale,
		FallbackKcal:    &fallback,
	}
}
