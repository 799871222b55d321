package rules

import (
	"sort"
	"strings"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/nutrition"
)

// Intake-ratio bands for the recommendation cascade.
const (
	lowIntakeRatio  = 0.8
	highIntakeRatio = 1.2
)

// Pill-type label tokens, matched case-insensitively as substrings.
// Bottle labels come from a preset list but arrive as free text in
// either locale.
var (
	multivitaminTokens = []string{"multivitamin", "multi-vitamin", "종합비타민", "멀티비타민"}
	omega3Tokens       = []string{"omega", "오메가"}
	vitaminDTokens     = []string{"vitamin d", "비타민d", "비타민 d"}
	ironTokens         = []string{"iron", "철분"}
)

// Disease labels per category, in both locales.
var (
	cardiovascularDiseases = []string{
		"hypertension", "고혈압",
		"hyperlipidemia", "고지혈증",
		"heart disease", "심장질환",
	}
	boneDiseases   = []string{"osteoporosis", "골다공증"}
	anemiaDiseases = []string{"anemia", "빈혈"}
)

// Recommend produces one recommendation per configured bottle. The rule
// cascade is not mutually exclusive: later conditions override or append
// to the justification in encounter order. The recommended count is
// always 1 in the current rule set. Unconfigured bottles are skipped.
func Recommend(
	totalKcal float64,
	req nutrition.Requirement,
	diseases []string,
	cfg models.PillBottleConfig,
) []models.PillRecommendation {
	ratio := intakeRatio(totalKcal, req)

	bottles := make([]int, 0, len(cfg.PillNames))
	for bottle, name := range cfg.PillNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		bottles = append(bottles, bottle)
	}
	sort.Ints(bottles)

	recs := make([]models.PillRecommendation, 0, len(bottles))
	for _, bottle := range bottles {
		name := cfg.PillNames[bottle]
		reason := "Daily supplement as configured."

		if ratio < lowIntakeRatio && matchesAny(name, multivitaminTokens) {
			reason = "Intake is below your daily requirement; a multivitamin helps cover the gap."
		}
		if hasAnyDisease(diseases, cardiovascularDiseases) && matchesAny(name, omega3Tokens) {
			reason = "Omega-3 supports cardiovascular health for your selected condition."
		}
		if hasAnyDisease(diseases, boneDiseases) && matchesAny(name, vitaminDTokens) {
			reason = "Vitamin D supports bone health for your selected condition."
		}
		if hasAnyDisease(diseases, anemiaDiseases) && matchesAny(name, ironTokens) {
			reason = "Iron supports recovery from anemia."
		}
		if ratio > highIntakeRatio {
			reason += " Note: intake already exceeds your daily requirement."
		}

		recs = append(recs, models.PillRecommendation{
			Bottle:   bottle,
			PillName: name,
			Count:    1,
			Reason:   reason,
		})
	}
	return recs
}

// intakeRatio divides total intake kcal by the recommended (or fallback)
// requirement, defaulting to 1 when either side is zero or missing.
func intakeRatio(totalKcal float64, req nutrition.Requirement) float64 {
	if totalKcal <= 0 || req.RecommendedKcal <= 0 {
		return 1
	}
	return totalKcal / float64(req.RecommendedKcal)
}

func matchesAny(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

func hasAnyDisease(selected, category []string) bool {
	for _, d := range selected {
		lower := strings.ToLower(strings.TrimSpace(d))
		for _, c := range category {
			if lower == c {
				return true
			}
		}
	}
	return false
}
