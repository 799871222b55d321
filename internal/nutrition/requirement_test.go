package nutrition

import (
	"testing"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestEstimateRequirement_NoProfile(t *testing.T) {
	req := EstimateRequirement(nil)

	assert.Equal(t, 2000, req.RecommendedKcal)
	assert.Nil(t, req.BasalMetabolicRate)
	require.NotNil(t, req.FallbackKcal)
	assert.Equal(t, 2000, *req.FallbackKcal)
	assert.Contains(t, req.Rationale, "no profile")
}

func TestEstimateRequirement_IncompleteProfile_Female(t *testing.T) {
	profile := &models.UserProfile{
		Sex:           models.SexFemale,
		HeightCm:      floatPtr(162),
		WeightKg:      floatPtr(55),
		ActivityLevel: models.ActivityLight,
		// Age missing
	}

	req := EstimateRequirement(profile)

	assert.Equal(t, 1800, req.RecommendedKcal)
	assert.Nil(t, req.BasalMetabolicRate)
	require.NotNil(t, req.FallbackKcal)
	assert.Equal(t, 1800, *req.FallbackKcal)
	assert.Contains(t, req.Rationale, "incomplete")
	assert.Equal(t, 1.375, req.ActivityFactor)
}

func TestEstimateRequirement_IncompleteProfile_Male(t *testing.T) {
	profile := &models.UserProfile{Sex: models.SexMale}
	req := EstimateRequirement(profile)
	assert.Equal(t, 2200, req.RecommendedKcal)
}

func TestEstimateRequirement_UnknownSexFallsBack(t *testing.T) {
	profile := &models.UserProfile{
		Sex:      models.SexUnknown,
		Age:      intPtr(40),
		HeightCm: floatPtr(170),
		WeightKg: floatPtr(65),
	}

	req := EstimateRequirement(profile)

	assert.Equal(t, 2000, req.RecommendedKcal)
	assert.Nil(t, req.BasalMetabolicRate)
}

func TestEstimateRequirement_FormulaPath(t *testing.T) {
	profile := &models.UserProfile{
		Age:           intPtr(30),
		Sex:           models.SexMale,
		HeightCm:      floatPtr(175),
		WeightKg:      floatPtr(70),
		ActivityLevel: models.ActivityModerate,
	}

	req := EstimateRequirement(profile)

	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	require.NotNil(t, req.BasalMetabolicRate)
	assert.InDelta(t, 1648.75, *req.BasalMetabolicRate, 1e-9)
	assert.Equal(t, 1.55, req.ActivityFactor)
	assert.Equal(t, 2556, req.RecommendedKcal) // round(1648.75 * 1.55)
	assert.Nil(t, req.FallbackKcal)
}

func TestEstimateRequirement_FemaleFormula(t *testing.T) {
	profile := &models.UserProfile{
		Age:           intPtr(25),
		Sex:           models.SexFemale,
		HeightCm:      floatPtr(160),
		WeightKg:      floatPtr(52),
		ActivityLevel: models.ActivitySedentary,
	}

	req := EstimateRequirement(profile)

	// 10*52 + 6.25*160 - 5*25 - 161 = 1234
	require.NotNil(t, req.BasalMetabolicRate)
	assert.InDelta(t, 1234.0, *req.BasalMetabolicRate, 1e-9)
	assert.Equal(t, 1481, req.RecommendedKcal) // round(1234 * 1.2)
}

func TestActivityFactor_Defaults(t *testing.T) {
	assert.Equal(t, 1.2, ActivityFactor(""))
	assert.Equal(t, 1.2, ActivityFactor("couch_potato"))
	assert.Equal(t, 1.9, ActivityFactor(models.ActivityVeryActive))
}

func TestRequiredTotals_EnergySplit(t *testing.T) {
	totals := RequiredTotals(Requirement{RecommendedKcal: 2000})

	assert.InDelta(t, 2000.0, totals.Kcal, 1e-9)
	// 2000*0.55/4, 2000*0.15/4 and 2000*0.30/9
	assert.InDelta(t, 275.0, totals.Carb, 1e-9)
	assert.InDelta(t, 75.0, totals.Protein, 1e-9)
	assert.InDelta(t, 66.67, totals.Fat, 0.01)
}

func TestRequiredTotals_ZeroRequirement(t *testing.T) {
	totals := RequiredTotals(Requirement{})

	assert.Zero(t, totals.Kcal)
	assert.Zero(t, totals.Carb)
}
