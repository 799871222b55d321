package rules

import (
	"testing"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequirement(kcal int) nutrition.Requirement {
	return nutrition.Requirement{RecommendedKcal: kcal}
}

func TestRecommend_SkipsUnconfiguredBottles(t *testing.T) {
	cfg := models.PillBottleConfig{
		PillNames: map[int]string{
			1: "Multivitamin",
			2: "",
			3: "Omega-3",
		},
	}

	recs := Recommend(2000, testRequirement(2000), nil, cfg)

	require.Len(t, recs, 2)
	assert.Equal(t, 1, recs[0].Bottle)
	assert.Equal(t, 3, recs[1].Bottle)
}

func TestRecommend_CountAlwaysOne(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "철분"}}

	recs := Recommend(200, testRequirement(2000), []string{"빈혈"}, cfg)

	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].Count)
}

func TestRecommend_LowIntakeMultivitamin(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "종합비타민"}}

	recs := Recommend(1000, testRequirement(2000), nil, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "below your daily requirement")
}

func TestRecommend_CardiovascularOmega3(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{2: "Omega-3"}}

	recs := Recommend(2000, testRequirement(2000), []string{"고혈압"}, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "cardiovascular")
}

func TestRecommend_BoneVitaminD(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "비타민D"}}

	recs := Recommend(2000, testRequirement(2000), []string{"osteoporosis"}, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "bone")
}

func TestRecommend_AnemiaIron(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{3: "Iron"}}

	recs := Recommend(2000, testRequirement(2000), []string{"Anemia"}, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "anemia")
}

func TestRecommend_HighIntakeAppendsCaution(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "종합비타민"}}

	recs := Recommend(2600, testRequirement(2000), nil, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "exceeds your daily requirement")
}

func TestRecommend_CautionAppendsToFiredBranch(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "Omega-3"}}

	recs := Recommend(2600, testRequirement(2000), []string{"고지혈증"}, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "cardiovascular")
	assert.Contains(t, recs[0].Reason, "exceeds your daily requirement")
}

func TestRecommend_LaterBranchOverridesEarlier(t *testing.T) {
	// A multivitamin label that also mentions iron: the anemia branch is
	// evaluated later and wins the justification.
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "Multivitamin + Iron"}}

	recs := Recommend(1000, testRequirement(2000), []string{"빈혈"}, cfg)

	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Reason, "anemia")
}

func TestRecommend_RatioDefaultsToOne(t *testing.T) {
	cfg := models.PillBottleConfig{PillNames: map[int]string{1: "Multivitamin"}}

	// Zero intake and zero requirement: ratio defaults to 1, no low/high branch.
	recs := Recommend(0, testRequirement(0), nil, cfg)

	require.Len(t, recs, 1)
	assert.Equal(t, "Daily supplement as configured.", recs[0].Reason)
}

func TestIntakeRatio(t *testing.T) {
	assert.Equal(t, 1.0, intakeRatio(0, testRequirement(2000)))
	assert.Equal(t, 1.0, intakeRatio(500, testRequirement(0)))
	assert.InDelta(t, 0.25, intakeRatio(500, testRequirement(2000)), 1e-9)
}
