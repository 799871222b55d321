package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/inuteam04/vitamin-dispenser/internal/models"
	"github.com/inuteam04/vitamin-dispenser/internal/nutrition"
	"github.com/inuteam04/vitamin-dispenser/internal/rules"

	"go.uber.org/zap"
)

// foodNameKey is the catalog column every record carries; the
// repository injects it when the source row lacks one.
const foodNameKey = "식품명"

// FoodSelection names a catalog food plus a consumed quantity. Grams at
// or below zero reads as the default 100g portion.
type FoodSelection struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

// IntakeReport is the nutrition analysis for one set of selections.
type IntakeReport struct {
	Totals      models.NutrientTotals `json:"totals"`
	Requirement nutrition.Requirement `json:"requirement"`
	Comparison  nutrition.Comparison  `json:"comparison"`
}

// AnalyzeIntake resolves the selections against the food catalog,
// aggregates intake and compares it with the user's estimated daily
// requirement. Unknown foods and a missing profile degrade rather than
// fail.
func (s *DashboardService) AnalyzeIntake(ctx context.Context, userID string, selections []FoodSelection) (*IntakeReport, error) {
	entries, err := s.resolveSelections(ctx, selections)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	totals := nutrition.Aggregate(entries)
	req := nutrition.EstimateRequirement(profile)

	return &IntakeReport{
		Totals:      totals,
		Requirement: req,
		Comparison:  nutrition.Compare(nutrition.RequiredTotals(req), totals),
	}, nil
}

// FoodRisks returns the disease rules triggered by the free-text food
// input for the user's selected diseases. No profile or no rule table
// means no risks.
func (s *DashboardService) FoodRisks(ctx context.Context, userID, foodInput string) ([]models.DiseaseRule, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil || len(profile.Diseases) == 0 {
		return nil, nil
	}

	table, err := s.diseaseRepo.LoadDiseaseRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load disease rules: %w", err)
	}

	return rules.MatchRisks(foodInput, profile.Diseases, table), nil
}

// RecommendPills produces the per-bottle recommendations from today's
// selections, the user's requirement and the device's pill assignment.
// An unconfigured device yields no recommendations.
func (s *DashboardService) RecommendPills(ctx context.Context, userID string, selections []FoodSelection) ([]models.PillRecommendation, error) {
	cfg, err := s.bottleRepo.GetBottleConfig(ctx, s.deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bottle config: %w", err)
	}
	if cfg == nil {
		return nil, nil
	}

	entries, err := s.resolveSelections(ctx, selections)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	totals := nutrition.Aggregate(entries)
	req := nutrition.EstimateRequirement(profile)

	var diseases []string
	if profile != nil {
		diseases = profile.Diseases
	}

	return rules.Recommend(totals.Kcal, req, diseases, *cfg), nil
}

// resolveSelections maps selection names to catalog records. Foods the
// catalog does not know are skipped with a warning.
func (s *DashboardService) resolveSelections(ctx context.Context, selections []FoodSelection) ([]models.FoodIntakeEntry, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	catalog, err := s.catalogRepo.LoadFoodCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}

	byName := make(map[string]models.FoodRecord, len(catalog))
	for _, record := range catalog {
		byName[strings.ToLower(strings.TrimSpace(record[foodNameKey]))] = record
	}

	entries := make([]models.FoodIntakeEntry, 0, len(selections))
	for _, sel := range selections {
		record, ok := byName[strings.ToLower(strings.TrimSpace(sel.Name))]
		if !ok {
			s.logger.Warn("Food not in catalog, skipping",
				zap.String("food", sel.Name),
			)
			continue
		}
		grams := sel.Grams
		if grams <= 0 {
			grams = 100
		}
		entries = append(entries, models.FoodIntakeEntry{Food: record, Grams: grams})
	}
	return entries, nil
}
