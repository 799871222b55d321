package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// DiseaseRuleRepository loads the static disease-food rule table.
type DiseaseRuleRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewDiseaseRuleRepository creates the repository.
func NewDiseaseRuleRepository(db *sql.DB, logger *zap.Logger) *DiseaseRuleRepository {
	return &DiseaseRuleRepository{db: db, logger: logger}
}

// LoadDiseaseRules returns all rules in table order.
func (r *DiseaseRuleRepository) LoadDiseaseRules(ctx context.Context) ([]models.DiseaseRule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT disease_ko, disease_en, food_name, reason, is_cause
		FROM disease_rules
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query disease rules: %w", err)
	}
	defer rows.Close()

	var rules []models.DiseaseRule
	for rows.Next() {
		var rule models.DiseaseRule
		if err := rows.Scan(&rule.DiseaseKo, &rule.DiseaseEn, &rule.FoodName, &rule.Reason, &rule.IsCause); err != nil {
			return nil, fmt.Errorf("failed to scan disease rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate disease rules: %w", err)
	}

	return rules, nil
}
