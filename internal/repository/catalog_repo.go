package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// FoodCatalogRepository loads the static food reference table. Each row
// keeps its source columns as a JSONB map because catalogs from
// different providers disagree on column names; the nutrition package
// owns the interpretation.
type FoodCatalogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewFoodCatalogRepository creates the repository.
func NewFoodCatalogRepository(db *sql.DB, logger *zap.Logger) *FoodCatalogRepository {
	return &FoodCatalogRepository{db: db, logger: logger}
}

// LoadFoodCatalog returns all catalog rows. An empty table is a valid,
// empty result.
func (r *FoodCatalogRepository) LoadFoodCatalog(ctx context.Context) ([]models.FoodRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, nutrients
		FROM food_catalog
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query food catalog: %w", err)
	}
	defer rows.Close()

	var records []models.FoodRecord
	for rows.Next() {
		var name string
		var nutrientsJSON []byte
		if err := rows.Scan(&name, &nutrientsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan food row: %w", err)
		}

		record := models.FoodRecord{}
		if len(nutrientsJSON) > 0 {
			if err := json.Unmarshal(nutrientsJSON, &record); err != nil {
				// a malformed row degrades to a name-only record
				r.logger.Warn("Malformed nutrient column, keeping name only",
					zap.String("food", name),
					zap.Error(err),
				)
				record = models.FoodRecord{}
			}
		}
		if _, ok := record["식품명"]; !ok {
			record["식품명"] = name
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate food catalog: %w", err)
	}

	return records, nil
}
