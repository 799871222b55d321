package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// BottleConfigRepository persists the per-bottle pill-name assignment.
type BottleConfigRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewBottleConfigRepository creates the repository.
func NewBottleConfigRepository(db *sql.DB, logger *zap.Logger) *BottleConfigRepository {
	return &BottleConfigRepository{db: db, logger: logger}
}

// GetBottleConfig returns the stored config for a device, or (nil, nil)
// when none has been saved.
func (r *BottleConfigRepository) GetBottleConfig(ctx context.Context, deviceID string) (*models.PillBottleConfig, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("device_id is required")
	}

	var (
		pillNamesJSON []byte
		updatedAt     time.Time
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT pill_names, updated_at
		FROM pill_bottle_configs
		WHERE device_id = $1`,
		deviceID,
	).Scan(&pillNamesJSON, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bottle config: %w", err)
	}

	// JSON object keys are strings; convert back to bottle ids.
	raw := map[string]string{}
	if len(pillNamesJSON) > 0 {
		if err := json.Unmarshal(pillNamesJSON, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pill names: %w", err)
		}
	}
	pillNames := make(map[int]string, len(raw))
	for k, v := range raw {
		bottle, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		pillNames[bottle] = v
	}

	return &models.PillBottleConfig{
		DeviceID:  deviceID,
		PillNames: pillNames,
		UpdatedAt: updatedAt,
	}, nil
}

// SaveBottleConfig upserts the config for a device.
func (r *BottleConfigRepository) SaveBottleConfig(ctx context.Context, cfg *models.PillBottleConfig) error {
	if cfg == nil || cfg.DeviceID == "" {
		return fmt.Errorf("device_id is required")
	}

	raw := make(map[string]string, len(cfg.PillNames))
	for bottle, name := range cfg.PillNames {
		raw[strconv.Itoa(bottle)] = name
	}
	pillNamesJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal pill names: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pill_bottle_configs (device_id, pill_names, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (device_id) DO UPDATE SET
			pill_names = EXCLUDED.pill_names,
			updated_at = NOW()`,
		cfg.DeviceID, pillNamesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save bottle config: %w", err)
	}

	r.logger.Info("Bottle config saved", zap.String("device_id", cfg.DeviceID))
	return nil
}
