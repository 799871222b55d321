package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/inuteam04/vitamin-dispenser/internal/models"

	"go.uber.org/zap"
)

// ProfileRepository persists user profiles. Profiles are loaded once per
// session and mutated only through an explicit save.
type ProfileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates the repository.
func NewProfileRepository(db *sql.DB, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

// GetProfile returns the stored profile, or (nil, nil) when the user has
// never saved one.
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	var (
		profile      models.UserProfile
		age          sql.NullInt64
		heightCm     sql.NullFloat64
		weightKg     sql.NullFloat64
		diseasesJSON []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT name, age, sex, height_cm, weight_kg, activity_level, diseases
		FROM user_profiles
		WHERE user_id = $1`,
		userID,
	).Scan(&profile.Name, &age, &profile.Sex, &heightCm, &weightKg, &profile.ActivityLevel, &diseasesJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if age.Valid {
		v := int(age.Int64)
		profile.Age = &v
	}
	if heightCm.Valid {
		profile.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		profile.WeightKg = &weightKg.Float64
	}
	if len(diseasesJSON) > 0 {
		if err := json.Unmarshal(diseasesJSON, &profile.Diseases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal diseases: %w", err)
		}
	}

	return &profile, nil
}

// SaveProfile upserts the profile for a user.
func (r *ProfileRepository) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error {
	if userID == "" {
		return fmt.Errorf("user_id is required")
	}
	if profile == nil {
		return fmt.Errorf("profile is required")
	}

	diseasesJSON, err := json.Marshal(profile.Diseases)
	if err != nil {
		return fmt.Errorf("failed to marshal diseases: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, name, age, sex, height_cm, weight_kg, activity_level, diseases, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			activity_level = EXCLUDED.activity_level,
			diseases = EXCLUDED.diseases,
			updated_at = NOW()`,
		userID, profile.Name, nullableInt(profile.Age), profile.Sex,
		nullableFloat(profile.HeightCm), nullableFloat(profile.WeightKg),
		profile.ActivityLevel, diseasesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	r.logger.Info("Profile saved", zap.String("user_id", userID))
	return nil
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
