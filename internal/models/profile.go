package models

import "time"

// Sex values
const (
	SexMale    = "male"
	SexFemale  = "female"
	SexOther   = "other"
	SexUnknown = "unknown"
)

// Activity levels (ordinal scale)
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// UserProfile is the optional per-user profile. Missing fields are nil;
// the requirement estimator falls back to flat defaults when any of
// age/sex/height/weight is absent.
type UserProfile struct {
	Name          string   `json:"name"`
	Age           *int     `json:"age,omitempty"`
	Sex           string   `json:"sex"` // male, female, other, unknown
	HeightCm      *float64 `json:"height_cm,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	ActivityLevel string   `json:"activity_level"`
	Diseases      []string `json:"diseases"` // selected disease labels
}

// PillBottleConfig assigns a pill-type label per bottle. Bottles with an
// empty name are unconfigured and never produce recommendations.
type PillBottleConfig struct {
	DeviceID  string         `json:"device_id"`
	PillNames map[int]string `json:"pill_names"` // 1-based bottle id -> label
	UpdatedAt time.Time      `json:"updated_at"`
}

// PillRecommendation is a derived, non-persisted per-bottle dosage
// suggestion with a human-readable justification.
type PillRecommendation struct {
	Bottle   int    `json:"bottle"`
	PillName string `json:"pill_name"`
	Count    int    `json:"count"`
	Reason   string `json:"reason"`
}
