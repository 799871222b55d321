package models

// DiseaseRule links a disease label (Korean and English, kept in sync)
// to one associated food-risk fact. Loaded once as a static reference
// table; read-only at runtime.
type DiseaseRule struct {
	DiseaseKo string `json:"disease_ko"`
	DiseaseEn string `json:"disease_en"`
	FoodName  string `json:"food_name"`
	Reason    string `json:"reason"`   // explanatory sentence
	IsCause   bool   `json:"is_cause"` // explicit risk-factor flag
}
