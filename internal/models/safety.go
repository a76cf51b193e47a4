package models

// SafetyReport is the advertiser-friendliness screening verdict for one
// video's metadata.
type SafetyReport struct {
	Video      *Video   `json:"video"`
	IsSafe     bool     `json:"is_safe"`
	RiskLevel  string   `json:"risk_level"` // "low", "medium", "high"
	Categories []string `json:"categories"` // flagged policy categories, empty when clean
	Summary    string   `json:"summary"`
	Reasoning  string   `json:"reasoning"`
}
