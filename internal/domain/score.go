package domain

// ConsistencyScore is a multi-dimensional judgment of how well one asset
// matches a brand profile. The overall score is the model's weighted
// average of the five sub-scores; each dimension is in [0,100].
type ConsistencyScore struct {
	OverallScore int `json:"overall_score"`

	ColorAdherence       int `json:"color_adherence"`
	TypographyCompliance int `json:"typography_compliance"`
	ToneAlignment        int `json:"tone_alignment"`
	LayoutQuality        int `json:"layout_quality"`
	BrandRecognition     int `json:"brand_recognition"`

	Explanation  string   `json:"explanation"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Clamp bounds every dimension to [0,100] in place.
func (s *ConsistencyScore) Clamp() {
	for _, dim := range []*int{
		&s.OverallScore,
		&s.ColorAdherence,
		&s.TypographyCompliance,
		&s.ToneAlignment,
		&s.LayoutQuality,
		&s.BrandRecognition,
	} {
		if *dim < 0 {
			*dim = 0
		}
		if *dim > 100 {
			*dim = 100
		}
	}
}

// BatchConsistencyScore aggregates the per-asset scores of a package:
// integer-truncated means per dimension, a summary sentence banded by the
// mean overall score, and capped name lists for the strongest and weakest
// assets.
type BatchConsistencyScore struct {
	OverallScore int `json:"overall_score"`

	ColorAdherence       int `json:"color_adherence"`
	TypographyCompliance int `json:"typography_compliance"`
	ToneAlignment        int `json:"tone_alignment"`
	LayoutQuality        int `json:"layout_quality"`
	BrandRecognition     int `json:"brand_recognition"`

	Summary string `json:"summary"`

	// TopPerformers lists up to three asset names scoring >= 85,
	// in first-encountered order.
	TopPerformers []string `json:"top_performers"`

	// NeedsAttention lists up to three asset names scoring < 70,
	// in first-encountered order.
	NeedsAttention []string `json:"needs_attention"`
}
