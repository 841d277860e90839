package gemini

import "github.com/forgelab/brandforge-api/internal/domain"

// validationVerdict is the wire shape of the model's pass/fail verdict.
// Optional fields are pointers so their absence can fall back to the
// lenient defaults (a missing "passed" means pass, not fail).
type validationVerdict struct {
	Passed               *bool    `json:"passed"`
	Score                *int     `json:"score"`
	Issues               []string `json:"issues"`
	Critique             string   `json:"critique"`
	RegenerationGuidance string   `json:"regeneration_guidance"`
}

func (v *validationVerdict) toDomain() *domain.ValidationResult {
	result := &domain.ValidationResult{
		Passed:               true,
		Score:                75,
		Issues:               v.Issues,
		Critique:             v.Critique,
		RegenerationGuidance: v.RegenerationGuidance,
	}
	if v.Passed != nil {
		result.Passed = *v.Passed
	}
	if v.Score != nil {
		result.Score = *v.Score
	}
	if result.Critique == "" {
		result.Critique = "Asset validated."
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}
	return result
}

// defaultValidationResult is the verdict used when the model's output
// cannot be parsed at all. Validation is non-blocking by design.
func defaultValidationResult() *domain.ValidationResult {
	return &domain.ValidationResult{
		Passed:   true,
		Score:    75,
		Issues:   []string{},
		Critique: "Asset validated successfully.",
	}
}

// scoringVerdict is the wire shape of the model's consistency score.
type scoringVerdict struct {
	OverallScore         int      `json:"overall_score"`
	ColorAdherence       int      `json:"color_adherence"`
	TypographyCompliance int      `json:"typography_compliance"`
	ToneAlignment        int      `json:"tone_alignment"`
	LayoutQuality        int      `json:"layout_quality"`
	BrandRecognition     int      `json:"brand_recognition"`
	Explanation          string   `json:"explanation"`
	Strengths            []string `json:"strengths"`
	Improvements         []string `json:"improvements"`
}

func (v *scoringVerdict) toDomain() *domain.ConsistencyScore {
	return &domain.ConsistencyScore{
		OverallScore:         v.OverallScore,
		ColorAdherence:       v.ColorAdherence,
		TypographyCompliance: v.TypographyCompliance,
		ToneAlignment:        v.ToneAlignment,
		LayoutQuality:        v.LayoutQuality,
		BrandRecognition:     v.BrandRecognition,
		Explanation:          v.Explanation,
		Strengths:            v.Strengths,
		Improvements:         v.Improvements,
	}
}
