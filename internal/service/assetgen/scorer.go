package assetgen

import (
	"context"
	"fmt"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

// neutralScoreValue is the fallback applied when scoring a single asset
// fails or when a batch holds only unscored assets. Scoring never fails
// the pipeline.
const neutralScoreValue = 75

// scoreAsset obtains the model's consistency score for one asset, falling
// back to the neutral score on any failure.
func (s *Service) scoreAsset(
	ctx context.Context,
	asset *domain.GeneratedAsset,
	profile *domain.BrandProfile,
) *domain.ConsistencyScore {
	description := asset.Description
	if description == "" {
		description = fmt.Sprintf("%s asset", asset.Type)
	}

	score, err := s.gateway.ScoreAsset(ctx, generation.ScoringRequest{
		Profile:          profile,
		AssetName:        asset.Name,
		AssetType:        asset.Type,
		AssetDescription: description,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "scoring failed, using neutral fallback",
			"asset", asset.Name, "error", err)
		return neutralScore()
	}

	score.Clamp()
	return score
}

func neutralScore() *domain.ConsistencyScore {
	return &domain.ConsistencyScore{
		OverallScore:         neutralScoreValue,
		ColorAdherence:       neutralScoreValue,
		TypographyCompliance: neutralScoreValue,
		ToneAlignment:        neutralScoreValue,
		BrandRecognition:     neutralScoreValue,
		LayoutQuality:        neutralScoreValue,
		Explanation:          "Asset scored with default values due to evaluation error.",
		Strengths:            []string{"Generated successfully"},
		Improvements:         []string{"Manual review recommended"},
	}
}

// computeBatchScore aggregates the individual scores of a package.
//
// An empty asset list yields an all-zero score; a list with no scored
// assets yields the neutral fallback. Otherwise the per-dimension means
// are integer-truncated, the strongest (>= 85) and weakest (< 70) asset
// names are listed in first-encountered order capped at three each, and
// the summary sentence is chosen by the mean overall score band.
func computeBatchScore(assets []*domain.GeneratedAsset) *domain.BatchConsistencyScore {
	if len(assets) == 0 {
		return &domain.BatchConsistencyScore{
			Summary:        "No assets generated.",
			TopPerformers:  []string{},
			NeedsAttention: []string{},
		}
	}

	var scored []*domain.GeneratedAsset
	for _, asset := range assets {
		if asset.Score != nil {
			scored = append(scored, asset)
		}
	}
	if len(scored) == 0 {
		return &domain.BatchConsistencyScore{
			OverallScore:         neutralScoreValue,
			ColorAdherence:       neutralScoreValue,
			TypographyCompliance: neutralScoreValue,
			ToneAlignment:        neutralScoreValue,
			LayoutQuality:        neutralScoreValue,
			BrandRecognition:     neutralScoreValue,
			Summary:              "Assets generated successfully.",
			TopPerformers:        []string{},
			NeedsAttention:       []string{},
		}
	}

	var overall, color, typography, tone, layout, recognition int
	topPerformers := []string{}
	needsAttention := []string{}

	for _, asset := range scored {
		overall += asset.Score.OverallScore
		color += asset.Score.ColorAdherence
		typography += asset.Score.TypographyCompliance
		tone += asset.Score.ToneAlignment
		layout += asset.Score.LayoutQuality
		recognition += asset.Score.BrandRecognition

		if asset.Score.OverallScore >= 85 && len(topPerformers) < 3 {
			topPerformers = append(topPerformers, asset.Name)
		}
		if asset.Score.OverallScore < 70 && len(needsAttention) < 3 {
			needsAttention = append(needsAttention, asset.Name)
		}
	}

	n := len(scored)
	meanOverall := overall / n

	return &domain.BatchConsistencyScore{
		OverallScore:         meanOverall,
		ColorAdherence:       color / n,
		TypographyCompliance: typography / n,
		ToneAlignment:        tone / n,
		LayoutQuality:        layout / n,
		BrandRecognition:     recognition / n,
		Summary:              batchSummary(meanOverall, n),
		TopPerformers:        topPerformers,
		NeedsAttention:       needsAttention,
	}
}

func batchSummary(meanOverall, assetCount int) string {
	switch {
	case meanOverall >= 85:
		return fmt.Sprintf(
			"Excellent brand consistency across %d assets. The visual identity is strong and cohesive.",
			assetCount)
	case meanOverall >= 75:
		return fmt.Sprintf(
			"Good brand consistency across %d assets. Minor refinements could enhance cohesion.",
			assetCount)
	case meanOverall >= 65:
		return fmt.Sprintf(
			"Moderate brand consistency across %d assets. Some assets may benefit from revision.",
			assetCount)
	default:
		return fmt.Sprintf(
			"Brand consistency needs improvement across %d assets. Review recommended.",
			assetCount)
	}
}
