package assetgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

func scoredAsset(name string, overall int) *domain.GeneratedAsset {
	return &domain.GeneratedAsset{
		Type: domain.AssetTypeLogo,
		Name: name,
		Score: &domain.ConsistencyScore{
			OverallScore:         overall,
			ColorAdherence:       overall,
			TypographyCompliance: overall,
			ToneAlignment:        overall,
			LayoutQuality:        overall,
			BrandRecognition:     overall,
		},
	}
}

func TestScoreAssetFallsBackOnError(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	gateway.scoreFn = func(ctx context.Context, req generation.ScoringRequest) (*domain.ConsistencyScore, error) {
		return nil, errors.New("scoring unavailable")
	}
	svc := newTestService(t, gateway, &stubAnalyses{})

	asset := &domain.GeneratedAsset{Type: domain.AssetTypeLogo, Name: "logo_primary"}
	score := svc.scoreAsset(context.Background(), asset, testProfile())

	assert.Equal(t, 75, score.OverallScore)
	assert.Equal(t, 75, score.ColorAdherence)
	assert.Equal(t, "Asset scored with default values due to evaluation error.", score.Explanation)
	assert.Equal(t, []string{"Generated successfully"}, score.Strengths)
	assert.Equal(t, []string{"Manual review recommended"}, score.Improvements)
}

func TestScoreAssetClampsOutOfRangeVerdict(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	gateway.scoreFn = func(ctx context.Context, req generation.ScoringRequest) (*domain.ConsistencyScore, error) {
		return &domain.ConsistencyScore{OverallScore: 140, ColorAdherence: -5}, nil
	}
	svc := newTestService(t, gateway, &stubAnalyses{})

	asset := &domain.GeneratedAsset{Type: domain.AssetTypeLogo, Name: "logo_primary"}
	score := svc.scoreAsset(context.Background(), asset, testProfile())

	assert.Equal(t, 100, score.OverallScore)
	assert.Equal(t, 0, score.ColorAdherence)
}

func TestComputeBatchScoreEmpty(t *testing.T) {
	t.Parallel()

	batch := computeBatchScore(nil)

	assert.Equal(t, 0, batch.OverallScore)
	assert.Equal(t, 0, batch.ColorAdherence)
	assert.Equal(t, "No assets generated.", batch.Summary)
	assert.Empty(t, batch.TopPerformers)
	assert.Empty(t, batch.NeedsAttention)
}

func TestComputeBatchScoreNoScoredAssets(t *testing.T) {
	t.Parallel()

	batch := computeBatchScore([]*domain.GeneratedAsset{
		{Type: domain.AssetTypeLogo, Name: "logo_primary"},
		{Type: domain.AssetTypeLogo, Name: "logo_icon_only"},
	})

	assert.Equal(t, 75, batch.OverallScore)
	assert.Equal(t, 75, batch.BrandRecognition)
	assert.Equal(t, "Assets generated successfully.", batch.Summary)
}

func TestComputeBatchScoreMeansAndBand(t *testing.T) {
	t.Parallel()

	batch := computeBatchScore([]*domain.GeneratedAsset{
		scoredAsset("a", 90),
		scoredAsset("b", 80),
		scoredAsset("c", 70),
	})

	assert.Equal(t, 80, batch.OverallScore)
	assert.Equal(t, "Good brand consistency across 3 assets. Minor refinements could enhance cohesion.",
		batch.Summary)
}

func TestComputeBatchScoreBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		overall int
		want    string
	}{
		{"excellent", 90, "Excellent brand consistency across 1 assets. The visual identity is strong and cohesive."},
		{"good", 78, "Good brand consistency across 1 assets. Minor refinements could enhance cohesion."},
		{"moderate", 68, "Moderate brand consistency across 1 assets. Some assets may benefit from revision."},
		{"needs improvement", 50, "Brand consistency needs improvement across 1 assets. Review recommended."},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			batch := computeBatchScore([]*domain.GeneratedAsset{scoredAsset("a", tc.overall)})
			assert.Equal(t, tc.want, batch.Summary)
		})
	}
}

func TestComputeBatchScoreListsCappedAndOrdered(t *testing.T) {
	t.Parallel()

	batch := computeBatchScore([]*domain.GeneratedAsset{
		scoredAsset("strong_1", 92),
		scoredAsset("weak_1", 60),
		scoredAsset("strong_2", 88),
		scoredAsset("strong_3", 95),
		scoredAsset("strong_4", 99),
		scoredAsset("weak_2", 45),
		scoredAsset("weak_3", 55),
		scoredAsset("weak_4", 30),
	})

	assert.Equal(t, []string{"strong_1", "strong_2", "strong_3"}, batch.TopPerformers)
	assert.Equal(t, []string{"weak_1", "weak_2", "weak_3"}, batch.NeedsAttention)

	// The thresholds are disjoint: no asset can land in both lists.
	for _, top := range batch.TopPerformers {
		assert.NotContains(t, batch.NeedsAttention, top)
	}
}

func TestComputeBatchScoreIgnoresUnscoredAssetsInMeans(t *testing.T) {
	t.Parallel()

	batch := computeBatchScore([]*domain.GeneratedAsset{
		scoredAsset("a", 90),
		{Type: domain.AssetTypeLogo, Name: "unscored"},
		scoredAsset("b", 70),
	})

	assert.Equal(t, 80, batch.OverallScore)
	require.NotContains(t, batch.TopPerformers, "unscored")
	require.NotContains(t, batch.NeedsAttention, "unscored")
}
