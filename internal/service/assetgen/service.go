package assetgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

// AnalysisProvider supplies the memoized brand identity analysis every
// generator reads before building prompts.
type AnalysisProvider interface {
	GetOrCompute(ctx context.Context, profile *domain.BrandProfile) (string, error)
}

// Service orchestrates asset generation: the self-correction loop, the
// per-category generators, consistency scoring, and package assembly.
type Service struct {
	gateway  generation.ModelGateway
	analyses AnalysisProvider
	logger   *slog.Logger
}

// NewService creates the asset generation service.
// It returns an error if any of the required dependencies are nil.
func NewService(
	gateway generation.ModelGateway,
	analyses AnalysisProvider,
	logger *slog.Logger,
) (*Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("%w: gateway cannot be nil", domain.ErrValidation)
	}
	if analyses == nil {
		return nil, fmt.Errorf("%w: analysis provider cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		gateway:  gateway,
		analyses: analyses,
		logger:   logger.With(slog.String("component", "asset_generation_service")),
	}, nil
}

// AnalyzeBrand returns the brand identity analysis for the profile,
// computing it on first use.
func (s *Service) AnalyzeBrand(ctx context.Context, profile *domain.BrandProfile) (string, error) {
	return s.analyses.GetOrCompute(ctx, profile)
}
