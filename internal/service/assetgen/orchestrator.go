package assetgen

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/events"
)

// categoryResult is the structured outcome of one category task: a package
// or the reason it failed, never both.
type categoryResult struct {
	category Category
	pkg      *domain.AssetPackage
	err      error
}

// categoryLabels are the human-readable names used in progress messages
// and failure notes.
var categoryLabels = map[Category]string{
	CategoryLogos:        "brand logos",
	CategorySocial:       "social media templates",
	CategoryPresentation: "presentation slides",
	CategoryEmail:        "email templates",
	CategoryMarketing:    "marketing materials",
}

// GenerateCompletePackage generates every requested category concurrently
// and assembles the merged, scored package.
//
// The brand analysis is computed once up front; its failure is the only
// error this method returns, since nothing downstream can proceed without
// it. Each category runs in its own goroutine; a category's failure is
// recorded as a generation note and never cancels or blocks the others.
// Merged assets are then scored sequentially, a batch score computed, and
// a campaign context derived when the profile carries campaign intent.
func (s *Service) GenerateCompletePackage(ctx context.Context, req PackageRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, fmt.Errorf("brand analysis failed: %w", err)
	}

	categories := req.enabledCategories()

	results := make(chan categoryResult, len(categories))
	var wg sync.WaitGroup
	for _, category := range categories {
		wg.Add(1)
		go func(category Category) {
			defer wg.Done()
			pkg, err := s.GenerateCategory(ctx, req.Profile, category)
			results <- categoryResult{category: category, pkg: pkg, err: err}
		}(category)
	}
	wg.Wait()
	close(results)

	// Re-order the fan-in by the declared category order so merged assets
	// and notes are deterministic.
	byCategory := make(map[Category]categoryResult, len(categories))
	for result := range results {
		byCategory[result.category] = result
	}

	var (
		merged []*domain.GeneratedAsset
		notes  []string
	)
	for _, category := range categories {
		result := byCategory[category]
		if result.err != nil {
			s.logger.ErrorContext(ctx, "category generation failed",
				"category", category, "error", result.err)
			notes = append(notes, fmt.Sprintf("Error generating %s: %v",
				categoryLabels[category], result.err))
			continue
		}
		merged = append(merged, result.pkg.Assets...)
		if result.pkg.GenerationNotes != "" {
			notes = append(notes, result.pkg.GenerationNotes)
		}
	}

	scored := s.scoreAll(ctx, merged, req.Profile)

	pkg := domain.NewAssetPackage(req.Profile.BrandName, scored, analysis, strings.Join(notes, " | "))
	pkg.BatchScore = computeBatchScore(scored)
	if req.Profile.HasCampaign() {
		pkg.Campaign = s.buildCampaignContext(ctx, req.Profile, scored)
	}
	return pkg, nil
}

// StreamCompletePackage performs the same work as GenerateCompletePackage
// but strictly sequentially, emitting a progress event before each step so
// messages stay ordered and attributable to one category at a time. It
// finishes with a terminal complete event carrying the package, or an
// error event when the brand-analysis prerequisite fails.
//
// The returned error reports either that prerequisite failure or a failed
// emit (consumer gone); partial category failures are notes, not errors.
func (s *Service) StreamCompletePackage(
	ctx context.Context,
	req PackageRequest,
	emitter events.Emitter,
) error {
	categories := req.enabledCategories()

	// Scoring and finalization count as steps alongside the categories.
	// Percentages reflect steps fully completed before the current one.
	total := len(categories) + 2
	done := 0
	percent := func() int { return done * 100 / total }

	if err := emitter.Emit(ctx, events.NewProgress("", "Analyzing brand identity...", percent())); err != nil {
		return err
	}

	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		err = fmt.Errorf("brand analysis failed: %w", err)
		if emitErr := emitter.Emit(ctx, events.NewError(err)); emitErr != nil {
			return emitErr
		}
		return err
	}

	var (
		merged []*domain.GeneratedAsset
		notes  []string
	)
	for _, category := range categories {
		message := fmt.Sprintf("Generating %s...", categoryLabels[category])
		if err := emitter.Emit(ctx, events.NewProgress(string(category), message, percent())); err != nil {
			return err
		}

		pkg, err := s.GenerateCategory(ctx, req.Profile, category)
		if err != nil {
			s.logger.ErrorContext(ctx, "category generation failed",
				"category", category, "error", err)
			notes = append(notes, fmt.Sprintf("Error generating %s: %v",
				categoryLabels[category], err))
		} else {
			merged = append(merged, pkg.Assets...)
			if pkg.GenerationNotes != "" {
				notes = append(notes, pkg.GenerationNotes)
			}
		}
		done++
	}

	if err := emitter.Emit(ctx, events.NewProgress("", "Scoring assets for brand consistency...", percent())); err != nil {
		return err
	}
	scored := s.scoreAll(ctx, merged, req.Profile)
	batch := computeBatchScore(scored)
	done++

	if err := emitter.Emit(ctx, events.NewProgress("", "Finalizing asset package...", percent())); err != nil {
		return err
	}
	pkg := domain.NewAssetPackage(req.Profile.BrandName, scored, analysis, strings.Join(notes, " | "))
	pkg.BatchScore = batch
	if req.Profile.HasCampaign() {
		pkg.Campaign = s.buildCampaignContext(ctx, req.Profile, scored)
	}
	done++

	return emitter.Emit(ctx, events.NewComplete(pkg))
}

// scoreAll scores each asset in turn, attaching scores as copies. Scores
// are independent per asset, so this stage could be parallelized; it is
// kept sequential to bound concurrent model calls to the category fan-out.
func (s *Service) scoreAll(
	ctx context.Context,
	assets []*domain.GeneratedAsset,
	profile *domain.BrandProfile,
) []*domain.GeneratedAsset {
	scored := make([]*domain.GeneratedAsset, 0, len(assets))
	for _, asset := range assets {
		scored = append(scored, asset.WithScore(s.scoreAsset(ctx, asset, profile)))
	}
	return scored
}
