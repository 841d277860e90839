package assetgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

// maxIterations bounds the self-correction loop per asset. The 70-point
// passing threshold lives in the validation prompt; the loop trusts the
// verdict's passed flag as returned.
const maxIterations = 3

// errNoIterations guards the impossible case of an empty history after the
// loop. It cannot trigger while maxIterations >= 1.
var errNoIterations = errors.New("self-correction loop recorded no iterations")

// correctionInput carries everything one self-corrected generation needs.
type correctionInput struct {
	Prompt        string
	Profile       *domain.BrandProfile
	AssetType     domain.AssetType
	Name          string
	Description   string
	Width         int
	Height        int
	StyleGuidance string
}

// generateWithCorrection runs the bounded generate-validate-retry loop for
// a single asset and returns it with its full iteration history.
//
// Each round generates an image and asks the model for a verdict. A failed
// generation is recorded with a synthetic verdict and retried without
// disturbing the carried issue list. A failing verdict carries its issue
// list (plus any regeneration guidance) into the next round's style
// guidance. A passing verdict stops the loop. The loop
// itself never fails: even when every generation attempt errors, the asset
// is returned with an empty payload and the full failure history.
func (s *Service) generateWithCorrection(ctx context.Context, in correctionInput) (*domain.GeneratedAsset, error) {
	var (
		history       []domain.AssetIteration
		carriedIssues []string
	)

	for number := 1; number <= maxIterations; number++ {
		record := s.runIteration(ctx, in, number, carriedIssues)
		history = append(history, record)

		if record.Validation.Passed {
			break
		}
		// Only a real verdict refreshes the accumulator. A failed
		// generation keeps the previous round's issues so the next retry
		// still fixes them, and its synthetic verdict never reaches a
		// prompt.
		if len(record.ImageData) > 0 {
			carriedIssues = nextIssues(record.Validation)
		}
	}

	if len(history) == 0 {
		return nil, errNoIterations
	}

	markTerminal(history)

	// The asset payload is the last successfully generated image, even when
	// its verdict never passed. All attempts failing leaves it empty.
	imageData, mimeType := lastImage(history)

	asset, err := domain.NewGeneratedAsset(
		in.AssetType,
		in.Name,
		imageData,
		mimeType,
		in.Width,
		in.Height,
		in.Description,
		history,
	)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", in.Name, err)
	}

	if asset.SelfCorrected {
		s.logger.InfoContext(ctx, "asset required self-correction",
			"asset", in.Name,
			"iterations", asset.IterationCount)
	}
	return asset, nil
}

// runIteration executes one round of the loop: generate, then validate.
// carriedIssues is the accumulator folded from the previous round; it is
// read but never mutated here.
func (s *Service) runIteration(
	ctx context.Context,
	in correctionInput,
	number int,
	carriedIssues []string,
) domain.AssetIteration {
	style := in.StyleGuidance
	if number > 1 && len(carriedIssues) > 0 {
		style = mustFixStyle(in.StyleGuidance, carriedIssues)
	}

	s.logger.DebugContext(ctx, "generating asset iteration",
		"asset", in.Name,
		"iteration", number,
		"max_iterations", maxIterations)

	img, err := s.gateway.GenerateImage(ctx, in.Prompt, style, in.Width, in.Height)
	if err != nil {
		s.logger.WarnContext(ctx, "image generation failed",
			"asset", in.Name,
			"iteration", number,
			"error", err)
		return failedGenerationIteration(number, err)
	}

	verdict := s.validateIteration(ctx, in, number, img, carriedIssues)

	return domain.AssetIteration{
		Number:     number,
		ImageData:  img.Data,
		MIMEType:   img.MIMEType,
		Validation: *verdict,
		Status:     domain.IterationFailed,
	}
}

// validateIteration obtains the model's verdict for a generated image.
// Validation is non-blocking: a failed validation call yields the lenient
// passing default rather than aborting the asset.
func (s *Service) validateIteration(
	ctx context.Context,
	in correctionInput,
	number int,
	img generation.ImageData,
	carriedIssues []string,
) *domain.ValidationResult {
	var previousIssues []string
	if number > 1 {
		previousIssues = carriedIssues
	}

	verdict, err := s.gateway.ValidateAsset(ctx, generation.ValidationRequest{
		ImageData:        img.Data,
		MIMEType:         img.MIMEType,
		Profile:          in.Profile,
		AssetType:        in.AssetType,
		AssetDescription: in.Description,
		PreviousIssues:   previousIssues,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "validation call failed, accepting iteration",
			"asset", in.Name,
			"iteration", number,
			"error", err)
		return &domain.ValidationResult{
			Passed:   true,
			Score:    75,
			Issues:   []string{},
			Critique: "Asset validated.",
		}
	}
	return verdict
}

// failedGenerationIteration records an attempt whose image generation
// errored. No payload is retained for the attempt.
func failedGenerationIteration(number int, err error) domain.AssetIteration {
	return domain.AssetIteration{
		Number:   number,
		MIMEType: "image/png",
		Validation: domain.ValidationResult{
			Passed:               false,
			Score:                0,
			Issues:               []string{fmt.Sprintf("Generation failed: %v", err)},
			Critique:             "Asset generation failed.",
			RegenerationGuidance: "Retry generation with adjusted parameters.",
		},
		Status: domain.IterationFailed,
	}
}

// nextIssues builds the accumulator for the next round: the verdict's
// issues plus its regeneration guidance as a synthetic trailing issue.
// A fresh slice is returned so earlier rounds' records stay untouched.
func nextIssues(v domain.ValidationResult) []string {
	issues := make([]string, 0, len(v.Issues)+1)
	issues = append(issues, v.Issues...)
	if v.RegenerationGuidance != "" {
		issues = append(issues, "Guidance: "+v.RegenerationGuidance)
	}
	return issues
}

// mustFixStyle augments the base style guidance with the outstanding issue
// list from the previous round.
func mustFixStyle(base string, issues []string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nCRITICAL - Previous version had these issues that MUST be fixed:\n")
	for _, issue := range issues {
		b.WriteString("- ")
		b.WriteString(issue)
		b.WriteString("\n")
	}
	b.WriteString("\nApply these specific corrections in this version.")
	return b.String()
}

// markTerminal applies the terminal-status rule in place: the last
// iteration holding an image is "final", whether or not its verdict
// passed; every other record stays "failed". When no attempt produced an
// image there is no final iteration.
func markTerminal(history []domain.AssetIteration) {
	for i := len(history) - 1; i >= 0; i-- {
		if len(history[i].ImageData) > 0 {
			history[i].Status = domain.IterationFinal
			return
		}
	}
}

// lastImage returns the payload of the most recent successful generation.
func lastImage(history []domain.AssetIteration) ([]byte, string) {
	for i := len(history) - 1; i >= 0; i-- {
		if len(history[i].ImageData) > 0 {
			return history[i].ImageData, history[i].MIMEType
		}
	}
	return []byte{}, "image/png"
}
