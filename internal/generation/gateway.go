package generation

import (
	"context"

	"github.com/forgelab/brandforge-api/internal/domain"
)

// ImageData is the raw result of one image generation call.
type ImageData struct {
	Data     []byte
	MIMEType string
}

// ValidationRequest carries everything the model needs to judge a single
// generated image against a brand profile. PreviousIssues is non-empty only
// on retry iterations, where the model is asked to verify specific fixes.
type ValidationRequest struct {
	ImageData        []byte
	MIMEType         string
	Profile          *domain.BrandProfile
	AssetType        domain.AssetType
	AssetDescription string
	PreviousIssues   []string
}

// ScoringRequest carries the inputs of one consistency-scoring call.
type ScoringRequest struct {
	Profile          *domain.BrandProfile
	AssetName        string
	AssetType        domain.AssetType
	AssetDescription string
}

// ModelGateway is the boundary between the orchestration core and the
// remote generative model. Implementations own the provider client for
// their lifetime; every method is a suspension point on a remote call.
//
// Verdict-returning calls (ValidateAsset, ScoreAsset) must tolerate
// code-fence markup around the model's JSON output. ValidateAsset never
// fails on an unparseable verdict: it falls back to a passing default,
// favoring availability over strictness.
type ModelGateway interface {
	// GenerateText produces plain text from a prompt. Returns
	// ErrInvalidResponse if the model returns an empty response.
	GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)

	// GenerateImage produces image bytes and their MIME type. The requested
	// width and height are guidance for the model, not enforced. Returns
	// ErrModelFailure if the response carries no image part.
	GenerateImage(ctx context.Context, prompt, styleGuidance string, width, height int) (ImageData, error)

	// ValidateAsset asks the model for a structured pass/fail verdict on a
	// generated image. An unparseable verdict yields the default passing
	// result, not an error.
	ValidateAsset(ctx context.Context, req ValidationRequest) (*domain.ValidationResult, error)

	// ScoreAsset asks the model for a five-dimension consistency score.
	// Returns ErrInvalidResponse when no verdict can be parsed; callers
	// apply their own neutral fallback.
	ScoreAsset(ctx context.Context, req ScoringRequest) (*domain.ConsistencyScore, error)
}
