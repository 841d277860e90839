package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/forgelab/brandforge-api/internal/config"
	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
	"github.com/forgelab/brandforge-api/internal/prompts"
	"github.com/forgelab/brandforge-api/internal/redact"
)

// Call tuning per operation, matching the temperatures the prompts were
// written for: low for verdicts, higher for creative generation.
const (
	validationTemperature = 0.2
	scoringTemperature    = 0.3
	imageTemperature      = 0.8

	verdictMaxTokens = 1000
)

// Gateway implements generation.ModelGateway against the Gemini API.
type Gateway struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
}

// NewGateway creates a Gateway with the provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key and model names
//
// Returns a properly initialized Gateway or an error if initialization fails.
func NewGateway(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Gateway, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.TextModel == "" {
		return nil, fmt.Errorf("%w: text model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ImageModel == "" {
		return nil, fmt.Errorf("%w: image model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return &Gateway{
		logger: logger.With("component", "gemini_gateway"),
		config: cfg,
		client: client,
	}, nil
}

// GenerateText produces plain text from a prompt, retrying transient
// failures with exponential backoff and jitter up to the configured
// retry budget.
func (g *Gateway) GenerateText(
	ctx context.Context,
	prompt string,
	temperature float32,
	maxTokens int32,
) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: maxTokens,
	}

	resp, err := g.callWithRetry(ctx, g.config.TextModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}

	return stripMarkdownArtifacts(text), nil
}

// GenerateImage produces image bytes and their MIME type. The requested
// width and height are appended to the prompt as guidance; the model does
// not guarantee them.
func (g *Gateway) GenerateImage(
	ctx context.Context,
	prompt, styleGuidance string,
	width, height int,
) (generation.ImageData, error) {
	if prompt == "" {
		return generation.ImageData{}, generation.ErrEmptyPrompt
	}

	fullPrompt := prompt
	if styleGuidance != "" {
		fullPrompt = fmt.Sprintf("%s\n\nStyle guidance: %s", prompt, styleGuidance)
	}
	fullPrompt += fmt.Sprintf(`

Target dimensions: %dx%d pixels.

Important rendering requirements:
- Ensure any text is crisp, legible, and properly rendered
- Use high-quality, professional design standards
- Maintain visual consistency and balance
- Apply proper spacing and alignment`, width, height)

	cfg := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr(float32(imageTemperature)),
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	g.logger.DebugContext(ctx, "requesting image generation",
		"model", g.config.ImageModel,
		"prompt_length", len(fullPrompt),
		"width", width,
		"height", height)

	resp, err := g.client.Models.GenerateContent(ctx, g.config.ImageModel, genai.Text(fullPrompt), cfg)
	if err != nil {
		return generation.ImageData{}, fmt.Errorf("%w: image generation call failed: %v",
			generation.ErrModelFailure, redact.Error(err))
	}

	img, err := extractImage(resp)
	if err != nil {
		return generation.ImageData{}, err
	}

	g.logger.DebugContext(ctx, "image generated",
		"mime_type", img.MIMEType,
		"byte_count", len(img.Data))

	return img, nil
}

// ValidateAsset asks the text model for a pass/fail verdict on a generated
// image. Verdict parse failures are non-blocking: the defined default
// (passed, score 75) is returned so a flaky judge never stalls generation.
func (g *Gateway) ValidateAsset(
	ctx context.Context,
	req generation.ValidationRequest,
) (*domain.ValidationResult, error) {
	prompt := prompts.Validation(req.Profile, string(req.AssetType), req.AssetDescription, req.PreviousIssues)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(req.ImageData, req.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(validationTemperature)),
		MaxOutputTokens: verdictMaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.TextModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: validation call failed: %v",
			generation.ErrModelFailure, redact.Error(err))
	}

	raw, err := extractJSONObject(resp.Text())
	if err != nil {
		g.logger.WarnContext(ctx, "validation verdict unparseable, defaulting to pass",
			"error", err)
		return defaultValidationResult(), nil
	}

	var verdict validationVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		g.logger.WarnContext(ctx, "validation verdict not valid JSON, defaulting to pass",
			"error", err)
		return defaultValidationResult(), nil
	}

	return verdict.toDomain(), nil
}

// ScoreAsset asks the text model for a five-dimension consistency score.
// Unlike validation, an unparseable scoring verdict is an error; the
// scorer applies its own neutral fallback.
func (g *Gateway) ScoreAsset(
	ctx context.Context,
	req generation.ScoringRequest,
) (*domain.ConsistencyScore, error) {
	prompt := prompts.Scoring(req.Profile, req.AssetName, string(req.AssetType), req.AssetDescription)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(scoringTemperature)),
		MaxOutputTokens: verdictMaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.TextModel, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: scoring call failed: %v",
			generation.ErrModelFailure, redact.Error(err))
	}

	raw, err := extractJSONObject(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("%w: no score object in response: %v",
			generation.ErrInvalidResponse, err)
	}

	var verdict scoringVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, fmt.Errorf("%w: failed to parse score object: %v",
			generation.ErrInvalidResponse, err)
	}

	score := verdict.toDomain()
	score.Clamp()
	return score, nil
}

// callWithRetry makes a text-model call with exponential backoff retry
// logic. API transport errors are treated as transient; malformed or
// safety-blocked responses are permanent and returned immediately.
func (g *Gateway) callWithRetry(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	maxRetries := g.config.MaxRetries
	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}
	baseDelaySeconds := g.config.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1 // 1-based for logging
		g.logger.DebugContext(ctx, "making Gemini API call",
			"model", model,
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
		isTransient := true
		if err != nil {
			err = fmt.Errorf("%w: %v", generation.ErrTransientFailure, redact.Error(err))
		} else if resp == nil || len(resp.Candidates) == 0 {
			err = fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
			isTransient = false
		} else if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
			err = fmt.Errorf("%w: generation stopped by safety filters", generation.ErrContentBlocked)
			isTransient = false
		} else if resp.Candidates[0].Content == nil {
			err = fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
			isTransient = false
		}

		if err == nil {
			return resp, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !isTransient {
			return nil, err
		}
		if attempt >= maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// extractImage pulls the first inline-data part out of a response.
func extractImage(resp *genai.GenerateContentResponse) (generation.ImageData, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return generation.ImageData{}, fmt.Errorf("%w: empty image response", generation.ErrModelFailure)
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}
			return generation.ImageData{
				Data:     part.InlineData.Data,
				MIMEType: mimeType,
			}, nil
		}
	}

	return generation.ImageData{}, fmt.Errorf("%w: no image was generated in the response",
		generation.ErrModelFailure)
}

// stripMarkdownArtifacts removes markdown emphasis and heading markers the
// model sometimes emits despite plain-prose instructions.
func stripMarkdownArtifacts(text string) string {
	replacer := strings.NewReplacer("**", "", "*", "", "##", "", "#", "")
	return strings.TrimSpace(replacer.Replace(text))
}
