package assetgen

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

// mockGateway implements generation.ModelGateway with overridable behavior
// per call. Unset functions use a passing happy path. Safe for concurrent
// use; call histories are recorded under the mutex.
type mockGateway struct {
	mu sync.Mutex

	generateTextFn  func(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error)
	generateImageFn func(ctx context.Context, prompt, styleGuidance string, width, height int) (generation.ImageData, error)
	validateFn      func(ctx context.Context, req generation.ValidationRequest) (*domain.ValidationResult, error)
	scoreFn         func(ctx context.Context, req generation.ScoringRequest) (*domain.ConsistencyScore, error)

	textCalls     int
	imageCalls    int
	validateCalls int
	scoreCalls    int

	styleHistory    []string
	validateHistory []generation.ValidationRequest
	scoredNames     []string
}

func (m *mockGateway) GenerateText(ctx context.Context, prompt string, temperature float32, maxTokens int32) (string, error) {
	m.mu.Lock()
	m.textCalls++
	fn := m.generateTextFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt, temperature, maxTokens)
	}
	return "generated text", nil
}

func (m *mockGateway) GenerateImage(ctx context.Context, prompt, styleGuidance string, width, height int) (generation.ImageData, error) {
	m.mu.Lock()
	m.imageCalls++
	m.styleHistory = append(m.styleHistory, styleGuidance)
	fn := m.generateImageFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt, styleGuidance, width, height)
	}
	return generation.ImageData{Data: []byte("png-bytes"), MIMEType: "image/png"}, nil
}

func (m *mockGateway) ValidateAsset(ctx context.Context, req generation.ValidationRequest) (*domain.ValidationResult, error) {
	m.mu.Lock()
	m.validateCalls++
	m.validateHistory = append(m.validateHistory, req)
	fn := m.validateFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return &domain.ValidationResult{Passed: true, Score: 90, Critique: "Looks on-brand."}, nil
}

func (m *mockGateway) ScoreAsset(ctx context.Context, req generation.ScoringRequest) (*domain.ConsistencyScore, error) {
	m.mu.Lock()
	m.scoreCalls++
	m.scoredNames = append(m.scoredNames, req.AssetName)
	fn := m.scoreFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return &domain.ConsistencyScore{
		OverallScore:         88,
		ColorAdherence:       88,
		TypographyCompliance: 88,
		ToneAlignment:        88,
		LayoutQuality:        88,
		BrandRecognition:     88,
		Explanation:          "Consistent with the profile.",
	}, nil
}

func (m *mockGateway) styles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.styleHistory...)
}

func (m *mockGateway) validations() []generation.ValidationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.ValidationRequest(nil), m.validateHistory...)
}

// stubAnalyses implements AnalysisProvider with a fixed analysis. failOnCall
// makes exactly that call (1-based) fail, which lets orchestrator tests
// inject a single category failure.
type stubAnalyses struct {
	mu         sync.Mutex
	analysis   string
	err        error
	failOnCall int
	calls      int
}

func (s *stubAnalyses) GetOrCompute(ctx context.Context, profile *domain.BrandProfile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if s.failOnCall > 0 && s.calls == s.failOnCall {
		return "", context.DeadlineExceeded
	}
	if s.analysis == "" {
		return "brand analysis text", nil
	}
	return s.analysis, nil
}

func newTestService(t *testing.T, gateway generation.ModelGateway, analyses AnalysisProvider) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := NewService(gateway, analyses, logger)
	require.NoError(t, err)
	return svc
}

func testProfile() *domain.BrandProfile {
	return &domain.BrandProfile{
		BrandName:      "Aurora Coffee",
		PrimaryColor:   "#3B2F2F",
		SecondaryColor: "#D4A373",
		PrimaryFont:    "Montserrat",
		BrandTone:      "Warm and inviting",
		TargetAudience: "Urban commuters",
		Industry:       "Specialty coffee",
	}
}
