package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/events"
	"github.com/forgelab/brandforge-api/internal/service/assetgen"
)

// mockGenerator implements AssetGenerator for handler tests. Each method
// records its last request and returns the configured package or error.
type mockGenerator struct {
	pkg *domain.AssetPackage
	err error

	analysis string

	lastLogoReq     assetgen.LogoRequest
	lastSocialReq   assetgen.SocialMediaRequest
	lastDeckReq     assetgen.PresentationRequest
	lastEmailReq    assetgen.EmailTemplateRequest
	lastMaterialReq assetgen.MarketingRequest
	lastPackageReq  assetgen.PackageRequest

	streamFn func(ctx context.Context, req assetgen.PackageRequest, emitter events.Emitter) error
}

func (m *mockGenerator) AnalyzeBrand(_ context.Context, _ *domain.BrandProfile) (string, error) {
	return m.analysis, m.err
}

func (m *mockGenerator) GenerateLogos(_ context.Context, req assetgen.LogoRequest) (*domain.AssetPackage, error) {
	m.lastLogoReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) GenerateSocialMedia(_ context.Context, req assetgen.SocialMediaRequest) (*domain.AssetPackage, error) {
	m.lastSocialReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) GeneratePresentation(_ context.Context, req assetgen.PresentationRequest) (*domain.AssetPackage, error) {
	m.lastDeckReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) GenerateEmailTemplates(_ context.Context, req assetgen.EmailTemplateRequest) (*domain.AssetPackage, error) {
	m.lastEmailReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) GenerateMarketing(_ context.Context, req assetgen.MarketingRequest) (*domain.AssetPackage, error) {
	m.lastMaterialReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) GenerateCompletePackage(_ context.Context, req assetgen.PackageRequest) (*domain.AssetPackage, error) {
	m.lastPackageReq = req
	return m.pkg, m.err
}

func (m *mockGenerator) StreamCompletePackage(ctx context.Context, req assetgen.PackageRequest, emitter events.Emitter) error {
	m.lastPackageReq = req
	if m.streamFn != nil {
		return m.streamFn(ctx, req, emitter)
	}
	return m.err
}

func validGuidelines() map[string]interface{} {
	return map[string]interface{}{
		"brand_name":      "Aurora Coffee",
		"primary_color":   "#3B2F2F",
		"secondary_color": "#D4A373",
		"primary_font":    "Montserrat",
		"brand_tone":      "Warm and inviting",
		"target_audience": "Urban commuters",
		"industry":        "Specialty coffee",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAssetHandler_Health(t *testing.T) {
	t.Parallel()

	handler := NewAssetHandler(&mockGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "brandforge-api", resp.Service)
	assert.Equal(t, ServiceVersion, resp.Version)
}

func TestAssetHandler_AnalyzeBrand(t *testing.T) {
	t.Parallel()

	t.Run("returns the analysis", func(t *testing.T) {
		t.Parallel()

		gen := &mockGenerator{analysis: "A warm, approachable identity."}
		handler := NewAssetHandler(gen)

		rec := postJSON(t, handler.AnalyzeBrand, "/api/analyze-brand", map[string]interface{}{
			"brand_guidelines": validGuidelines(),
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AnalyzeBrandResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Aurora Coffee", resp.BrandName)
		assert.Equal(t, "A warm, approachable identity.", resp.Analysis)
	})

	t.Run("returns 500 when analysis fails", func(t *testing.T) {
		t.Parallel()

		gen := &mockGenerator{err: errors.New("model unavailable")}
		handler := NewAssetHandler(gen)

		rec := postJSON(t, handler.AnalyzeBrand, "/api/analyze-brand", map[string]interface{}{
			"brand_guidelines": validGuidelines(),
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to analyze brand")
		assert.NotContains(t, rec.Body.String(), "model unavailable")
	})
}

func TestAssetHandler_RequestValidation(t *testing.T) {
	t.Parallel()

	handler := NewAssetHandler(&mockGenerator{})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/generate/logos",
			strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		handler.GenerateLogos(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request format")
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		t.Parallel()

		guidelines := validGuidelines()
		delete(guidelines, "brand_name")

		rec := postJSON(t, handler.GenerateLogos, "/api/generate/logos", map[string]interface{}{
			"brand_guidelines": guidelines,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation error")
	})

	t.Run("rejects a non-hex color", func(t *testing.T) {
		t.Parallel()

		guidelines := validGuidelines()
		guidelines["primary_color"] = "dark brown"

		rec := postJSON(t, handler.GenerateLogos, "/api/generate/logos", map[string]interface{}{
			"brand_guidelines": guidelines,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation error")
	})

	t.Run("rejects an unknown logo variation", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, handler.GenerateLogos, "/api/generate/logos", map[string]interface{}{
			"brand_guidelines": validGuidelines(),
			"variations":       []string{"holographic"},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation error")
	})

	t.Run("rejects slide counts above the limit", func(t *testing.T) {
		t.Parallel()

		rec := postJSON(t, handler.GeneratePresentation, "/api/generate/presentation", map[string]interface{}{
			"brand_guidelines": validGuidelines(),
			"slide_count":      21,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation error")
	})
}

func TestAssetHandler_CategoryEndpoints(t *testing.T) {
	t.Parallel()

	pkg := domain.NewAssetPackage("Aurora Coffee", nil, "analysis", "")

	tests := []struct {
		name    string
		invoke  func(h *AssetHandler, w http.ResponseWriter, r *http.Request)
		body    map[string]interface{}
		inspect func(t *testing.T, gen *mockGenerator)
	}{
		{
			name:   "logos forwards variations and style",
			invoke: (*AssetHandler).GenerateLogos,
			body: map[string]interface{}{
				"brand_guidelines":  validGuidelines(),
				"variations":        []string{"primary", "monochrome"},
				"style_preferences": "minimalist",
			},
			inspect: func(t *testing.T, gen *mockGenerator) {
				assert.Equal(t, []string{"primary", "monochrome"}, gen.lastLogoReq.Variations)
				assert.Equal(t, "minimalist", gen.lastLogoReq.StylePreferences)
				assert.Equal(t, "Aurora Coffee", gen.lastLogoReq.Profile.BrandName)
			},
		},
		{
			name:   "social media forwards platforms",
			invoke: (*AssetHandler).GenerateSocialMedia,
			body: map[string]interface{}{
				"brand_guidelines": validGuidelines(),
				"platforms":        []string{"instagram_story"},
				"template_purpose": "product launch",
			},
			inspect: func(t *testing.T, gen *mockGenerator) {
				assert.Equal(t, []string{"instagram_story"}, gen.lastSocialReq.Platforms)
				assert.Equal(t, "product launch", gen.lastSocialReq.TemplatePurpose)
			},
		},
		{
			name:   "presentation forwards slide count and type",
			invoke: (*AssetHandler).GeneratePresentation,
			body: map[string]interface{}{
				"brand_guidelines":  validGuidelines(),
				"slide_count":       8,
				"presentation_type": "investor pitch",
			},
			inspect: func(t *testing.T, gen *mockGenerator) {
				assert.Equal(t, 8, gen.lastDeckReq.SlideCount)
				assert.Equal(t, "investor pitch", gen.lastDeckReq.PresentationType)
			},
		},
		{
			name:   "email templates forwards types",
			invoke: (*AssetHandler).GenerateEmailTemplates,
			body: map[string]interface{}{
				"brand_guidelines": validGuidelines(),
				"template_types":   []string{"promotional"},
			},
			inspect: func(t *testing.T, gen *mockGenerator) {
				assert.Equal(t, []string{"promotional"}, gen.lastEmailReq.TemplateTypes)
			},
		},
		{
			name:   "marketing forwards material types",
			invoke: (*AssetHandler).GenerateMarketing,
			body: map[string]interface{}{
				"brand_guidelines": validGuidelines(),
				"material_types":   []string{"poster", "flyer"},
			},
			inspect: func(t *testing.T, gen *mockGenerator) {
				assert.Equal(t, []string{"poster", "flyer"}, gen.lastMaterialReq.MaterialTypes)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := &mockGenerator{pkg: pkg}
			handler := NewAssetHandler(gen)

			rec := postJSON(t, func(w http.ResponseWriter, r *http.Request) {
				tc.invoke(handler, w, r)
			}, "/api/generate", tc.body)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp domain.AssetPackage
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, pkg.ID, resp.ID)
			assert.Equal(t, "Aurora Coffee", resp.BrandName)

			tc.inspect(t, gen)
		})
	}
}

func TestAssetHandler_GenerationFailure(t *testing.T) {
	t.Parallel()

	gen := &mockGenerator{err: fmt.Errorf("gateway timeout")}
	handler := NewAssetHandler(gen)

	rec := postJSON(t, handler.GenerateLogos, "/api/generate/logos", map[string]interface{}{
		"brand_guidelines": validGuidelines(),
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate logos", resp["error"])
	assert.NotContains(t, rec.Body.String(), "gateway timeout")
}

func TestAssetHandler_GenerateCompletePackage(t *testing.T) {
	t.Parallel()

	t.Run("omitted include flags default to true", func(t *testing.T) {
		t.Parallel()

		gen := &mockGenerator{pkg: domain.NewAssetPackage("Aurora Coffee", nil, "analysis", "")}
		handler := NewAssetHandler(gen)

		rec := postJSON(t, handler.GenerateCompletePackage, "/api/generate/complete-package",
			map[string]interface{}{"brand_guidelines": validGuidelines()})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gen.lastPackageReq.IncludeLogos)
		assert.True(t, gen.lastPackageReq.IncludeSocial)
		assert.True(t, gen.lastPackageReq.IncludePresentation)
		assert.True(t, gen.lastPackageReq.IncludeEmail)
		assert.True(t, gen.lastPackageReq.IncludeMarketing)
	})

	t.Run("explicit false flags are honored", func(t *testing.T) {
		t.Parallel()

		gen := &mockGenerator{pkg: domain.NewAssetPackage("Aurora Coffee", nil, "analysis", "")}
		handler := NewAssetHandler(gen)

		rec := postJSON(t, handler.GenerateCompletePackage, "/api/generate/complete-package",
			map[string]interface{}{
				"brand_guidelines":     validGuidelines(),
				"include_presentation": false,
				"include_marketing":    false,
			})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gen.lastPackageReq.IncludeLogos)
		assert.True(t, gen.lastPackageReq.IncludeSocial)
		assert.False(t, gen.lastPackageReq.IncludePresentation)
		assert.True(t, gen.lastPackageReq.IncludeEmail)
		assert.False(t, gen.lastPackageReq.IncludeMarketing)
	})
}
