package api

import (
	"context"
	"net/http"

	"github.com/forgelab/brandforge-api/internal/api/shared"
	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/events"
	"github.com/forgelab/brandforge-api/internal/service/assetgen"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "1.0.0"

// AssetGenerator defines the generation operations the handlers need.
type AssetGenerator interface {
	AnalyzeBrand(ctx context.Context, profile *domain.BrandProfile) (string, error)
	GenerateLogos(ctx context.Context, req assetgen.LogoRequest) (*domain.AssetPackage, error)
	GenerateSocialMedia(ctx context.Context, req assetgen.SocialMediaRequest) (*domain.AssetPackage, error)
	GeneratePresentation(ctx context.Context, req assetgen.PresentationRequest) (*domain.AssetPackage, error)
	GenerateEmailTemplates(ctx context.Context, req assetgen.EmailTemplateRequest) (*domain.AssetPackage, error)
	GenerateMarketing(ctx context.Context, req assetgen.MarketingRequest) (*domain.AssetPackage, error)
	GenerateCompletePackage(ctx context.Context, req assetgen.PackageRequest) (*domain.AssetPackage, error)
	StreamCompletePackage(ctx context.Context, req assetgen.PackageRequest, emitter events.Emitter) error
}

// AssetHandler handles asset generation HTTP requests.
type AssetHandler struct {
	generator AssetGenerator
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(generator AssetGenerator) *AssetHandler {
	return &AssetHandler{generator: generator}
}

// Health handles GET /health requests.
func (h *AssetHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "brandforge-api",
		Version: ServiceVersion,
	})
}

// AnalyzeBrand handles POST /api/analyze-brand requests.
func (h *AssetHandler) AnalyzeBrand(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeBrandRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	analysis, err := h.generator.AnalyzeBrand(r.Context(), req.BrandGuidelines.ToDomain())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to analyze brand", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnalyzeBrandResponse{
		BrandName: req.BrandGuidelines.BrandName,
		Analysis:  analysis,
	})
}

// GenerateLogos handles POST /api/generate/logos requests.
func (h *AssetHandler) GenerateLogos(w http.ResponseWriter, r *http.Request) {
	var req GenerateLogosRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GenerateLogos(r.Context(), assetgen.LogoRequest{
		Profile:          req.BrandGuidelines.ToDomain(),
		Variations:       req.Variations,
		StylePreferences: req.StylePreferences,
	})
	h.respondWithPackage(w, r, pkg, err, "Failed to generate logos")
}

// GenerateSocialMedia handles POST /api/generate/social-media requests.
func (h *AssetHandler) GenerateSocialMedia(w http.ResponseWriter, r *http.Request) {
	var req GenerateSocialMediaRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GenerateSocialMedia(r.Context(), assetgen.SocialMediaRequest{
		Profile:         req.BrandGuidelines.ToDomain(),
		Platforms:       req.Platforms,
		TemplatePurpose: req.TemplatePurpose,
	})
	h.respondWithPackage(w, r, pkg, err, "Failed to generate social media templates")
}

// GeneratePresentation handles POST /api/generate/presentation requests.
func (h *AssetHandler) GeneratePresentation(w http.ResponseWriter, r *http.Request) {
	var req GeneratePresentationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GeneratePresentation(r.Context(), assetgen.PresentationRequest{
		Profile:          req.BrandGuidelines.ToDomain(),
		SlideCount:       req.SlideCount,
		PresentationType: req.PresentationType,
	})
	h.respondWithPackage(w, r, pkg, err, "Failed to generate presentation deck")
}

// GenerateEmailTemplates handles POST /api/generate/email-templates requests.
func (h *AssetHandler) GenerateEmailTemplates(w http.ResponseWriter, r *http.Request) {
	var req GenerateEmailTemplatesRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GenerateEmailTemplates(r.Context(), assetgen.EmailTemplateRequest{
		Profile:       req.BrandGuidelines.ToDomain(),
		TemplateTypes: req.TemplateTypes,
	})
	h.respondWithPackage(w, r, pkg, err, "Failed to generate email templates")
}

// GenerateMarketing handles POST /api/generate/marketing requests.
func (h *AssetHandler) GenerateMarketing(w http.ResponseWriter, r *http.Request) {
	var req GenerateMarketingRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GenerateMarketing(r.Context(), assetgen.MarketingRequest{
		Profile:       req.BrandGuidelines.ToDomain(),
		MaterialTypes: req.MaterialTypes,
	})
	h.respondWithPackage(w, r, pkg, err, "Failed to generate marketing materials")
}

// GenerateCompletePackage handles POST /api/generate/complete-package requests.
func (h *AssetHandler) GenerateCompletePackage(w http.ResponseWriter, r *http.Request) {
	var req GenerateCompletePackageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.generator.GenerateCompletePackage(r.Context(), packageRequest(req))
	h.respondWithPackage(w, r, pkg, err, "Failed to generate asset package")
}

// decodeAndValidate decodes the body into req and validates it, writing the
// error response itself. Returns false when the handler should stop.
func (h *AssetHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

func (h *AssetHandler) respondWithPackage(
	w http.ResponseWriter,
	r *http.Request,
	pkg *domain.AssetPackage,
	err error,
	userMessage string,
) {
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, userMessage, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pkg)
}

func packageRequest(req GenerateCompletePackageRequest) assetgen.PackageRequest {
	return assetgen.PackageRequest{
		Profile:             req.BrandGuidelines.ToDomain(),
		IncludeLogos:        includeOrDefault(req.IncludeLogos),
		IncludeSocial:       includeOrDefault(req.IncludeSocial),
		IncludePresentation: includeOrDefault(req.IncludePresentation),
		IncludeEmail:        includeOrDefault(req.IncludeEmail),
		IncludeMarketing:    includeOrDefault(req.IncludeMarketing),
	}
}
