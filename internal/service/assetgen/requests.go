package assetgen

import "github.com/forgelab/brandforge-api/internal/domain"

// Category identifies one asset category the orchestrator can generate.
type Category string

// Supported categories.
const (
	CategoryLogos        Category = "logos"
	CategorySocial       Category = "social"
	CategoryPresentation Category = "presentation"
	CategoryEmail        Category = "email"
	CategoryMarketing    Category = "marketing"
)

// Default variant sets, applied when a request leaves its variant list empty
// and by the orchestrator for complete-package generation.
var (
	defaultLogoVariations  = []string{"primary", "icon_only", "horizontal"}
	defaultSocialPlatforms = []string{"instagram_post", "twitter_post", "linkedin_post"}
	defaultEmailTemplates  = []string{"welcome", "newsletter"}
	defaultMaterialTypes   = []string{"banner", "flyer", "business_card"}
)

const (
	defaultSlideCount       = 5
	defaultPresentationType = "company overview"
)

// LogoRequest asks for a set of logo variations.
type LogoRequest struct {
	Profile          *domain.BrandProfile
	Variations       []string
	StylePreferences string
}

func (r LogoRequest) variations() []string {
	if len(r.Variations) == 0 {
		return defaultLogoVariations
	}
	return r.Variations
}

// SocialMediaRequest asks for templates for a set of platforms.
type SocialMediaRequest struct {
	Profile         *domain.BrandProfile
	Platforms       []string
	TemplatePurpose string
}

func (r SocialMediaRequest) platforms() []string {
	if len(r.Platforms) == 0 {
		return defaultSocialPlatforms
	}
	return r.Platforms
}

// PresentationRequest asks for a slide deck of the given length.
type PresentationRequest struct {
	Profile          *domain.BrandProfile
	SlideCount       int
	PresentationType string
}

func (r PresentationRequest) slideCount() int {
	if r.SlideCount <= 0 {
		return defaultSlideCount
	}
	return r.SlideCount
}

func (r PresentationRequest) presentationType() string {
	if r.PresentationType == "" {
		return defaultPresentationType
	}
	return r.PresentationType
}

// EmailTemplateRequest asks for a set of email template types.
type EmailTemplateRequest struct {
	Profile       *domain.BrandProfile
	TemplateTypes []string
}

func (r EmailTemplateRequest) templateTypes() []string {
	if len(r.TemplateTypes) == 0 {
		return defaultEmailTemplates
	}
	return r.TemplateTypes
}

// MarketingRequest asks for a set of marketing material types.
type MarketingRequest struct {
	Profile       *domain.BrandProfile
	MaterialTypes []string
}

func (r MarketingRequest) materialTypes() []string {
	if len(r.MaterialTypes) == 0 {
		return defaultMaterialTypes
	}
	return r.MaterialTypes
}

// PackageRequest selects the categories of a complete-package generation.
type PackageRequest struct {
	Profile *domain.BrandProfile

	IncludeLogos        bool
	IncludeSocial       bool
	IncludePresentation bool
	IncludeEmail        bool
	IncludeMarketing    bool
}

// NewPackageRequest creates a request with every category enabled.
func NewPackageRequest(profile *domain.BrandProfile) PackageRequest {
	return PackageRequest{
		Profile:             profile,
		IncludeLogos:        true,
		IncludeSocial:       true,
		IncludePresentation: true,
		IncludeEmail:        true,
		IncludeMarketing:    true,
	}
}

// enabledCategories returns the requested categories in their fixed order.
// The order determines merged-asset ordering and note ordering.
func (r PackageRequest) enabledCategories() []Category {
	var categories []Category
	if r.IncludeLogos {
		categories = append(categories, CategoryLogos)
	}
	if r.IncludeSocial {
		categories = append(categories, CategorySocial)
	}
	if r.IncludePresentation {
		categories = append(categories, CategoryPresentation)
	}
	if r.IncludeEmail {
		categories = append(categories, CategoryEmail)
	}
	if r.IncludeMarketing {
		categories = append(categories, CategoryMarketing)
	}
	return categories
}
