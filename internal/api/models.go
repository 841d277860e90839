package api

import "github.com/forgelab/brandforge-api/internal/domain"

// Common request/response structures

// BrandProfileRequest is the brand guidelines payload embedded in every
// generation request.
type BrandProfileRequest struct {
	BrandName string `json:"brand_name" validate:"required,min=1,max=120"`

	PrimaryColor   string `json:"primary_color"          validate:"required,hexcolor"`
	SecondaryColor string `json:"secondary_color"        validate:"required,hexcolor"`
	AccentColor    string `json:"accent_color,omitempty" validate:"omitempty,hexcolor"`

	PrimaryFont   string `json:"primary_font"             validate:"required"`
	SecondaryFont string `json:"secondary_font,omitempty"`

	BrandTone      string `json:"brand_tone"      validate:"required"`
	TargetAudience string `json:"target_audience" validate:"required"`
	Industry       string `json:"industry"        validate:"required"`

	BrandValues       string `json:"brand_values,omitempty"`
	Tagline           string `json:"tagline,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`

	CampaignName    string `json:"campaign_name,omitempty"`
	CampaignGoal    string `json:"campaign_goal,omitempty"`
	CampaignMessage string `json:"campaign_message,omitempty"`
}

// ToDomain converts the request payload into the domain profile.
func (r BrandProfileRequest) ToDomain() *domain.BrandProfile {
	return &domain.BrandProfile{
		BrandName:         r.BrandName,
		PrimaryColor:      r.PrimaryColor,
		SecondaryColor:    r.SecondaryColor,
		AccentColor:       r.AccentColor,
		PrimaryFont:       r.PrimaryFont,
		SecondaryFont:     r.SecondaryFont,
		BrandTone:         r.BrandTone,
		TargetAudience:    r.TargetAudience,
		Industry:          r.Industry,
		BrandValues:       r.BrandValues,
		Tagline:           r.Tagline,
		AdditionalContext: r.AdditionalContext,
		CampaignName:      r.CampaignName,
		CampaignGoal:      r.CampaignGoal,
		CampaignMessage:   r.CampaignMessage,
	}
}

// AnalyzeBrandRequest defines the payload for the brand analysis endpoint.
type AnalyzeBrandRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`
}

// AnalyzeBrandResponse defines the brand analysis endpoint's response.
type AnalyzeBrandResponse struct {
	BrandName string `json:"brand_name"`
	Analysis  string `json:"analysis"`
}

// GenerateLogosRequest defines the payload for the logo generation endpoint.
type GenerateLogosRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	// Variations defaults to primary, icon_only, and horizontal when empty.
	Variations []string `json:"variations,omitempty" validate:"omitempty,max=6,dive,oneof=primary horizontal stacked icon_only monochrome reversed"`

	StylePreferences string `json:"style_preferences,omitempty"`
}

// GenerateSocialMediaRequest defines the payload for the social media
// template endpoint.
type GenerateSocialMediaRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	// Platforms defaults to instagram_post, twitter_post, and linkedin_post
	// when empty.
	Platforms []string `json:"platforms,omitempty" validate:"omitempty,max=6,dive,oneof=instagram_post instagram_story facebook_post twitter_post linkedin_post youtube_thumbnail"`

	TemplatePurpose string `json:"template_purpose,omitempty"`
}

// GeneratePresentationRequest defines the payload for the presentation
// deck endpoint.
type GeneratePresentationRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	// SlideCount defaults to 5 when omitted.
	SlideCount int `json:"slide_count,omitempty" validate:"omitempty,min=1,max=20"`

	PresentationType string `json:"presentation_type,omitempty"`
}

// GenerateEmailTemplatesRequest defines the payload for the email template
// endpoint.
type GenerateEmailTemplatesRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	// TemplateTypes defaults to welcome and newsletter when empty.
	TemplateTypes []string `json:"template_types,omitempty" validate:"omitempty,max=5,dive,oneof=welcome newsletter promotional transactional announcement"`
}

// GenerateMarketingRequest defines the payload for the marketing material
// endpoint.
type GenerateMarketingRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	// MaterialTypes defaults to banner, flyer, and business_card when empty.
	MaterialTypes []string `json:"material_types,omitempty" validate:"omitempty,max=5,dive,oneof=banner flyer business_card poster brochure_cover"`
}

// GenerateCompletePackageRequest defines the payload for the complete
// package endpoints (concurrent and streaming). The include flags are
// pointers so an omitted flag defaults to true.
type GenerateCompletePackageRequest struct {
	BrandGuidelines BrandProfileRequest `json:"brand_guidelines" validate:"required"`

	IncludeLogos        *bool `json:"include_logos,omitempty"`
	IncludeSocial       *bool `json:"include_social,omitempty"`
	IncludePresentation *bool `json:"include_presentation,omitempty"`
	IncludeEmail        *bool `json:"include_email,omitempty"`
	IncludeMarketing    *bool `json:"include_marketing,omitempty"`
}

func includeOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// HealthResponse defines the health endpoint's response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
