package domain

import (
	"errors"
	"regexp"
)

// Brand profile validation errors
var (
	// ErrBrandNameEmpty is returned when a brand profile has no brand name.
	ErrBrandNameEmpty = errors.New("brand name cannot be empty")

	// ErrPrimaryColorEmpty is returned when a brand profile has no primary color.
	ErrPrimaryColorEmpty = errors.New("primary color cannot be empty")

	// ErrSecondaryColorEmpty is returned when a brand profile has no secondary color.
	ErrSecondaryColorEmpty = errors.New("secondary color cannot be empty")

	// ErrInvalidColorFormat is returned when a color is not a hex code like #3B82F6.
	ErrInvalidColorFormat = errors.New("color must be a hex code (e.g. #3B82F6)")

	// ErrPrimaryFontEmpty is returned when a brand profile has no primary font.
	ErrPrimaryFontEmpty = errors.New("primary font cannot be empty")

	// ErrBrandToneEmpty is returned when a brand profile has no tone description.
	ErrBrandToneEmpty = errors.New("brand tone cannot be empty")

	// ErrTargetAudienceEmpty is returned when a brand profile has no target audience.
	ErrTargetAudienceEmpty = errors.New("target audience cannot be empty")

	// ErrIndustryEmpty is returned when a brand profile has no industry.
	ErrIndustryEmpty = errors.New("industry cannot be empty")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// BrandProfile describes a brand's visual and tonal identity. It is the
// input to every generation operation, the validation ground truth for the
// self-correction loop, and (by name) the key of the brand analysis cache.
// Profiles are treated as immutable once constructed.
type BrandProfile struct {
	BrandName string `json:"brand_name"`

	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color,omitempty"`

	PrimaryFont   string `json:"primary_font"`
	SecondaryFont string `json:"secondary_font,omitempty"`

	BrandTone      string `json:"brand_tone"`
	TargetAudience string `json:"target_audience"`
	Industry       string `json:"industry"`

	BrandValues       string `json:"brand_values,omitempty"`
	Tagline           string `json:"tagline,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`

	// Optional campaign intent. When any of these is set, a complete
	// package generation derives a CampaignContext.
	CampaignName    string `json:"campaign_name,omitempty"`
	CampaignGoal    string `json:"campaign_goal,omitempty"`
	CampaignMessage string `json:"campaign_message,omitempty"`
}

// Validate checks the required profile fields and color formats.
// Returns a sentinel error for the first failing field.
func (p *BrandProfile) Validate() error {
	if p.BrandName == "" {
		return ErrBrandNameEmpty
	}
	if p.PrimaryColor == "" {
		return ErrPrimaryColorEmpty
	}
	if p.SecondaryColor == "" {
		return ErrSecondaryColorEmpty
	}
	for _, c := range []string{p.PrimaryColor, p.SecondaryColor, p.AccentColor} {
		if c != "" && !hexColorPattern.MatchString(c) {
			return ErrInvalidColorFormat
		}
	}
	if p.PrimaryFont == "" {
		return ErrPrimaryFontEmpty
	}
	if p.BrandTone == "" {
		return ErrBrandToneEmpty
	}
	if p.TargetAudience == "" {
		return ErrTargetAudienceEmpty
	}
	if p.Industry == "" {
		return ErrIndustryEmpty
	}
	return nil
}

// HasCampaign reports whether any campaign field is set.
func (p *BrandProfile) HasCampaign() bool {
	return p.CampaignName != "" || p.CampaignGoal != "" || p.CampaignMessage != ""
}
