package prompts

// Logo variants are always generated square at this size.
const (
	LogoWidth  = 1024
	LogoHeight = 1024
)

// Presentation slides are always 16:9.
const (
	SlideWidth  = 1920
	SlideHeight = 1080
)

// Email templates use the standard 600px email width.
const (
	EmailWidth  = 600
	EmailHeight = 1000
)

// socialDimensions maps each supported platform to its template size.
// Unknown platforms fall back to the Instagram post square.
var socialDimensions = map[string][2]int{
	"instagram_post":    {1080, 1080},
	"instagram_story":   {1080, 1920},
	"facebook_post":     {1200, 630},
	"twitter_post":      {1200, 675},
	"linkedin_post":     {1200, 627},
	"youtube_thumbnail": {1280, 720},
}

// socialPlatformNames gives the display name used inside prompts.
var socialPlatformNames = map[string]string{
	"instagram_post":    "Instagram Post",
	"instagram_story":   "Instagram Story",
	"facebook_post":     "Facebook Post",
	"twitter_post":      "Twitter/X Post",
	"linkedin_post":     "LinkedIn Post",
	"youtube_thumbnail": "YouTube Thumbnail",
}

// SocialDimensions returns the pixel size for a platform's template.
func SocialDimensions(platform string) (width, height int) {
	if dims, ok := socialDimensions[platform]; ok {
		return dims[0], dims[1]
	}
	return 1080, 1080
}

// materialSpec describes one marketing material kind.
type materialSpec struct {
	width        int
	height       int
	instructions string
}

// materialSpecs maps marketing material types to their size and brief.
// Unknown types fall back to the banner spec.
var materialSpecs = map[string]materialSpec{
	"banner": {
		width:  1200,
		height: 400,
		instructions: "Create a web banner with impactful visuals, brand messaging area, and CTA button. " +
			"Horizontal format suitable for website headers or ad placements.",
	},
	"flyer": {
		width:  1080,
		height: 1400,
		instructions: "Create a flyer design with eye-catching header, key information sections, contact details, " +
			"and brand elements. Suitable for print or digital distribution.",
	},
	"business_card": {
		width:  1050,
		height: 600,
		instructions: "Create a business card design with name/title placeholder, contact information areas, " +
			"logo placement, and brand accents. Professional and memorable.",
	},
	"poster": {
		width:  1080,
		height: 1620,
		instructions: "Create a poster design with bold headline area, supporting imagery, key messages, " +
			"and brand identity. High-impact visual design.",
	},
	"brochure_cover": {
		width:  1080,
		height: 1400,
		instructions: "Create a brochure cover design with compelling imagery, brand name, tagline area, " +
			"and professional aesthetic suitable for printed materials.",
	},
}

// materialSpecFor resolves a material type's spec, falling back to the
// banner for unknown types.
func materialSpecFor(materialType string) materialSpec {
	spec, ok := materialSpecs[materialType]
	if !ok {
		spec = materialSpecs["banner"]
	}
	return spec
}

// MarketingDimensions returns the pixel size for a marketing material type.
func MarketingDimensions(materialType string) (width, height int) {
	spec := materialSpecFor(materialType)
	return spec.width, spec.height
}
