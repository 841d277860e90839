package prompts

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/forgelab/brandforge-api/internal/domain"
)

// variationInstructions carries the per-variation brief for logo prompts.
var variationInstructions = map[string]string{
	"primary":    "Create the primary/main version of the logo with the full brand name and any symbol/icon integrated harmoniously.",
	"horizontal": "Create a horizontal/landscape orientation logo suitable for website headers and letterheads.",
	"stacked":    "Create a stacked/vertical version with the icon above the text, suitable for square spaces.",
	"icon_only":  "Create just the icon/symbol mark without any text, suitable for favicons and app icons.",
	"monochrome": "Create a single-color version using only the primary color that works well in limited color contexts.",
	"reversed":   "Create a reversed version suitable for dark backgrounds, ensuring legibility and impact.",
}

// slideInstructions carries the per-slide-type brief for presentation prompts.
var slideInstructions = map[string]string{
	"title":       "Create a title slide with prominent space for the presentation title and subtitle. Include the brand logo and any relevant imagery.",
	"section":     "Create a section divider slide that introduces new topics. Bold, impactful design with minimal text placeholders.",
	"content":     "Create a content slide with areas for a heading, bullet points or paragraphs, and optional imagery/graphics.",
	"two_column":  "Create a two-column layout slide for comparing information or showing text alongside images.",
	"image_focus": "Create an image-focused slide with a large image area and minimal text overlay capability.",
	"closing":     "Create a closing/thank you slide with contact information placeholders and brand logo.",
}

// emailInstructions carries the per-template-type brief for email prompts.
var emailInstructions = map[string]string{
	"welcome":       "Create a welcome email template that makes new subscribers/customers feel valued. Include brand logo, warm greeting area, key benefits/features, and clear CTA.",
	"newsletter":    "Create a newsletter template with sections for featured content, multiple articles/updates, and consistent branding throughout.",
	"promotional":   "Create a promotional email template with eye-catching header, product/offer showcase area, urgency elements, and prominent CTA buttons.",
	"transactional": "Create a transactional email template (order confirmation, etc.) with clear information hierarchy, order details section, and professional formatting.",
	"announcement":  "Create an announcement email template for company news or product launches with impactful header and clear message area.",
}

var (
	analysisTmpl = template.Must(template.New("analysis").Parse(brandAnalysisTemplate))
	logoTmpl     = template.Must(template.New("logo").Parse(logoTemplate))
	socialTmpl   = template.Must(template.New("social").Parse(socialTemplate))
	slideTmpl    = template.Must(template.New("slide").Parse(presentationTemplate))
	emailTmpl    = template.Must(template.New("email").Parse(emailTemplate))
	mktTmpl      = template.Must(template.New("marketing").Parse(marketingTemplate))
	validateTmpl = template.Must(template.New("validate").Parse(validationTemplate))
	scoreTmpl    = template.Must(template.New("score").Parse(scoringTemplate))
	themeTmpl    = template.Must(template.New("theme").Parse(campaignThemeTemplate))
)

// render executes a template against data. The templates are compile-time
// constants, so execution failures indicate a programming error.
func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("prompts: template %q failed: %v", tmpl.Name(), err))
	}
	return buf.String()
}

// Humanize turns variant identifiers like "icon_only" into "Icon Only".
func Humanize(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// truncate bounds context excerpts embedded into prompts.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// orDefault substitutes a fallback for optional profile fields.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// BrandAnalysis builds the brand identity brief prompt.
func BrandAnalysis(p *domain.BrandProfile) string {
	return render(analysisTmpl, struct {
		*domain.BrandProfile
		Values        string
		TaglineOrNone string
		SecondaryFont string
		Accent        string
		Context       string
	}{
		BrandProfile:  p,
		Values:        orDefault(p.BrandValues, "To be defined"),
		TaglineOrNone: orDefault(p.Tagline, "None provided"),
		SecondaryFont: orDefault(p.SecondaryFont, "same as primary"),
		Accent:        orDefault(p.AccentColor, "None"),
		Context:       orDefault(p.AdditionalContext, "None"),
	})
}

// Logo builds the generation prompt for one logo variation.
func Logo(p *domain.BrandProfile, variation, analysis, stylePreferences string) string {
	return render(logoTmpl, struct {
		*domain.BrandProfile
		Accent           string
		Variation        string
		Instructions     string
		StylePreferences string
		Analysis         string
	}{
		BrandProfile:     p,
		Accent:           orDefault(p.AccentColor, "use sparingly"),
		Variation:        variation,
		Instructions:     variationInstructions[variation],
		StylePreferences: stylePreferences,
		Analysis:         truncate(analysis, 500),
	})
}

// SocialMedia builds the generation prompt and dimensions for one platform.
func SocialMedia(p *domain.BrandProfile, platform, analysis, purpose string) (prompt string, width, height int) {
	width, height = SocialDimensions(platform)
	name, ok := socialPlatformNames[platform]
	if !ok {
		name = platform
	}
	prompt = render(socialTmpl, struct {
		*domain.BrandProfile
		Platform string
		Width    int
		Height   int
		Accent   string
		Purpose  string
		Analysis string
	}{
		BrandProfile: p,
		Platform:     name,
		Width:        width,
		Height:       height,
		Accent:       orDefault(p.AccentColor, "optional"),
		Purpose:      purpose,
		Analysis:     truncate(analysis, 400),
	})
	return prompt, width, height
}

// Presentation builds the generation prompt for one slide.
func Presentation(p *domain.BrandProfile, slideType, analysis, presentationType string) string {
	instructions, ok := slideInstructions[slideType]
	if !ok {
		instructions = slideInstructions["content"]
	}
	return render(slideTmpl, struct {
		*domain.BrandProfile
		SlideType        string
		PresentationType string
		BodyFont         string
		Instructions     string
		Analysis         string
	}{
		BrandProfile:     p,
		SlideType:        Humanize(slideType),
		PresentationType: presentationType,
		BodyFont:         orDefault(p.SecondaryFont, p.PrimaryFont),
		Instructions:     instructions,
		Analysis:         truncate(analysis, 400),
	})
}

// EmailTemplate builds the generation prompt for one email template type.
func EmailTemplate(p *domain.BrandProfile, templateType, analysis string) string {
	instructions, ok := emailInstructions[templateType]
	if !ok {
		instructions = emailInstructions["newsletter"]
	}
	return render(emailTmpl, struct {
		*domain.BrandProfile
		TemplateType string
		Instructions string
		Analysis     string
	}{
		BrandProfile: p,
		TemplateType: Humanize(templateType),
		Instructions: instructions,
		Analysis:     truncate(analysis, 400),
	})
}

// Marketing builds the generation prompt and dimensions for one material type.
func Marketing(p *domain.BrandProfile, materialType, analysis string) (prompt string, width, height int) {
	width, height = MarketingDimensions(materialType)
	spec := materialSpecFor(materialType)
	prompt = render(mktTmpl, struct {
		*domain.BrandProfile
		MaterialName  string
		MaterialTitle string
		Width         int
		Height        int
		Accent        string
		Instructions  string
		Analysis      string
	}{
		BrandProfile:  p,
		MaterialName:  strings.ReplaceAll(materialType, "_", " "),
		MaterialTitle: Humanize(materialType),
		Width:         width,
		Height:        height,
		Accent:        orDefault(p.AccentColor, "optional"),
		Instructions:  spec.instructions,
		Analysis:      truncate(analysis, 400),
	})
	return prompt, width, height
}

// Validation builds the strict-auditor verdict prompt for one generated
// image. previousIssues, when non-empty, instructs the model to verify the
// prior round's issues were fixed.
func Validation(p *domain.BrandProfile, assetType, description string, previousIssues []string) string {
	var issueBlock string
	if len(previousIssues) > 0 {
		var b strings.Builder
		b.WriteString("\nIMPORTANT - Previous Version Had These Issues:\n")
		for _, issue := range previousIssues {
			b.WriteString("- " + issue + "\n")
		}
		b.WriteString("\nThe new version MUST address these specific issues. Be strict in verifying they are fixed.\n")
		issueBlock = b.String()
	}
	return render(validateTmpl, struct {
		*domain.BrandProfile
		Accent          string
		AssetType       string
		Description     string
		PreviousContext string
	}{
		BrandProfile:    p,
		Accent:          orDefault(p.AccentColor, "None specified"),
		AssetType:       assetType,
		Description:     description,
		PreviousContext: issueBlock,
	})
}

// Scoring builds the consistency-score verdict prompt for one asset.
func Scoring(p *domain.BrandProfile, assetName, assetType, description string) string {
	return render(scoreTmpl, struct {
		*domain.BrandProfile
		Accent      string
		AssetName   string
		AssetType   string
		Description string
	}{
		BrandProfile: p,
		Accent:       orDefault(p.AccentColor, "None"),
		AssetName:    assetName,
		AssetType:    assetType,
		Description:  description,
	})
}

// CampaignTheme builds the short prompt for the unifying campaign theme.
func CampaignTheme(p *domain.BrandProfile, assetCount int) string {
	return render(themeTmpl, struct {
		*domain.BrandProfile
		Campaign   string
		Goal       string
		Message    string
		AssetCount int
	}{
		BrandProfile: p,
		Campaign:     orDefault(p.CampaignName, "Brand Launch"),
		Goal:         orDefault(p.CampaignGoal, "Brand awareness"),
		Message:      orDefault(p.CampaignMessage, "None specified"),
		AssetCount:   assetCount,
	})
}
