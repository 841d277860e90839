package assetgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/prompts"
)

// GenerateLogos generates the requested logo variations with
// self-correction, skipping variations whose generation fails.
func (s *Service) GenerateLogos(ctx context.Context, req LogoRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	var assets []*domain.GeneratedAsset
	for _, variation := range req.variations() {
		asset, err := s.generateWithCorrection(ctx, correctionInput{
			Prompt:    prompts.Logo(req.Profile, variation, analysis, req.StylePreferences),
			Profile:   req.Profile,
			AssetType: domain.AssetTypeLogo,
			Name:      "logo_" + variation,
			Description: fmt.Sprintf("%s logo variation for %s",
				prompts.Humanize(variation), req.Profile.BrandName),
			Width:         prompts.LogoWidth,
			Height:        prompts.LogoHeight,
			StyleGuidance: fmt.Sprintf("Logo design for %s brand", req.Profile.Industry),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "skipping logo variation",
				"variation", variation, "error", err)
			continue
		}
		assets = append(assets, asset)
	}

	style := req.StylePreferences
	if style == "" {
		style = "default"
	}
	notes := fmt.Sprintf("Generated %d logo variations with style: %s", len(assets), style)
	return domain.NewAssetPackage(req.Profile.BrandName, assets, analysis, notes), nil
}

// GenerateSocialMedia generates templates for the requested platforms,
// sized per platform.
func (s *Service) GenerateSocialMedia(ctx context.Context, req SocialMediaRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	platforms := req.platforms()

	var assets []*domain.GeneratedAsset
	for _, platform := range platforms {
		prompt, width, height := prompts.SocialMedia(req.Profile, platform, analysis, req.TemplatePurpose)
		asset, err := s.generateWithCorrection(ctx, correctionInput{
			Prompt:    prompt,
			Profile:   req.Profile,
			AssetType: domain.AssetTypeSocialMedia,
			Name:      "social_" + platform,
			Description: fmt.Sprintf("%s template for %s",
				prompts.Humanize(platform), req.Profile.BrandName),
			Width:         width,
			Height:        height,
			StyleGuidance: fmt.Sprintf("Social media template for %s brand", req.Profile.BrandTone),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "skipping social media platform",
				"platform", platform, "error", err)
			continue
		}
		assets = append(assets, asset)
	}

	notes := fmt.Sprintf("Generated %d social media templates for platforms: %s",
		len(assets), strings.Join(platforms, ", "))
	return domain.NewAssetPackage(req.Profile.BrandName, assets, analysis, notes), nil
}

// GeneratePresentation generates a slide deck whose slide types follow the
// sequencing rule for the requested count.
func (s *Service) GeneratePresentation(ctx context.Context, req PresentationRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	presentationType := req.presentationType()

	var assets []*domain.GeneratedAsset
	for i, slideType := range slideSequence(req.slideCount()) {
		asset, err := s.generateWithCorrection(ctx, correctionInput{
			Prompt:        prompts.Presentation(req.Profile, slideType, analysis, presentationType),
			Profile:       req.Profile,
			AssetType:     domain.AssetTypePresentation,
			Name:          fmt.Sprintf("slide_%02d_%s", i+1, slideType),
			Description:   fmt.Sprintf("Slide %d: %s", i+1, prompts.Humanize(slideType)),
			Width:         prompts.SlideWidth,
			Height:        prompts.SlideHeight,
			StyleGuidance: fmt.Sprintf("Professional presentation slide for %s", req.Profile.Industry),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "skipping presentation slide",
				"slide", i+1, "slide_type", slideType, "error", err)
			continue
		}
		assets = append(assets, asset)
	}

	notes := fmt.Sprintf("Generated %d presentation slides for %s", len(assets), presentationType)
	return domain.NewAssetPackage(req.Profile.BrandName, assets, analysis, notes), nil
}

// GenerateEmailTemplates generates the requested email template types.
func (s *Service) GenerateEmailTemplates(ctx context.Context, req EmailTemplateRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	templateTypes := req.templateTypes()

	var assets []*domain.GeneratedAsset
	for _, templateType := range templateTypes {
		asset, err := s.generateWithCorrection(ctx, correctionInput{
			Prompt:    prompts.EmailTemplate(req.Profile, templateType, analysis),
			Profile:   req.Profile,
			AssetType: domain.AssetTypeEmailTemplate,
			Name:      "email_" + templateType,
			Description: fmt.Sprintf("%s email template for %s",
				prompts.Humanize(templateType), req.Profile.BrandName),
			Width:         prompts.EmailWidth,
			Height:        prompts.EmailHeight,
			StyleGuidance: fmt.Sprintf("Professional email template for %s brand", req.Profile.BrandTone),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "skipping email template",
				"template_type", templateType, "error", err)
			continue
		}
		assets = append(assets, asset)
	}

	notes := fmt.Sprintf("Generated %d email templates: %s",
		len(assets), strings.Join(templateTypes, ", "))
	return domain.NewAssetPackage(req.Profile.BrandName, assets, analysis, notes), nil
}

// GenerateMarketing generates the requested marketing material types,
// sized per material.
func (s *Service) GenerateMarketing(ctx context.Context, req MarketingRequest) (*domain.AssetPackage, error) {
	analysis, err := s.analyses.GetOrCompute(ctx, req.Profile)
	if err != nil {
		return nil, err
	}

	materialTypes := req.materialTypes()

	var assets []*domain.GeneratedAsset
	for _, materialType := range materialTypes {
		prompt, width, height := prompts.Marketing(req.Profile, materialType, analysis)
		asset, err := s.generateWithCorrection(ctx, correctionInput{
			Prompt:        prompt,
			Profile:       req.Profile,
			AssetType:     domain.AssetTypeMarketing,
			Name:          "marketing_" + materialType,
			Description:   fmt.Sprintf("%s for %s", prompts.Humanize(materialType), req.Profile.BrandName),
			Width:         width,
			Height:        height,
			StyleGuidance: fmt.Sprintf("Professional marketing material for %s", req.Profile.Industry),
		})
		if err != nil {
			s.logger.WarnContext(ctx, "skipping marketing material",
				"material_type", materialType, "error", err)
			continue
		}
		assets = append(assets, asset)
	}

	notes := fmt.Sprintf("Generated %d marketing materials: %s",
		len(assets), strings.Join(materialTypes, ", "))
	return domain.NewAssetPackage(req.Profile.BrandName, assets, analysis, notes), nil
}

// GenerateCategory generates one category with its default variant set.
func (s *Service) GenerateCategory(
	ctx context.Context,
	profile *domain.BrandProfile,
	category Category,
) (*domain.AssetPackage, error) {
	switch category {
	case CategoryLogos:
		return s.GenerateLogos(ctx, LogoRequest{Profile: profile})
	case CategorySocial:
		return s.GenerateSocialMedia(ctx, SocialMediaRequest{Profile: profile})
	case CategoryPresentation:
		return s.GeneratePresentation(ctx, PresentationRequest{Profile: profile})
	case CategoryEmail:
		return s.GenerateEmailTemplates(ctx, EmailTemplateRequest{Profile: profile})
	case CategoryMarketing:
		return s.GenerateMarketing(ctx, MarketingRequest{Profile: profile})
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
}

// slideSequence derives the slide types for a deck of the given length.
// Decks of up to three slides use the fixed title/content/closing opening
// truncated to the count. Longer decks open with a title slide, cycle
// through the content layouts with a section divider every fourth interior
// slide, and always end with a closing slide.
func slideSequence(count int) []string {
	if count <= 0 {
		return nil
	}
	if count <= 3 {
		return []string{"title", "content", "closing"}[:count]
	}

	contentTypes := []string{"content", "two_column", "image_focus", "section"}

	slides := make([]string, 0, count)
	slides = append(slides, "title")
	for i := 0; i < count-2; i++ {
		if i%4 == 0 && i > 0 {
			slides = append(slides, "section")
		} else {
			slides = append(slides, contentTypes[i%len(contentTypes)])
		}
	}
	slides = append(slides, "closing")
	return slides
}
