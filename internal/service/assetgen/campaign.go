package assetgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/prompts"
)

// Campaign theme generation tuning: a short, focused prose blurb.
const (
	themeTemperature = 0.5
	themeMaxTokens   = 300
)

// deploymentSteps maps each asset type to its launch checklist item.
var deploymentSteps = map[domain.AssetType]string{
	domain.AssetTypeLogo:          "Upload logo to website header, favicon, and social profiles",
	domain.AssetTypeSocialMedia:   "Schedule social media posts across platforms",
	domain.AssetTypePresentation:  "Use presentation deck for investor/client meetings",
	domain.AssetTypeEmailTemplate: "Import email templates into email marketing platform",
	domain.AssetTypeMarketing:     "Deploy marketing materials to digital ad platforms and print",
}

// checklistOrder fixes the ordering of type-derived checklist items.
var checklistOrder = []domain.AssetType{
	domain.AssetTypeLogo,
	domain.AssetTypeSocialMedia,
	domain.AssetTypePresentation,
	domain.AssetTypeEmailTemplate,
	domain.AssetTypeMarketing,
}

// buildCampaignContext derives the cross-asset campaign narrative: the
// campaign parameters with their defaults, a generated unifying theme, and
// a deployment checklist built from the asset types present in the package.
func (s *Service) buildCampaignContext(
	ctx context.Context,
	profile *domain.BrandProfile,
	assets []*domain.GeneratedAsset,
) *domain.CampaignContext {
	name := profile.CampaignName
	if name == "" {
		name = "Brand Campaign"
	}
	goal := profile.CampaignGoal
	if goal == "" {
		goal = "Brand awareness"
	}
	message := profile.CampaignMessage
	if message == "" {
		message = profile.Tagline
	}

	present := make(map[domain.AssetType]bool, len(assets))
	for _, asset := range assets {
		present[asset.Type] = true
	}

	var checklist []string
	for _, assetType := range checklistOrder {
		if present[assetType] {
			checklist = append(checklist, deploymentSteps[assetType])
		}
	}
	checklist = append(checklist,
		fmt.Sprintf("Ensure all assets prominently feature: '%s'", message),
		"Review all assets for brand consistency before launch",
		"Set up tracking/analytics for campaign performance",
	)

	return &domain.CampaignContext{
		CampaignName:        name,
		CampaignGoal:        goal,
		CampaignMessage:     message,
		UnifiedTheme:        s.generateCampaignTheme(ctx, profile, len(assets)),
		DeploymentChecklist: checklist,
	}
}

// generateCampaignTheme asks the model for the unifying theme blurb,
// falling back to a templated sentence on failure.
func (s *Service) generateCampaignTheme(
	ctx context.Context,
	profile *domain.BrandProfile,
	assetCount int,
) string {
	theme, err := s.gateway.GenerateText(ctx,
		prompts.CampaignTheme(profile, assetCount), themeTemperature, themeMaxTokens)
	if err != nil {
		s.logger.WarnContext(ctx, "campaign theme generation failed, using fallback",
			"error", err)
		goal := profile.CampaignGoal
		if goal == "" {
			goal = "build brand awareness"
		}
		return fmt.Sprintf("A cohesive %s campaign featuring %d coordinated assets designed to %s.",
			strings.ToLower(profile.BrandTone), assetCount, goal)
	}
	return theme
}
