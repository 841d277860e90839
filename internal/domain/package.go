package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetPackage is the unit returned to a caller: the assets of one category
// request, or the merged result of a complete-package generation. Packages
// are assembled once and never mutated afterwards.
type AssetPackage struct {
	ID        uuid.UUID `json:"id"`
	BrandName string    `json:"brand_name"`

	Assets []*GeneratedAsset `json:"assets"`

	// BrandAnalysis is the cached brand identity brief that guided
	// generation of every asset in the package.
	BrandAnalysis string `json:"brand_analysis"`

	// GenerationNotes summarizes counts, parameters, and any partial
	// failures encountered while building the package.
	GenerationNotes string `json:"generation_notes,omitempty"`

	BatchScore *BatchConsistencyScore `json:"batch_score,omitempty"`
	Campaign   *CampaignContext       `json:"campaign,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// NewAssetPackage creates a package with a fresh ID and timestamp.
func NewAssetPackage(brandName string, assets []*GeneratedAsset, analysis, notes string) *AssetPackage {
	return &AssetPackage{
		ID:              uuid.New(),
		BrandName:       brandName,
		Assets:          assets,
		BrandAnalysis:   analysis,
		GenerationNotes: notes,
		CreatedAt:       time.Now().UTC(),
	}
}

// CampaignContext is the cross-asset narrative derived when a profile
// carries campaign intent: the campaign parameters, a generated unifying
// theme, and a deployment checklist built from the asset types present.
type CampaignContext struct {
	CampaignName    string `json:"campaign_name"`
	CampaignGoal    string `json:"campaign_goal"`
	CampaignMessage string `json:"campaign_message"`

	UnifiedTheme string `json:"unified_theme"`

	DeploymentChecklist []string `json:"deployment_checklist"`
}
