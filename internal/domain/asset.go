package domain

import "errors"

// Asset validation errors
var (
	// ErrAssetNameEmpty is returned when a generated asset has no name.
	ErrAssetNameEmpty = errors.New("asset name cannot be empty")

	// ErrInvalidAssetType is returned when an asset type is not recognized.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidIterationStatus is returned when an iteration status is not recognized.
	ErrInvalidIterationStatus = errors.New("invalid iteration status")
)

// AssetType identifies the category an asset belongs to.
type AssetType string

// Supported asset types.
const (
	AssetTypeLogo          AssetType = "logo"
	AssetTypeSocialMedia   AssetType = "social_media"
	AssetTypePresentation  AssetType = "presentation"
	AssetTypeEmailTemplate AssetType = "email_template"
	AssetTypeMarketing     AssetType = "marketing"
)

// IsValid reports whether the asset type is one of the supported values.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeLogo, AssetTypeSocialMedia, AssetTypePresentation,
		AssetTypeEmailTemplate, AssetTypeMarketing:
		return true
	}
	return false
}

// IterationStatus tags one attempt inside the self-correction loop.
type IterationStatus string

// Iteration status values. A "final" iteration is always the last recorded
// successfully-generated one, whether or not its validation passed; earlier
// non-passing iterations are "failed".
const (
	IterationFailed IterationStatus = "failed"
	IterationPassed IterationStatus = "passed"
	IterationFinal  IterationStatus = "final"
)

// ValidationResult is the structured verdict returned by the model for a
// single iteration. It is produced by the model gateway and never
// recomputed locally.
type ValidationResult struct {
	Passed bool `json:"passed"`

	// Score is the model's 0-100 judgment. The 70-point passing threshold
	// is enforced by the model's verdict, not recomputed here.
	Score int `json:"score"`

	Issues   []string `json:"issues"`
	Critique string   `json:"critique"`

	// RegenerationGuidance carries model-suggested fixes into the next
	// iteration's prompt; empty when the verdict passed.
	RegenerationGuidance string `json:"regeneration_guidance,omitempty"`
}

// AssetIteration records one attempt of the self-correction loop.
// The iteration history is append-only; ordering is attempt order.
type AssetIteration struct {
	Number     int              `json:"iteration_number"`
	ImageData  []byte           `json:"image_data"`
	MIMEType   string           `json:"mime_type"`
	Validation ValidationResult `json:"validation"`
	Status     IterationStatus  `json:"status"`
}

// GeneratedAsset is one produced artifact with its full correction history.
// Assets are immutable after creation; attaching a score produces a copy.
type GeneratedAsset struct {
	Type        AssetType `json:"asset_type"`
	Name        string    `json:"asset_name"`
	ImageData   []byte    `json:"image_data"`
	MIMEType    string    `json:"mime_type"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Description string    `json:"description,omitempty"`

	Score *ConsistencyScore `json:"consistency_score,omitempty"`

	IterationCount int              `json:"iteration_count"`
	Iterations     []AssetIteration `json:"iteration_history"`

	// SelfCorrected is true iff more than one iteration was recorded.
	SelfCorrected bool `json:"self_corrected"`
}

// NewGeneratedAsset assembles an asset from its correction history.
// The iteration invariants (count == len(history), self-corrected iff
// count > 1) are established here and nowhere else.
func NewGeneratedAsset(
	assetType AssetType,
	name string,
	imageData []byte,
	mimeType string,
	width, height int,
	description string,
	iterations []AssetIteration,
) (*GeneratedAsset, error) {
	if name == "" {
		return nil, ErrAssetNameEmpty
	}
	if !assetType.IsValid() {
		return nil, ErrInvalidAssetType
	}

	return &GeneratedAsset{
		Type:           assetType,
		Name:           name,
		ImageData:      imageData,
		MIMEType:       mimeType,
		Width:          width,
		Height:         height,
		Description:    description,
		IterationCount: len(iterations),
		Iterations:     iterations,
		SelfCorrected:  len(iterations) > 1,
	}, nil
}

// WithScore returns a copy of the asset with the consistency score attached.
// The receiver is left unmodified.
func (a *GeneratedAsset) WithScore(score *ConsistencyScore) *GeneratedAsset {
	scored := *a
	scored.Score = score
	return &scored
}
