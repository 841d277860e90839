package assetgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelab/brandforge-api/internal/domain"
	"github.com/forgelab/brandforge-api/internal/generation"
)

func TestSlideSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{
			name:  "zero slides",
			count: 0,
			want:  nil,
		},
		{
			name:  "single slide",
			count: 1,
			want:  []string{"title"},
		},
		{
			name:  "two slides",
			count: 2,
			want:  []string{"title", "content"},
		},
		{
			name:  "three slides",
			count: 3,
			want:  []string{"title", "content", "closing"},
		},
		{
			name:  "five slides",
			count: 5,
			want:  []string{"title", "content", "two_column", "image_focus", "closing"},
		},
		{
			name:  "six slides",
			count: 6,
			want:  []string{"title", "content", "two_column", "image_focus", "section", "closing"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slideSequence(tc.count))
		})
	}
}

func TestSlideSequenceLongDeckShape(t *testing.T) {
	t.Parallel()

	for count := 4; count <= 12; count++ {
		got := slideSequence(count)
		require.Len(t, got, count, "count %d", count)
		assert.Equal(t, "title", got[0], "count %d", count)
		assert.Equal(t, "closing", got[count-1], "count %d", count)
	}
}

func TestGenerateLogosDefaults(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	svc := newTestService(t, gateway, &stubAnalyses{analysis: "the brand brief"})

	pkg, err := svc.GenerateLogos(context.Background(), LogoRequest{Profile: testProfile()})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 3)
	assert.Equal(t, "logo_primary", pkg.Assets[0].Name)
	assert.Equal(t, "logo_icon_only", pkg.Assets[1].Name)
	assert.Equal(t, "logo_horizontal", pkg.Assets[2].Name)
	for _, asset := range pkg.Assets {
		assert.Equal(t, domain.AssetTypeLogo, asset.Type)
		assert.Equal(t, 1024, asset.Width)
		assert.Equal(t, 1024, asset.Height)
	}
	assert.Equal(t, "the brand brief", pkg.BrandAnalysis)
	assert.Equal(t, "Generated 3 logo variations with style: default", pkg.GenerationNotes)
	assert.Equal(t, "Icon Only logo variation for Aurora Coffee", pkg.Assets[1].Description)
}

func TestGenerateLogosStyleNote(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockGateway{}, &stubAnalyses{})

	pkg, err := svc.GenerateLogos(context.Background(), LogoRequest{
		Profile:          testProfile(),
		Variations:       []string{"monochrome"},
		StylePreferences: "minimalist",
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 1)
	assert.Equal(t, "Generated 1 logo variations with style: minimalist", pkg.GenerationNotes)
}

func TestGenerateSocialMediaPlatformDimensions(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	svc := newTestService(t, gateway, &stubAnalyses{})

	pkg, err := svc.GenerateSocialMedia(context.Background(), SocialMediaRequest{
		Profile:   testProfile(),
		Platforms: []string{"instagram_story", "twitter_post"},
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 2)
	assert.Equal(t, "social_instagram_story", pkg.Assets[0].Name)
	assert.Equal(t, 1080, pkg.Assets[0].Width)
	assert.Equal(t, 1920, pkg.Assets[0].Height)
	assert.Equal(t, "social_twitter_post", pkg.Assets[1].Name)
	assert.Equal(t, 1200, pkg.Assets[1].Width)
	assert.Equal(t, 675, pkg.Assets[1].Height)
	assert.Equal(t,
		"Generated 2 social media templates for platforms: instagram_story, twitter_post",
		pkg.GenerationNotes)
}

func TestGeneratePresentationSequencesSlides(t *testing.T) {
	t.Parallel()

	gateway := &mockGateway{}
	svc := newTestService(t, gateway, &stubAnalyses{})

	pkg, err := svc.GeneratePresentation(context.Background(), PresentationRequest{
		Profile:    testProfile(),
		SlideCount: 4,
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 4)
	assert.Equal(t, "slide_01_title", pkg.Assets[0].Name)
	assert.Equal(t, "slide_02_content", pkg.Assets[1].Name)
	assert.Equal(t, "slide_03_two_column", pkg.Assets[2].Name)
	assert.Equal(t, "slide_04_closing", pkg.Assets[3].Name)
	assert.Equal(t, "Slide 3: Two Column", pkg.Assets[2].Description)
	for _, asset := range pkg.Assets {
		assert.Equal(t, 1920, asset.Width)
		assert.Equal(t, 1080, asset.Height)
	}
	assert.Equal(t, "Generated 4 presentation slides for company overview", pkg.GenerationNotes)
}

func TestGenerateEmailTemplatesDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockGateway{}, &stubAnalyses{})

	pkg, err := svc.GenerateEmailTemplates(context.Background(), EmailTemplateRequest{
		Profile: testProfile(),
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 2)
	assert.Equal(t, "email_welcome", pkg.Assets[0].Name)
	assert.Equal(t, "email_newsletter", pkg.Assets[1].Name)
	assert.Equal(t, 600, pkg.Assets[0].Width)
	assert.Equal(t, 1000, pkg.Assets[0].Height)
	assert.Equal(t, "Generated 2 email templates: welcome, newsletter", pkg.GenerationNotes)
}

func TestGenerateMarketingMaterialDimensions(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockGateway{}, &stubAnalyses{})

	pkg, err := svc.GenerateMarketing(context.Background(), MarketingRequest{
		Profile:       testProfile(),
		MaterialTypes: []string{"business_card", "poster"},
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 2)
	assert.Equal(t, "marketing_business_card", pkg.Assets[0].Name)
	assert.Equal(t, 1050, pkg.Assets[0].Width)
	assert.Equal(t, 600, pkg.Assets[0].Height)
	assert.Equal(t, "marketing_poster", pkg.Assets[1].Name)
	assert.Equal(t, 1080, pkg.Assets[1].Width)
	assert.Equal(t, 1620, pkg.Assets[1].Height)
	assert.Equal(t, "Business Card for Aurora Coffee", pkg.Assets[0].Description)
}

func TestCategoryKeepsFailedVariantsBestEffort(t *testing.T) {
	t.Parallel()

	// A variant whose every generation attempt fails is still returned as
	// an empty-payload asset with its failure history; the category is
	// never aborted.
	gateway := &mockGateway{}
	gateway.generateImageFn = func(ctx context.Context, prompt, style string, w, h int) (generation.ImageData, error) {
		if w == 1080 && h == 1920 {
			return generation.ImageData{}, errors.New("story format rejected")
		}
		return generation.ImageData{Data: []byte("ok"), MIMEType: "image/png"}, nil
	}
	svc := newTestService(t, gateway, &stubAnalyses{})

	pkg, err := svc.GenerateSocialMedia(context.Background(), SocialMediaRequest{
		Profile:   testProfile(),
		Platforms: []string{"instagram_story", "linkedin_post"},
	})
	require.NoError(t, err)

	require.Len(t, pkg.Assets, 2)
	assert.Empty(t, pkg.Assets[0].ImageData)
	assert.Equal(t, maxIterations, pkg.Assets[0].IterationCount)
	assert.Equal(t, []byte("ok"), pkg.Assets[1].ImageData)
}

func TestGenerateCategoryUnknown(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockGateway{}, &stubAnalyses{})

	_, err := svc.GenerateCategory(context.Background(), testProfile(), Category("stickers"))
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestGenerateCategoryDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category   Category
		assetCount int
		assetType  domain.AssetType
	}{
		{CategoryLogos, 3, domain.AssetTypeLogo},
		{CategorySocial, 3, domain.AssetTypeSocialMedia},
		{CategoryPresentation, 5, domain.AssetTypePresentation},
		{CategoryEmail, 2, domain.AssetTypeEmailTemplate},
		{CategoryMarketing, 3, domain.AssetTypeMarketing},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.category), func(t *testing.T) {
			t.Parallel()

			svc := newTestService(t, &mockGateway{}, &stubAnalyses{})
			pkg, err := svc.GenerateCategory(context.Background(), testProfile(), tc.category)
			require.NoError(t, err)

			require.Len(t, pkg.Assets, tc.assetCount)
			for _, asset := range pkg.Assets {
				assert.Equal(t, tc.assetType, asset.Type)
			}
		})
	}
}
