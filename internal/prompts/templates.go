package prompts

const brandAnalysisTemplate = `You are a senior brand strategist at a world-class advertising agency.
Write a brand identity brief for the creative team. Your writing style is confident,
precise, and sophisticated. No fluff, no jargon, just sharp strategic insight.

The Brief:

Brand: {{.BrandName}}
Industry: {{.Industry}}
Audience: {{.TargetAudience}}
Voice: {{.BrandTone}}
Values: {{.Values}}
Tagline: {{.TaglineOrNone}}

Visual System:
Primary: {{.PrimaryColor}} | Secondary: {{.SecondaryColor}} | Accent: {{.Accent}}
Typography: {{.PrimaryFont}} (primary), {{.SecondaryFont}} (secondary)

Additional Context: {{.Context}}

Write a creative brief covering:

THE ESSENCE - What this brand fundamentally stands for in one powerful paragraph.

VISUAL DIRECTION - How the color palette and typography work together to express the brand personality. Be specific about mood, contrast, and emotional resonance.

DESIGN PRINCIPLES - Three to four guiding rules the design team must follow. State them as clear directives.

IMAGERY & TEXTURE - The visual world this brand inhabits. What does photography look like? What graphic elements reinforce the identity?

AUDIENCE CONNECTION - How the visual identity speaks to the target audience. What makes them stop scrolling?

Write in plain prose. No bullet points. No asterisks. No markdown formatting.
Write as if this brief will be printed and handed to the creative director.
Be direct, insightful, and memorable.`

const logoTemplate = `Create a professional logo for "{{.BrandName}}".

Brand Identity:
- Industry: {{.Industry}}
- Brand Tone: {{.BrandTone}}
- Target Audience: {{.TargetAudience}}

Color Palette:
- Primary: {{.PrimaryColor}}
- Secondary: {{.SecondaryColor}}
- Accent: {{.Accent}}

Typography: {{.PrimaryFont}} as the primary typeface
{{- if .Tagline}}

Tagline (optional inclusion): {{.Tagline}}
{{- end}}

Variation Type: {{.Variation}}
{{.Instructions}}
{{- if .StylePreferences}}

Style Preferences: {{.StylePreferences}}
{{- end}}

Design Requirements:
- Clean, professional, and memorable design
- Scalable vector-style clarity (should look good at any size)
- Modern and timeless aesthetic
- Clear visual hierarchy
- Proper use of negative space

Based on brand analysis: {{.Analysis}}...`

const socialTemplate = `Create a professional social media template for {{.Platform}}.

Brand: {{.BrandName}}
Platform: {{.Platform}}
Dimensions: {{.Width}}x{{.Height}} pixels

Brand Colors:
- Primary: {{.PrimaryColor}}
- Secondary: {{.SecondaryColor}}
- Accent: {{.Accent}}

Typography: {{.PrimaryFont}}
Brand Tone: {{.BrandTone}}
{{- if .Purpose}}

Template Purpose: {{.Purpose}}
{{- end}}

Design Requirements:
- Include placeholder areas for text/content with clear visual hierarchy
- Include space for the brand logo (typically corner placement)
- Maintain safe zones for platform UI elements
- Use brand colors consistently
- Create visual interest while leaving room for customization
- Add subtle brand elements (patterns, shapes, or motifs) that reinforce brand identity
- Ensure text placeholder areas have sufficient contrast for readability

The template should be versatile enough to be used for various content while maintaining brand consistency.

Brand context: {{.Analysis}}`

const presentationTemplate = `Create a professional presentation slide design for {{.BrandName}}.

Slide Type: {{.SlideType}}
Presentation Purpose: {{.PresentationType}}
Dimensions: 1920x1080 pixels (16:9 aspect ratio)

Brand Colors:
- Primary: {{.PrimaryColor}}
- Secondary: {{.SecondaryColor}}
- Background: Use appropriate light or dark theme based on brand tone

Typography:
- Headings: {{.PrimaryFont}}
- Body: {{.BodyFont}}

{{.Instructions}}

Design Requirements:
- Clean, professional layout with clear visual hierarchy
- Consistent brand elements (logo placement, color accents)
- Proper margins and safe areas
- Subtle design elements that enhance without distracting
- Text placeholders should have clear visual distinction
- Ensure accessibility with sufficient color contrast

Target audience: {{.TargetAudience}}
Brand tone: {{.BrandTone}}

Brand analysis context: {{.Analysis}}`

const emailTemplate = `Create a professional email template design for {{.BrandName}}.

Email Type: {{.TemplateType}}
Width: 600 pixels (standard email width)
Height: Create appropriate height for the template type (typically 800-1200 pixels)

Brand Colors:
- Primary: {{.PrimaryColor}}
- Secondary: {{.SecondaryColor}}
- Background: Light, clean background with brand color accents

Typography: {{.PrimaryFont}} (or web-safe fallback representation)

{{.Instructions}}

Design Requirements:
- Mobile-responsive design principles (single column, appropriate sizing)
- Clear visual hierarchy with header, body, and footer sections
- Branded header with logo
- Well-defined CTA buttons using brand colors
- Footer with social links placeholders and unsubscribe area
- Consistent padding and spacing
- Professional, clean aesthetic matching brand tone

Brand tone: {{.BrandTone}}
Target audience: {{.TargetAudience}}

Brand context: {{.Analysis}}`

const marketingTemplate = `Create a professional {{.MaterialName}} design for {{.BrandName}}.

Material Type: {{.MaterialTitle}}
Dimensions: {{.Width}}x{{.Height}} pixels

Brand Colors:
- Primary: {{.PrimaryColor}}
- Secondary: {{.SecondaryColor}}
- Accent: {{.Accent}}

Typography: {{.PrimaryFont}}
Industry: {{.Industry}}

{{.Instructions}}

Design Requirements:
- Professional, polished appearance
- Clear brand identity throughout
- Appropriate for {{.TargetAudience}}
- Matches brand tone: {{.BrandTone}}
- High-quality, print-ready aesthetic
- Proper use of white space and visual balance
{{- if .Tagline}}

Tagline: {{.Tagline}}
{{- end}}

Brand context: {{.Analysis}}`

const validationTemplate = `You are a strict brand quality auditor. Analyze this generated asset image
and determine if it meets the brand guidelines. Be critical but fair.

Brand Guidelines:
- Brand Name: {{.BrandName}}
- Primary Color: {{.PrimaryColor}}
- Secondary Color: {{.SecondaryColor}}
- Accent Color: {{.Accent}}
- Primary Font Style: {{.PrimaryFont}}
- Brand Tone: {{.BrandTone}}
- Industry: {{.Industry}}
- Target Audience: {{.TargetAudience}}

Asset Details:
- Type: {{.AssetType}}
- Description: {{.Description}}
{{.PreviousContext}}
Evaluate the image against these criteria:
1. COLOR ADHERENCE: Are the brand colors ({{.PrimaryColor}}, {{.SecondaryColor}}) prominently and correctly used?
2. TYPOGRAPHY: Does the text styling match the brand's {{.PrimaryFont}} font style?
3. TONE ALIGNMENT: Does the visual mood match "{{.BrandTone}}"?
4. PROFESSIONAL QUALITY: Is it polished enough for a real brand?
5. BRAND RECOGNITION: Would someone recognize this as {{.BrandName}}?

PASSING THRESHOLD: Score must be 70+ to pass. Assets scoring below 70 need regeneration.

Return ONLY a valid JSON object:
{
    "passed": <true if overall score >= 70, false otherwise>,
    "score": <0-100>,
    "issues": ["<specific issue 1>", "<specific issue 2>", ...],
    "critique": "<2-3 sentence professional critique>",
    "regeneration_guidance": "<specific instructions for fixing issues, or null if passed>"
}

Be specific about issues. For example:
- "Primary color {{.PrimaryColor}} is not visible in the design"
- "Typography appears to be sans-serif but brand uses serif font"
- "Tone is too playful for a professional/trustworthy brand"`

const scoringTemplate = `You are a brand consistency auditor. Evaluate how well this generated asset
aligns with the brand guidelines. Be fair but critical.

Brand Guidelines:
- Brand: {{.BrandName}}
- Primary Color: {{.PrimaryColor}}
- Secondary Color: {{.SecondaryColor}}
- Accent Color: {{.Accent}}
- Primary Font: {{.PrimaryFont}}
- Brand Tone: {{.BrandTone}}
- Industry: {{.Industry}}
- Target Audience: {{.TargetAudience}}

Asset Details:
- Asset Name: {{.AssetName}}
- Asset Type: {{.AssetType}}
- Description: {{.Description}}

Score each dimension from 0-100:
1. color_adherence: How well the asset uses the brand color palette
2. typography_compliance: How well typography matches brand fonts and style
3. tone_alignment: How well the visual tone matches brand voice
4. layout_quality: Layout completeness, balance, and professional finish
5. brand_recognition: How clearly the brand identity comes through

Return ONLY a valid JSON object with this exact structure:
{
    "overall_score": <weighted average of all scores>,
    "color_adherence": <0-100>,
    "typography_compliance": <0-100>,
    "tone_alignment": <0-100>,
    "layout_quality": <0-100>,
    "brand_recognition": <0-100>,
    "explanation": "<2-3 sentence summary of the evaluation>",
    "strengths": ["<strength 1>", "<strength 2>"],
    "improvements": ["<improvement 1>", "<improvement 2>"]
}

Be realistic. Most well-generated assets score 70-90. Only exceptional work scores 90+.
Reserve scores below 60 for assets with clear issues.`

const campaignThemeTemplate = `Write a brief (2-3 sentences) unified campaign theme for:

Brand: {{.BrandName}}
Campaign: {{.Campaign}}
Goal: {{.Goal}}
Key Message: {{.Message}}
Assets Generated: {{.AssetCount}} coordinated assets
Brand Tone: {{.BrandTone}}

Describe how all assets work together as a cohesive campaign. Be specific about the visual and messaging thread that ties them together. Write in plain prose, no formatting.`
